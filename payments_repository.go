package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PaymentRepository define a interface para operações de banco de dados de
// pagamentos. Todas as buscas filtram pelo usuário dono: transações de outros
// usuários são indistinguíveis de transações inexistentes.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *Payment) (int64, error)
	GetPaymentByTransactionID(ctx context.Context, transactionID string, userID int64) (*Payment, error)

	// ConfirmPayment aplica pending → confirmed em uma única atualização
	// condicional e devolve o número de linhas afetadas; sob confirmações
	// concorrentes da mesma transação exatamente uma observa 1
	ConfirmPayment(ctx context.Context, transactionID string, userID int64) (int64, error)

	ListPaymentsByUser(ctx context.Context, userID int64) ([]PaymentHistoryEntry, error)
}

// PostgresPaymentRepository implementa PaymentRepository usando PostgreSQL
type PostgresPaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository cria uma nova instância de PostgresPaymentRepository
func NewPaymentRepository(db *pgxpool.Pool) PaymentRepository {
	return &PostgresPaymentRepository{db: db}
}

// CreatePayment insere um novo pagamento e devolve o id gerado
func (r *PostgresPaymentRepository) CreatePayment(ctx context.Context, payment *Payment) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO payments (user_id, product_id, amount, payment_method, pix_key, transaction_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, payment.UserID, payment.ProductID, payment.Amount, payment.PaymentMethod,
		payment.PixKey, payment.TransactionID, payment.Status, payment.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create payment: %w", err)
	}
	return id, nil
}

// GetPaymentByTransactionID busca um pagamento pelo transaction id, restrito
// ao usuário dono
func (r *PostgresPaymentRepository) GetPaymentByTransactionID(ctx context.Context, transactionID string, userID int64) (*Payment, error) {
	var payment Payment
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, product_id, amount, payment_method, pix_key, transaction_id, status, created_at
		FROM payments
		WHERE transaction_id = $1 AND user_id = $2
	`, transactionID, userID).Scan(&payment.ID, &payment.UserID, &payment.ProductID,
		&payment.Amount, &payment.PaymentMethod, &payment.PixKey,
		&payment.TransactionID, &payment.Status, &payment.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

// ConfirmPayment atualiza o status para confirmed apenas se o pagamento ainda
// estiver pending e pertencer ao usuário
func (r *PostgresPaymentRepository) ConfirmPayment(ctx context.Context, transactionID string, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE payments
		SET status = $1
		WHERE transaction_id = $2 AND user_id = $3 AND status = $4
	`, PaymentStatusConfirmed, transactionID, userID, PaymentStatusPending)
	if err != nil {
		return 0, fmt.Errorf("failed to confirm payment: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListPaymentsByUser devolve o histórico do usuário, do mais recente para o
// mais antigo, com nome e preço atuais do produto agregados
func (r *PostgresPaymentRepository) ListPaymentsByUser(ctx context.Context, userID int64) ([]PaymentHistoryEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.transaction_id, p.amount, p.status, p.payment_method, p.created_at,
		       pr.id, pr.name, pr.price
		FROM payments p
		JOIN products pr ON p.product_id = pr.id
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC, p.id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	entries := []PaymentHistoryEntry{}
	for rows.Next() {
		var entry PaymentHistoryEntry
		if err := rows.Scan(&entry.ID, &entry.TransactionID, &entry.Amount, &entry.Status,
			&entry.PaymentMethod, &entry.CreatedAt,
			&entry.Product.ID, &entry.Product.Name, &entry.Product.Price); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payments: %w", err)
	}
	return entries, nil
}
