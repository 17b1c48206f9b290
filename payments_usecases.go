package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// PaymentUseCase contém a lógica de negócio de pagamentos PIX
type PaymentUseCase struct {
	repository PaymentRepository
	products   ProductRepository
	publisher  PaymentEventPublisher

	paymentCreatedCounter   metric.Int64Counter
	paymentConfirmedCounter metric.Int64Counter
	paymentConflictCounter  metric.Int64Counter
}

// NewPaymentUseCase cria uma nova instância de PaymentUseCase
func NewPaymentUseCase(
	repository PaymentRepository,
	products ProductRepository,
	publisher PaymentEventPublisher,
	meter metric.Meter,
) *PaymentUseCase {
	created, _ := meter.Int64Counter("payments_created_total")
	confirmed, _ := meter.Int64Counter("payments_confirmed_total")
	conflicts, _ := meter.Int64Counter("payment_confirm_conflicts_total")

	return &PaymentUseCase{
		repository:              repository,
		products:                products,
		publisher:               publisher,
		paymentCreatedCounter:   created,
		paymentConfirmedCounter: confirmed,
		paymentConflictCounter:  conflicts,
	}
}

// CreatePixPayment registra uma nova intenção de pagamento com status pending.
// Cada chamada cria uma transação nova; a operação não é idempotente. O valor
// informado pelo cliente é validado (> 0) mas não conferido contra o preço do
// produto.
func (uc *PaymentUseCase) CreatePixPayment(ctx context.Context, userID int64, req CreatePixPaymentRequest) (*PixPaymentResponse, error) {
	log.Printf("➡️ [CREATE PIX] UserID: %d | ProductID: %d | Amount: %.2f", userID, req.ProductID, req.Amount)

	if req.Amount <= 0 {
		return nil, invalidArgument("Valor deve ser maior que zero")
	}

	product, err := uc.products.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, notFound("Produto não encontrado")
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	payment := NewPayment(userID, req.ProductID, req.Amount)
	id, err := uc.repository.CreatePayment(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	payment.ID = id

	uc.paymentCreatedCounter.Add(ctx, 1)
	log.Printf("✅ [CREATE PIX] TransactionID=%s", payment.TransactionID)

	return &PixPaymentResponse{
		ID:            payment.ID,
		TransactionID: payment.TransactionID,
		PixKey:        payment.PixKey,
		Amount:        payment.Amount,
		Status:        payment.Status,
		Product:       ProductSummary{ID: product.ID, Name: product.Name, Price: product.Price},
		Instructions:  PixInstructions,
		ExpiresAt:     payment.ExpiresAt(),
	}, nil
}

// ConfirmPayment aplica a transição pending → confirmed. A transição é uma
// única atualização condicional no ledger: sob confirmações concorrentes da
// mesma transação exatamente uma vence e as demais recebem ErrConflict.
func (uc *PaymentUseCase) ConfirmPayment(ctx context.Context, userID int64, transactionID string) (*PaymentConfirmation, error) {
	log.Printf("➡️ [CONFIRM PIX] UserID: %d | TransactionID: %s", userID, transactionID)

	rows, err := uc.repository.ConfirmPayment(ctx, transactionID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm payment: %w", err)
	}

	if rows == 0 {
		// Nada atualizado: ou a transação não existe para este usuário, ou já
		// saiu de pending
		if _, err := uc.repository.GetPaymentByTransactionID(ctx, transactionID, userID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, notFound("Pagamento não encontrado")
			}
			return nil, fmt.Errorf("failed to load payment: %w", err)
		}
		uc.paymentConflictCounter.Add(ctx, 1)
		log.Printf("ℹ️ [CONFIRM PIX] Already confirmed: TransactionID=%s", transactionID)
		return nil, conflict("Pagamento já foi confirmado")
	}

	payment, err := uc.repository.GetPaymentByTransactionID(ctx, transactionID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	productName := ""
	if product, err := uc.products.GetProduct(ctx, payment.ProductID); err == nil {
		productName = product.Name
	}

	uc.paymentConfirmedCounter.Add(ctx, 1)
	if err := uc.publisher.PaymentConfirmed(ctx, payment); err != nil {
		log.Printf("❌ Failed to publish payment confirmed event: %v", err)
	}

	log.Printf("✅ [CONFIRM PIX] TransactionID=%s", transactionID)
	return &PaymentConfirmation{
		ID:            payment.ID,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
		Status:        payment.Status,
		Product:       productName,
		ConfirmedAt:   time.Now(),
	}, nil
}

// GetStatus devolve o status de uma transação do usuário
func (uc *PaymentUseCase) GetStatus(ctx context.Context, userID int64, transactionID string) (*PaymentStatusResponse, error) {
	payment, err := uc.repository.GetPaymentByTransactionID(ctx, transactionID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, notFound("Pagamento não encontrado")
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	return &PaymentStatusResponse{
		TransactionID: payment.TransactionID,
		Status:        payment.Status,
		Amount:        payment.Amount,
		CreatedAt:     payment.CreatedAt,
	}, nil
}

// ListPayments devolve o histórico de pagamentos do usuário
func (uc *PaymentUseCase) ListPayments(ctx context.Context, userID int64) ([]PaymentHistoryEntry, error) {
	entries, err := uc.repository.ListPaymentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return entries, nil
}
