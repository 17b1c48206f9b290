package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User representa um usuário cadastrado
type User struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CPF       string    `json:"cpf" db:"cpf"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewUser cria uma nova instância de User com a senha já criptografada
func NewUser(name, email, cpf, hashedPassword string) *User {
	return &User{
		Name:      name,
		Email:     email,
		CPF:       cpf,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
	}
}

// Product representa um produto do catálogo
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	Category    string    `json:"category" db:"category"`
	Stock       int       `json:"stock" db:"stock"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// NewProduct cria uma nova instância de Product aplicando os defaults do catálogo
func NewProduct(name, description string, price float64, imageURL, category string, stock int) *Product {
	if category == "" {
		category = DefaultCategory
	}
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		Category:    category,
		Stock:       stock,
		CreatedAt:   time.Now(),
	}
}

// Payment representa uma tentativa de pagamento PIX
type Payment struct {
	ID            int64     `json:"id" db:"id"`
	UserID        int64     `json:"user_id" db:"user_id"`
	ProductID     int64     `json:"product_id" db:"product_id"`
	Amount        float64   `json:"amount" db:"amount"`
	PaymentMethod string    `json:"payment_method" db:"payment_method"`
	PixKey        string    `json:"pix_key" db:"pix_key"`
	TransactionID string    `json:"transaction_id" db:"transaction_id"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// NewPayment cria uma nova instância de Payment com transaction id e chave PIX
// recém gerados e status pending
func NewPayment(userID, productID int64, amount float64) *Payment {
	return &Payment{
		UserID:        userID,
		ProductID:     productID,
		Amount:        amount,
		PaymentMethod: PaymentMethodPix,
		PixKey:        buildPixPayload(amount),
		TransactionID: uuid.New().String(),
		Status:        PaymentStatusPending,
		CreatedAt:     time.Now(),
	}
}

// ExpiresAt informa o prazo exibido ao pagador; nenhum processo expira
// pagamentos de fato
func (p *Payment) ExpiresAt() time.Time {
	return p.CreatedAt.Add(PaymentExpiry)
}

// PaymentStatus representa os possíveis status de um pagamento
const (
	PaymentStatusPending   = "pending"
	PaymentStatusConfirmed = "confirmed"
	// reservado no modelo; nenhum fluxo atual marca pagamentos como failed
	PaymentStatusFailed = "failed"
)

const (
	PaymentMethodPix = "pix"
	DefaultCategory  = "Geral"
	PaymentExpiry    = 30 * time.Minute

	PixInstructions = "Copie e cole a chave PIX no seu aplicativo bancário para realizar o pagamento"
)

// buildPixPayload monta uma carga PIX copia-e-cola fictícia, sem significado
// bancário real
func buildPixPayload(amount float64) string {
	random := strings.ReplaceAll(uuid.New().String(), "-", "")
	value := decimal.NewFromFloat(amount).StringFixed(2)
	return "00020126580014br.gov.bcb.pix0136" + random +
		"520400005303986" +
		fmt.Sprintf("54%02d%s", len(value), value) +
		"5802BR5925LOJA FICTICIA E-COMMERCE6009SAO PAULO62070503***6304"
}
