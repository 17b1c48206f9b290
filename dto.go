package main

import "time"

// RegisterRequest representa a requisição de cadastro de usuário
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	CPF      string `json:"cpf" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProductRequest representa o corpo de criação e atualização de produto
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

// CreatePixPaymentRequest representa a requisição de criação de pagamento PIX
type CreatePixPaymentRequest struct {
	ProductID int64   `json:"productId" binding:"required"`
	Amount    float64 `json:"amount"`
}

// UserResponse é a projeção pública de um usuário
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

// AuthResponse é o resultado de register e login
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// VerifyResponse é o resultado da validação de sessão
type VerifyResponse struct {
	Valid bool         `json:"valid"`
	User  UserResponse `json:"user"`
}

// ProductSummary é o resumo do produto embutido nas respostas de pagamento
type ProductSummary struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductResponse envelopa um produto em respostas de escrita do catálogo
type ProductResponse struct {
	Message string   `json:"message"`
	Product *Product `json:"product"`
}

// MessageResponse é uma resposta contendo apenas uma mensagem
type MessageResponse struct {
	Message string `json:"message"`
}

// PixPaymentResponse é o resultado da criação de um pagamento PIX
type PixPaymentResponse struct {
	ID            int64          `json:"id"`
	TransactionID string         `json:"transactionId"`
	PixKey        string         `json:"pixKey"`
	Amount        float64        `json:"amount"`
	Status        string         `json:"status"`
	Product       ProductSummary `json:"product"`
	Instructions  string         `json:"instructions"`
	ExpiresAt     time.Time      `json:"expiresAt"`
}

// PixCreatedResponse envelopa o pagamento recém criado
type PixCreatedResponse struct {
	Message string              `json:"message"`
	Payment *PixPaymentResponse `json:"payment"`
}

// PaymentConfirmation é o resultado da confirmação de um pagamento
type PaymentConfirmation struct {
	ID            int64     `json:"id"`
	TransactionID string    `json:"transactionId"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	Product       string    `json:"product"`
	ConfirmedAt   time.Time `json:"confirmedAt"`
}

// PixConfirmedResponse envelopa a confirmação
type PixConfirmedResponse struct {
	Message string               `json:"message"`
	Payment *PaymentConfirmation `json:"payment"`
}

// PaymentStatusResponse é o resultado da consulta de status
type PaymentStatusResponse struct {
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PaymentHistoryEntry é um item do histórico, com o produto agregado ao vivo
// (nome e preço atuais, não os do momento da compra)
type PaymentHistoryEntry struct {
	ID            int64          `json:"id"`
	TransactionID string         `json:"transactionId"`
	Amount        float64        `json:"amount"`
	Status        string         `json:"status"`
	PaymentMethod string         `json:"paymentMethod"`
	CreatedAt     time.Time      `json:"createdAt"`
	Product       ProductSummary `json:"product"`
}
