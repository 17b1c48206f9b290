package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PaymentHandler contém os handlers HTTP de pagamentos
type PaymentHandler struct {
	useCase *PaymentUseCase
	tracer  trace.Tracer
}

// NewPaymentHandler cria uma nova instância de PaymentHandler
func NewPaymentHandler(useCase *PaymentUseCase, tracer trace.Tracer) *PaymentHandler {
	return &PaymentHandler{
		useCase: useCase,
		tracer:  tracer,
	}
}

// CreatePix é o endpoint de criação de pagamento PIX
func (h *PaymentHandler) CreatePix(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "payments.create_pix")
	defer span.End()

	var req CreatePixPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID do produto e valor são obrigatórios"})
		return
	}

	userID := currentUserID(c)
	span.SetAttributes(
		attribute.Int64("user_id", userID),
		attribute.Int64("product_id", req.ProductID),
		attribute.Float64("amount", req.Amount),
	)

	payment, err := h.useCase.CreatePixPayment(ctx, userID, req)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	span.SetAttributes(attribute.String("transaction_id", payment.TransactionID))
	c.JSON(http.StatusCreated, PixCreatedResponse{
		Message: "Pagamento PIX criado com sucesso",
		Payment: payment,
	})
}

// ConfirmPix é o endpoint de confirmação simulada de pagamento PIX
func (h *PaymentHandler) ConfirmPix(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "payments.confirm_pix")
	defer span.End()

	userID := currentUserID(c)
	transactionID := c.Param("transactionId")
	span.SetAttributes(
		attribute.Int64("user_id", userID),
		attribute.String("transaction_id", transactionID),
	)

	confirmation, err := h.useCase.ConfirmPayment(ctx, userID, transactionID)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PixConfirmedResponse{
		Message: "Pagamento confirmado com sucesso!",
		Payment: confirmation,
	})
}

// MyPayments devolve o histórico de pagamentos do chamador
func (h *PaymentHandler) MyPayments(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "payments.list")
	defer span.End()

	userID := currentUserID(c)
	span.SetAttributes(attribute.Int64("user_id", userID))

	entries, err := h.useCase.ListPayments(ctx, userID)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Status devolve o status de uma transação do chamador
func (h *PaymentHandler) Status(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "payments.status")
	defer span.End()

	userID := currentUserID(c)
	transactionID := c.Param("transactionId")
	span.SetAttributes(
		attribute.Int64("user_id", userID),
		attribute.String("transaction_id", transactionID),
	)

	status, err := h.useCase.GetStatus(ctx, userID, transactionID)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
