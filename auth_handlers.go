package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AuthHandler contém os handlers HTTP de identidade
type AuthHandler struct {
	useCase *AuthUseCase
	tracer  trace.Tracer
}

// NewAuthHandler cria uma nova instância de AuthHandler
func NewAuthHandler(useCase *AuthUseCase, tracer trace.Tracer) *AuthHandler {
	return &AuthHandler{
		useCase: useCase,
		tracer:  tracer,
	}
}

// Register é o endpoint de cadastro de usuário
func (h *AuthHandler) Register(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "auth.register")
	defer span.End()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Todos os campos são obrigatórios"})
		return
	}

	span.SetAttributes(attribute.String("email", req.Email))

	resp, err := h.useCase.Register(ctx, req)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login é o endpoint de autenticação
func (h *AuthHandler) Login(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "auth.login")
	defer span.End()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email e senha são obrigatórios"})
		return
	}

	span.SetAttributes(attribute.String("email", req.Email))

	resp, err := h.useCase.Login(ctx, req)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Verify confirma que a sessão do chamador é válida
func (h *AuthHandler) Verify(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "auth.verify")
	defer span.End()

	userID := currentUserID(c)
	span.SetAttributes(attribute.Int64("user_id", userID))

	user, err := h.useCase.Verify(ctx, userID)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, VerifyResponse{Valid: true, User: *user})
}
