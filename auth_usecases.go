package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"

	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase contém a lógica de negócio de identidade e sessão
type AuthUseCase struct {
	repository UserRepository
	tokens     *TokenIssuer
}

// NewAuthUseCase cria uma nova instância de AuthUseCase
func NewAuthUseCase(repository UserRepository, tokens *TokenIssuer) *AuthUseCase {
	return &AuthUseCase{
		repository: repository,
		tokens:     tokens,
	}
}

// Register cadastra um novo usuário e abre uma sessão. A senha é armazenada
// apenas como hash bcrypt e nunca aparece em logs.
func (uc *AuthUseCase) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, invalidArgument("Email inválido")
	}
	if !ValidateCPF(req.CPF) {
		return nil, invalidArgument("CPF inválido")
	}
	if len(req.Password) < 6 {
		return nil, invalidArgument("Senha deve ter pelo menos 6 caracteres")
	}

	exists, err := uc.repository.UserExists(ctx, req.Email, req.CPF)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, conflict("Usuário já existe com este email ou CPF")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := NewUser(req.Name, req.Email, req.CPF, string(hash))
	id, err := uc.repository.CreateUser(ctx, user)
	if err != nil {
		// cadastro concorrente pode passar pela checagem acima e perder a
		// corrida na constraint de unicidade
		if errors.Is(err, ErrConflict) {
			return nil, conflict("Usuário já existe com este email ou CPF")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = id

	token, err := uc.tokens.Issue(id)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ [REGISTER] UserID=%d | Email=%s", id, user.Email)
	return &AuthResponse{
		Message: "Usuário criado com sucesso",
		Token:   token,
		User:    UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, CPF: user.CPF},
	}, nil
}

// Login autentica por email e senha e abre uma sessão. Email desconhecido e
// senha incorreta produzem a mesma resposta.
func (uc *AuthUseCase) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := uc.repository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, unauthenticated("Credenciais inválidas")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, unauthenticated("Credenciais inválidas")
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ [LOGIN] UserID=%d", user.ID)
	return &AuthResponse{
		Message: "Login realizado com sucesso",
		Token:   token,
		User:    UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, CPF: user.CPF},
	}, nil
}

// Verify devolve o usuário correspondente a uma sessão já validada pelo middleware
func (uc *AuthUseCase) Verify(ctx context.Context, userID int64) (*UserResponse, error) {
	user, err := uc.repository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, notFound("Usuário não encontrado")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, CPF: user.CPF}, nil
}
