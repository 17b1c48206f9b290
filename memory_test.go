package main

import (
	"context"
	"sort"
	"sync"
)

// Fakes em memória com a mesma semântica dos repositórios Postgres, usados nos
// testes de cenário e de concorrência.

type memUserStore struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]*User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[int64]*User)}
}

func (s *memUserStore) CreateUser(_ context.Context, user *User) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	stored := *user
	stored.ID = s.seq
	s.users[stored.ID] = &stored
	return stored.ID, nil
}

func (s *memUserStore) GetUserByEmail(_ context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memUserStore) GetUserByID(_ context.Context, id int64) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *memUserStore) UserExists(_ context.Context, email, cpf string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email || user.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}

type memProductStore struct {
	mu       sync.Mutex
	seq      int64
	products map[int64]*Product
}

func newMemProductStore() *memProductStore {
	return &memProductStore{products: make(map[int64]*Product)}
}

func (s *memProductStore) CreateProduct(_ context.Context, product *Product) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	stored := *product
	stored.ID = s.seq
	s.products[stored.ID] = &stored
	return stored.ID, nil
}

func (s *memProductStore) GetProduct(_ context.Context, id int64) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *product
	return &copied, nil
}

func (s *memProductStore) ListProducts(_ context.Context) ([]Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := make([]Product, 0, len(s.products))
	for _, product := range s.products {
		products = append(products, *product)
	}
	sort.Slice(products, func(i, j int) bool {
		if !products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		}
		return products[i].ID > products[j].ID
	})
	return products, nil
}

func (s *memProductStore) UpdateProduct(_ context.Context, product *Product) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.products[product.ID]
	if !ok {
		return 0, nil
	}
	updated := *product
	updated.CreatedAt = existing.CreatedAt
	s.products[product.ID] = &updated
	return 1, nil
}

func (s *memProductStore) DeleteProduct(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return 0, nil
	}
	delete(s.products, id)
	return 1, nil
}

func (s *memProductStore) CountProducts(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.products)), nil
}

type memPaymentLedger struct {
	mu       sync.Mutex
	seq      int64
	payments []*Payment
	products *memProductStore
}

func newMemPaymentLedger(products *memProductStore) *memPaymentLedger {
	return &memPaymentLedger{products: products}
}

func (s *memPaymentLedger) CreatePayment(_ context.Context, payment *Payment) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	stored := *payment
	stored.ID = s.seq
	s.payments = append(s.payments, &stored)
	return stored.ID, nil
}

func (s *memPaymentLedger) GetPaymentByTransactionID(_ context.Context, transactionID string, userID int64) (*Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, payment := range s.payments {
		if payment.TransactionID == transactionID && payment.UserID == userID {
			copied := *payment
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// ConfirmPayment reproduz a atualização condicional atômica: a checagem de
// status e a escrita acontecem sob o mesmo lock
func (s *memPaymentLedger) ConfirmPayment(_ context.Context, transactionID string, userID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, payment := range s.payments {
		if payment.TransactionID == transactionID && payment.UserID == userID && payment.Status == PaymentStatusPending {
			payment.Status = PaymentStatusConfirmed
			return 1, nil
		}
	}
	return 0, nil
}

func (s *memPaymentLedger) ListPaymentsByUser(ctx context.Context, userID int64) ([]PaymentHistoryEntry, error) {
	s.mu.Lock()
	owned := []Payment{}
	for _, payment := range s.payments {
		if payment.UserID == userID {
			owned = append(owned, *payment)
		}
	}
	s.mu.Unlock()

	entries := []PaymentHistoryEntry{}
	for _, payment := range owned {
		product, err := s.products.GetProduct(ctx, payment.ProductID)
		if err != nil {
			continue
		}
		entries = append(entries, PaymentHistoryEntry{
			ID:            payment.ID,
			TransactionID: payment.TransactionID,
			Amount:        payment.Amount,
			Status:        payment.Status,
			PaymentMethod: payment.PaymentMethod,
			CreatedAt:     payment.CreatedAt,
			Product:       ProductSummary{ID: product.ID, Name: product.Name, Price: product.Price},
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].ID > entries[j].ID
	})
	return entries, nil
}
