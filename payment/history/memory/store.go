// Package memory is the in-memory history store used by default.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fundmate/fundmate/payment/errs"
	"github.com/fundmate/fundmate/payment/history"
	"github.com/fundmate/fundmate/payment/model"
)

type Store struct {
	mu      sync.Mutex
	order   []uuid.UUID
	records map[uuid.UUID]model.Transaction
}

func NewStore() *Store {
	return &Store{
		records: make(map[uuid.UUID]model.Transaction),
	}
}

func (s *Store) Save(ctx context.Context, tx model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[tx.ID]; exists {
		return &errs.Error{Code: errs.AlreadyExists, Message: "transaction already recorded"}
	}
	s.records[tx.ID] = tx
	s.order = append(s.order, tx.ID)
	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.records[id]
	if !ok {
		return nil, &errs.Error{Code: errs.NotFound, Message: "transaction not found"}
	}
	return &tx, nil
}

func (s *Store) List(ctx context.Context, limit int) ([]model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.order) {
		limit = len(s.order)
	}
	result := make([]model.Transaction, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, s.records[s.order[i]])
	}
	return result, nil
}

var _ history.Store = (*Store)(nil)
