// Package sqlite is a file-backed history store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/fundmate/fundmate/payment/errs"
	"github.com/fundmate/fundmate/payment/history"
	"github.com/fundmate/fundmate/payment/model"
)

type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connect to history database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Init(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS transactions (
	id TEXT PRIMARY KEY,
	recipient TEXT NOT NULL,
	source_amount TEXT NOT NULL,
	source_token TEXT NOT NULL,
	destination_amount TEXT NOT NULL,
	destination_token TEXT NOT NULL,
	note TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	failure_reason TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	completed_at DATETIME NOT NULL
	);`

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create transactions table: %w", err)
	}
	return nil
}

func (s *Store) Save(ctx context.Context, tx model.Transaction) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions
		(id, recipient, source_amount, source_token, destination_amount, destination_token, note, status, failure_reason, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID.String(), tx.Recipient,
		tx.SourceAmount.String(), tx.SourceToken,
		tx.DestinationAmount.String(), tx.DestinationToken,
		tx.Note, string(tx.Status), tx.FailureReason,
		tx.CreatedAt.UTC(), tx.CompletedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("save transaction: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, recipient, source_amount, source_token, destination_amount, destination_token, note, status, failure_reason, created_at, completed_at
		FROM transactions WHERE id = ?`, id.String())

	tx, err := scanTransaction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "transaction not found"}
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return tx, nil
}

func (s *Store) List(ctx context.Context, limit int) ([]model.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, recipient, source_amount, source_token, destination_amount, destination_token, note, status, failure_reason, created_at, completed_at
		FROM transactions ORDER BY completed_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var result []model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		result = append(result, *tx)
	}
	return result, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}

// scanTransaction reads one row. IDs and amounts scan through their
// sql.Scanner implementations.
func scanTransaction(scan func(dest ...any) error) (*model.Transaction, error) {
	var (
		tx     model.Transaction
		status string
	)
	err := scan(&tx.ID, &tx.Recipient, &tx.SourceAmount, &tx.SourceToken, &tx.DestinationAmount, &tx.DestinationToken,
		&tx.Note, &status, &tx.FailureReason, &tx.CreatedAt, &tx.CompletedAt)
	if err != nil {
		return nil, err
	}
	tx.Status = model.TransactionStatus(status)
	return &tx, nil
}

var _ history.Store = (*Store)(nil)
