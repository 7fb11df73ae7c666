// Package postgres is a pgx-backed history store.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fundmate/fundmate/payment/errs"
	"github.com/fundmate/fundmate/payment/history"
	"github.com/fundmate/fundmate/payment/model"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to history database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Init(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS transactions (
	id UUID PRIMARY KEY,
	recipient TEXT NOT NULL,
	source_amount NUMERIC NOT NULL,
	source_token TEXT NOT NULL,
	destination_amount NUMERIC NOT NULL,
	destination_token TEXT NOT NULL,
	note TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	failure_reason TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	completed_at TIMESTAMPTZ NOT NULL
	);`

	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("create transactions table: %w", err)
	}
	return nil
}

func (s *Store) Save(ctx context.Context, tx model.Transaction) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO transactions
		(id, recipient, source_amount, source_token, destination_amount, destination_token, note, status, failure_reason, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		tx.ID, tx.Recipient,
		tx.SourceAmount.String(), tx.SourceToken,
		tx.DestinationAmount.String(), tx.DestinationToken,
		tx.Note, string(tx.Status), tx.FailureReason,
		tx.CreatedAt, tx.CompletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return &errs.Error{Code: errs.AlreadyExists, Message: "transaction already recorded"}
		}
		return fmt.Errorf("save transaction: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, recipient, source_amount, source_token, destination_amount, destination_token, note, status, failure_reason, created_at, completed_at
		FROM transactions WHERE id = $1`, id)

	tx, err := scanTransaction(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
	rows, err := s.db.Query(ctx, `
		SELECT id, recipient, source_amount, source_token, destination_amount, destination_token, note, status, failure_reason, created_at, completed_at
		FROM transactions ORDER BY completed_at DESC LIMIT $1`, limit)
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

func (s *Store) Close() {
	s.db.Close()
}

// scanTransaction reads one row. Amounts scan through decimal's sql.Scanner.
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
