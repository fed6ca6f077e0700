// Package repo provides repository implementations for banking
package repo

import (
	"context"
	"time"

	"talktobank/internal/modkit/repokit"
	"talktobank/internal/services/banking/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the banking repository
type Storage interface {
	EnsureSchema(ctx context.Context) error
	SeedDemo(ctx context.Context) error

	AccountByType(ctx context.Context, userID int64, accountType string) (id int64, balance float64, err error)
	SetBalance(ctx context.Context, accountID int64, balance float64) error
	InsertTransaction(ctx context.Context, txnID string, accountID int64, amount float64, txnType string, recipient *string) error
	ListTransactions(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error)
	DebitTotalSince(ctx context.Context, userID int64, since time.Time) (float64, error)
	ActiveLoans(ctx context.Context, userID int64) ([]domain.Loan, error)
	InsertReminder(ctx context.Context, userID int64, message string, dueDate *string) (int64, error)
	ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error)
	ActiveCards(ctx context.Context, userID int64) ([]domain.Card, error)
	ActiveInvestments(ctx context.Context, userID int64) ([]domain.Investment, error)
}

type pg struct{ q repokit.Queryer }

var schemaStmts = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id    BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT UNIQUE NOT NULL,
		voice_id   TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS accounts (
		account_id   BIGSERIAL PRIMARY KEY,
		user_id      BIGINT NOT NULL REFERENCES users (user_id),
		account_type TEXT NOT NULL,
		balance      DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		txn_id     UUID PRIMARY KEY,
		account_id BIGINT NOT NULL REFERENCES accounts (account_id),
		amount     DOUBLE PRECISION NOT NULL,
		type       TEXT NOT NULL,
		recipient  TEXT,
		date       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS loans (
		loan_id       BIGSERIAL PRIMARY KEY,
		user_id       BIGINT NOT NULL REFERENCES users (user_id),
		amount        DOUBLE PRECISION NOT NULL,
		interest_rate DOUBLE PRECISION NOT NULL,
		due_date      DATE NOT NULL,
		status        TEXT NOT NULL DEFAULT 'active',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	// due_date stays text on purpose: it holds the user's phrasing
	`CREATE TABLE IF NOT EXISTS reminders (
		reminder_id BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL REFERENCES users (user_id),
		message     TEXT NOT NULL,
		due_date    TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS cards (
		card_id          BIGSERIAL PRIMARY KEY,
		user_id          BIGINT NOT NULL REFERENCES users (user_id),
		card_type        TEXT NOT NULL,
		card_number      TEXT NOT NULL,
		card_holder_name TEXT NOT NULL,
		expiry_date      TEXT NOT NULL,
		cvv              TEXT,
		limit_amount     DOUBLE PRECISION NOT NULL DEFAULT 0,
		available_limit  DOUBLE PRECISION NOT NULL DEFAULT 0,
		status           TEXT NOT NULL DEFAULT 'active',
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS investments (
		investment_id   BIGSERIAL PRIMARY KEY,
		user_id         BIGINT NOT NULL REFERENCES users (user_id),
		investment_type TEXT NOT NULL,
		amount          DOUBLE PRECISION NOT NULL,
		interest_rate   DOUBLE PRECISION,
		maturity_date   DATE,
		status          TEXT NOT NULL DEFAULT 'active',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS otps (
		otp_id     BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users (user_id),
		otp        TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		expires_at TIMESTAMPTZ NOT NULL,
		used       BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}

// EnsureSchema implements Storage
func (s *pg) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStmts {
		if _, err := s.q.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// SeedDemo implements Storage. Inserts the demo dataset only when the
// users table is empty, so restarts are idempotent
func (s *pg) SeedDemo(ctx context.Context) error {
	var n int64
	if err := s.q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	stmts := []string{
		`INSERT INTO users (name, email, voice_id) VALUES
			('Demo User', 'demo@example.com', 'voice_hash_123'),
			('Rohan Kumar', 'rohan@example.com', 'voice_hash_456')`,
		`INSERT INTO accounts (user_id, account_type, balance) VALUES
			(1, 'savings', 25430.50),
			(1, 'current', 15000.00),
			(2, 'savings', 50000.00)`,
		`INSERT INTO transactions (txn_id, account_id, amount, type, recipient, date) VALUES
			(gen_random_uuid(), 1, -2500.00, 'debit', 'Amazon', now() - interval '2 days'),
			(gen_random_uuid(), 1, 15000.00, 'credit', NULL, now() - interval '6 days'),
			(gen_random_uuid(), 1, -500.00, 'debit', 'Rohan Kumar', now() - interval '10 days'),
			(gen_random_uuid(), 1, -1200.00, 'debit', 'Electricity Bill', now() - interval '13 days'),
			(gen_random_uuid(), 1, -350.00, 'debit', 'Netflix', now() - interval '16 days')`,
		`INSERT INTO loans (user_id, amount, interest_rate, due_date) VALUES
			(1, 500000.00, 8.5, (now() + interval '365 days')::date)`,
		`INSERT INTO cards (user_id, card_type, card_number, card_holder_name, expiry_date, cvv, limit_amount, available_limit, status) VALUES
			(1, 'debit', '**** **** **** 1234', 'Demo User', '12/26', '123', 0, 0, 'active'),
			(1, 'credit', '**** **** **** 5678', 'Demo User', '09/27', '456', 100000.00, 75000.00, 'active')`,
		`INSERT INTO investments (user_id, investment_type, amount, interest_rate, maturity_date, status) VALUES
			(1, 'Fixed Deposit', 500000.00, 7.5, (now() + interval '1095 days')::date, 'active'),
			(1, 'Recurring Deposit', 10000.00, 6.8, (now() + interval '730 days')::date, 'active'),
			(1, 'Mutual Fund', 250000.00, 12.0, NULL, 'active')`,
	}
	for _, stmt := range stmts {
		if _, err := s.q.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// AccountByType implements Storage
func (s *pg) AccountByType(ctx context.Context, userID int64, accountType string) (int64, float64, error) {
	var id int64
	var balance float64
	err := s.q.QueryRow(ctx, `
		SELECT account_id, balance FROM accounts
		WHERE user_id = $1 AND account_type = $2
	`, userID, accountType).Scan(&id, &balance)
	return id, balance, err
}

// SetBalance implements Storage
func (s *pg) SetBalance(ctx context.Context, accountID int64, balance float64) error {
	_, err := s.q.Exec(ctx, `UPDATE accounts SET balance = $1 WHERE account_id = $2`, balance, accountID)
	return err
}

// InsertTransaction implements Storage
func (s *pg) InsertTransaction(ctx context.Context, txnID string, accountID int64, amount float64, txnType string, recipient *string) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO transactions (txn_id, account_id, amount, type, recipient)
		VALUES ($1, $2, $3, $4, $5)
	`, txnID, accountID, amount, txnType, recipient)
	return err
}

// ListTransactions implements Storage. Amounts come back absolute; the
// type column keeps the direction
func (s *pg) ListTransactions(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error) {
	rows, err := s.q.Query(ctx, `
		SELECT t.txn_id::text, ABS(t.amount), t.type, t.recipient, t.date
		FROM transactions t
		JOIN accounts a ON t.account_id = a.account_id
		WHERE a.user_id = $1
		ORDER BY t.date DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Transaction, 0, limit)
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.Amount, &t.Type, &t.Recipient, &t.Date); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// DebitTotalSince implements Storage
func (s *pg) DebitTotalSince(ctx context.Context, userID int64, since time.Time) (float64, error) {
	var total float64
	err := s.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(ABS(t.amount)), 0)
		FROM transactions t
		JOIN accounts a ON t.account_id = a.account_id
		WHERE a.user_id = $1 AND t.type = 'debit' AND t.date >= $2
	`, userID, since).Scan(&total)
	return total, err
}

// ActiveLoans implements Storage
func (s *pg) ActiveLoans(ctx context.Context, userID int64) ([]domain.Loan, error) {
	rows, err := s.q.Query(ctx, `
		SELECT loan_id, amount, interest_rate, due_date::text, status
		FROM loans
		WHERE user_id = $1 AND status = 'active'
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Loan
	for rows.Next() {
		var l domain.Loan
		if err := rows.Scan(&l.ID, &l.Amount, &l.InterestRate, &l.DueDate, &l.Status); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// InsertReminder implements Storage
func (s *pg) InsertReminder(ctx context.Context, userID int64, message string, dueDate *string) (int64, error) {
	var id int64
	err := s.q.QueryRow(ctx, `
		INSERT INTO reminders (user_id, message, due_date)
		VALUES ($1, $2, $3)
		RETURNING reminder_id
	`, userID, message, dueDate).Scan(&id)
	return id, err
}

// ListAccounts implements Storage
func (s *pg) ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	rows, err := s.q.Query(ctx, `
		SELECT account_id, user_id, account_type, balance, created_at
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Balance, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ActiveCards implements Storage. CVV never leaves the database
func (s *pg) ActiveCards(ctx context.Context, userID int64) ([]domain.Card, error) {
	rows, err := s.q.Query(ctx, `
		SELECT card_id, card_type, card_number, card_holder_name, expiry_date,
			limit_amount, available_limit, status
		FROM cards
		WHERE user_id = $1 AND status = 'active'
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Card
	for rows.Next() {
		var c domain.Card
		if err := rows.Scan(&c.ID, &c.Type, &c.Number, &c.HolderName, &c.ExpiryDate,
			&c.LimitAmount, &c.AvailableLimit, &c.Status); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ActiveInvestments implements Storage
func (s *pg) ActiveInvestments(ctx context.Context, userID int64) ([]domain.Investment, error) {
	rows, err := s.q.Query(ctx, `
		SELECT investment_id, investment_type, amount, interest_rate, maturity_date::text, status
		FROM investments
		WHERE user_id = $1 AND status = 'active'
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Investment
	for rows.Next() {
		var v domain.Investment
		if err := rows.Scan(&v.ID, &v.Type, &v.Amount, &v.InterestRate, &v.MaturityDate, &v.Status); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
