// Package service provides the banking service implementation
package service

import (
	"context"
	stdsql "database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"talktobank/internal/modkit/repokit"
	perrs "talktobank/internal/platform/errors"
	"talktobank/internal/services/banking/domain"
	"talktobank/internal/services/banking/repo"
)

// Config for the banking service
type Config struct {
	// DefaultHistoryLimit applies when a caller passes limit <= 0; defaults to 5
	DefaultHistoryLimit int
	// MaxHistoryLimit hard-caps requested history sizes; defaults to 50
	MaxHistoryLimit int
}

// Service implements domain.BankingPort and domain.SchemaPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Cfg    Config

	now func() time.Time
}

// New constructs a new banking service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.DefaultHistoryLimit <= 0 {
		cfg.DefaultHistoryLimit = 5
	}
	if cfg.MaxHistoryLimit <= 0 {
		cfg.MaxHistoryLimit = 50
	}
	return &Service{DB: db, Binder: b, Cfg: cfg, now: time.Now}
}

// EnsureSchema implements domain.SchemaPort
func (s *Service) EnsureSchema(ctx context.Context) error {
	return s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).EnsureSchema(ctx)
	})
}

// SeedDemo implements domain.SchemaPort
func (s *Service) SeedDemo(ctx context.Context) error {
	return s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).SeedDemo(ctx)
	})
}

// CheckBalance implements domain.BankingPort
func (s *Service) CheckBalance(ctx context.Context, userID int64, accountType string) (domain.Balance, error) {
	if accountType == "" {
		accountType = "savings"
	}
	var out domain.Balance
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		_, balance, err := s.Binder.Bind(q).AccountByType(ctx, userID, accountType)
		if err != nil {
			return err
		}
		out = domain.Balance{AccountType: accountType, Amount: balance}
		return nil
	})
	if errors.Is(err, stdsql.ErrNoRows) {
		return domain.Balance{}, perrs.NotFoundf("no %s account found", accountType)
	}
	return out, err
}

// Transfer implements domain.BankingPort. The balance check, debit and
// ledger insert run in one transaction
func (s *Service) Transfer(ctx context.Context, userID int64, recipient string, amount float64) (domain.TransferResult, error) {
	if amount <= 0 {
		return domain.TransferResult{}, perrs.InvalidArgf("invalid amount")
	}
	if recipient == "" {
		return domain.TransferResult{}, perrs.InvalidArgf("missing recipient")
	}

	var out domain.TransferResult
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		st := s.Binder.Bind(q)

		accountID, balance, err := st.AccountByType(ctx, userID, "savings")
		if err != nil {
			if errors.Is(err, stdsql.ErrNoRows) {
				return perrs.NotFoundf("account not found")
			}
			return err
		}
		if balance < amount {
			return perrs.Conflictf("insufficient balance")
		}

		newBalance := balance - amount
		if err := st.SetBalance(ctx, accountID, newBalance); err != nil {
			return err
		}

		txnID := uuid.NewString()
		if err := st.InsertTransaction(ctx, txnID, accountID, -amount, "debit", &recipient); err != nil {
			return err
		}

		out = domain.TransferResult{
			TransactionID: txnID,
			Amount:        amount,
			Recipient:     recipient,
			NewBalance:    newBalance,
		}
		return nil
	})
	return out, err
}

// History implements domain.BankingPort
func (s *Service) History(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = s.Cfg.DefaultHistoryLimit
	}
	if limit > s.Cfg.MaxHistoryLimit {
		limit = s.Cfg.MaxHistoryLimit
	}
	var out []domain.Transaction
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).ListTransactions(ctx, userID, limit)
		return err
	})
	return out, err
}

// Loans implements domain.BankingPort
func (s *Service) Loans(ctx context.Context, userID int64) ([]domain.Loan, error) {
	var out []domain.Loan
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).ActiveLoans(ctx, userID)
		return err
	})
	return out, err
}

// SetReminder implements domain.BankingPort
func (s *Service) SetReminder(ctx context.Context, userID int64, message, dueDate string) (domain.Reminder, error) {
	if message == "" {
		return domain.Reminder{}, perrs.InvalidArgf("missing reminder message")
	}
	var due *string
	if dueDate != "" {
		due = &dueDate
	}
	var out domain.Reminder
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		id, err := s.Binder.Bind(q).InsertReminder(ctx, userID, message, due)
		if err != nil {
			return err
		}
		out = domain.Reminder{ID: id, Message: message, DueDate: due}
		return nil
	})
	return out, err
}

// Accounts implements domain.BankingPort
func (s *Service) Accounts(ctx context.Context, userID int64) (domain.AccountsSummary, error) {
	var out domain.AccountsSummary
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		accounts, err := s.Binder.Bind(q).ListAccounts(ctx, userID)
		if err != nil {
			return err
		}
		out.Accounts = accounts
		for _, a := range accounts {
			out.TotalBalance += a.Balance
		}
		return nil
	})
	return out, err
}

// Cards implements domain.BankingPort
func (s *Service) Cards(ctx context.Context, userID int64) ([]domain.Card, error) {
	var out []domain.Card
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).ActiveCards(ctx, userID)
		return err
	})
	return out, err
}

// Investments implements domain.BankingPort
func (s *Service) Investments(ctx context.Context, userID int64) (domain.InvestmentsSummary, error) {
	var out domain.InvestmentsSummary
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		investments, err := s.Binder.Bind(q).ActiveInvestments(ctx, userID)
		if err != nil {
			return err
		}
		out.Investments = investments
		for _, v := range investments {
			out.TotalInvestment += v.Amount
		}
		return nil
	})
	return out, err
}

// PaymentsSummary implements domain.BankingPort
func (s *Service) PaymentsSummary(ctx context.Context, userID int64) (domain.PaymentsSummary, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var out domain.PaymentsSummary
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		st := s.Binder.Bind(q)

		recent, err := st.ListTransactions(ctx, userID, 10)
		if err != nil {
			return err
		}
		spent, err := st.DebitTotalSince(ctx, userID, monthStart)
		if err != nil {
			return err
		}
		out = domain.PaymentsSummary{
			RecentTransactions: recent,
			MonthlySpending:    spent,
			TransactionCount:   len(recent),
		}
		return nil
	})
	return out, err
}

// Summary implements domain.BankingPort. A missing savings account zeroes
// the balance rather than failing the whole summary
func (s *Service) Summary(ctx context.Context, userID int64) (domain.UserSummary, error) {
	out := domain.UserSummary{UserID: userID}
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		st := s.Binder.Bind(q)

		_, balance, err := st.AccountByType(ctx, userID, "savings")
		if err != nil && !errors.Is(err, stdsql.ErrNoRows) {
			return err
		}
		out.Balance = balance

		if out.Loans, err = st.ActiveLoans(ctx, userID); err != nil {
			return err
		}
		out.RecentTransactions, err = st.ListTransactions(ctx, userID, 5)
		return err
	})
	return out, err
}
