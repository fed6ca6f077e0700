package domain

import "context"

// BankingPort is the operations surface the assistant and the HTTP
// layer dispatch against
type BankingPort interface {
	// CheckBalance returns the balance of one account by type
	CheckBalance(ctx context.Context, userID int64, accountType string) (Balance, error)

	// Transfer debits the user's savings account and records the
	// transaction atomically. Fails on non-positive amounts and on
	// insufficient balance
	Transfer(ctx context.Context, userID int64, recipient string, amount float64) (TransferResult, error)

	// History returns up to limit transactions, newest first
	History(ctx context.Context, userID int64, limit int) ([]Transaction, error)

	// Loans returns the user's active loans
	Loans(ctx context.Context, userID int64) ([]Loan, error)

	// SetReminder stores a reminder; dueDate is kept verbatim and may be empty
	SetReminder(ctx context.Context, userID int64, message, dueDate string) (Reminder, error)

	// Accounts lists all accounts with the combined balance
	Accounts(ctx context.Context, userID int64) (AccountsSummary, error)

	// Cards lists active cards
	Cards(ctx context.Context, userID int64) ([]Card, error)

	// Investments lists active investments with the combined value
	Investments(ctx context.Context, userID int64) (InvestmentsSummary, error)

	// PaymentsSummary reports recent transactions plus current-month
	// debit spend
	PaymentsSummary(ctx context.Context, userID int64) (PaymentsSummary, error)

	// Summary combines savings balance, loans and recent transactions
	Summary(ctx context.Context, userID int64) (UserSummary, error)
}

// SchemaPort prepares storage at startup
type SchemaPort interface {
	// EnsureSchema creates missing tables
	EnsureSchema(ctx context.Context) error

	// SeedDemo inserts the demo dataset when the users table is empty
	SeedDemo(ctx context.Context) error
}
