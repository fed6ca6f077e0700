// Package domain defines core types and interfaces for banking operations
package domain

import "time"

// Account is one account row for a user
type Account struct {
	ID        int64     `json:"account_id"`
	UserID    int64     `json:"user_id"`
	Type      string    `json:"account_type"` // savings or current
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// Balance is the result of a balance check
type Balance struct {
	AccountType string  `json:"account_type"`
	Amount      float64 `json:"balance"`
}

// Transaction is one ledger entry. Amount is absolute; Type carries the
// direction. Recipient is nil for credits
type Transaction struct {
	ID        string    `json:"txn_id"` // uuid
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"` // debit or credit
	Recipient *string   `json:"recipient"`
	Date      time.Time `json:"date"`
}

// TransferResult reports a completed transfer
type TransferResult struct {
	TransactionID string  `json:"transaction_id"` // uuid
	Amount        float64 `json:"amount"`
	Recipient     string  `json:"recipient"`
	NewBalance    float64 `json:"new_balance"`
}

// Loan is one active loan
type Loan struct {
	ID           int64   `json:"loan_id"`
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
	DueDate      string  `json:"due_date"` // YYYY-MM-DD
	Status       string  `json:"status"`
}

// Reminder is a stored user reminder. DueDate keeps the user's phrasing
// verbatim; no date parsing happens on this path
type Reminder struct {
	ID      int64   `json:"reminder_id"`
	Message string  `json:"message"`
	DueDate *string `json:"due_date"`
}

// Card is one payment card. Number is stored pre-masked
type Card struct {
	ID             int64   `json:"card_id"`
	Type           string  `json:"card_type"` // debit or credit
	Number         string  `json:"card_number"`
	HolderName     string  `json:"card_holder_name"`
	ExpiryDate     string  `json:"expiry_date"`
	LimitAmount    float64 `json:"limit_amount"`
	AvailableLimit float64 `json:"available_limit"`
	Status         string  `json:"status"`
}

// Investment is one active investment
type Investment struct {
	ID           int64    `json:"investment_id"`
	Type         string   `json:"investment_type"`
	Amount       float64  `json:"amount"`
	InterestRate *float64 `json:"interest_rate"`
	MaturityDate *string  `json:"maturity_date"` // YYYY-MM-DD, nil when open ended
	Status       string   `json:"status"`
}

// AccountsSummary lists a user's accounts with their combined balance
type AccountsSummary struct {
	Accounts     []Account `json:"accounts"`
	TotalBalance float64   `json:"total_balance"`
}

// InvestmentsSummary lists active investments with their combined value
type InvestmentsSummary struct {
	Investments     []Investment `json:"investments"`
	TotalInvestment float64      `json:"total_investment"`
}

// PaymentsSummary reports recent outflow activity
type PaymentsSummary struct {
	RecentTransactions []Transaction `json:"recent_transactions"`
	MonthlySpending    float64       `json:"monthly_spending"`
	TransactionCount   int           `json:"transaction_count"`
}

// UserSummary is the combined view served by the summary endpoint
type UserSummary struct {
	UserID             int64         `json:"user_id"`
	Balance            float64       `json:"balance"`
	Loans              []Loan        `json:"loans"`
	RecentTransactions []Transaction `json:"recent_transactions"`
}
