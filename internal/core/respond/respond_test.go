package respond

import (
	"strings"
	"testing"

	"talktobank/internal/core/langdetect"
)

func TestCurrency_GroupingAndDecimals(t *testing.T) {
	f := NewFormatter()
	if got := f.Currency(langdetect.LangEnglish, 25430.50); got != "₹25,430.50" {
		t.Fatalf("currency = %q, want ₹25,430.50", got)
	}
	if got := f.Currency(langdetect.LangEnglish, 500); got != "₹500.00" {
		t.Fatalf("currency = %q, want ₹500.00", got)
	}
}

func TestBalance_PerLanguage(t *testing.T) {
	f := NewFormatter()
	if got := f.Balance(langdetect.LangEnglish, "savings", 25430.50); got != "Your savings account balance is ₹25,430.50." {
		t.Fatalf("en balance = %q", got)
	}
	hi := f.Balance(langdetect.LangHindi, "savings", 25430.50)
	if !strings.Contains(hi, "शिल्लक") || !strings.Contains(hi, "25,430.50") {
		t.Fatalf("hi balance = %q", hi)
	}
	mr := f.Balance(langdetect.LangMarathi, "savings", 25430.50)
	if !strings.Contains(mr, "खाते") {
		t.Fatalf("mr balance = %q", mr)
	}
}

func TestTransferSuccess(t *testing.T) {
	f := NewFormatter()
	got := f.TransferSuccess(langdetect.LangEnglish, 500, "Rohan Kumar")
	if got != "Successfully transferred ₹500.00 to Rohan Kumar." {
		t.Fatalf("transfer = %q", got)
	}
}

func TestLookup_FallbackChain(t *testing.T) {
	f := NewFormatter()
	// hinglish has no table of its own; resolves through English
	if got := f.Error(langdetect.LangHinglish); got != "Sorry, I encountered an error. Please try again." {
		t.Fatalf("hinglish error = %q", got)
	}
	// reminder_set exists only in the English table
	if got := f.ReminderSet(langdetect.LangHindi, "pay emi", ""); got != "Reminder set: pay emi" {
		t.Fatalf("hi reminder fallback = %q", got)
	}
	// a key in no table resolves to the hardcoded reply, never ""
	if got := f.Lookup(langdetect.LangHindi, Key("no_such_key")); got != fallbackReply {
		t.Fatalf("missing key fallback = %q", got)
	}
}

func TestReminderSet_DueDateAppended(t *testing.T) {
	f := NewFormatter()
	got := f.ReminderSet(langdetect.LangEnglish, "pay emi", "next monday")
	if got != "Reminder set: pay emi on next monday" {
		t.Fatalf("reminder = %q", got)
	}
}

func TestLoanSummary(t *testing.T) {
	f := NewFormatter()
	got := f.LoanSummary(langdetect.LangEnglish, 50000, 8.5, "2026-05-15")
	if got != "Your loan amount is ₹50,000.00 with an interest rate of 8.5% per annum. Due date: 2026-05-15." {
		t.Fatalf("loan = %q", got)
	}
	if got := f.NoLoans(langdetect.LangEnglish); got != "You have no active loans." {
		t.Fatalf("no loans = %q", got)
	}
}

func TestTransactions(t *testing.T) {
	f := NewFormatter()
	if got := f.Transactions(langdetect.LangEnglish, 3); got != "Here are your last 3 transactions." {
		t.Fatalf("transactions = %q", got)
	}
	if got := f.NoTransactions(langdetect.LangMarathi); !strings.Contains(got, "व्यवहार") {
		t.Fatalf("mr no transactions = %q", got)
	}
}
