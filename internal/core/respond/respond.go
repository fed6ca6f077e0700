// Package respond renders user-facing reply text from per-language template
// tables. Lookup falls back language -> English -> hardcoded string, so a
// missing translation degrades rather than failing
package respond

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"talktobank/internal/core/langdetect"
)

// Key names one reply template
type Key string

const (
	KeyBalance         Key = "balance"
	KeyTransferSuccess Key = "transfer_success"
	KeyTransactions    Key = "transactions"
	KeyNoTransactions  Key = "no_transactions"
	KeyClarification   Key = "clarification"
	KeyError           Key = "error"
	KeyReminderSet     Key = "reminder_set"
	KeyLoanSummary     Key = "loan_summary"
	KeyNoLoans         Key = "no_loans"
)

// templates holds the reply text per language. Verb order is identical
// across languages for every key, so plain %s substitution is safe.
// Keys absent from a language resolve through the English table
var templates = map[langdetect.Lang]map[Key]string{
	langdetect.LangEnglish: {
		KeyBalance:         "Your %s account balance is %s.",
		KeyTransferSuccess: "Successfully transferred %s to %s.",
		KeyTransactions:    "Here are your last %d transactions.",
		KeyNoTransactions:  "You have no recent transactions.",
		KeyClarification:   "I didn't understand. Could you please clarify?",
		KeyError:           "Sorry, I encountered an error. Please try again.",
		KeyReminderSet:     "Reminder set: %s",
		KeyLoanSummary:     "Your loan amount is %s with an interest rate of %s%% per annum. Due date: %s.",
		KeyNoLoans:         "You have no active loans.",
	},
	langdetect.LangHindi: {
		KeyBalance:         "आपका %s खाता शिल्लक %s है।",
		KeyTransferSuccess: "%s %s को सफलतापूर्वक ट्रांसफर किया गया।",
		KeyTransactions:    "यहां आपके अंतिम %d लेनदेन हैं।",
		KeyNoTransactions:  "आपके पास कोई हालिया लेनदेन नहीं है।",
		KeyClarification:   "मैं समझ नहीं पाया। कृपया स्पष्ट करें?",
		KeyError:           "क्षमा करें, एक त्रुटि हुई। कृपया पुनः प्रयास करें।",
	},
	langdetect.LangMarathi: {
		KeyBalance:         "तुमचे %s खाते शिल्लक %s आहे.",
		KeyTransferSuccess: "%s %s ला यशस्वीरित्या हस्तांतरित केले.",
		KeyTransactions:    "येथे तुमचे शेवटचे %d व्यवहार आहेत.",
		KeyNoTransactions:  "तुमच्याकडे कोणतेही अलीकडील व्यवहार नाहीत.",
		KeyClarification:   "मला समजले नाही. कृपया स्पष्ट करा?",
		KeyError:           "क्षमा करा, एक त्रुटी आली. कृपया पुन्हा प्रयत्न करा.",
	},
}

// printerTags maps reply languages to number-formatting locales. Hinglish
// replies use the English tables and English digit grouping
var printerTags = map[langdetect.Lang]language.Tag{
	langdetect.LangEnglish:  language.English,
	langdetect.LangHindi:    language.Hindi,
	langdetect.LangMarathi:  language.Marathi,
	langdetect.LangHinglish: language.English,
}

// Formatter renders localized reply text. Safe for concurrent use
type Formatter struct {
	printers map[langdetect.Lang]*message.Printer
}

// NewFormatter builds a Formatter with one number printer per language
func NewFormatter() *Formatter {
	ps := make(map[langdetect.Lang]*message.Printer, len(printerTags))
	for lang, tag := range printerTags {
		ps[lang] = message.NewPrinter(tag)
	}
	return &Formatter{printers: ps}
}

func (f *Formatter) printer(lang langdetect.Lang) *message.Printer {
	if p, ok := f.printers[lang]; ok {
		return p
	}
	return f.printers[langdetect.LangEnglish]
}

// fallbackReply is the reply of last resort for a key missing from
// every table
const fallbackReply = "Sorry, I encountered an error. Please try again."

// Lookup returns the template for key in lang, falling back to English
// and then to a hardcoded reply
func (f *Formatter) Lookup(lang langdetect.Lang, key Key) string {
	if t, ok := templates[lang]; ok {
		if s, ok := t[key]; ok {
			return s
		}
	}
	if s, ok := templates[langdetect.LangEnglish][key]; ok {
		return s
	}
	return fallbackReply
}

// Currency renders v as rupees with locale grouping and two decimals,
// e.g. ₹25,430.50
func (f *Formatter) Currency(lang langdetect.Lang, v float64) string {
	return f.printer(lang).Sprintf("₹%v",
		number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Balance renders the account balance reply
func (f *Formatter) Balance(lang langdetect.Lang, accountType string, balance float64) string {
	return fmt.Sprintf(f.Lookup(lang, KeyBalance), accountType, f.Currency(lang, balance))
}

// TransferSuccess renders the completed-transfer reply
func (f *Formatter) TransferSuccess(lang langdetect.Lang, amount float64, recipient string) string {
	return fmt.Sprintf(f.Lookup(lang, KeyTransferSuccess), f.Currency(lang, amount), recipient)
}

// Transactions renders the history header for count items
func (f *Formatter) Transactions(lang langdetect.Lang, count int) string {
	return fmt.Sprintf(f.Lookup(lang, KeyTransactions), count)
}

// NoTransactions renders the empty-history reply
func (f *Formatter) NoTransactions(lang langdetect.Lang) string {
	return f.Lookup(lang, KeyNoTransactions)
}

// Clarification renders the generic clarification prompt
func (f *Formatter) Clarification(lang langdetect.Lang) string {
	return f.Lookup(lang, KeyClarification)
}

// Error renders the generic failure reply. Internal error text never
// reaches the user through this path
func (f *Formatter) Error(lang langdetect.Lang) string {
	return f.Lookup(lang, KeyError)
}

// ReminderSet renders the reminder confirmation, appending the due date
// verbatim when present
func (f *Formatter) ReminderSet(lang langdetect.Lang, msg, dueDate string) string {
	out := fmt.Sprintf(f.Lookup(lang, KeyReminderSet), msg)
	if dueDate != "" {
		out += " on " + dueDate
	}
	return out
}

// LoanSummary renders the first-loan summary reply
func (f *Formatter) LoanSummary(lang langdetect.Lang, amount, rate float64, dueDate string) string {
	return fmt.Sprintf(f.Lookup(lang, KeyLoanSummary),
		f.Currency(lang, amount), strconv.FormatFloat(rate, 'g', -1, 64), dueDate)
}

// NoLoans renders the no-active-loans reply
func (f *Formatter) NoLoans(lang langdetect.Lang) string {
	return f.Lookup(lang, KeyNoLoans)
}
