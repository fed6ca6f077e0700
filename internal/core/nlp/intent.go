// Package nlp implements intent classification and entity extraction over
// utterance text. Classification walks the ordered intentpack table and
// returns the first intent with a matching pattern; extraction applies a
// fixed sequence of regex rules, first match wins per entity
package nlp

import (
	"strings"

	"talktobank/internal/core/intentpack"
	"talktobank/internal/core/langdetect"
)

// Intent is the classified purpose of an utterance
type Intent string

// The closed intent enumeration. Declaration here mirrors the pack table;
// IntentUnknown is the fallback and never appears in intents.json
const (
	IntentGreeting           Intent = "greeting"
	IntentHelp               Intent = "help"
	IntentThankYou           Intent = "thank_you"
	IntentCheckBalance       Intent = "check_balance"
	IntentTransferFunds      Intent = "transfer_funds"
	IntentTransactionHistory Intent = "transaction_history"
	IntentLoanDetails        Intent = "loan_details"
	IntentSetReminder        Intent = "set_reminder"
	IntentCreditCardInfo     Intent = "credit_card_info"
	IntentInvestmentInfo     Intent = "investment_info"
	IntentAccountServices    Intent = "account_services"
	IntentCardServices       Intent = "card_services"
	IntentChequeServices     Intent = "cheque_services"
	IntentInterestRates      Intent = "interest_rates"
	IntentTaxInfo            Intent = "tax_info"
	IntentInsuranceInfo      Intent = "insurance_info"
	IntentDigitalPayment     Intent = "digital_payment"
	IntentBankTransfer       Intent = "bank_transfer"
	IntentBillPayment        Intent = "bill_payment"
	IntentStatementRequest   Intent = "statement_request"
	IntentFinancialAdvice    Intent = "financial_advice"
	IntentBalanceInquiry     Intent = "balance_inquiry"
	IntentBranchInfo         Intent = "branch_info"
	IntentForexInfo          Intent = "forex_info"
	IntentComplaintDispute   Intent = "complaint_dispute"
	IntentUnknown            Intent = "unknown"
)

// Binary confidence values; the classifier is rule based, not probabilistic
const (
	ConfidenceMatched = 0.8
	ConfidenceUnknown = 0.3
)

// Result bundles one pass of classify + extract for an utterance
type Result struct {
	Intent     Intent   `json:"intent"`
	Confidence float64  `json:"confidence"`
	Entities   Entities `json:"entities"`
}

// Classifier matches normalized text against the ordered intent table.
// Stateless after construction and safe for concurrent use
type Classifier struct {
	pack *intentpack.Pack
}

// New constructs a Classifier over a compiled pack
func New(p *intentpack.Pack) *Classifier {
	return &Classifier{pack: p}
}

// Classify returns the first intent whose any pattern matches anywhere in
// the lower-cased text, with the fixed matched/unknown confidence.
// Earlier-declared intents win ties; there is no cross-intent scoring
func (c *Classifier) Classify(text string) (Intent, float64) {
	norm := strings.TrimSpace(strings.ToLower(text))
	for _, rule := range c.pack.Rules {
		for _, re := range rule.Compiled {
			if re.MatchString(norm) {
				return Intent(rule.Intent), ConfidenceMatched
			}
		}
	}
	return IntentUnknown, ConfidenceUnknown
}

// Analyze runs the full pipeline for an already language-detected utterance:
// normalization (including the Hinglish substitution pre-pass), intent
// classification, then intent-gated entity extraction
func (c *Classifier) Analyze(text string, lang langdetect.Lang) Result {
	norm := Normalize(text, lang)
	intent, conf := c.Classify(norm)
	return Result{
		Intent:     intent,
		Confidence: conf,
		Entities:   ExtractEntities(norm, intent),
	}
}
