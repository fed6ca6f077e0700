package nlp

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AccountType is the recognized account kind, empty when absent
type AccountType string

const (
	// AccountSavings is a savings account
	AccountSavings AccountType = "savings"
	// AccountCurrent is a current/checking account
	AccountCurrent AccountType = "current"
)

// Entities carries the values extracted from one utterance. Each field has
// an explicit absent state (nil pointer or zero enum) rather than a
// string-keyed bag, so required-field checks are exhaustive at compile time
type Entities struct {
	Amount          *float64    `json:"amount,omitempty"`
	Recipient       *string     `json:"recipient,omitempty"`
	Limit           *int        `json:"limit,omitempty"`
	AccountType     AccountType `json:"account_type,omitempty"`
	ReminderMessage *string     `json:"message,omitempty"`
	ReminderDate    *string     `json:"due_date,omitempty"`
}

// IsZero reports whether no entity was extracted
func (e Entities) IsZero() bool {
	return e.Amount == nil && e.Recipient == nil && e.Limit == nil &&
		e.AccountType == "" && e.ReminderMessage == nil && e.ReminderDate == nil
}

// Merge returns e overlaid with every present field of later; later wins
func (e Entities) Merge(later Entities) Entities {
	out := e
	if later.Amount != nil {
		out.Amount = later.Amount
	}
	if later.Recipient != nil {
		out.Recipient = later.Recipient
	}
	if later.Limit != nil {
		out.Limit = later.Limit
	}
	if later.AccountType != "" {
		out.AccountType = later.AccountType
	}
	if later.ReminderMessage != nil {
		out.ReminderMessage = later.ReminderMessage
	}
	if later.ReminderDate != nil {
		out.ReminderDate = later.ReminderDate
	}
	return out
}

// Pointer helpers for literals in callers and tests

// Float returns a pointer to v
func Float(v float64) *float64 { return &v }

// Str returns a pointer to v
func Str(v string) *string { return &v }

// Int returns a pointer to v
func Int(v int) *int { return &v }

// Extraction rules, applied in fixed order; first match wins per entity.
// Compiled once at package init
var (
	amountRe = regexp.MustCompile(`₹?\s*(\d+(?:,\d+)*(?:\.\d+)?)`)

	recipientRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bto\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
		regexp.MustCompile(`(?i)\bsend\s+(?:₹?\d+\s+)?to\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
	}

	limitRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:last|recent)\s+(?:my\s+)?(\d+)\s+(?:transaction|payment|statement)`),
		regexp.MustCompile(`(?i)\b(?:last|recent)\s+(\d+)`),
		regexp.MustCompile(`(?i)\b(\d+)\s+(?:transaction|payment|statement)`),
		regexp.MustCompile(`(?i)\bshow\s+(?:me\s+)?(?:my\s+)?(?:last\s+)?(\d+)\s+(?:transaction|payment)`),
	}

	reminderMsgRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)remind\s+me\s+to\s+(.+?)(?:\s+(?:on|by|next|tomorrow)|\s*$)`),
		regexp.MustCompile(`(?i)reminder\s+(?:to\s+)?(.+?)(?:\s+(?:on|by|next|tomorrow)|\s*$)`),
	}

	reminderDateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:on|by)\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
		regexp.MustCompile(`(?i)(?:on|by)\s+(\d{1,2}(?:st|nd|rd|th)?)`),
		regexp.MustCompile(`(?i)(tomorrow|next\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday))`),
	}

	titleCaser = cases.Title(language.English)
)

// ExtractEntities pulls entities out of text. The reminder rules only run
// when intent is set_reminder; everything else is intent independent.
// A rule that fails to match leaves its field absent, never a placeholder
func ExtractEntities(text string, intent Intent) Entities {
	var e Entities

	if m := amountRe.FindStringSubmatch(text); m != nil {
		raw := strings.ReplaceAll(m[1], ",", "")
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			e.Amount = &v
		}
	}

	for _, re := range recipientRes {
		if m := re.FindStringSubmatch(text); m != nil {
			name := titleCaser.String(strings.ToLower(m[1]))
			e.Recipient = &name
			break
		}
	}

	for _, re := range limitRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				e.Limit = &v
				break
			}
		}
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "savings") {
		e.AccountType = AccountSavings
	} else if strings.Contains(lower, "current") || strings.Contains(lower, "checking") {
		e.AccountType = AccountCurrent
	}

	if intent == IntentSetReminder {
		for _, re := range reminderMsgRes {
			if m := re.FindStringSubmatch(text); m != nil {
				msg := strings.TrimSpace(m[1])
				e.ReminderMessage = &msg
				break
			}
		}
		for _, re := range reminderDateRes {
			if m := re.FindStringSubmatch(text); m != nil {
				d := m[1]
				e.ReminderDate = &d
				break
			}
		}
	}

	return e
}
