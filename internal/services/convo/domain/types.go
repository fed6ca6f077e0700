// Package domain defines core types and interfaces for conversation context
package domain

import (
	"time"

	"talktobank/internal/core/langdetect"
	"talktobank/internal/core/nlp"
)

// Role identifies the author of a conversation message
type Role string

const (
	// RoleUser marks a message sent by the user
	RoleUser Role = "user"
	// RoleAssistant marks a message produced by the assistant
	RoleAssistant Role = "assistant"
)

// Message is one turn in a user's conversation history
type Message struct {
	Role      Role         `json:"role"`
	Text      string       `json:"text"`
	Intent    nlp.Intent   `json:"intent,omitempty"`
	Entities  nlp.Entities `json:"entities"`
	Timestamp time.Time    `json:"timestamp"`
}

// Snapshot is a point-in-time copy of one user's session, safe to hand
// out after the session lock is released
type Snapshot struct {
	UserID        int64          `json:"user_id"`
	Messages      []Message      `json:"messages"`
	CurrentIntent nlp.Intent     `json:"current_intent,omitempty"`
	Pending       nlp.Entities   `json:"pending_entities"`
	Language      langdetect.Lang `json:"language"`
}

// Config bounds a session store
type Config struct {
	// MaxHistory caps messages kept per session; oldest dropped first
	MaxHistory int
	// IdleTTL is how long a session may sit without a new message
	// before Sweep removes it
	IdleTTL time.Duration
}

// NeedsClarification reports whether intent still lacks a required entity
// and, if so, the question to ask. Amount is checked before recipient so
// multi-gap transfers resolve one field per turn in a fixed order
func NeedsClarification(intent nlp.Intent, entities nlp.Entities) (bool, string) {
	switch intent {
	case nlp.IntentTransferFunds:
		if entities.Amount == nil {
			return true, "How much would you like to transfer?"
		}
		if entities.Recipient == nil {
			return true, "Who would you like to transfer money to?"
		}
	case nlp.IntentSetReminder:
		if entities.ReminderMessage == nil {
			return true, "What would you like to be reminded about?"
		}
	}
	return false, ""
}
