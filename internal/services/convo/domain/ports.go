package domain

import (
	"time"

	"talktobank/internal/core/langdetect"
	"talktobank/internal/core/nlp"
)

// StorePort is the conversation context store. Implementations must
// serialize access per user while letting distinct users proceed
// concurrently. Operations are non-blocking, so no context is taken
type StorePort interface {
	// AddMessage appends a turn, trims history to the configured cap,
	// tracks the latest intent and merges extracted entities into the
	// pending set (later values win)
	AddMessage(userID int64, role Role, text string, intent nlp.Intent, entities nlp.Entities)

	// PendingEntities returns a copy of the user's pending entity set
	PendingEntities(userID int64) nlp.Entities

	// ClearPending drops the pending set, called after a completed transfer
	ClearPending(userID int64)

	// EnhanceFromContext fills missing transfer entities from the last
	// three messages, newest first. Other intents pass through unchanged
	EnhanceFromContext(userID int64, intent nlp.Intent, entities nlp.Entities) nlp.Entities

	// SetLanguage records the most recently detected language
	SetLanguage(userID int64, lang langdetect.Lang)

	// Snapshot copies the session for inspection; ok is false when the
	// user has no session
	Snapshot(userID int64) (snap Snapshot, ok bool)

	// Clear removes the user's session entirely
	Clear(userID int64)

	// Sweep removes sessions idle past the TTL relative to now and
	// returns how many were dropped
	Sweep(now time.Time) int
}
