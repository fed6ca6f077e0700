// Package repo provides repository implementations for security
package repo

import (
	"context"
	"time"

	"talktobank/internal/modkit/repokit"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// StoredOTP is one otps row as the verifier needs it
type StoredOTP struct {
	ID        int64
	Code      string
	ExpiresAt time.Time
}

// Storage defines the security repository
type Storage interface {
	InsertOTP(ctx context.Context, userID int64, code string, expiresAt time.Time) error
	LatestUnusedOTP(ctx context.Context, userID int64) (StoredOTP, error)
	MarkOTPUsed(ctx context.Context, otpID int64) error
	VoiceID(ctx context.Context, userID int64) (*string, error)
	SetVoiceID(ctx context.Context, userID int64, voiceID string) error
}

type pg struct{ q repokit.Queryer }

// InsertOTP implements Storage
func (s *pg) InsertOTP(ctx context.Context, userID int64, code string, expiresAt time.Time) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO otps (user_id, otp, expires_at)
		VALUES ($1, $2, $3)
	`, userID, code, expiresAt)
	return err
}

// LatestUnusedOTP implements Storage
func (s *pg) LatestUnusedOTP(ctx context.Context, userID int64) (StoredOTP, error) {
	var o StoredOTP
	err := s.q.QueryRow(ctx, `
		SELECT otp_id, otp, expires_at
		FROM otps
		WHERE user_id = $1 AND NOT used
		ORDER BY created_at DESC
		LIMIT 1
	`, userID).Scan(&o.ID, &o.Code, &o.ExpiresAt)
	return o, err
}

// MarkOTPUsed implements Storage
func (s *pg) MarkOTPUsed(ctx context.Context, otpID int64) error {
	_, err := s.q.Exec(ctx, `UPDATE otps SET used = TRUE WHERE otp_id = $1`, otpID)
	return err
}

// VoiceID implements Storage
func (s *pg) VoiceID(ctx context.Context, userID int64) (*string, error) {
	var v *string
	err := s.q.QueryRow(ctx, `SELECT voice_id FROM users WHERE user_id = $1`, userID).Scan(&v)
	return v, err
}

// SetVoiceID implements Storage
func (s *pg) SetVoiceID(ctx context.Context, userID int64, voiceID string) error {
	_, err := s.q.Exec(ctx, `UPDATE users SET voice_id = $1 WHERE user_id = $2`, voiceID, userID)
	return err
}
