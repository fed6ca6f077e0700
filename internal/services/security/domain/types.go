// Package domain defines core types and interfaces for security checks
package domain

import (
	"context"
	"time"
)

// OTP is a generated one-time password. The code is returned to the
// caller only because delivery channels (SMS/email) are out of scope
type OTP struct {
	Code      string    `json:"otp"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Verification reports the outcome of an OTP or voice check. A passed
// OTP check carries the session token for subsequent bearer-auth calls
type Verification struct {
	Verified   bool    `json:"verified"`
	Similarity float64 `json:"similarity,omitempty"`
	Message    string  `json:"message"`
	Token      string  `json:"token,omitempty"`
}

// Session is a short-lived bearer credential issued after a passed OTP
// check. Sessions live in memory only; a restart signs everyone out
type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
}

// SecurityPort is the authentication helper surface
type SecurityPort interface {
	// GenerateOTP issues a fresh single-use code with a short expiry
	GenerateOTP(ctx context.Context, userID int64) (OTP, error)

	// VerifyOTP checks the latest unused code for the user; a match
	// consumes the code
	VerifyOTP(ctx context.Context, userID int64, code string) (Verification, error)

	// RegisterVoice stores the digest of a voice sample
	RegisterVoice(ctx context.Context, userID int64, audio []byte) error

	// VerifyVoice compares a sample digest against the stored one.
	// Biometric matching is simulated; the digest comparison only
	// gates the demo flow
	VerifyVoice(ctx context.Context, userID int64, audio []byte) (Verification, error)
}

// TokenPort resolves session tokens for the bearer-auth middleware
type TokenPort interface {
	// ParseToken returns the user a live session token belongs to.
	// Unknown and expired tokens come back unauthorized
	ParseToken(token string) (userID int64, err error)
}
