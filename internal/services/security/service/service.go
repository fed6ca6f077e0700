// Package service provides the security service implementation
package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	stdsql "database/sql"
	"encoding/hex"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"talktobank/internal/modkit/repokit"
	perrs "talktobank/internal/platform/errors"
	"talktobank/internal/services/security/domain"
	"talktobank/internal/services/security/repo"
)

// Config for the security service
type Config struct {
	// OTPLength is the number of digits per code; defaults to 6
	OTPLength int
	// OTPTTL is how long a code stays valid; defaults to 5 minutes
	OTPTTL time.Duration
	// VoiceThreshold is the minimum similarity to pass; defaults to 0.9
	VoiceThreshold float64
	// SessionTTL is how long a bearer session stays valid after a
	// passed OTP check; defaults to 30 minutes
	SessionTTL time.Duration
}

// Service implements domain.SecurityPort and domain.TokenPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Cfg    Config

	mu       sync.Mutex
	sessions map[string]domain.Session

	now  func() time.Time
	rand io.Reader
}

// New constructs a new security service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.OTPLength <= 0 {
		cfg.OTPLength = 6
	}
	if cfg.OTPTTL <= 0 {
		cfg.OTPTTL = 5 * time.Minute
	}
	if cfg.VoiceThreshold <= 0 {
		cfg.VoiceThreshold = 0.9
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	return &Service{
		DB:       db,
		Binder:   b,
		Cfg:      cfg,
		sessions: make(map[string]domain.Session),
		now:      time.Now,
		rand:     rand.Reader,
	}
}

// randomDigits draws n decimal digits from src. Bytes of 250 and above
// are rejected so the mod-10 map stays uniform
func randomDigits(src io.Reader, n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := io.ReadFull(src, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= 250 {
				continue
			}
			out = append(out, '0'+b%10)
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}

// GenerateOTP implements domain.SecurityPort
func (s *Service) GenerateOTP(ctx context.Context, userID int64) (domain.OTP, error) {
	code, err := randomDigits(s.rand, s.Cfg.OTPLength)
	if err != nil {
		return domain.OTP{}, err
	}
	expiresAt := s.now().Add(s.Cfg.OTPTTL)

	err = s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).InsertOTP(ctx, userID, code, expiresAt)
	})
	if err != nil {
		return domain.OTP{}, err
	}
	return domain.OTP{Code: code, ExpiresAt: expiresAt}, nil
}

// VerifyOTP implements domain.SecurityPort
func (s *Service) VerifyOTP(ctx context.Context, userID int64, code string) (domain.Verification, error) {
	var out domain.Verification
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		st := s.Binder.Bind(q)

		stored, err := st.LatestUnusedOTP(ctx, userID)
		if err != nil {
			if errors.Is(err, stdsql.ErrNoRows) {
				out = domain.Verification{Message: "No valid OTP found"}
				return nil
			}
			return err
		}
		if s.now().After(stored.ExpiresAt) {
			out = domain.Verification{Message: "OTP has expired"}
			return nil
		}
		if code != stored.Code {
			out = domain.Verification{Message: "Invalid OTP"}
			return nil
		}
		if err := st.MarkOTPUsed(ctx, stored.ID); err != nil {
			return err
		}
		out = domain.Verification{
			Verified: true,
			Message:  "OTP verified successfully",
			Token:    s.issueSession(userID),
		}
		return nil
	})
	return out, err
}

// issueSession mints a bearer token for userID and drops any sessions
// that expired in the meantime
func (s *Service) issueSession(userID int64) string {
	now := s.now()
	sess := domain.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(s.Cfg.SessionTTL),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for tok, old := range s.sessions {
		if now.After(old.ExpiresAt) {
			delete(s.sessions, tok)
		}
	}
	s.sessions[sess.Token] = sess
	return sess.Token
}

// ParseToken implements domain.TokenPort
func (s *Service) ParseToken(token string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return 0, perrs.Unauthorizedf("unknown session token")
	}
	if s.now().After(sess.ExpiresAt) {
		delete(s.sessions, token)
		return 0, perrs.Unauthorizedf("session expired")
	}
	return sess.UserID, nil
}

func voiceDigest(audio []byte) string {
	sum := sha256.Sum256(audio)
	return hex.EncodeToString(sum[:])
}

// RegisterVoice implements domain.SecurityPort
func (s *Service) RegisterVoice(ctx context.Context, userID int64, audio []byte) error {
	if len(audio) == 0 {
		return perrs.InvalidArgf("empty audio")
	}
	digest := voiceDigest(audio)
	return s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).SetVoiceID(ctx, userID, digest)
	})
}

// VerifyVoice implements domain.SecurityPort. The similarity score is
// simulated; any registered signature scores above the threshold
func (s *Service) VerifyVoice(ctx context.Context, userID int64, audio []byte) (domain.Verification, error) {
	if len(audio) == 0 {
		return domain.Verification{}, perrs.InvalidArgf("empty audio")
	}

	var stored *string
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		stored, err = s.Binder.Bind(q).VoiceID(ctx, userID)
		return err
	})
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return domain.Verification{Message: "No voice signature registered"}, nil
		}
		return domain.Verification{}, err
	}
	if stored == nil || *stored == "" {
		return domain.Verification{Message: "No voice signature registered"}, nil
	}

	_ = voiceDigest(audio) // a real engine would compare feature vectors here

	similarity := 0.95
	verified := similarity >= s.Cfg.VoiceThreshold
	msg := "Voice verification failed"
	if verified {
		msg = "Voice verified successfully"
	}
	return domain.Verification{Verified: verified, Similarity: similarity, Message: msg}, nil
}
