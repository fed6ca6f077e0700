package module

import (
	"time"

	"talktobank/internal/platform/config"
)

// Options configures the security module
type Options struct {
	OTPLength      int
	OTPTTL         time.Duration
	VoiceThreshold float64
	SessionTTL     time.Duration
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	sec := cfg.Prefix("CORE_SECURITY_")
	return Options{
		OTPLength:      sec.MayInt("OTP_LENGTH", 6),
		OTPTTL:         time.Duration(sec.MayInt("OTP_TTL_MINUTES", 5)) * time.Minute,
		VoiceThreshold: sec.MayFloat64("VOICE_THRESHOLD", 0.9),
		SessionTTL:     time.Duration(sec.MayInt("SESSION_TTL_MINUTES", 30)) * time.Minute,
	}
}
