package module

import (
	"time"

	"talktobank/internal/platform/config"
)

// Options configures the convo module
type Options struct {
	MaxHistory int
	IdleTTL    time.Duration
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	cv := cfg.Prefix("CORE_CONVO_")
	return Options{
		MaxHistory: cv.MayInt("MAX_HISTORY", 10),
		IdleTTL:    time.Duration(cv.MayInt("IDLE_TTL_HOURS", 24)) * time.Hour,
	}
}
