package module

import (
	"talktobank/internal/platform/config"
)

// Options configures the banking module
type Options struct {
	DefaultHistoryLimit int
	MaxHistoryLimit     int
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	bk := cfg.Prefix("CORE_BANKING_")
	return Options{
		DefaultHistoryLimit: bk.MayInt("DEFAULT_HISTORY_LIMIT", 5),
		MaxHistoryLimit:     bk.MayInt("MAX_HISTORY_LIMIT", 50),
	}
}
