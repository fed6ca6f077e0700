package module

import "talktobank/internal/platform/config"

// Options configures the assistant module
type Options struct {
	// DefaultUserID answers requests that omit user_id; the demo user
	DefaultUserID int64
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	a := cfg.Prefix("CORE_ASSISTANT_")
	return Options{
		DefaultUserID: int64(a.MayInt("DEFAULT_USER_ID", 1)),
	}
}
