package module

import (
	"talktobank/internal/platform/config"
)

// Options configures the speech module
type Options struct {
	AudioCapacity int
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	sp := cfg.Prefix("CORE_SPEECH_")
	return Options{
		AudioCapacity: sp.MayInt("AUDIO_CAPACITY", 256),
	}
}
