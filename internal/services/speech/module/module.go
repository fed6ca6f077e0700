// Package module provides the speech module
package module

import (
	"net/http"

	"talktobank/internal/modkit"
	"talktobank/internal/modkit/httpkit"
	"talktobank/internal/services/speech/domain"
	"talktobank/internal/services/speech/service"
)

// Ports exposed by the speech module. Routes are mounted by the
// assistant module, which owns the request flow
type Ports struct {
	STT   domain.STTPort
	TTS   domain.TTSPort
	Audio domain.AudioStorePort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new speech module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	m := &Module{deps: deps}
	m.ports = Ports{
		STT:   service.NewMockSTT(),
		TTS:   service.NewMockTTS(),
		Audio: service.NewAudioStore(opts.AudioCapacity),
	}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "speech" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
