// Package module wires the assistant into the API using modkit
package module

import (
	"net/http"

	"talktobank/internal/core/intentpack"
	"talktobank/internal/core/nlp"
	"talktobank/internal/core/respond"
	"talktobank/internal/modkit"
	"talktobank/internal/modkit/httpkit"
	ahttp "talktobank/internal/services/assistant/http"
	"talktobank/internal/services/assistant/service"
	bankdomain "talktobank/internal/services/banking/domain"
	convodomain "talktobank/internal/services/convo/domain"
	speechdomain "talktobank/internal/services/speech/domain"
)

// Ports declares the injected cross-module ports the assistant needs
type Ports struct {
	Store convodomain.StorePort
	Bank  bankdomain.BankingPort
	STT   speechdomain.STTPort
	TTS   speechdomain.TTSPort
	Audio speechdomain.AudioStorePort
}

// Module implements the assistant module
type Module struct {
	deps modkit.Deps
	opts Options

	injected Ports
	svc      *service.Service
}

// New constructs the assistant module. The convo, banking and speech
// ports must be injected via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(opts...)

	injected, ok := b.Ports.(Ports)
	if !ok || injected.Store == nil || injected.Bank == nil ||
		injected.STT == nil || injected.TTS == nil || injected.Audio == nil {
		panic("assistant module requires convo, banking and speech ports")
	}

	svc := service.New(
		nlp.New(intentpack.MustLoad()),
		injected.Store,
		injected.Bank,
		injected.TTS,
		injected.Audio,
		respond.NewFormatter(),
	)

	return &Module{
		deps:     deps,
		opts:     FromConfig(deps.Cfg),
		injected: injected,
		svc:      svc,
	}
}

// Name implements modkit.Module
func (m *Module) Name() string { return "assistant" }

// Ports implements modkit.Module; the service itself is the exposed port
func (m *Module) Ports() any { return m.svc }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	ahttp.Register(r, m.svc, m.injected.STT, m.injected.TTS, m.injected.Audio, m.opts.DefaultUserID)
}
