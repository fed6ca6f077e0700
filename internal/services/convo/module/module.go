// Package module provides the conversation context module
package module

import (
	"net/http"

	"talktobank/internal/modkit"
	"talktobank/internal/modkit/httpkit"
	"talktobank/internal/platform/net/middleware"
	"talktobank/internal/services/convo/domain"
	convohttp "talktobank/internal/services/convo/http"
	"talktobank/internal/services/convo/service"
)

// Ports exposed by the convo module
type Ports struct {
	Store domain.StorePort
}

// Secured carries the bearer-auth seam owned by the security module.
// Inject it via modkit.WithPorts; without it the routes mount open,
// which only module tests should do
type Secured struct {
	Auth middleware.AuthPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
	auth  middleware.AuthPort
}

// New constructs a new convo module
func New(deps modkit.Deps, mopts ...modkit.Option) *Module {
	opts := FromConfig(deps.Cfg)
	b := modkit.Build(mopts...)

	store := service.NewMemory(domain.Config{
		MaxHistory: opts.MaxHistory,
		IdleTTL:    opts.IdleTTL,
	})

	m := &Module{deps: deps}
	if sec, ok := b.Ports.(Secured); ok {
		m.auth = sec.Auth
	}
	m.ports = Ports{Store: store}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "convo" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.Protected(r, m.auth, func(pr httpkit.Router) {
		convohttp.Register(pr, m.ports.Store)
	})
}
