// Package module provides the banking module
package module

import (
	"net/http"

	"talktobank/internal/modkit"
	"talktobank/internal/modkit/httpkit"
	"talktobank/internal/modkit/repokit"
	"talktobank/internal/platform/net/middleware"
	"talktobank/internal/services/banking/domain"
	bankinghttp "talktobank/internal/services/banking/http"
	"talktobank/internal/services/banking/repo"
	"talktobank/internal/services/banking/service"
)

// Ports exposed by the banking module
type Ports struct {
	Banking domain.BankingPort
	Schema  domain.SchemaPort
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

// New constructs a new banking module
func New(deps modkit.Deps, mopts ...modkit.Option) *Module {
	opts := FromConfig(deps.Cfg)
	b := modkit.Build(mopts...)

	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder, service.Config{
		DefaultHistoryLimit: opts.DefaultHistoryLimit,
		MaxHistoryLimit:     opts.MaxHistoryLimit,
	})

	m := &Module{deps: deps}
	if sec, ok := b.Ports.(Secured); ok {
		m.auth = sec.Auth
	}
	m.ports = Ports{Banking: svc, Schema: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "banking" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.Protected(r, m.auth, func(pr httpkit.Router) {
		bankinghttp.Register(pr, m.ports.Banking)
	})
}
