// Package module provides the security module
package module

import (
	"net/http"

	"talktobank/internal/modkit"
	"talktobank/internal/modkit/httpkit"
	"talktobank/internal/modkit/repokit"
	"talktobank/internal/services/security/domain"
	sechttp "talktobank/internal/services/security/http"
	"talktobank/internal/services/security/repo"
	"talktobank/internal/services/security/service"
)

// Ports exposed by the security module
type Ports struct {
	Security domain.SecurityPort
	Tokens   domain.TokenPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new security module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder, service.Config{
		OTPLength:      opts.OTPLength,
		OTPTTL:         opts.OTPTTL,
		VoiceThreshold: opts.VoiceThreshold,
		SessionTTL:     opts.SessionTTL,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Security: svc, Tokens: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "security" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	sechttp.Register(r, m.ports.Security)
}
