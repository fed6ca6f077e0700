// Package api provides the HTTP API for the application
package api

import (
	"strconv"

	"talktobank/internal/platform/config"
	"talktobank/internal/platform/logger"
	phttp "talktobank/internal/platform/net/http"
	"talktobank/internal/platform/store"

	"talktobank/internal/modkit"
	"talktobank/internal/modkit/httpkit"
	"talktobank/internal/modkit/module"
	"talktobank/internal/modkit/swaggerkit"

	metamod "talktobank/internal/services/api/meta/module"
	assistantmod "talktobank/internal/services/assistant/module"
	bankingmod "talktobank/internal/services/banking/module"
	convomod "talktobank/internal/services/convo/module"
	securitymod "talktobank/internal/services/security/module"
	speechmod "talktobank/internal/services/speech/module"

	bankdomain "talktobank/internal/services/banking/domain"
	convodomain "talktobank/internal/services/convo/domain"
	secdomain "talktobank/internal/services/security/domain"
	speechdomain "talktobank/internal/services/speech/domain"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// sessionAuth adapts security session tokens to the bearer-auth seam
func sessionAuth(tokens secdomain.TokenPort) *httpkit.Port {
	return httpkit.NewPortFunc(func(token string) (string, string, error) {
		uid, err := tokens.ParseToken(token)
		if err != nil {
			return "", "", err
		}
		// single-bank deployment, no tenant scope
		return strconv.FormatInt(uid, 10), "", nil
	})
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// security first; its session tokens back the bearer auth on the
	// account-scoped modules
	securityMod := securitymod.New(deps)
	auth := sessionAuth(module.MustPortsOf[secdomain.TokenPort](securityMod))

	convoMod := convomod.New(deps, modkit.WithPorts(convomod.Secured{Auth: auth}))
	bankingMod := bankingmod.New(deps, modkit.WithPorts(bankingmod.Secured{Auth: auth}))
	speechMod := speechmod.New(deps)

	assistantMod := assistantmod.New(
		deps,
		modkit.WithPorts(assistantmod.Ports{
			Store: module.MustPortsOf[convodomain.StorePort](convoMod),
			Bank:  module.MustPortsOf[bankdomain.BankingPort](bankingMod),
			STT:   module.MustPortsOf[speechdomain.STTPort](speechMod),
			TTS:   module.MustPortsOf[speechdomain.TTSPort](speechMod),
			Audio: module.MustPortsOf[speechdomain.AudioStorePort](speechMod),
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		convoMod,
		bankingMod,
		speechMod,
		securityMod,
		assistantMod,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
