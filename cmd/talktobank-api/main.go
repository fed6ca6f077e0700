// @title         TalkToBank API
// @version       0.1.0
// @description   Voice and text banking assistant endpoints

package main

import (
	"context"
	"time"

	"talktobank/internal/platform/config"
	"talktobank/internal/platform/logger"
	phttp "talktobank/internal/platform/net/http"
	"talktobank/internal/platform/store"

	"talktobank/internal/modkit/module"
	"talktobank/internal/services/api"
	bankingmod "talktobank/internal/services/banking/module"
	convomod "talktobank/internal/services/convo/module"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_") // pgCfg lives under SERVICE_PGSQL_*
	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres)
	st, err := store.Open(
		context.Background(),
		store.Config{
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// prepare storage before serving traffic
	if ports, ok := module.PortsAs[bankingmod.Ports]("banking"); ok {
		if err := ports.Schema.EnsureSchema(context.Background()); err != nil {
			l.Panic().Err(err).Msg("schema setup failed")
		}
		if err := ports.Schema.SeedDemo(context.Background()); err != nil {
			l.Panic().Err(err).Msg("demo seed failed")
		}
	}

	// idle conversation sweeper
	if ports, ok := module.PortsAs[convomod.Ports]("convo"); ok {
		interval := time.Duration(root.Prefix("CORE_CONVO_").MayInt("SWEEP_INTERVAL_MINUTES", 60)) * time.Minute
		go func() {
			t := time.NewTicker(interval)
			defer t.Stop()
			for now := range t.C {
				if n := ports.Store.Sweep(now); n > 0 {
					l.Info().Int("sessions", n).Msg("idle conversations swept")
				}
			}
		}()
	}

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
