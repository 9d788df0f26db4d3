package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hads/internal/config"
	"github.com/robalobadob/hads/internal/httpserver"
	"github.com/robalobadob/hads/internal/store"
	"github.com/robalobadob/hads/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	target, err := words.Target(cfg.TargetWord, cfg.TargetFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve target word")
	}
	if cfg.InsecureSecret() {
		log.Warn().Msg("SESSION_SECRET not set; using development secret")
	}

	st := store.NewMemoryStore()
	if cfg.StoreDSN != "" {
		if st, err = store.NewSQLiteStore(cfg.StoreDSN); err != nil {
			log.Fatal().Err(err).Str("dsn", cfg.StoreDSN).Msg("failed to open store")
		}
	}
	defer st.Close()

	srv := httpserver.New(st, httpserver.Options{
		Target:       target,
		MaxAttempts:  cfg.MaxAttempts,
		Secret:       []byte(cfg.SessionSecret),
		SessionTTL:   cfg.SessionTTL,
		ClientOrigin: cfg.ClientOrigin,
		RefocusDelay: cfg.RefocusDelay,
		SecureCookie: cfg.Production,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("port", cfg.Port).Int("maxAttempts", cfg.MaxAttempts).Msg("starting hads server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
