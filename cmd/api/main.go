package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "luxe_haven/internal/adapters/http_server"
	"luxe_haven/internal/adapters/notify"
	"luxe_haven/internal/adapters/observability"
	"luxe_haven/internal/app"
	"luxe_haven/internal/domain"
	"luxe_haven/internal/shared"
	"luxe_haven/internal/storage"
	"luxe_haven/internal/storage/store"
)

const purgeEvery = 10 * time.Minute

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("api stopped")
	}
}

// run serves the API until the process is signalled.
func run(cfg shared.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.StoreDriver, err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Warn().Err(err).Msg("storage close failed")
		}
	}()
	if err := backend.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate storage: %w", err)
	}

	// deps
	st := store.New(backend, app.DefaultRooms())
	n, err := notifiers(cfg)
	if err != nil {
		return err
	}
	bookings := app.NewBookingService(st, st, n)
	auth := app.NewAuthService(st, st, cfg.SessionTTL, cfg.BcryptCost)
	if err := auth.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword); err != nil {
		return fmt.Errorf("admin bootstrap: %w", err)
	}

	// http
	srv := server.New(cfg.TrustProxy)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Catalog:   app.NewCatalogService(st),
		Site:      app.NewSiteService(st, st),
		Bookings:  bookings,
		Auth:      auth,
		Admin:     app.NewAdminService(st, st),
		AuthRPS:   cfg.AuthRPS,
		AuthBurst: cfg.AuthBurst,
	})
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 10 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Str("store", backend.Driver).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		t := time.NewTicker(purgeEvery)
		defer t.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-t.C:
				n, err := backend.PurgeExpired(gctx)
				if err != nil {
					log.Warn().Err(err).Msg("session purge failed")
					continue
				}
				if n > 0 {
					log.Info().Int64("removed", n).Msg("expired sessions purged")
				}
			}
		}
	})

	err = g.Wait()
	bookings.Wait()
	if err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	log.Info().Msg("shutdown complete")
	return nil
}

// notifiers always logs confirmations and adds the webhook and Telegram channels when configured.
func notifiers(cfg shared.Config) (domain.Notifier, error) {
	m := notify.Multi{notify.Log{}}
	if cfg.WebhookURL != "" {
		wh, err := notify.NewWebhook(cfg.WebhookURL, cfg.WebhookRPS)
		if err != nil {
			return nil, fmt.Errorf("webhook notifier: %w", err)
		}
		m = append(m, wh)
	}
	if cfg.TelegramToken != "" {
		tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Warn().Err(err).Msg("telegram notifier disabled")
		} else {
			m = append(m, tg)
		}
	}
	return m, nil
}
