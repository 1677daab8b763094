package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"staffhub/internal/domain/directory"
	"staffhub/internal/domain/leave"
	"staffhub/internal/domain/payroll"
	"staffhub/internal/domain/session"
	"staffhub/internal/platform/config"
	"staffhub/internal/platform/identifier"
	"staffhub/internal/platform/kv"
	"staffhub/internal/seed"
	directoryhandler "staffhub/internal/transport/http/handlers/directory"
	leavehandler "staffhub/internal/transport/http/handlers/leave"
	payrollhandler "staffhub/internal/transport/http/handlers/payroll"
	sessionhandler "staffhub/internal/transport/http/handlers/session"
	"staffhub/internal/transport/http/middleware"
)

// App holds the wired application. Router is ready to serve; Close releases
// the backing store.
type App struct {
	Config config.Config
	Store  kv.Store
	Router http.Handler

	Sessions  *session.Manager
	Employees *directory.Directory
	Leave     *leave.Registry
	Payroll   *payroll.Ledger

	closeStore func()
}

// New opens the configured store, restores persisted state and builds the
// router. Callers own Close.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.SeedDemoData {
		if err := seed.Run(ctx, store); err != nil {
			closeStore()
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
	}

	app := &App{
		Config:     cfg,
		Store:      store,
		Sessions:   session.NewManager(store),
		Employees:  directory.NewDirectory(store, identifier.NewUUID()),
		Leave:      leave.NewRegistry(store, identifier.NewUUID()),
		Payroll:    payroll.NewLedger(store, identifier.NewUUID()),
		closeStore: closeStore,
	}

	if err := app.restore(ctx); err != nil {
		closeStore()
		return nil, err
	}

	app.Router = app.buildRouter()
	return app, nil
}

func (a *App) Close() {
	if a.closeStore != nil {
		a.closeStore()
	}
}

func (a *App) restore(ctx context.Context) error {
	if err := a.Sessions.Restore(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if err := a.Employees.Restore(ctx); err != nil {
		return fmt.Errorf("restore employees: %w", err)
	}
	if err := a.Leave.Restore(ctx); err != nil {
		return fmt.Errorf("restore leave applications: %w", err)
	}
	if err := a.Payroll.Restore(ctx); err != nil {
		return fmt.Errorf("restore payroll: %w", err)
	}
	return nil
}

func (a *App) buildRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(a.Config.Environment == "production"))
	router.Use(middleware.BodyLimit(a.Config.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if pinger, ok := a.Store.(interface{ Ping(context.Context) error }); ok {
			if err := pinger.Ping(ctx); err != nil {
				http.Error(w, "store not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		sessionHandler := sessionhandler.NewHandler(a.Sessions, a.Config.JWTSecret)
		r.Post("/auth/login", sessionHandler.HandleLogin)
		r.Post("/auth/signup", sessionHandler.HandleSignup)

		r.Group(func(r chi.Router) {
			guard := middleware.Guard{Secret: a.Config.JWTSecret, Sessions: a.Sessions}
			r.Use(guard.RequireSession)

			r.Post("/auth/logout", sessionHandler.HandleLogout)
			r.Get("/auth/me", sessionHandler.HandleMe)

			directoryhandler.NewHandler(a.Employees).RegisterRoutes(r)
			leavehandler.NewHandler(a.Leave).RegisterRoutes(r)
			payrollhandler.NewHandler(a.Payroll).RegisterRoutes(r)
		})
	})

	return router
}

func openStore(ctx context.Context, cfg config.Config) (kv.Store, func(), error) {
	switch cfg.Driver() {
	case "postgres":
		store, err := kv.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres store: %w", err)
		}
		return store, store.Close, nil
	case "sqlite":
		store, err := kv.OpenSQLite(ctx, filepath.Join(cfg.DataDir, "staffhub.db"))
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Printf("close sqlite store: %v", err)
			}
		}, nil
	case "memory":
		return kv.NewMemory(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown KV driver %q", cfg.Driver())
	}
}
