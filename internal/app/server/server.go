package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"paydesk/internal/domain/accounts"
	"paydesk/internal/domain/banking"
	"paydesk/internal/domain/employees"
	"paydesk/internal/domain/payslips"
	"paydesk/internal/domain/users"
	"paydesk/internal/platform/config"
	"paydesk/internal/platform/db"
	accountshandler "paydesk/internal/transport/http/handlers/accounts"
	bankinghandler "paydesk/internal/transport/http/handlers/banking"
	employeeshandler "paydesk/internal/transport/http/handlers/employees"
	payslipshandler "paydesk/internal/transport/http/handlers/payslips"
	usershandler "paydesk/internal/transport/http/handlers/users"
	"paydesk/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	DB     *pgxpool.Pool
	Router http.Handler
}

// New connects, optionally migrates and seeds, and assembles the
// router. Run wraps it for the binary; tests construct an App directly
// against a prepared database.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return &App{Config: cfg, DB: pool, Router: buildRouter(cfg, pool)}, nil
}

func buildRouter(cfg config.Config, pool *pgxpool.Pool) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		usershandler.NewHandler(users.NewService(users.NewStore(pool)), cfg.DefaultPageSize, cfg.MaxPageSize).RegisterRoutes(r)
		employeeshandler.NewHandler(employees.NewService(employees.NewStore(pool)), cfg.DefaultPageSize, cfg.MaxPageSize).RegisterRoutes(r)
		accountshandler.NewHandler(accounts.NewService(accounts.NewStore(pool)), cfg.DefaultPageSize, cfg.MaxPageSize).RegisterRoutes(r)
		bankinghandler.NewHandler(banking.NewService(banking.NewStore(pool)), cfg.DefaultPageSize, cfg.MaxPageSize).RegisterRoutes(r)
		payslipshandler.NewHandler(payslips.NewService(payslips.NewStore(pool), cfg.PayslipStorageDir), cfg.DefaultPageSize, cfg.MaxPageSize).RegisterRoutes(r)
	})

	return router
}

func Run() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.DB.Close()

	srv := &http.Server{Addr: cfg.Addr, Handler: app.Router}
	go func() {
		log.Printf("paydesk server listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
