package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ayush/agent-registry/internal/accounts"
	"github.com/ayush/agent-registry/internal/agents"
	"github.com/ayush/agent-registry/internal/config"
	"github.com/ayush/agent-registry/internal/middleware"
	"github.com/ayush/agent-registry/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── PostgreSQL ────────────────────────────────────────────
	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		log.Error("postgres open", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Error("postgres connect", "error", err)
		os.Exit(1)
	}

	st := store.New(db)
	if err := st.Migrate(ctx); err != nil {
		log.Error("postgres migrate", "error", err)
		os.Exit(1)
	}

	// ── Handlers ─────────────────────────────────────────────
	accountHandler := accounts.NewHandler(st, log)
	agentHandler := agents.NewHandler(st, log)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Account routes
	r.Post("/signup", accountHandler.Signup)
	r.Post("/signin", accountHandler.Signin)
	r.Get("/users", accountHandler.List)

	// Agent routes
	r.Post("/agents", agentHandler.Create)
	r.Get("/agents", agentHandler.List)

	// User-keys routes: same agents table, name-keyed GET shape
	r.Route("/api/user-keys", func(r chi.Router) {
		r.Get("/", agentHandler.UserKeys)
		r.Post("/", agentHandler.Create)
		r.Put("/", agentHandler.Update)
		r.Delete("/", agentHandler.Delete)
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	}

	go func() {
		log.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
