package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/api"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/auth"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/bus"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/config"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/kv"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/store"
)

// simulatedLatency paces login and checkout like the storefront's mock API
// calls.
const simulatedLatency = 300 * time.Millisecond

// levelRouter is a slog.Handler that routes INFO/WARN to stdout and ERROR+ to stderr.
type levelRouter struct {
	stdout slog.Handler
	stderr slog.Handler
}

func (lr *levelRouter) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (lr *levelRouter) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return lr.stderr.Handle(ctx, r)
	}
	return lr.stdout.Handle(ctx, r)
}

func (lr *levelRouter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithAttrs(attrs),
		stderr: lr.stderr.WithAttrs(attrs),
	}
}

func (lr *levelRouter) WithGroup(name string) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithGroup(name),
		stderr: lr.stderr.WithGroup(name),
	}
}

// setupLogger configures structured logging. INFO/WARN go to stdout, ERROR
// goes to stderr. If logPath is non-empty, all levels are also written to
// that file. Returns a cleanup function that closes the log file (if opened).
func setupLogger(logPath string) (func(), error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var cleanup func()

	stdoutW := io.Writer(os.Stdout)
	stderrW := io.Writer(os.Stderr)

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		cleanup = func() { f.Close() }
		stdoutW = io.MultiWriter(os.Stdout, f)
		stderrW = io.MultiWriter(os.Stderr, f)
	}

	handler := &levelRouter{
		stdout: slog.NewTextHandler(stdoutW, opts),
		stderr: slog.NewTextHandler(stderrW, opts),
	}
	slog.SetDefault(slog.New(handler))
	return cleanup, nil
}

func main() {
	cfg := config.Load()

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	addr := fs.String("addr", cfg.Addr, "listen address")
	dbPath := fs.String("db", cfg.DBPath, "SQLite database path")
	jwtSecret := fs.String("jwt-secret", cfg.JWTSecret, "JWT signing key (auto-generated if empty)")
	logPath := fs.String("log", "", "log file path (default: stdout/stderr only)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	closeLog, err := setupLogger(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}

	if *jwtSecret == "" {
		buf := make([]byte, 32)
		rand.Read(buf)
		*jwtSecret = hex.EncodeToString(buf)
		slog.Warn("JWT secret auto-generated, tokens will be invalidated on restart")
	}

	database, err := kv.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := kv.EnsureSchema(database); err != nil {
		slog.Error("failed to ensure database schema", "error", err)
		os.Exit(1)
	}
	slog.Info("database ready", "path", *dbPath)

	backend := kv.NewSQLite(database)
	notifications := bus.New()
	st := store.New(backend, notifications, store.SeedCatalog())

	// Warm load: seeds products and inventory on an empty database so
	// subsequent loads are stable.
	ctx := context.Background()
	products := st.LoadProducts(ctx)
	records := st.LoadInventory(ctx)
	slog.Info("catalog loaded", "products", len(products), "inventory", len(records))

	handler := api.LoggingMiddleware(api.NewRouter(api.RouterConfig{
		Store:            st,
		KV:               backend,
		Bus:              notifications,
		Users:            auth.DemoUsers(),
		JWTSecret:        *jwtSecret,
		SimulatedLatency: simulatedLatency,
	}))

	server := &http.Server{
		Addr:              *addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// No write timeout: /api/events holds a long-lived SSE stream.
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", *addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
