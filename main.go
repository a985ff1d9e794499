package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/danielhkuo/spinwheel/auth"
	"github.com/danielhkuo/spinwheel/cliparse"
	"github.com/danielhkuo/spinwheel/db"
	"github.com/danielhkuo/spinwheel/middleware"
	"github.com/danielhkuo/spinwheel/router"
)

func main() {
	var err error

	// Load .env if present, then parse configuration
	_ = godotenv.Load()
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Bootstrap the admin account
	if err := auth.EnsureAdmin(context.Background(), dbConn, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		slog.Error("admin bootstrap failed", "error", err)
		os.Exit(1)
	}
	if cfg.UsingDefaultCredentials() {
		slog.Warn("Running with default admin credentials; set ADMIN_USERNAME and ADMIN_PASSWORD")
	}

	// Create router
	sessions := auth.NewMemoryStore(cfg.SessionTTL)
	mux := router.NewRouter(dbConn, cfg, sessions)
	handler := middleware.CORS(cfg.ClientOrigins, mux)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
