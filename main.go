package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/sudoku-arena/cliparse"
	"github.com/danielhkuo/sudoku-arena/db"
	"github.com/danielhkuo/sudoku-arena/game"
	"github.com/danielhkuo/sudoku-arena/identity"
	"github.com/danielhkuo/sudoku-arena/middleware"
	"github.com/danielhkuo/sudoku-arena/router"
	"github.com/danielhkuo/sudoku-arena/store"
	"github.com/danielhkuo/sudoku-arena/sudoku"
	"github.com/danielhkuo/sudoku-arena/ws"
)

func main() {
	// Local development reads secrets from .env; absence is fine
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Wire the game engine
	binder := identity.NewBinder()
	registry := game.NewRegistry(store.NewSQL(dbConn), binder, sudoku.NewGenerator())
	hub := ws.NewHub()
	go hub.Run()
	defer hub.Stop()

	wsHandler := ws.NewHandler(hub, registry, binder, cfg)

	// Create router
	mux := router.NewRouter(dbConn, cfg, wsHandler)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin, mux),
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
