package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	corecfg "github.com/aevon-lab/stepboard/internal/core/config"
	"github.com/aevon-lab/stepboard/internal/core/storage"
	"github.com/aevon-lab/stepboard/internal/core/storage/memory"
	"github.com/aevon-lab/stepboard/internal/core/storage/postgres"
	"github.com/aevon-lab/stepboard/internal/core/storage/sqlite"
	"github.com/aevon-lab/stepboard/internal/migrations"
	"github.com/aevon-lab/stepboard/internal/roster"
	"github.com/aevon-lab/stepboard/internal/server"
	"github.com/aevon-lab/stepboard/internal/tracker"
)

func main() {
	configPath := flag.String("config", "stepboard.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"database_type", cfg.Database.Type,
		"leaderboard_limit", cfg.Leaderboard.Limit,
		"cache_enabled", cfg.Cache.Enabled,
	)

	if cfg.Server.Mode == "debug" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	// 2. Initialize Storage
	store, err := openStore(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize storage", "type", cfg.Database.Type, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// 3. Load Roster
	members, err := roster.Load(cfg.Roster.Path)
	if err != nil {
		slog.Error("Failed to load roster", "path", cfg.Roster.Path, "error", err)
		os.Exit(1)
	}
	slog.Info("Roster loaded", "path", cfg.Roster.Path, "members", members.Len())

	// 4. Initialize Tracker
	trackerSvc := tracker.NewService(store, tracker.Options{
		LeaderboardLimit: cfg.Leaderboard.Limit,
		CacheEnabled:     cfg.Cache.Enabled,
		CacheCapacity:    cfg.Cache.Capacity,
		Names:            members,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Roster.AutoRegister {
		for _, id := range members.IDs() {
			if err := trackerSvc.Register(ctx, id); err != nil {
				slog.Error("Failed to register roster member", "user_id", id, "error", err)
				os.Exit(1)
			}
		}
	}

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), trackerSvc, cfg.Server.Mode, cfg.Server.ShutdownGrace())
	trackerSvc.RegisterRoutes(srv.Engine)

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// openStore builds the configured backend and brings its schema up to date.
func openStore(cfg corecfg.DatabaseConfig) (storage.Store, error) {
	switch cfg.Type {
	case corecfg.DatabasePostgres:
		adapter, err := postgres.NewAdapter(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
		if err != nil {
			return nil, err
		}
		if err := migrations.RunMigrations(adapter.DB(), migrations.DialectPostgres, cfg.AutoMigrate); err != nil {
			adapter.Close()
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		if err := adapter.Prepare(); err != nil {
			adapter.Close()
			return nil, err
		}
		return adapter, nil

	case corecfg.DatabaseSQLite:
		store, err := sqlite.Open(cfg.DSN)
		if err != nil {
			return nil, err
		}
		if err := migrations.RunMigrations(store.DB(), migrations.DialectSQLite, cfg.AutoMigrate); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		if err := store.ValidateSchema(context.Background()); err != nil {
			store.Close()
			return nil, err
		}
		return store, nil

	case corecfg.DatabaseMemory:
		slog.Warn("Using in-memory storage, data is lost on restart")
		return memory.NewStore(), nil

	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
	}
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
