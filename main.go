package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/banshee-data/welllog.report/internal/config"
	"github.com/banshee-data/welllog.report/internal/version"
	"github.com/banshee-data/welllog.report/internal/viewer"
	"github.com/banshee-data/welllog.report/internal/wellstore"
)

var (
	listen      = flag.String("listen", "", "Listen address (overrides config)")
	dbPath      = flag.String("db", "", "Well database path (overrides config)")
	configPath  = flag.String("config", "", "Viewer config JSON path")
	runMigrate  = flag.Bool("migrate", false, "Run database migrations on startup")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("welllog-viewer %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}
	log.Printf("welllog-viewer %s starting", version.Version)

	cfg := config.EmptyViewerConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadViewerConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	addr := cfg.GetListenAddr()
	if *listen != "" {
		addr = *listen
	}
	path := cfg.GetDBPath()
	if *dbPath != "" {
		path = *dbPath
	}

	store, err := wellstore.Open(path)
	if err != nil {
		log.Fatalf("failed to open well database: %v", err)
	}
	defer store.Close()

	if *runMigrate {
		if err := store.MigrateUp(cfg.GetMigrationsDir()); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ws := viewer.NewWebServer(viewer.WebServerConfig{
		Address: addr,
		Store:   store,
		Config:  cfg,
	})

	if err := ws.Start(ctx); err != nil {
		log.Printf("server error: %v", err)
		os.Exit(1)
	}
	log.Printf("Graceful shutdown complete")
}
