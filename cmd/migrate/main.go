package main

import (
	"context"
	"flag"
	"os"
	"time"

	"venue-desk/internal/handler/middleware"
	"venue-desk/internal/infra/migrate"
	"venue-desk/internal/pkg/config"
)

func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	binary := flag.String("atlas", "atlas", "path to the atlas binary")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	logger := middleware.NewSlogLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	runner := migrate.NewRunner(os.DirFS(*dir), *binary, logger)
	if _, err := runner.Apply(ctx, cfg.DB); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}
