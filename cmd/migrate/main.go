package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/devfolio/portfolio-api/config"
	"github.com/devfolio/portfolio-api/pkg/db"
	"github.com/devfolio/portfolio-api/pkg/logger"
	"go.uber.org/zap"
)

const usage = `Usage: migrate [-steps N] <command>

Commands:
  up        apply all pending migrations (default)
  down      roll back -steps migrations
  version   print the current schema version
`

func main() {
	steps := flag.Int("steps", 1, "number of migrations to roll back with down")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		Environment: cfg.Server.AppEnv,
		ServiceName: "portfolio-migrate",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	migrationCfg := db.MigrationConfig{
		DatabaseURL:    cfg.Database.URL,
		MigrationsPath: cfg.Database.MigrationsPath,
		CACertPath:     cfg.Database.CACertPath,
	}

	logger.Info("Running database migrations",
		zap.String("command", command),
		zap.String("database", maskDatabaseURL(cfg.Database.URL)),
		zap.String("source", cfg.Database.MigrationsPath))

	switch command {
	case "up":
		err = db.RunMigrations(migrationCfg)
	case "down":
		err = db.RollbackMigrations(migrationCfg, *steps)
	case "version":
		var version uint
		var dirty bool
		version, dirty, err = db.MigrationVersion(migrationCfg)
		if err == nil {
			fmt.Printf("version=%d dirty=%t\n", version, dirty)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		logger.Error("Migration command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("Migration command completed", zap.String("command", command))
}

// maskDatabaseURL hides the password in a database URL for logging
func maskDatabaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "***"
	}
	return u.Redacted()
}
