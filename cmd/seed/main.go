package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/devfolio/portfolio-api/config"
	"github.com/devfolio/portfolio-api/internal/cache"
	"github.com/devfolio/portfolio-api/internal/database/postgres"
	"github.com/devfolio/portfolio-api/internal/repository"
	"github.com/devfolio/portfolio-api/internal/seed"
	"github.com/devfolio/portfolio-api/internal/services"
	"github.com/devfolio/portfolio-api/pkg/db"
	"github.com/devfolio/portfolio-api/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	defaults := seed.DefaultOptions()
	skills := flag.Int("skills", defaults.Skills, "number of skills to create")
	projects := flag.Int("projects", defaults.Projects, "number of projects to create")
	blogs := flag.Int("blogs", defaults.Blogs, "number of blog posts to create")
	contacts := flag.Int("contacts", defaults.Contacts, "number of contact messages to create")
	randSeed := flag.Int64("seed", 0, "random seed for reproducible content (0 = random)")
	force := flag.Bool("force", false, "allow seeding when APP_ENV is production")
	flag.Parse()

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
		ServiceName: "portfolio-seed",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.IsProduction() && !*force {
		logger.Error("Refusing to seed a production database, pass -force to override")
		logger.Sync()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := db.NewPool(ctx, db.PoolConfig{
		URL:        cfg.Database.URL,
		MaxConns:   2,
		MinConns:   1,
		CACertPath: cfg.Database.CACertPath,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	pgClient := postgres.NewClient(pool)
	defer pgClient.Close()

	contentCache := cache.NewContentCache(cfg.Cache.ContentTTLSeconds, true)

	seeder := seed.NewSeeder(
		services.NewSkillService(repository.NewSkillRepository(pgClient, contentCache)),
		services.NewProjectService(repository.NewProjectRepository(pgClient, contentCache), nil),
		services.NewBlogService(repository.NewBlogRepository(pgClient, contentCache), nil),
		services.NewContactService(repository.NewContactRepository(pgClient), nil, ""),
	)

	result, err := seeder.Run(ctx, seed.Options{
		Skills:   *skills,
		Projects: *projects,
		Blogs:    *blogs,
		Contacts: *contacts,
		Seed:     *randSeed,
	})
	if err != nil {
		logger.Error("Seeding failed", zap.Error(err))
		logger.Sync()
		pgClient.Close()
		os.Exit(1)
	}

	fmt.Printf("seeded skills=%d projects=%d blogs=%d contacts=%d\n",
		result.Skills, result.Projects, result.Blogs, result.Contacts)
}
