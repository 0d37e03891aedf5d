package main

import (
	"context"
	"database/sql"
	"fmt"

	"marketplace/config"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// withDB opens the configured primary database, runs fn and closes the pool.
func withDB(ctx context.Context, fn func(context.Context, *sql.DB) error) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	gormDB, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "connect to PostgreSQL")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return errors.Wrap(err, "get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "ping PostgreSQL")
	}

	return fn(ctx, sqlDB)
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  up          Apply all pending migrations")
	fmt.Println("  down        Roll back the latest migration")
	fmt.Println("  status      Show applied and pending migrations")
	fmt.Println("  version     Migrate up or down to -to YYYYMMDDHHMMSS")
	fmt.Println("  validate    Check the embedded migration files")
}
