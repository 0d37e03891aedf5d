package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"marketplace/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - up:       apply every pending migration
// - down:     roll back the latest migration
// - status:   print applied and pending migrations
// - version:  migrate up or down to -to
// - validate: check the embedded files without touching the database

func main() {
	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)
	versionTo := versionCmd.String("to", "", "Target version (YYYYMMDDHHMMSS)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1], versionCmd, versionTo); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, versionCmd *flag.FlagSet, versionTo *string) error {
	switch command {
	case "validate":
		if err := migrations.Validate(migrations.FS()); err != nil {
			return err
		}
		fmt.Println("Migrations are valid")

		return nil
	case "up", "down", "status":
		return withDB(ctx, func(ctx context.Context, db *sql.DB) error {
			return migrations.Run(ctx, db, command)
		})
	case "version":
		if err := versionCmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "parse version flags")
		}
		if *versionTo == "" {
			return errors.New("-to is required")
		}

		return withDB(ctx, func(ctx context.Context, db *sql.DB) error {
			return migrations.MigrateToVersion(ctx, db, *versionTo)
		})
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown command %q", command)
	}
}
