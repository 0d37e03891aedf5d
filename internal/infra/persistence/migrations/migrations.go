// Package migrations embeds the SQL schema and runs it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"regexp"
	"strconv"
	"strings"

	"marketplace/internal/errors"

	"github.com/pressly/goose/v3"
)

// Dir is the goose directory inside the embedded filesystem.
const Dir = "."

//go:embed *.sql
var files embed.FS

var sqlFileRe = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)

// FS exposes the embedded migration files.
func FS() fs.FS {
	return files
}

func setup() error {
	goose.SetBaseFS(files)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	return nil
}

// Run executes a goose command (up, down, status, redo, reset) against db.
func Run(ctx context.Context, db *sql.DB, command string, args ...string) error {
	if db == nil {
		return errors.New("db is required")
	}
	if err := setup(); err != nil {
		return err
	}

	if err := goose.RunContext(ctx, command, db, Dir, args...); err != nil {
		return errors.Wrapf(err, "goose %s", command)
	}

	return nil
}

// MigrateToVersion migrates up or down to the requested version.
func MigrateToVersion(ctx context.Context, db *sql.DB, targetVersion string) error {
	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid version %q (expected YYYYMMDDHHMMSS)", targetVersion)
	}
	if err := setup(); err != nil {
		return err
	}

	current, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return errors.Wrap(err, "get db version")
	}

	switch {
	case current == target:
		return nil
	case current < target:
		if err := goose.UpToContext(ctx, db, Dir, target); err != nil {
			return errors.Wrapf(err, "goose up-to %d", target)
		}
	default:
		if err := goose.DownToContext(ctx, db, Dir, target); err != nil {
			return errors.Wrapf(err, "goose down-to %d", target)
		}
	}

	return nil
}

// Validate checks filenames, version uniqueness and goose annotations of the embedded files.
func Validate(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, Dir)
	if err != nil {
		return errors.Wrap(err, "read migrations")
	}

	seen := map[string]string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		m := sqlFileRe.FindStringSubmatch(name)
		if m == nil {
			return errors.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", name)
		}
		if prev, ok := seen[m[1]]; ok {
			return errors.Errorf("duplicate migration version %s in %q and %q", m[1], prev, name)
		}
		seen[m[1]] = name

		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return errors.Wrapf(err, "read %q", name)
		}
		txt := string(b)
		if !strings.Contains(txt, "-- +goose Up") {
			return errors.Errorf("migration %q missing \"-- +goose Up\"", name)
		}
		if !strings.Contains(txt, "-- +goose Down") {
			return errors.Errorf("migration %q missing \"-- +goose Down\"", name)
		}
	}

	return nil
}
