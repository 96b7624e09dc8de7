package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/riskibarqy/cantera/db"
	"github.com/riskibarqy/cantera/internal/config"
	"github.com/riskibarqy/cantera/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/cantera/internal/platform/logging"
)

var cli struct {
	Dir string `help:"Read migrations from this directory instead of the embedded copy." env:"MIGRATIONS_DIR"`

	Up      upCmd      `cmd:"" help:"Apply every pending migration."`
	Down    downCmd    `cmd:"" help:"Roll back the last migrations."`
	Version versionCmd `cmd:"" help:"Print the applied version."`
	Force   forceCmd   `cmd:"" help:"Mark a version as applied without running it."`
	Goto    gotoCmd    `cmd:"" help:"Migrate up or down to a version."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("migration"),
		kong.Description("Schema migrations for the club database."),
		kong.UsageOnError(),
	)

	cfg, err := config.Load()
	kctx.FatalIfErrorf(err)
	logger := logging.NewJSON(cfg.LogLevel).With("service", cfg.ServiceName+"-migration")
	defer func() { _ = logger.Sync() }()

	dbURL := strings.TrimSpace(cfg.DBURL)
	if dbURL == "" {
		kctx.FatalIfErrorf(errors.New("DB_URL is required"))
	}
	m, source, err := newMigrator(postgres.NormalizeURL(dbURL, cfg.DBDisablePreparedBinary), cli.Dir)
	kctx.FatalIfErrorf(err)
	defer closeMigrator(logger, m)

	logger.Info("migration source", "source", source, "command", kctx.Command())
	if err := kctx.Run(&runtime{m: m, logger: logger, out: os.Stdout}); err != nil {
		logger.Error("migration failed", "command", kctx.Command(), "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

// newMigrator opens dir when given, otherwise the migrations embedded in the binary.
func newMigrator(dbURL, dir string) (*migrate.Migrate, string, error) {
	if dir = strings.TrimSpace(dir); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, "", fmt.Errorf("resolve migrations dir: %w", err)
		}
		if info, err := os.Stat(abs); err != nil || !info.IsDir() {
			return nil, "", fmt.Errorf("migrations dir %s is not a directory", abs)
		}
		sourceURL := "file://" + filepath.ToSlash(abs)
		m, err := migrate.New(sourceURL, dbURL)
		if err != nil {
			return nil, "", fmt.Errorf("open migrator: %w", err)
		}
		return m, sourceURL, nil
	}

	src, err := iofs.New(db.Migrations, "migrations")
	if err != nil {
		return nil, "", fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		return nil, "", fmt.Errorf("open migrator: %w", err)
	}
	return m, "embedded", nil
}

func closeMigrator(logger *logging.Logger, m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db", "error", dbErr)
	}
}

// migrator is the part of *migrate.Migrate the commands drive.
type migrator interface {
	Up() error
	Steps(n int) error
	Version() (uint, bool, error)
	Force(version int) error
	Migrate(version uint) error
}

type runtime struct {
	m      migrator
	logger *logging.Logger
	out    io.Writer
}

// applied treats ErrNoChange as success.
func (rt *runtime) applied(err error, msg string, args ...any) error {
	if errors.Is(err, migrate.ErrNoChange) {
		rt.logger.Info("no migration changes")
		return nil
	}
	if err != nil {
		return err
	}
	rt.logger.Info(msg, args...)
	return nil
}
