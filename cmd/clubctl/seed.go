package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/riskibarqy/cantera/internal/infrastructure/repository/postgres"
)

type seedCmd struct {
	DBURL                 string        `name:"db-url" help:"Postgres connection URL." env:"DB_URL" required:""`
	DisablePreparedBinary bool          `help:"Disable binary parameters for poolers in transaction mode." env:"DB_DISABLE_PREPARED_BINARY_RESULT" default:"true" negatable:""`
	Timeout               time.Duration `help:"Overall timeout." default:"30s"`
}

func (c *seedCmd) Run(g *globalCmd) error {
	if strings.TrimSpace(c.DBURL) == "" {
		return errors.New("db url is required")
	}
	loc, err := g.location()
	if err != nil {
		return err
	}
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	db, err := postgres.Connect(ctx, postgres.ConnectOptions{
		URL:                   c.DBURL,
		DisablePreparedBinary: c.DisablePreparedBinary,
		MaxOpenConns:          2,
		PingTimeout:           5 * time.Second,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.BootstrapSeed(ctx, db, time.Now().In(loc), loc); err != nil {
		return err
	}
	logger.Info("demo club seeded")
	return nil
}
