package main

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
)

type upCmd struct{}

func (c *upCmd) Run(rt *runtime) error {
	return rt.applied(rt.m.Up(), "migrations applied")
}

type downCmd struct {
	Steps int `arg:"" optional:"" default:"1" help:"Number of migrations to roll back."`
}

func (c *downCmd) Run(rt *runtime) error {
	if c.Steps <= 0 {
		return fmt.Errorf("down steps must be > 0, got %d", c.Steps)
	}
	return rt.applied(rt.m.Steps(-c.Steps), "rolled back migrations", "steps", c.Steps)
}

type versionCmd struct{}

func (c *versionCmd) Run(rt *runtime) error {
	version, dirty, err := rt.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		_, err = fmt.Fprintln(rt.out, "version: none\ndirty: false")
		return err
	}
	if err != nil {
		return fmt.Errorf("read version: %w", err)
	}
	_, err = fmt.Fprintf(rt.out, "version: %d\ndirty: %t\n", version, dirty)
	return err
}

type forceCmd struct {
	Version int `arg:"" help:"Version to record, e.g. 1760000000."`
}

func (c *forceCmd) Run(rt *runtime) error {
	if c.Version < 0 {
		return fmt.Errorf("version must be >= 0, got %d", c.Version)
	}
	if err := rt.m.Force(c.Version); err != nil {
		return fmt.Errorf("force version %d: %w", c.Version, err)
	}
	rt.logger.Info("forced version", "version", c.Version)
	return nil
}

type gotoCmd struct {
	Version uint `arg:"" help:"Target version."`
}

func (c *gotoCmd) Run(rt *runtime) error {
	return rt.applied(rt.m.Migrate(c.Version), "migrated", "version", c.Version)
}
