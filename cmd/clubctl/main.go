package main

import (
	"github.com/alecthomas/kong"
	"github.com/riskibarqy/cantera/internal/config"
	"github.com/riskibarqy/cantera/internal/platform/logging"
)

type globalCmd struct {
	Timezone string `help:"IANA timezone for dates. Defaults to APP_TIMEZONE." env:"APP_TIMEZONE" default:"Europe/Madrid"`
}

var CLI struct {
	globalCmd

	Sessions struct {
		Preview previewSessionsCmd `cmd:"" help:"Expand a weekly training rule without saving it."`
	} `cmd:""`

	Formations struct {
		Ls lsFormationsCmd `cmd:"" help:"List formations in the catalog."`
	} `cmd:""`

	Seed seedCmd `cmd:"" help:"Load the demo club into an empty database."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("clubctl"),
		kong.Description("Operator tooling for the club backend."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&CLI.globalCmd)
	ctx.FatalIfErrorf(err)
}

func newLogger() *logging.Logger {
	cfg, err := config.Load()
	if err != nil {
		return logging.NewConsole(logging.LevelInfo)
	}
	return logging.NewConsole(cfg.LogLevel)
}
