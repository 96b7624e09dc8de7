package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/riskibarqy/cantera/internal/domain/formation"
)

type lsFormationsCmd struct {
	File string `help:"YAML catalog to read instead of the built-in one." env:"FORMATIONS_FILE" type:"existingfile"`
}

func (c *lsFormationsCmd) Run(g *globalCmd) error {
	catalog := formation.Default()
	if c.File != "" {
		raw, err := os.ReadFile(c.File)
		if err != nil {
			return fmt.Errorf("read formations file: %w", err)
		}
		catalog, err = formation.Parse(raw)
		if err != nil {
			return err
		}
	}
	renderFormations(os.Stdout, catalog)
	return nil
}

func renderFormations(w io.Writer, catalog *formation.Catalog) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Key", "Players", "Positions", "Default"})
	for _, f := range catalog.All() {
		marker := ""
		if f.Key == catalog.DefaultKey() {
			marker = "*"
		}
		t.AppendRow(table.Row{f.Key, len(f.Positions), strings.Join(f.Positions, " "), marker})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
