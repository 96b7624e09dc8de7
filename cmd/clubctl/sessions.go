package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/riskibarqy/cantera/internal/domain/training"
)

type previewSessionsCmd struct {
	From  string `arg:"" help:"First day, YYYY-MM-DD."`
	To    string `help:"Last day, YYYY-MM-DD. Defaults to the first day."`
	Days  []int  `help:"Weekdays to include, 0 is Sunday." default:"1,3"`
	Start string `help:"Start time, HH:MM." default:"18:00"`
	End   string `help:"End time, HH:MM."`
}

func (c *previewSessionsCmd) Run(g *globalCmd) error {
	loc, err := g.location()
	if err != nil {
		return err
	}
	rule := training.Rule{
		StartDate:  c.From,
		EndDate:    c.To,
		DaysOfWeek: c.Days,
		StartTime:  c.Start,
		EndTime:    c.End,
	}
	occurrences := training.Expand(rule, loc)
	if len(occurrences) == 0 {
		return fmt.Errorf("rule produced no sessions")
	}
	renderOccurrences(os.Stdout, occurrences)
	return nil
}

func (g *globalCmd) location() (*time.Location, error) {
	loc, err := time.LoadLocation(g.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", g.Timezone, err)
	}
	return loc, nil
}

func renderOccurrences(w io.Writer, occurrences []training.Occurrence) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Day", "Date", "Start", "End"})
	for i, occ := range occurrences {
		end := "-"
		if occ.End != nil {
			end = occ.End.Format("15:04")
		}
		t.AppendRow(table.Row{i + 1, occ.Start.Weekday().String(), occ.Start.Format("2006-01-02"), occ.Start.Format("15:04"), end})
	}
	t.AppendFooter(table.Row{"", "", "Total", len(occurrences), ""})
	t.SetStyle(table.StyleLight)
	t.Render()
}
