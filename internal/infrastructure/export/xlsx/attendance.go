package xlsx

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/attendance"
	"github.com/riskibarqy/cantera/internal/usecase"
	excelize "github.com/xuri/excelize/v2"
	"go.opentelemetry.io/otel"
)

const (
	summarySheet = "Resumen"
	matrixSheet  = "Sesiones"
	columnLayout = "02/01/2006"
)

var tracer = otel.Tracer("cantera/internal/infrastructure/export/xlsx")

// AttendanceExporter writes team attendance as an Excel workbook with a per-player
// summary and a player by session matrix.
type AttendanceExporter struct {
	location *time.Location
}

func NewAttendanceExporter(location *time.Location) *AttendanceExporter {
	if location == nil {
		location = time.Local
	}
	return &AttendanceExporter{location: location}
}

func (e *AttendanceExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *AttendanceExporter) FileExtension() string {
	return ".xlsx"
}

func (e *AttendanceExporter) Export(ctx context.Context, w io.Writer, report usecase.AttendanceReport) error {
	_, span := tracer.Start(ctx, "xlsx.AttendanceExporter.Export")
	defer span.End()

	book := excelize.NewFile()
	defer func() { _ = book.Close() }()

	if err := book.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	if _, err := book.NewSheet(matrixSheet); err != nil {
		return fmt.Errorf("create matrix sheet: %w", err)
	}

	header, err := book.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := e.writeSummary(book, header, report); err != nil {
		return err
	}
	if err := e.writeMatrix(book, header, report); err != nil {
		return err
	}

	if _, err := book.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

type playerRow struct {
	id     int64
	name   string
	jersey string
}

// rosterRows lists the current roster followed by players that only appear in old sheets.
func rosterRows(report usecase.AttendanceReport) []playerRow {
	rows := make([]playerRow, 0, len(report.Players))
	known := make(map[int64]struct{}, len(report.Players))
	for _, p := range report.Players {
		row := playerRow{id: p.ID, name: p.Name}
		if p.Jersey != nil {
			row.jersey = strconv.Itoa(*p.Jersey)
		}
		rows = append(rows, row)
		known[p.ID] = struct{}{}
	}
	for _, s := range report.Stats.Players {
		if _, ok := known[s.PlayerID]; ok {
			continue
		}
		rows = append(rows, playerRow{id: s.PlayerID, name: "Jugador " + strconv.FormatInt(s.PlayerID, 10)})
	}
	return rows
}

func (e *AttendanceExporter) writeSummary(book *excelize.File, header int, report usecase.AttendanceReport) error {
	headers := []any{"Jugador", "Dorsal", "Asistencias", "Sesiones", "Porcentaje"}
	if err := book.SetSheetRow(summarySheet, "A1", &headers); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	if err := book.SetCellStyle(summarySheet, "A1", "E1", header); err != nil {
		return fmt.Errorf("style summary header: %w", err)
	}

	byPlayer := make(map[int64]attendance.PlayerSummary, len(report.Stats.Players))
	for _, s := range report.Stats.Players {
		byPlayer[s.PlayerID] = s
	}

	row := 2
	for _, p := range rosterRows(report) {
		s := byPlayer[p.id]
		values := []any{p.name, p.jersey, s.Attended, s.Total, s.Percentage}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := book.SetSheetRow(summarySheet, cell, &values); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
		row++
	}

	totals := []any{report.Team.Name, "", "", report.Stats.Sheets, report.Stats.Percentage}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := book.SetSheetRow(summarySheet, cell, &totals); err != nil {
		return fmt.Errorf("write summary totals: %w", err)
	}
	if err := book.SetColWidth(summarySheet, "A", "A", 28); err != nil {
		return fmt.Errorf("size summary columns: %w", err)
	}
	return nil
}

type sheetColumn struct {
	label string
	at    time.Time
	marks map[int64]bool
}

func (e *AttendanceExporter) columns(report usecase.AttendanceReport) []sheetColumn {
	starts := make(map[int64]time.Time, len(report.Sessions))
	for _, s := range report.Sessions {
		starts[s.ID] = s.Start
	}

	out := make([]sheetColumn, 0, len(report.Sheets))
	for _, sheet := range report.Sheets {
		col := sheetColumn{marks: make(map[int64]bool, len(sheet.Records))}
		switch {
		case sheet.Key.Date != nil:
			col.at = *sheet.Key.Date
			col.label = col.at.In(e.location).Format(columnLayout)
		case sheet.Key.SessionID != nil:
			if start, ok := starts[*sheet.Key.SessionID]; ok {
				col.at = start
				col.label = start.In(e.location).Format(columnLayout + " 15:04")
			} else {
				col.label = "Sesión " + strconv.FormatInt(*sheet.Key.SessionID, 10)
			}
		}
		for _, r := range sheet.Records {
			col.marks[r.PlayerID] = r.Attended
		}
		out = append(out, col)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].at.Before(out[j].at)
	})
	return out
}

func (e *AttendanceExporter) writeMatrix(book *excelize.File, header int, report usecase.AttendanceReport) error {
	columns := e.columns(report)

	headers := make([]any, 0, len(columns)+1)
	headers = append(headers, "Jugador")
	for _, c := range columns {
		headers = append(headers, c.label)
	}
	if err := book.SetSheetRow(matrixSheet, "A1", &headers); err != nil {
		return fmt.Errorf("write matrix header: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := book.SetCellStyle(matrixSheet, "A1", last, header); err != nil {
		return fmt.Errorf("style matrix header: %w", err)
	}

	row := 2
	for _, p := range rosterRows(report) {
		values := make([]any, 0, len(columns)+1)
		values = append(values, p.name)
		for _, c := range columns {
			attended, marked := c.marks[p.id]
			switch {
			case !marked:
				values = append(values, "")
			case attended:
				values = append(values, "Sí")
			default:
				values = append(values, "No")
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := book.SetSheetRow(matrixSheet, cell, &values); err != nil {
			return fmt.Errorf("write matrix row: %w", err)
		}
		row++
	}
	if err := book.SetColWidth(matrixSheet, "A", "A", 28); err != nil {
		return fmt.Errorf("size matrix columns: %w", err)
	}
	return nil
}
