package httpapi

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/riskibarqy/cantera/internal/domain/attendance"
	"github.com/riskibarqy/cantera/internal/usecase"
)

func (h *Handler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetAttendance")
	defer span.End()

	key, err := h.attendanceKeyFromQuery(r)
	if err != nil {
		h.fail(ctx, w, "parse attendance key failed", err)
		return
	}
	sheet, err := h.attendanceService.Get(ctx, key)
	if err != nil {
		h.fail(ctx, w, "get attendance failed", err, "team_id", key.TeamID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, attendanceSheetToDTO(sheet))
}

// SaveAttendance replaces the whole attendance sheet of a session or date.
func (h *Handler) SaveAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.SaveAttendance")
	defer span.End()

	var req attendanceRequest
	if err := h.decode(ctx, r, &req); err != nil {
		h.fail(ctx, w, "decode attendance failed", err)
		return
	}
	date, err := h.parseDate(req.Fecha, "fecha")
	if err != nil {
		h.fail(ctx, w, "parse attendance date failed", err)
		return
	}

	records := make([]attendance.Record, 0, len(req.Registros))
	for _, item := range req.Registros {
		records = append(records, attendance.Record{PlayerID: item.JugadorID, Attended: item.Asistio})
	}
	sheet, err := h.attendanceService.Save(ctx, attendance.Sheet{
		Key:     attendance.Key{TeamID: req.EquipoID, SessionID: req.SesionID, Date: date},
		Records: records,
	})
	if err != nil {
		h.fail(ctx, w, "save attendance failed", err, "team_id", req.EquipoID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, attendanceSheetToDTO(sheet))
}

func (h *Handler) GetAttendanceStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetAttendanceStats")
	defer span.End()

	teamID, err := requireInt64(r, "equipoId")
	if err != nil {
		h.fail(ctx, w, "parse team id failed", err)
		return
	}
	stats, err := h.attendanceService.Stats(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "attendance stats failed", err, "team_id", teamID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, attendanceStatsToDTO(stats))
}

func (h *Handler) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ExportAttendance")
	defer span.End()

	if h.exporter == nil {
		writeError(ctx, w, fmt.Errorf("%w: exportación no configurada", usecase.ErrDependencyUnavailable))
		return
	}
	teamID, err := requireInt64(r, "equipoId")
	if err != nil {
		h.fail(ctx, w, "parse team id failed", err)
		return
	}
	report, err := h.attendanceService.Report(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "attendance report failed", err, "team_id", teamID)
		return
	}

	var buf bytes.Buffer
	if err := h.exporter.Export(ctx, &buf, report); err != nil {
		h.fail(ctx, w, "export attendance failed", err, "team_id", teamID)
		return
	}

	filename := "asistencia-equipo-" + strconv.FormatInt(teamID, 10) + h.exporter.FileExtension()
	w.Header().Set("Content-Type", h.exporter.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.WarnContext(ctx, "write attendance export failed", "team_id", teamID, "error", err)
	}
}

func (h *Handler) attendanceKeyFromQuery(r *http.Request) (attendance.Key, error) {
	teamID, err := requireInt64(r, "equipoId")
	if err != nil {
		return attendance.Key{}, err
	}
	sessionID, err := queryInt64(r, "sesionId")
	if err != nil {
		return attendance.Key{}, err
	}
	date, err := h.queryDate(r, "fecha")
	if err != nil {
		return attendance.Key{}, err
	}
	return attendance.Key{TeamID: teamID, SessionID: sessionID, Date: date}, nil
}
