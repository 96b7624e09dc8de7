package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cantera/internal/domain/training"
)

func (h *Handler) GetTrainingSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetTrainingSessions")
	defer span.End()

	teamID, err := requireInt64(r, "equipoId")
	if err != nil {
		h.fail(ctx, w, "parse team id failed", err)
		return
	}
	from, err := h.queryDate(r, "desde")
	if err != nil {
		h.fail(ctx, w, "parse from date failed", err)
		return
	}
	to, err := h.queryDate(r, "hasta")
	if err != nil {
		h.fail(ctx, w, "parse to date failed", err)
		return
	}
	if to != nil {
		// hasta covers the whole calendar day.
		end := to.AddDate(0, 0, 1).Add(-1)
		to = &end
	}

	items, err := h.trainingService.ListByTeam(ctx, teamID, from, to)
	if err != nil {
		h.fail(ctx, w, "list training sessions failed", err, "team_id", teamID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, trainingSessionsToDTO(items))
}

// CreateTrainingSessions expands a weekly rule into sessions. With preview set
// nothing is stored and the expansion is returned as is.
func (h *Handler) CreateTrainingSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CreateTrainingSessions")
	defer span.End()

	var req recurrenceRequest
	if err := h.decode(ctx, r, &req); err != nil {
		h.fail(ctx, w, "decode recurrence failed", err)
		return
	}

	if req.Preview {
		occurrences, err := h.trainingService.Preview(req.rule())
		if err != nil {
			h.fail(ctx, w, "preview training sessions failed", err, "team_id", req.EquipoID)
			return
		}
		out := make([]trainingSessionDTO, 0, len(occurrences))
		for _, occ := range occurrences {
			out = append(out, trainingSessionToDTO(training.Session{TeamID: req.EquipoID, Start: occ.Start, End: occ.End}))
		}
		writeSuccess(ctx, w, http.StatusOK, out)
		return
	}

	items, err := h.trainingService.CreateFromRule(ctx, req.EquipoID, req.rule())
	if err != nil {
		h.fail(ctx, w, "create training sessions failed", err, "team_id", req.EquipoID)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, trainingSessionsToDTO(items))
}

func (h *Handler) DeleteTrainingSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeleteTrainingSession")
	defer span.End()

	id, err := requireInt64(r, "id")
	if err != nil {
		h.fail(ctx, w, "parse session id failed", err)
		return
	}
	if err := h.trainingService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete training session failed", err, "session_id", id)
		return
	}
	writeOK(ctx, w)
}

func trainingSessionsToDTO(items []training.Session) []trainingSessionDTO {
	out := make([]trainingSessionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, trainingSessionToDTO(item))
	}
	return out
}
