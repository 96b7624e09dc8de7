package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/cantera/internal/usecase"
)

var errMissingTeam = fmt.Errorf("%w: falta el parámetro equipoId", usecase.ErrInvalidInput)

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetDashboard")
	defer span.End()

	teamID, err := queryInt64(r, "equipoId")
	if err != nil {
		h.fail(ctx, w, "parse team id failed", err)
		return
	}
	if teamID == nil {
		if principal, ok := principalFromContext(ctx); ok && principal.TeamID != nil {
			teamID = principal.TeamID
		}
	}
	if teamID == nil {
		h.fail(ctx, w, "dashboard without team", errMissingTeam)
		return
	}

	dashboard, err := h.dashboardService.Get(ctx, *teamID)
	if err != nil {
		h.fail(ctx, w, "get dashboard failed", err, "team_id", *teamID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(dashboard))
}

func (h *Handler) GetSeasonDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetSeasonDashboard")
	defer span.End()

	seasonID, err := requireInt64(r, "temporadaId")
	if err != nil {
		h.fail(ctx, w, "parse season id failed", err)
		return
	}
	items, err := h.dashboardService.Season(ctx, seasonID)
	if err != nil {
		h.fail(ctx, w, "get season dashboard failed", err, "season_id", seasonID)
		return
	}
	out := make([]dashboardDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dashboardToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
