package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cantera/internal/domain/season"
	"github.com/riskibarqy/cantera/internal/domain/team"
)

func (h *Handler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetSeasons")
	defer span.End()

	id, err := queryInt64(r, "id")
	if err != nil {
		h.fail(ctx, w, "parse season id failed", err)
		return
	}
	if id != nil {
		item, err := h.seasonService.Get(ctx, *id)
		if err != nil {
			h.fail(ctx, w, "get season failed", err, "season_id", *id)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
		return
	}

	items, err := h.seasonService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list seasons failed", err)
		return
	}
	out := make([]seasonDTO, 0, len(items))
	for _, item := range items {
		out = append(out, seasonToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CreateSeason")
	defer span.End()

	item, err := h.seasonFromRequest(r, false)
	if err != nil {
		h.fail(ctx, w, "decode season failed", err)
		return
	}
	created, err := h.seasonService.Create(ctx, item)
	if err != nil {
		h.fail(ctx, w, "create season failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, seasonToDTO(created))
}

func (h *Handler) UpdateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.UpdateSeason")
	defer span.End()

	item, err := h.seasonFromRequest(r, true)
	if err != nil {
		h.fail(ctx, w, "decode season failed", err)
		return
	}
	updated, err := h.seasonService.Update(ctx, item)
	if err != nil {
		h.fail(ctx, w, "update season failed", err, "season_id", item.ID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(updated))
}

func (h *Handler) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeleteSeason")
	defer span.End()

	id, err := requireInt64(r, "id")
	if err != nil {
		h.fail(ctx, w, "parse season id failed", err)
		return
	}
	if err := h.seasonService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete season failed", err, "season_id", id)
		return
	}
	writeOK(ctx, w)
}

func (h *Handler) seasonFromRequest(r *http.Request, update bool) (season.Season, error) {
	var req seasonRequest
	if err := h.decode(r.Context(), r, &req); err != nil {
		return season.Season{}, err
	}
	item := season.Season{Name: req.Nombre, Active: req.Activa}
	if update {
		id, err := updateID(r, req.ID)
		if err != nil {
			return season.Season{}, err
		}
		item.ID = id
	}
	start, err := h.parseDate(req.Inicio, "inicio")
	if err != nil {
		return season.Season{}, err
	}
	end, err := h.parseDate(req.Fin, "fin")
	if err != nil {
		return season.Season{}, err
	}
	if start != nil {
		item.Start = *start
	}
	if end != nil {
		item.End = *end
	}
	return item, nil
}

func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetTeams")
	defer span.End()

	id, err := queryInt64(r, "id")
	if err != nil {
		h.fail(ctx, w, "parse team id failed", err)
		return
	}
	if id != nil {
		item, err := h.teamService.Get(ctx, *id)
		if err != nil {
			h.fail(ctx, w, "get team failed", err, "team_id", *id)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
		return
	}

	seasonID, err := queryInt64(r, "temporadaId")
	if err != nil {
		h.fail(ctx, w, "parse season id failed", err)
		return
	}
	items, err := h.teamService.List(ctx, seasonID)
	if err != nil {
		h.fail(ctx, w, "list teams failed", err)
		return
	}
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CreateTeam")
	defer span.End()

	item, err := h.teamFromRequest(r, false)
	if err != nil {
		h.fail(ctx, w, "decode team failed", err)
		return
	}
	created, err := h.teamService.Create(ctx, item)
	if err != nil {
		h.fail(ctx, w, "create team failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.UpdateTeam")
	defer span.End()

	item, err := h.teamFromRequest(r, true)
	if err != nil {
		h.fail(ctx, w, "decode team failed", err)
		return
	}
	updated, err := h.teamService.Update(ctx, item)
	if err != nil {
		h.fail(ctx, w, "update team failed", err, "team_id", item.ID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamToDTO(updated))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeleteTeam")
	defer span.End()

	id, err := requireInt64(r, "id")
	if err != nil {
		h.fail(ctx, w, "parse team id failed", err)
		return
	}
	if err := h.teamService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete team failed", err, "team_id", id)
		return
	}
	writeOK(ctx, w)
}

func (h *Handler) teamFromRequest(r *http.Request, update bool) (team.Team, error) {
	var req teamRequest
	if err := h.decode(r.Context(), r, &req); err != nil {
		return team.Team{}, err
	}
	item := team.Team{
		Name:     req.Nombre,
		Category: req.Categoria,
		SeasonID: req.TemporadaID,
		Coach:    req.Entrenador,
	}
	if update {
		id, err := updateID(r, req.ID)
		if err != nil {
			return team.Team{}, err
		}
		item.ID = id
	}
	return item, nil
}
