package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cantera/internal/domain/player"
)

func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetPlayers")
	defer span.End()

	id, err := queryInt64(r, "id")
	if err != nil {
		h.fail(ctx, w, "parse player id failed", err)
		return
	}
	if id != nil {
		item, err := h.playerService.Get(ctx, *id)
		if err != nil {
			h.fail(ctx, w, "get player failed", err, "player_id", *id)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
		return
	}

	teamID, err := queryInt64(r, "equipoId")
	if err != nil {
		h.fail(ctx, w, "parse team id failed", err)
		return
	}
	items, err := h.playerService.ListByTeam(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "list players failed", err)
		return
	}
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CreatePlayer")
	defer span.End()

	item, err := h.playerFromRequest(r, false)
	if err != nil {
		h.fail(ctx, w, "decode player failed", err)
		return
	}
	created, err := h.playerService.Create(ctx, item)
	if err != nil {
		h.fail(ctx, w, "create player failed", err, "team_id", item.TeamID)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.UpdatePlayer")
	defer span.End()

	item, err := h.playerFromRequest(r, true)
	if err != nil {
		h.fail(ctx, w, "decode player failed", err)
		return
	}
	updated, err := h.playerService.Update(ctx, item)
	if err != nil {
		h.fail(ctx, w, "update player failed", err, "player_id", item.ID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeletePlayer")
	defer span.End()

	id, err := requireInt64(r, "id")
	if err != nil {
		h.fail(ctx, w, "parse player id failed", err)
		return
	}
	if err := h.playerService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete player failed", err, "player_id", id)
		return
	}
	writeOK(ctx, w)
}

func (h *Handler) playerFromRequest(r *http.Request, update bool) (player.Player, error) {
	var req playerRequest
	if err := h.decode(r.Context(), r, &req); err != nil {
		return player.Player{}, err
	}
	birth, err := h.parseDate(req.FechaNacimiento, "fechaNacimiento")
	if err != nil {
		return player.Player{}, err
	}
	item := player.Player{
		TeamID:    req.EquipoID,
		Name:      req.Nombre,
		Position:  req.Posicion,
		Jersey:    req.Dorsal,
		BirthDate: birth,
		Notes:     req.Notas,
	}
	if update {
		id, err := updateID(r, req.ID)
		if err != nil {
			return player.Player{}, err
		}
		item.ID = id
	}
	return item, nil
}
