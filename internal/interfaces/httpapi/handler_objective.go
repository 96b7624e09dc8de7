package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cantera/internal/domain/objective"
)

func (h *Handler) GetObjectives(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetObjectives")
	defer span.End()

	id, err := queryInt64(r, "id")
	if err != nil {
		h.fail(ctx, w, "parse objective id failed", err)
		return
	}
	if id != nil {
		item, err := h.objectiveService.Get(ctx, *id)
		if err != nil {
			h.fail(ctx, w, "get objective failed", err, "objective_id", *id)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, objectiveToDTO(item))
		return
	}

	var filter objective.ListFilter
	if filter.TeamID, err = queryInt64(r, "equipoId"); err != nil {
		h.fail(ctx, w, "parse team id failed", err)
		return
	}
	if filter.PlayerID, err = queryInt64(r, "jugadorId"); err != nil {
		h.fail(ctx, w, "parse player id failed", err)
		return
	}
	items, err := h.objectiveService.List(ctx, filter)
	if err != nil {
		h.fail(ctx, w, "list objectives failed", err)
		return
	}
	out := make([]objectiveDTO, 0, len(items))
	for _, item := range items {
		out = append(out, objectiveToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateObjective(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CreateObjective")
	defer span.End()

	item, err := h.objectiveFromRequest(r, false)
	if err != nil {
		h.fail(ctx, w, "decode objective failed", err)
		return
	}
	created, err := h.objectiveService.Create(ctx, item)
	if err != nil {
		h.fail(ctx, w, "create objective failed", err, "team_id", item.TeamID)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, objectiveToDTO(created))
}

func (h *Handler) UpdateObjective(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.UpdateObjective")
	defer span.End()

	item, err := h.objectiveFromRequest(r, true)
	if err != nil {
		h.fail(ctx, w, "decode objective failed", err)
		return
	}
	updated, err := h.objectiveService.Update(ctx, item)
	if err != nil {
		h.fail(ctx, w, "update objective failed", err, "objective_id", item.ID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, objectiveToDTO(updated))
}

func (h *Handler) DeleteObjective(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeleteObjective")
	defer span.End()

	id, err := requireInt64(r, "id")
	if err != nil {
		h.fail(ctx, w, "parse objective id failed", err)
		return
	}
	if err := h.objectiveService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete objective failed", err, "objective_id", id)
		return
	}
	writeOK(ctx, w)
}

func (h *Handler) objectiveFromRequest(r *http.Request, update bool) (objective.Objective, error) {
	var req objectiveRequest
	if err := h.decode(r.Context(), r, &req); err != nil {
		return objective.Objective{}, err
	}
	due, err := h.parseDate(req.FechaLimite, "fechaLimite")
	if err != nil {
		return objective.Objective{}, err
	}
	item := objective.Objective{
		TeamID:      req.EquipoID,
		PlayerID:    req.JugadorID,
		Title:       req.Titulo,
		Description: req.Descripcion,
		Progress:    req.Progreso,
		DueDate:     due,
	}
	if update {
		id, err := updateID(r, req.ID)
		if err != nil {
			return objective.Objective{}, err
		}
		item.ID = id
	}
	return item, nil
}
