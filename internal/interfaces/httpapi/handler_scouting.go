package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cantera/internal/domain/scouting"
)

func (h *Handler) GetScoutingReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetScoutingReports")
	defer span.End()

	id, err := queryInt64(r, "id")
	if err != nil {
		h.fail(ctx, w, "parse scouting id failed", err)
		return
	}
	if id != nil {
		item, err := h.scoutingService.Get(ctx, *id)
		if err != nil {
			h.fail(ctx, w, "get scouting report failed", err, "report_id", *id)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, scoutingToDTO(item))
		return
	}

	items, err := h.scoutingService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list scouting reports failed", err)
		return
	}
	out := make([]scoutingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, scoutingToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateScoutingReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CreateScoutingReport")
	defer span.End()

	item, err := h.scoutingFromRequest(r, false)
	if err != nil {
		h.fail(ctx, w, "decode scouting report failed", err)
		return
	}
	created, err := h.scoutingService.Create(ctx, item)
	if err != nil {
		h.fail(ctx, w, "create scouting report failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, scoutingToDTO(created))
}

func (h *Handler) UpdateScoutingReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.UpdateScoutingReport")
	defer span.End()

	item, err := h.scoutingFromRequest(r, true)
	if err != nil {
		h.fail(ctx, w, "decode scouting report failed", err)
		return
	}
	updated, err := h.scoutingService.Update(ctx, item)
	if err != nil {
		h.fail(ctx, w, "update scouting report failed", err, "report_id", item.ID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, scoutingToDTO(updated))
}

func (h *Handler) DeleteScoutingReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeleteScoutingReport")
	defer span.End()

	id, err := requireInt64(r, "id")
	if err != nil {
		h.fail(ctx, w, "parse scouting id failed", err)
		return
	}
	if err := h.scoutingService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete scouting report failed", err, "report_id", id)
		return
	}
	writeOK(ctx, w)
}

func (h *Handler) scoutingFromRequest(r *http.Request, update bool) (scouting.Report, error) {
	var req scoutingRequest
	if err := h.decode(r.Context(), r, &req); err != nil {
		return scouting.Report{}, err
	}
	birth, err := h.parseDate(req.FechaNacimiento, "fechaNacimiento")
	if err != nil {
		return scouting.Report{}, err
	}
	date, err := h.parseDate(req.Fecha, "fecha")
	if err != nil {
		return scouting.Report{}, err
	}
	item := scouting.Report{
		TeamID:    req.EquipoID,
		Name:      req.Nombre,
		Club:      req.Club,
		Position:  req.Posicion,
		BirthDate: birth,
		Score:     req.Valoracion,
		Notes:     req.Notas,
	}
	if date != nil {
		item.Date = *date
	}
	if update {
		id, err := updateID(r, req.ID)
		if err != nil {
			return scouting.Report{}, err
		}
		item.ID = id
	}
	return item, nil
}
