package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cantera/internal/domain/rating"
)

func (h *Handler) GetRatings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetRatings")
	defer span.End()

	id, err := queryInt64(r, "id")
	if err != nil {
		h.fail(ctx, w, "parse rating id failed", err)
		return
	}
	if id != nil {
		item, err := h.ratingService.Get(ctx, *id)
		if err != nil {
			h.fail(ctx, w, "get rating failed", err, "rating_id", *id)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, ratingToDTO(item))
		return
	}

	playerID, err := queryInt64(r, "jugadorId")
	if err != nil {
		h.fail(ctx, w, "parse player id failed", err)
		return
	}
	teamID, err := queryInt64(r, "equipoId")
	if err != nil {
		h.fail(ctx, w, "parse team id failed", err)
		return
	}
	items, err := h.ratingService.List(ctx, playerID, teamID)
	if err != nil {
		h.fail(ctx, w, "list ratings failed", err)
		return
	}
	out := make([]ratingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, ratingToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetRatingSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetRatingSummary")
	defer span.End()

	teamID, err := requireInt64(r, "equipoId")
	if err != nil {
		h.fail(ctx, w, "parse team id failed", err)
		return
	}
	summary, err := h.ratingService.Summary(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "rating summary failed", err, "team_id", teamID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, ratingSummaryToDTO(teamID, summary))
}

func (h *Handler) CreateRating(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CreateRating")
	defer span.End()

	item, err := h.ratingFromRequest(r, false)
	if err != nil {
		h.fail(ctx, w, "decode rating failed", err)
		return
	}
	created, err := h.ratingService.Create(ctx, item)
	if err != nil {
		h.fail(ctx, w, "create rating failed", err, "player_id", item.PlayerID)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, ratingToDTO(created))
}

func (h *Handler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.UpdateRating")
	defer span.End()

	item, err := h.ratingFromRequest(r, true)
	if err != nil {
		h.fail(ctx, w, "decode rating failed", err)
		return
	}
	updated, err := h.ratingService.Update(ctx, item)
	if err != nil {
		h.fail(ctx, w, "update rating failed", err, "rating_id", item.ID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, ratingToDTO(updated))
}

func (h *Handler) DeleteRating(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeleteRating")
	defer span.End()

	id, err := requireInt64(r, "id")
	if err != nil {
		h.fail(ctx, w, "parse rating id failed", err)
		return
	}
	if err := h.ratingService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete rating failed", err, "rating_id", id)
		return
	}
	writeOK(ctx, w)
}

func (h *Handler) ratingFromRequest(r *http.Request, update bool) (rating.Rating, error) {
	var req ratingRequest
	if err := h.decode(r.Context(), r, &req); err != nil {
		return rating.Rating{}, err
	}
	date, err := h.parseDate(req.Fecha, "fecha")
	if err != nil {
		return rating.Rating{}, err
	}
	item := rating.Rating{
		PlayerID:  req.JugadorID,
		Technical: req.Tecnica,
		Tactical:  req.Tactica,
		Physical:  req.Fisico,
		Mental:    req.Mental,
		Comment:   req.Comentario,
	}
	if date != nil {
		item.Date = *date
	}
	if update {
		id, err := updateID(r, req.ID)
		if err != nil {
			return rating.Rating{}, err
		}
		item.ID = id
	}
	return item, nil
}
