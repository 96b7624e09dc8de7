package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/cantera/internal/domain/lineup"
	"github.com/riskibarqy/cantera/internal/domain/match"
	"github.com/riskibarqy/cantera/internal/usecase"
)

func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetMatches")
	defer span.End()

	id, err := queryInt64(r, "id")
	if err != nil {
		h.fail(ctx, w, "parse match id failed", err)
		return
	}
	if id != nil {
		item, err := h.matchService.Get(ctx, *id)
		if err != nil {
			h.fail(ctx, w, "get match failed", err, "match_id", *id)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
		return
	}

	var filter match.ListFilter
	if filter.TeamID, err = queryInt64(r, "equipoId"); err != nil {
		h.fail(ctx, w, "parse team id failed", err)
		return
	}
	if filter.SeasonID, err = queryInt64(r, "temporadaId"); err != nil {
		h.fail(ctx, w, "parse season id failed", err)
		return
	}
	items, err := h.matchService.List(ctx, filter)
	if err != nil {
		h.fail(ctx, w, "list matches failed", err)
		return
	}
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CreateMatch")
	defer span.End()

	item, err := h.matchFromRequest(r, false)
	if err != nil {
		h.fail(ctx, w, "decode match failed", err)
		return
	}
	created, err := h.matchService.Create(ctx, item)
	if err != nil {
		h.fail(ctx, w, "create match failed", err, "team_id", item.TeamID)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.UpdateMatch")
	defer span.End()

	item, err := h.matchFromRequest(r, true)
	if err != nil {
		h.fail(ctx, w, "decode match failed", err)
		return
	}
	updated, err := h.matchService.Update(ctx, item)
	if err != nil {
		h.fail(ctx, w, "update match failed", err, "match_id", item.ID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeleteMatch")
	defer span.End()

	id, err := requireInt64(r, "id")
	if err != nil {
		h.fail(ctx, w, "parse match id failed", err)
		return
	}
	if err := h.matchService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete match failed", err, "match_id", id)
		return
	}
	writeOK(ctx, w)
}

func (h *Handler) FinishMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.FinishMatch")
	defer span.End()

	id, err := requireInt64(r, "id")
	if err != nil {
		h.fail(ctx, w, "parse match id failed", err)
		return
	}
	item, err := h.matchService.Finish(ctx, id)
	if err != nil {
		h.fail(ctx, w, "finish match failed", err, "match_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) AddMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.AddMatchEvent")
	defer span.End()

	var req eventRequest
	if err := h.decode(ctx, r, &req); err != nil {
		h.fail(ctx, w, "decode match event failed", err)
		return
	}
	item, err := h.matchService.AddEvent(ctx, req.PartidoID, usecase.EventInput{
		Type:           req.Tipo,
		PlayerID:       req.JugadorID,
		Period:         req.Periodo,
		RelativeMinute: req.MinutoRelativo,
		Minute:         req.Minuto,
		Note:           req.Nota,
	})
	if err != nil {
		h.fail(ctx, w, "add match event failed", err, "match_id", req.PartidoID)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) DeleteMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeleteMatchEvent")
	defer span.End()

	matchID, err := requireInt64(r, "partidoId")
	if err != nil {
		h.fail(ctx, w, "parse match id failed", err)
		return
	}
	eventID, err := requireInt64(r, "id")
	if err != nil {
		h.fail(ctx, w, "parse event id failed", err)
		return
	}
	item, err := h.matchService.DeleteEvent(ctx, matchID, eventID)
	if err != nil {
		h.fail(ctx, w, "delete match event failed", err, "match_id", matchID, "event_id", eventID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) GetLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetLineup")
	defer span.End()

	matchID, err := requireInt64(r, "partidoId")
	if err != nil {
		h.fail(ctx, w, "parse match id failed", err)
		return
	}
	view, err := h.lineupService.Get(ctx, matchID)
	if err != nil {
		h.fail(ctx, w, "get lineup failed", err, "match_id", matchID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, lineupViewToDTO(view))
}

// SaveLineup replaces the whole lineup of a match, optionally moving its kickoff in
// the same write.
func (h *Handler) SaveLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.SaveLineup")
	defer span.End()

	var req lineupRequest
	if err := h.decode(ctx, r, &req); err != nil {
		h.fail(ctx, w, "decode lineup failed", err)
		return
	}
	in, err := h.lineupInput(req)
	if err != nil {
		h.fail(ctx, w, "parse lineup failed", err, "match_id", req.PartidoID)
		return
	}

	res, err := h.lineupService.Save(ctx, in)
	if err != nil {
		h.fail(ctx, w, "save lineup failed", err, "match_id", req.PartidoID)
		return
	}
	if len(res.Ignored) > 0 || len(res.UnknownPlayers) > 0 {
		h.logger.InfoContext(ctx, "lineup saved with corrections",
			"match_id", req.PartidoID,
			"ignored", len(res.Ignored),
			"unknown_players", len(res.UnknownPlayers),
			"overflow", len(res.Overflow),
		)
	}
	writeSuccess(ctx, w, http.StatusOK, lineupResultToDTO(res))
}

func (h *Handler) lineupInput(req lineupRequest) (usecase.LineupInput, error) {
	kickoff, err := h.parseTimestamp(req.Inicio, "inicio")
	if err != nil {
		return usecase.LineupInput{}, err
	}
	in := usecase.LineupInput{
		MatchID:     req.PartidoID,
		Formation:   req.Formacion,
		Starters:    req.Titulares,
		Bench:       req.Suplentes,
		Unavailable: req.NoDisponibles,
		Assignments: parseAssignments(req.Posiciones),
		Kickoff:     kickoff,
	}
	if len(req.Minutos) > 0 {
		in.Minutes = make(map[int64]int, len(req.Minutos))
		for rawID, minutes := range req.Minutos {
			playerID, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
			if err != nil || playerID <= 0 {
				return usecase.LineupInput{}, fmt.Errorf("%w: minutos contiene un jugador no válido %q", usecase.ErrInvalidInput, rawID)
			}
			in.Minutes[playerID] = minutes
		}
	}
	return in, nil
}

// parseAssignments splits "POS:playerId" entries. The player id stays raw.
func parseAssignments(raw []string) []lineup.Assignment {
	out := make([]lineup.Assignment, 0, len(raw))
	for _, entry := range raw {
		position, playerID, _ := strings.Cut(entry, ":")
		out = append(out, lineup.Assignment{Position: position, PlayerID: playerID})
	}
	return out
}

func (h *Handler) matchFromRequest(r *http.Request, update bool) (match.Match, error) {
	var req matchRequest
	if err := h.decode(r.Context(), r, &req); err != nil {
		return match.Match{}, err
	}
	kickoff, err := h.parseTimestamp(req.Inicio, "inicio")
	if err != nil {
		return match.Match{}, err
	}
	item := match.Match{
		TeamID:        req.EquipoID,
		SeasonID:      req.TemporadaID,
		Opponent:      req.Rival,
		Home:          req.Local,
		Venue:         req.Campo,
		OpponentNotes: req.NotasRival,
		GoalsAgainst:  req.GolesContra,
	}
	if kickoff != nil {
		item.Kickoff = *kickoff
	}
	if update {
		id, err := updateID(r, req.ID)
		if err != nil {
			return match.Match{}, err
		}
		item.ID = id
	}
	return item, nil
}
