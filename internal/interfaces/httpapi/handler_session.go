package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/cantera/internal/usecase"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := h.decode(ctx, r, &req); err != nil {
		h.fail(ctx, w, "decode login request failed", err)
		return
	}

	session, err := h.sessionService.Login(ctx, req.Username)
	if err != nil {
		h.fail(ctx, w, "login failed", err, "username", req.Username)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionDTO{
		Token:   session.Token,
		Usuario: principalToDTO(session.Principal),
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.Logout")
	defer span.End()

	if token := tokenFromContext(ctx); token != "" {
		h.sessionService.Logout(ctx, token)
	}
	writeOK(ctx, w)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.Me")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no hay sesión activa", usecase.ErrUnauthorized))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, principalToDTO(principal))
}

func (h *Handler) ListFormations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListFormations")
	defer span.End()

	all := h.formations.All()
	items := make([]formationDTO, 0, len(all))
	for _, f := range all {
		items = append(items, formationDTO{Clave: f.Key, Posiciones: f.Positions})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
