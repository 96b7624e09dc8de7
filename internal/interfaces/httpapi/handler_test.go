package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/formation"
	"github.com/riskibarqy/cantera/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cantera/internal/platform/cache"
	"github.com/riskibarqy/cantera/internal/platform/id"
	"github.com/riskibarqy/cantera/internal/platform/logging"
	"github.com/riskibarqy/cantera/internal/usecase"
	"github.com/stretchr/testify/require"
)

type stubExporter struct {
	teams []int64
}

func (e *stubExporter) ContentType() string   { return "text/csv" }
func (e *stubExporter) FileExtension() string { return ".csv" }

func (e *stubExporter) Export(_ context.Context, w io.Writer, report usecase.AttendanceReport) error {
	e.teams = append(e.teams, report.Team.ID)
	_, err := io.WriteString(w, "jugador,asistencias\n")
	return err
}

type testServer struct {
	router   http.Handler
	exporter *stubExporter
}

func newTestServer(t *testing.T, authRequired bool) *testServer {
	t.Helper()

	club := memory.SeedClub(time.Now(), time.UTC)
	seasons := memory.NewSeasonRepository(club.Seasons)
	teams := memory.NewTeamRepository(club.Teams)
	players := memory.NewPlayerRepository(club.Players)
	users := memory.NewUserRepository(club.Users)
	matches := memory.NewMatchRepository(club.Matches)
	ratings := memory.NewRatingRepository(club.Ratings)
	objectives := memory.NewObjectiveRepository(club.Objectives)
	reports := memory.NewScoutingRepository(club.Scouting)
	sessions := memory.NewTrainingRepository(nil)
	sheets := memory.NewAttendanceRepository(nil)
	catalog := formation.Default()

	sessionService := usecase.NewSessionService(users, cache.NewStore(time.Hour), id.NewTokenGenerator(""), time.Hour)
	services := Services{
		Seasons:    usecase.NewSeasonService(seasons),
		Teams:      usecase.NewTeamService(teams, seasons),
		Players:    usecase.NewPlayerService(players, teams),
		Objectives: usecase.NewObjectiveService(objectives, teams, players),
		Scouting:   usecase.NewScoutingService(reports),
		Ratings:    usecase.NewRatingService(ratings, players),
		Training:   usecase.NewTrainingService(sessions, teams, time.UTC),
		Attendance: usecase.NewAttendanceService(sheets, teams, players, sessions, time.UTC),
		Matches:    usecase.NewMatchService(matches, teams, players),
		Lineups:    usecase.NewLineupService(matches, players, usecase.WithFormationCatalog(catalog)),
		Dashboard:  usecase.NewDashboardService(teams, players, sheets, ratings, objectives, matches, sessions, 2),
		Sessions:   sessionService,
	}
	exporter := &stubExporter{}
	handler := NewHandler(services, exporter, catalog, time.UTC, logging.NewNop())

	return &testServer{
		router: NewRouter(handler, sessionService, logging.NewNop(), RouterOptions{
			ServiceName:    "cantera-test",
			SwaggerEnabled: true,
			AuthRequired:   authRequired,
		}),
		exporter: exporter,
	}
}

func (s *testServer) do(t *testing.T, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestRouter_Healthz(t *testing.T) {
	srv := newTestServer(t, true)

	rec := srv.do(t, http.MethodGet, "/healthz", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decodeBody[map[string]string](t, rec)["status"])
}

func TestRouter_OpenAPIServed(t *testing.T) {
	srv := newTestServer(t, true)

	rec := srv.do(t, http.MethodGet, "/openapi.yaml", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "/v1/matches/lineup")

	rec = srv.do(t, http.MethodGet, "/docs", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "url: '/openapi.yaml'")
}

func TestOpenAPI_DocumentsEveryRouteFamily(t *testing.T) {
	spec := string(openAPISpec)
	for _, path := range []string{
		"/v1/login", "/v1/me", "/v1/formations", "/v1/seasons", "/v1/teams", "/v1/players",
		"/v1/objectives", "/v1/scouting", "/v1/ratings/summary", "/v1/training-sessions",
		"/v1/attendance/stats", "/v1/attendance/export", "/v1/matches/finish",
		"/v1/matches/events", "/v1/dashboard/season",
	} {
		require.Contains(t, spec, "  "+path+":", path)
	}
}

func TestRouter_LoginFlow(t *testing.T) {
	srv := newTestServer(t, true)

	rec := srv.do(t, http.MethodGet, "/v1/teams", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotEmpty(t, decodeBody[errorResponse](t, rec).Error)

	rec = srv.do(t, http.MethodPost, "/v1/login", `{"username":"desconocido"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodPost, "/v1/login", `{"username":" Marta "}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	session := decodeBody[sessionDTO](t, rec)
	require.NotEmpty(t, session.Token)
	require.Equal(t, "marta", session.Usuario.Username)

	rec = srv.do(t, http.MethodGet, "/v1/me", "", session.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decodeBody[principalDTO](t, rec)
	require.NotNil(t, me.EquipoID)
	require.Equal(t, memory.SeedTeamAlevinID, *me.EquipoID)

	rec = srv.do(t, http.MethodGet, "/v1/teams", "", session.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody[[]teamDTO](t, rec), 2)

	rec = srv.do(t, http.MethodPost, "/v1/logout", "", session.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodGet, "/v1/me", "", session.Token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_SessionTokenHeader(t *testing.T) {
	srv := newTestServer(t, true)

	rec := srv.do(t, http.MethodPost, "/v1/login", `{"username":"jorge"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeBody[sessionDTO](t, rec).Token

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set(sessionTokenHeader, token)
	out := httptest.NewRecorder()
	srv.router.ServeHTTP(out, req)

	require.Equal(t, http.StatusOK, out.Code)
	dashboard := decodeBody[dashboardDTO](t, out)
	require.Equal(t, memory.SeedTeamInfantilID, dashboard.Equipo.ID)
	require.Equal(t, 8, dashboard.Jugadores)
	require.NotNil(t, dashboard.ProximoPartido)
}

func TestRouter_ReadPolicies(t *testing.T) {
	srv := newTestServer(t, false)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{name: "team by id", target: "/v1/teams?id=1", status: http.StatusOK},
		{name: "unknown team", target: "/v1/teams?id=99", status: http.StatusNotFound},
		{name: "malformed id", target: "/v1/teams?id=abc", status: http.StatusBadRequest},
		{name: "players of unknown team", target: "/v1/players?equipoId=99", status: http.StatusOK},
		{name: "unknown match", target: "/v1/matches?id=42", status: http.StatusNotFound},
		{name: "sessions need team", target: "/v1/training-sessions", status: http.StatusBadRequest},
		{name: "dashboard without team", target: "/v1/dashboard", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodGet, tt.target, "", "")
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}

	rec := srv.do(t, http.MethodGet, "/v1/players?equipoId=99", "", "")
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestRouter_PlayerCRUD(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodPost, "/v1/players", `{"equipoId":1}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/v1/players", `{"nombre":"Nuevo","equipoId":1,"campoRaro":true}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/v1/players", `{"nombre":"Nuevo","posicion":"st","dorsal":20,"equipoId":1,"fechaNacimiento":"2014-05-02"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[playerDTO](t, rec)
	require.NotZero(t, created.ID)
	require.NotNil(t, created.FechaNacimiento)
	require.Equal(t, "2014-05-02", *created.FechaNacimiento)

	rec = srv.do(t, http.MethodPut, "/v1/players?id="+itoa(created.ID), `{"nombre":"Renombrado","equipoId":1}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "Renombrado", decodeBody[playerDTO](t, rec).Nombre)

	rec = srv.do(t, http.MethodDelete, "/v1/players?id="+itoa(created.ID), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, `{"ok":true}`, strings.TrimSpace(rec.Body.String()))

	rec = srv.do(t, http.MethodDelete, "/v1/players?id="+itoa(created.ID), "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_LineupLifecycle(t *testing.T) {
	srv := newTestServer(t, false)

	body := `{"partidoId":1,"formacion":"4-3-3","titulares":[1,2,3,12],"suplentes":[13],` +
		`"noDisponibles":[99],"posiciones":["GK:12","LB:abc"],"inicio":"2030-05-04T10:30:00Z","minutos":{"12":60}}`
	rec := srv.do(t, http.MethodPut, "/v1/matches/lineup", body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := decodeBody[lineupResultDTO](t, rec)
	require.Equal(t, "4-3-3", res.Formacion)
	require.Equal(t, []int64{99}, res.JugadoresDesconocidos)
	require.Len(t, res.Ignoradas, 1)
	require.NotNil(t, res.Inicio)
	require.Equal(t, "2030-05-04T10:30:00Z", *res.Inicio)

	byPlayer := map[int64]playerSlotDTO{}
	for _, slot := range res.Alineacion {
		byPlayer[slot.JugadorID] = slot
	}
	require.Equal(t, "GK", byPlayer[12].Posicion)
	require.Equal(t, 60, byPlayer[12].Minutos)
	require.Equal(t, "bench", string(byPlayer[13].Rol))

	rec = srv.do(t, http.MethodPost, "/v1/matches/events", `{"partidoId":1,"tipo":"goal","jugadorId":2,"periodo":"second","minutoRelativo":5}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	m := decodeBody[matchDTO](t, rec)
	require.Equal(t, 1, m.GolesFavor)
	require.Len(t, m.Eventos, 1)
	require.Equal(t, 45, m.Eventos[0].Minuto)

	rec = srv.do(t, http.MethodPost, "/v1/matches/finish?id=1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decodeBody[matchDTO](t, rec).Finalizado)

	rec = srv.do(t, http.MethodPut, "/v1/matches/lineup", `{"partidoId":1,"titulares":[1]}`, "")
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodDelete, "/v1/matches/events?partidoId=1&id=1", "", "")
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouter_LineupRejectsBadMinutesKey(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodPut, "/v1/matches/lineup", `{"partidoId":1,"titulares":[1],"minutos":{"uno":10}}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_TrainingSessions(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodPost, "/v1/training-sessions",
		`{"equipoId":1,"startDate":"2025-01-06","endDate":"2025-01-07","daysOfWeek":[5],"startTime":"18:00"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/v1/training-sessions",
		`{"equipoId":1,"startDate":"2025-01-06","endDate":"2025-01-12","daysOfWeek":[1,3],"startTime":"18:00","endTime":"19:30","preview":true}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, decodeBody[[]trainingSessionDTO](t, rec), 2)

	rec = srv.do(t, http.MethodGet, "/v1/training-sessions?equipoId=1", "", "")
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = srv.do(t, http.MethodPost, "/v1/training-sessions",
		`{"equipoId":1,"startDate":"2025-01-06","endDate":"2025-01-12","daysOfWeek":[1,3],"startTime":"18:00","endTime":"19:30"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[[]trainingSessionDTO](t, rec)
	require.Len(t, created, 2)
	require.NotNil(t, created[0].Inicio)
	require.Equal(t, "2025-01-06T18:00:00Z", *created[0].Inicio)

	rec = srv.do(t, http.MethodGet, "/v1/training-sessions?equipoId=1&desde=2025-01-08&hasta=2025-01-08", "", "")
	require.Len(t, decodeBody[[]trainingSessionDTO](t, rec), 1)
}

func TestRouter_AttendanceAndExport(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodGet, "/v1/attendance?equipoId=1&fecha=2025-02-03", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeBody[attendanceSheetDTO](t, rec).Registros)

	rec = srv.do(t, http.MethodPost, "/v1/attendance",
		`{"equipoId":1,"fecha":"2025-02-03","registros":[{"jugadorId":1,"asistio":true},{"jugadorId":2,"asistio":false}]}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, 50, decodeBody[attendanceSheetDTO](t, rec).Porcentaje)

	rec = srv.do(t, http.MethodPost, "/v1/attendance",
		`{"equipoId":1,"fecha":"2025-02-03","registros":[{"jugadorId":14,"asistio":true}]}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/v1/attendance/stats?equipoId=1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody[attendanceStatsDTO](t, rec)
	require.Equal(t, 1, stats.Sesiones)
	require.Equal(t, 50, stats.Porcentaje)

	rec = srv.do(t, http.MethodGet, "/v1/attendance/export?equipoId=1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "asistencia-equipo-1.csv")
	require.Equal(t, []int64{1}, srv.exporter.teams)
}

func TestRouter_Formations(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodGet, "/v1/formations", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeBody[[]formationDTO](t, rec)
	require.NotEmpty(t, items)
	require.Equal(t, "4-3-3", items[0].Clave)
	require.Len(t, items[0].Posiciones, 11)
}

func TestParseAssignments(t *testing.T) {
	got := parseAssignments([]string{"GK:12", "lb:7", "ST", ":3"})

	require.Equal(t, "GK", got[0].Position)
	require.Equal(t, "12", got[0].PlayerID)
	require.Equal(t, "lb", got[1].Position)
	require.Equal(t, "ST", got[2].Position)
	require.Empty(t, got[2].PlayerID)
	require.Empty(t, got[3].Position)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
