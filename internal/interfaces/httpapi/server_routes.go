package httpapi

import "net/http"

type authWrapper func(http.HandlerFunc) http.Handler

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerSessionRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	mux.HandleFunc("POST /v1/login", handler.Login)
	if verifier == nil {
		mux.HandleFunc("POST /v1/logout", handler.Logout)
		mux.HandleFunc("GET /v1/me", handler.Me)
		return
	}
	// logout and me always need the session, even with auth disabled.
	mux.Handle("POST /v1/logout", RequireAuth(verifier, http.HandlerFunc(handler.Logout)))
	mux.Handle("GET /v1/me", RequireAuth(verifier, http.HandlerFunc(handler.Me)))
}

func registerClubRoutes(mux *http.ServeMux, handler *Handler, auth authWrapper) {
	mux.Handle("GET /v1/formations", auth(handler.ListFormations))

	mux.Handle("GET /v1/seasons", auth(handler.GetSeasons))
	mux.Handle("POST /v1/seasons", auth(handler.CreateSeason))
	mux.Handle("PUT /v1/seasons", auth(handler.UpdateSeason))
	mux.Handle("DELETE /v1/seasons", auth(handler.DeleteSeason))

	mux.Handle("GET /v1/teams", auth(handler.GetTeams))
	mux.Handle("POST /v1/teams", auth(handler.CreateTeam))
	mux.Handle("PUT /v1/teams", auth(handler.UpdateTeam))
	mux.Handle("DELETE /v1/teams", auth(handler.DeleteTeam))

	mux.Handle("GET /v1/scouting", auth(handler.GetScoutingReports))
	mux.Handle("POST /v1/scouting", auth(handler.CreateScoutingReport))
	mux.Handle("PUT /v1/scouting", auth(handler.UpdateScoutingReport))
	mux.Handle("DELETE /v1/scouting", auth(handler.DeleteScoutingReport))
}

func registerRosterRoutes(mux *http.ServeMux, handler *Handler, auth authWrapper) {
	mux.Handle("GET /v1/players", auth(handler.GetPlayers))
	mux.Handle("POST /v1/players", auth(handler.CreatePlayer))
	mux.Handle("PUT /v1/players", auth(handler.UpdatePlayer))
	mux.Handle("DELETE /v1/players", auth(handler.DeletePlayer))

	mux.Handle("GET /v1/objectives", auth(handler.GetObjectives))
	mux.Handle("POST /v1/objectives", auth(handler.CreateObjective))
	mux.Handle("PUT /v1/objectives", auth(handler.UpdateObjective))
	mux.Handle("DELETE /v1/objectives", auth(handler.DeleteObjective))

	mux.Handle("GET /v1/ratings", auth(handler.GetRatings))
	mux.Handle("GET /v1/ratings/summary", auth(handler.GetRatingSummary))
	mux.Handle("POST /v1/ratings", auth(handler.CreateRating))
	mux.Handle("PUT /v1/ratings", auth(handler.UpdateRating))
	mux.Handle("DELETE /v1/ratings", auth(handler.DeleteRating))

	mux.Handle("GET /v1/training-sessions", auth(handler.GetTrainingSessions))
	mux.Handle("POST /v1/training-sessions", auth(handler.CreateTrainingSessions))
	mux.Handle("DELETE /v1/training-sessions", auth(handler.DeleteTrainingSession))

	mux.Handle("GET /v1/attendance", auth(handler.GetAttendance))
	mux.Handle("POST /v1/attendance", auth(handler.SaveAttendance))
	mux.Handle("GET /v1/attendance/stats", auth(handler.GetAttendanceStats))
	mux.Handle("GET /v1/attendance/export", auth(handler.ExportAttendance))
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler, auth authWrapper) {
	mux.Handle("GET /v1/matches", auth(handler.GetMatches))
	mux.Handle("POST /v1/matches", auth(handler.CreateMatch))
	mux.Handle("PUT /v1/matches", auth(handler.UpdateMatch))
	mux.Handle("DELETE /v1/matches", auth(handler.DeleteMatch))
	mux.Handle("POST /v1/matches/finish", auth(handler.FinishMatch))

	mux.Handle("GET /v1/matches/lineup", auth(handler.GetLineup))
	mux.Handle("PUT /v1/matches/lineup", auth(handler.SaveLineup))

	mux.Handle("POST /v1/matches/events", auth(handler.AddMatchEvent))
	mux.Handle("DELETE /v1/matches/events", auth(handler.DeleteMatchEvent))
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler, auth authWrapper) {
	mux.Handle("GET /v1/dashboard", auth(handler.GetDashboard))
	mux.Handle("GET /v1/dashboard/season", auth(handler.GetSeasonDashboard))
}
