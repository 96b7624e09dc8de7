package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/riskibarqy/cantera/internal/config"
	"github.com/riskibarqy/cantera/internal/domain/formation"
	"github.com/riskibarqy/cantera/internal/infrastructure/export/xlsx"
	"github.com/riskibarqy/cantera/internal/interfaces/httpapi"
	"github.com/riskibarqy/cantera/internal/platform/cache"
	idgen "github.com/riskibarqy/cantera/internal/platform/id"
	"github.com/riskibarqy/cantera/internal/platform/logging"
	"github.com/riskibarqy/cantera/internal/usecase"
)

// Server is the HTTP server plus the resources it owns.
type Server struct {
	*http.Server
	closeRepos func() error
}

// CloseStorage releases storage once the HTTP server has shut down.
func (s *Server) CloseStorage() error {
	if s.closeRepos == nil {
		return nil
	}
	return s.closeRepos()
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	catalog, err := loadFormations(cfg.FormationsFile)
	if err != nil {
		return nil, err
	}

	repos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	sessionService := usecase.NewSessionService(
		repos.users,
		cache.NewStore(cfg.SessionTTL),
		idgen.NewTokenGenerator("ses_"),
		cfg.SessionTTL,
	)
	services := httpapi.Services{
		Seasons:    usecase.NewSeasonService(repos.seasons),
		Teams:      usecase.NewTeamService(repos.teams, repos.seasons),
		Players:    usecase.NewPlayerService(repos.players, repos.teams),
		Objectives: usecase.NewObjectiveService(repos.objectives, repos.teams, repos.players),
		Scouting:   usecase.NewScoutingService(repos.scouting),
		Ratings:    usecase.NewRatingService(repos.ratings, repos.players),
		Training:   usecase.NewTrainingService(repos.sessions, repos.teams, cfg.Timezone),
		Attendance: usecase.NewAttendanceService(repos.attendance, repos.teams, repos.players, repos.sessions, cfg.Timezone),
		Matches:    usecase.NewMatchService(repos.matches, repos.teams, repos.players),
		Lineups: usecase.NewLineupService(
			repos.matches,
			repos.players,
			usecase.WithFormationCatalog(catalog),
			usecase.WithStrictLineups(cfg.LineupStrictValidation),
		),
		Dashboard: usecase.NewDashboardService(
			repos.teams,
			repos.players,
			repos.attendance,
			repos.ratings,
			repos.objectives,
			repos.matches,
			repos.sessions,
			cfg.DashboardWorkers,
		),
		Sessions: sessionService,
	}

	handler := httpapi.NewHandler(services, xlsx.NewAttendanceExporter(cfg.Timezone), catalog, cfg.Timezone, logger)
	router := httpapi.NewRouter(handler, sessionService, logger, httpapi.RouterOptions{
		ServiceName:        cfg.ServiceName,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		AuthRequired:       cfg.AuthRequired,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	logger.Info("application wired",
		"storage", cfg.StorageDriver,
		"auth_required", cfg.AuthRequired,
		"strict_lineups", cfg.LineupStrictValidation,
		"formations", len(catalog.Keys()),
	)

	return &Server{
		Server: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			ReadHeaderTimeout: 5 * time.Second,
		},
		closeRepos: repos.close,
	}, nil
}

// loadFormations reads a formation catalog from path, falling back to the built-in one.
func loadFormations(path string) (*formation.Catalog, error) {
	if path == "" {
		return formation.Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read formations file: %w", err)
	}
	catalog, err := formation.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse formations file %s: %w", path, err)
	}
	return catalog, nil
}
