package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cantera/internal/config"
	"github.com/riskibarqy/cantera/internal/domain/attendance"
	"github.com/riskibarqy/cantera/internal/domain/match"
	"github.com/riskibarqy/cantera/internal/domain/objective"
	"github.com/riskibarqy/cantera/internal/domain/player"
	"github.com/riskibarqy/cantera/internal/domain/rating"
	"github.com/riskibarqy/cantera/internal/domain/scouting"
	"github.com/riskibarqy/cantera/internal/domain/season"
	"github.com/riskibarqy/cantera/internal/domain/team"
	"github.com/riskibarqy/cantera/internal/domain/training"
	"github.com/riskibarqy/cantera/internal/domain/user"
	cacherepo "github.com/riskibarqy/cantera/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/cantera/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cantera/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/cantera/internal/platform/cache"
	"github.com/riskibarqy/cantera/internal/platform/logging"
)

type repositories struct {
	seasons    season.Repository
	teams      team.Repository
	players    player.Repository
	users      user.Repository
	sessions   training.Repository
	attendance attendance.Repository
	ratings    rating.Repository
	objectives objective.Repository
	scouting   scouting.Repository
	matches    match.Repository
	close      func() error
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	var (
		repos repositories
		err   error
	)
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		repos, err = newPostgresRepositories(ctx, cfg, logger)
		if err != nil {
			return repositories{}, err
		}
	default:
		repos = newMemoryRepositories(cfg)
	}

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		repos.seasons = cacherepo.NewSeasonRepository(repos.seasons, store)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
	}
	return repos, nil
}

func newMemoryRepositories(cfg config.Config) repositories {
	var club memory.Club
	if cfg.SeedDemoData {
		club = memory.SeedClub(time.Now(), cfg.Timezone)
	}
	return repositories{
		seasons:    memory.NewSeasonRepository(club.Seasons),
		teams:      memory.NewTeamRepository(club.Teams),
		players:    memory.NewPlayerRepository(club.Players),
		users:      memory.NewUserRepository(club.Users),
		sessions:   memory.NewTrainingRepository(nil),
		attendance: memory.NewAttendanceRepository(nil),
		ratings:    memory.NewRatingRepository(club.Ratings),
		objectives: memory.NewObjectiveRepository(club.Objectives),
		scouting:   memory.NewScoutingRepository(club.Scouting),
		matches:    memory.NewMatchRepository(club.Matches),
		close:      func() error { return nil },
	}
}

func newPostgresRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	db, err := postgres.Connect(ctx, postgres.ConnectOptions{
		URL:                   cfg.DBURL,
		DisablePreparedBinary: cfg.DBDisablePreparedBinary,
	})
	if err != nil {
		return repositories{}, err
	}

	if cfg.SeedDemoData {
		if err := postgres.BootstrapSeed(ctx, db, time.Now(), cfg.Timezone); err != nil {
			_ = db.Close()
			return repositories{}, fmt.Errorf("seed demo data: %w", err)
		}
		logger.Info("demo data ensured", "storage", config.StoragePostgres)
	}

	return postgresRepositories(db), nil
}

func postgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		seasons:    postgres.NewSeasonRepository(db),
		teams:      postgres.NewTeamRepository(db),
		players:    postgres.NewPlayerRepository(db),
		users:      postgres.NewUserRepository(db),
		sessions:   postgres.NewTrainingRepository(db),
		attendance: postgres.NewAttendanceRepository(db),
		ratings:    postgres.NewRatingRepository(db),
		objectives: postgres.NewObjectiveRepository(db),
		scouting:   postgres.NewScoutingRepository(db),
		matches:    postgres.NewMatchRepository(db),
		close:      db.Close,
	}
}
