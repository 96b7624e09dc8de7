package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/cantera/internal/domain/formation"
	"github.com/riskibarqy/cantera/internal/platform/logging"
	"github.com/riskibarqy/cantera/internal/usecase"
)

const (
	dateLayout   = "2006-01-02"
	maxBodyBytes = 1 << 20
)

// AttendanceExporter renders a team attendance report as a downloadable file.
type AttendanceExporter interface {
	ContentType() string
	FileExtension() string
	Export(ctx context.Context, w io.Writer, report usecase.AttendanceReport) error
}

// Services groups the use cases exposed over HTTP.
type Services struct {
	Seasons    *usecase.SeasonService
	Teams      *usecase.TeamService
	Players    *usecase.PlayerService
	Objectives *usecase.ObjectiveService
	Scouting   *usecase.ScoutingService
	Ratings    *usecase.RatingService
	Training   *usecase.TrainingService
	Attendance *usecase.AttendanceService
	Matches    *usecase.MatchService
	Lineups    *usecase.LineupService
	Dashboard  *usecase.DashboardService
	Sessions   *usecase.SessionService
}

type Handler struct {
	seasonService     *usecase.SeasonService
	teamService       *usecase.TeamService
	playerService     *usecase.PlayerService
	objectiveService  *usecase.ObjectiveService
	scoutingService   *usecase.ScoutingService
	ratingService     *usecase.RatingService
	trainingService   *usecase.TrainingService
	attendanceService *usecase.AttendanceService
	matchService      *usecase.MatchService
	lineupService     *usecase.LineupService
	dashboardService  *usecase.DashboardService
	sessionService    *usecase.SessionService
	exporter          AttendanceExporter
	formations        *formation.Catalog
	location          *time.Location
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	services Services,
	exporter AttendanceExporter,
	formations *formation.Catalog,
	location *time.Location,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if formations == nil {
		formations = formation.Default()
	}
	if location == nil {
		location = time.Local
	}

	return &Handler{
		seasonService:     services.Seasons,
		teamService:       services.Teams,
		playerService:     services.Players,
		objectiveService:  services.Objectives,
		scoutingService:   services.Scouting,
		ratingService:     services.Ratings,
		trainingService:   services.Training,
		attendanceService: services.Attendance,
		matchService:      services.Matches,
		lineupService:     services.Lineups,
		dashboardService:  services.Dashboard,
		sessionService:    services.Sessions,
		exporter:          exporter,
		formations:        formations,
		location:          location,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// fail logs a failed request and writes the mapped error response.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(err) >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}

func (h *Handler) decode(ctx context.Context, r *http.Request, dst any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decode")
	defer span.End()

	decoder := jsoniter.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: cuerpo JSON no válido: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validación fallida: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) parseDate(raw, field string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, h.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe tener el formato AAAA-MM-DD", usecase.ErrInvalidInput, field)
	}
	return &t, nil
}

func (h *Handler) parseTimestamp(raw, field string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe ser una fecha RFC 3339", usecase.ErrInvalidInput, field)
	}
	return &t, nil
}

func (h *Handler) queryDate(r *http.Request, name string) (*time.Time, error) {
	return h.parseDate(r.URL.Query().Get(name), name)
}

func queryInt64(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, fmt.Errorf("%w: %s debe ser un identificador válido", usecase.ErrInvalidInput, name)
	}
	return &v, nil
}

func requireInt64(r *http.Request, name string) (int64, error) {
	v, err := queryInt64(r, name)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, fmt.Errorf("%w: falta el parámetro %s", usecase.ErrInvalidInput, name)
	}
	return *v, nil
}

func formatDate(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func formatTimestamp(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// updateID takes the entity id from ?id= and falls back to the request body. Both
// present must agree.
func updateID(r *http.Request, bodyID int64) (int64, error) {
	id, err := queryInt64(r, "id")
	if err != nil {
		return 0, err
	}
	if id != nil {
		if bodyID > 0 && bodyID != *id {
			return 0, fmt.Errorf("%w: el id del cuerpo no coincide con ?id=", usecase.ErrInvalidInput)
		}
		return *id, nil
	}
	if bodyID <= 0 {
		return 0, fmt.Errorf("%w: falta el parámetro id", usecase.ErrInvalidInput)
	}
	return bodyID, nil
}
