package httpapi

import (
	"strconv"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/attendance"
	"github.com/riskibarqy/cantera/internal/domain/lineup"
	"github.com/riskibarqy/cantera/internal/domain/match"
	"github.com/riskibarqy/cantera/internal/domain/objective"
	"github.com/riskibarqy/cantera/internal/domain/player"
	"github.com/riskibarqy/cantera/internal/domain/rating"
	"github.com/riskibarqy/cantera/internal/domain/scouting"
	"github.com/riskibarqy/cantera/internal/domain/season"
	"github.com/riskibarqy/cantera/internal/domain/team"
	"github.com/riskibarqy/cantera/internal/domain/training"
	"github.com/riskibarqy/cantera/internal/usecase"
)

type loginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
}

type sessionDTO struct {
	Token   string       `json:"token"`
	Usuario principalDTO `json:"usuario"`
}

type principalDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Nombre   string `json:"nombre"`
	EquipoID *int64 `json:"equipoId,omitempty"`
	ExpiraEn string `json:"expiraEn,omitempty"`
}

func principalToDTO(p usecase.Principal) principalDTO {
	out := principalDTO{
		ID:       p.UserID,
		Username: p.Username,
		Nombre:   p.Name,
		EquipoID: p.TeamID,
	}
	if !p.ExpiresAt.IsZero() {
		out.ExpiraEn = p.ExpiresAt.Format(time.RFC3339)
	}
	return out
}

type formationDTO struct {
	Clave      string   `json:"clave"`
	Posiciones []string `json:"posiciones"`
}

type seasonRequest struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre" validate:"required,max=50"`
	Inicio string `json:"inicio"`
	Fin    string `json:"fin"`
	Activa bool   `json:"activa"`
}

type seasonDTO struct {
	ID     int64   `json:"id"`
	Nombre string  `json:"nombre"`
	Inicio *string `json:"inicio"`
	Fin    *string `json:"fin"`
	Activa bool    `json:"activa"`
}

func seasonToDTO(s season.Season) seasonDTO {
	return seasonDTO{
		ID:     s.ID,
		Nombre: s.Name,
		Inicio: formatDate(&s.Start),
		Fin:    formatDate(&s.End),
		Activa: s.Active,
	}
}

type teamRequest struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre" validate:"required,max=100"`
	Categoria   string `json:"categoria" validate:"max=50"`
	TemporadaID *int64 `json:"temporadaId"`
	Entrenador  string `json:"entrenador" validate:"max=100"`
}

type teamDTO struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Categoria   string `json:"categoria"`
	TemporadaID *int64 `json:"temporadaId"`
	Entrenador  string `json:"entrenador,omitempty"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:          t.ID,
		Nombre:      t.Name,
		Categoria:   t.Category,
		TemporadaID: t.SeasonID,
		Entrenador:  t.Coach,
	}
}

type playerRequest struct {
	ID              int64  `json:"id"`
	Nombre          string `json:"nombre" validate:"required,max=100"`
	Posicion        string `json:"posicion" validate:"max=30"`
	Dorsal          *int   `json:"dorsal" validate:"omitempty,min=0,max=99"`
	EquipoID        int64  `json:"equipoId" validate:"required,gt=0"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Notas           string `json:"notas"`
}

type playerDTO struct {
	ID              int64   `json:"id"`
	Nombre          string  `json:"nombre"`
	Posicion        string  `json:"posicion"`
	Dorsal          *int    `json:"dorsal"`
	EquipoID        int64   `json:"equipoId"`
	FechaNacimiento *string `json:"fechaNacimiento,omitempty"`
	Notas           string  `json:"notas,omitempty"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:              p.ID,
		Nombre:          p.Name,
		Posicion:        p.Position,
		Dorsal:          p.Jersey,
		EquipoID:        p.TeamID,
		FechaNacimiento: formatDate(p.BirthDate),
		Notas:           p.Notes,
	}
}

type objectiveRequest struct {
	ID          int64  `json:"id"`
	EquipoID    int64  `json:"equipoId" validate:"required,gt=0"`
	JugadorID   *int64 `json:"jugadorId"`
	Titulo      string `json:"titulo" validate:"required,max=150"`
	Descripcion string `json:"descripcion"`
	Progreso    int    `json:"progreso" validate:"min=0,max=100"`
	FechaLimite string `json:"fechaLimite"`
}

type objectiveDTO struct {
	ID          int64   `json:"id"`
	EquipoID    int64   `json:"equipoId"`
	JugadorID   *int64  `json:"jugadorId"`
	Titulo      string  `json:"titulo"`
	Descripcion string  `json:"descripcion"`
	Progreso    int     `json:"progreso"`
	FechaLimite *string `json:"fechaLimite"`
	Completado  bool    `json:"completado"`
}

func objectiveToDTO(o objective.Objective) objectiveDTO {
	return objectiveDTO{
		ID:          o.ID,
		EquipoID:    o.TeamID,
		JugadorID:   o.PlayerID,
		Titulo:      o.Title,
		Descripcion: o.Description,
		Progreso:    o.Progress,
		FechaLimite: formatDate(o.DueDate),
		Completado:  o.Completed(),
	}
}

type scoutingRequest struct {
	ID              int64   `json:"id"`
	EquipoID        *int64  `json:"equipoId"`
	Nombre          string  `json:"nombre" validate:"required,max=100"`
	Club            string  `json:"club" validate:"max=100"`
	Posicion        string  `json:"posicion" validate:"max=30"`
	FechaNacimiento string  `json:"fechaNacimiento"`
	Valoracion      float64 `json:"valoracion" validate:"min=0,max=10"`
	Notas           string  `json:"notas"`
	Fecha           string  `json:"fecha"`
}

type scoutingDTO struct {
	ID              int64   `json:"id"`
	EquipoID        *int64  `json:"equipoId"`
	Nombre          string  `json:"nombre"`
	Club            string  `json:"club"`
	Posicion        string  `json:"posicion"`
	FechaNacimiento *string `json:"fechaNacimiento"`
	Valoracion      float64 `json:"valoracion"`
	Notas           string  `json:"notas"`
	Fecha           *string `json:"fecha"`
}

func scoutingToDTO(s scouting.Report) scoutingDTO {
	return scoutingDTO{
		ID:              s.ID,
		EquipoID:        s.TeamID,
		Nombre:          s.Name,
		Club:            s.Club,
		Posicion:        s.Position,
		FechaNacimiento: formatDate(s.BirthDate),
		Valoracion:      s.Score,
		Notas:           s.Notes,
		Fecha:           formatDate(&s.Date),
	}
}

type ratingRequest struct {
	ID         int64   `json:"id"`
	JugadorID  int64   `json:"jugadorId" validate:"required,gt=0"`
	Fecha      string  `json:"fecha"`
	Tecnica    float64 `json:"tecnica" validate:"min=0,max=10"`
	Tactica    float64 `json:"tactica" validate:"min=0,max=10"`
	Fisico     float64 `json:"fisico" validate:"min=0,max=10"`
	Mental     float64 `json:"mental" validate:"min=0,max=10"`
	Comentario string  `json:"comentario"`
}

type ratingDTO struct {
	ID         int64   `json:"id"`
	JugadorID  int64   `json:"jugadorId"`
	Fecha      *string `json:"fecha"`
	Tecnica    float64 `json:"tecnica"`
	Tactica    float64 `json:"tactica"`
	Fisico     float64 `json:"fisico"`
	Mental     float64 `json:"mental"`
	Comentario string  `json:"comentario"`
	Media      *string `json:"media"`
}

func ratingToDTO(r rating.Rating) ratingDTO {
	out := ratingDTO{
		ID:         r.ID,
		JugadorID:  r.PlayerID,
		Fecha:      formatDate(&r.Date),
		Tecnica:    r.Technical,
		Tactica:    r.Tactical,
		Fisico:     r.Physical,
		Mental:     r.Mental,
		Comentario: r.Comment,
	}
	if avg, ok := rating.RecordAverage(r); ok {
		s := strconv.FormatFloat(avg, 'f', 1, 64)
		out.Media = &s
	}
	return out
}

type ratingSummaryDTO struct {
	EquipoID        int64             `json:"equipoId"`
	Media           string            `json:"media"`
	Valorados       int               `json:"valorados"`
	Total           int               `json:"total"`
	MediaPorJugador map[string]string `json:"mediaPorJugador"`
}

func ratingSummaryToDTO(teamID int64, s usecase.RatingSummary) ratingSummaryDTO {
	perPlayer := make(map[string]string, len(s.PlayerAverage))
	for id, avg := range s.PlayerAverage {
		perPlayer[strconv.FormatInt(id, 10)] = avg
	}
	return ratingSummaryDTO{
		EquipoID:        teamID,
		Media:           s.Average,
		Valorados:       s.RatedRecords,
		Total:           s.TotalRecords,
		MediaPorJugador: perPlayer,
	}
}

type recurrenceRequest struct {
	EquipoID   int64  `json:"equipoId" validate:"required,gt=0"`
	StartDate  string `json:"startDate" validate:"required"`
	EndDate    string `json:"endDate"`
	DaysOfWeek []int  `json:"daysOfWeek" validate:"required,min=1"`
	StartTime  string `json:"startTime" validate:"required"`
	EndTime    string `json:"endTime"`
	Preview    bool   `json:"preview"`
}

func (r recurrenceRequest) rule() training.Rule {
	return training.Rule{
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		DaysOfWeek: r.DaysOfWeek,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
	}
}

type trainingSessionDTO struct {
	ID       int64   `json:"id,omitempty"`
	EquipoID int64   `json:"equipoId"`
	Inicio   *string `json:"inicio"`
	Fin      *string `json:"fin"`
}

func trainingSessionToDTO(s training.Session) trainingSessionDTO {
	return trainingSessionDTO{
		ID:       s.ID,
		EquipoID: s.TeamID,
		Inicio:   formatTimestamp(&s.Start),
		Fin:      formatTimestamp(s.End),
	}
}

type attendanceRecordDTO struct {
	JugadorID int64 `json:"jugadorId" validate:"required,gt=0"`
	Asistio   bool  `json:"asistio"`
}

type attendanceRequest struct {
	EquipoID  int64                 `json:"equipoId" validate:"required,gt=0"`
	SesionID  *int64                `json:"sesionId"`
	Fecha     string                `json:"fecha"`
	Registros []attendanceRecordDTO `json:"registros" validate:"dive"`
}

type attendanceSheetDTO struct {
	EquipoID    int64                 `json:"equipoId"`
	SesionID    *int64                `json:"sesionId,omitempty"`
	Fecha       *string               `json:"fecha,omitempty"`
	Registros   []attendanceRecordDTO `json:"registros"`
	Porcentaje  int                   `json:"porcentaje"`
	Actualizado *string               `json:"actualizado,omitempty"`
}

func attendanceSheetToDTO(s attendance.Sheet) attendanceSheetDTO {
	records := make([]attendanceRecordDTO, 0, len(s.Records))
	for _, r := range s.Records {
		records = append(records, attendanceRecordDTO{JugadorID: r.PlayerID, Asistio: r.Attended})
	}
	return attendanceSheetDTO{
		EquipoID:    s.Key.TeamID,
		SesionID:    s.Key.SessionID,
		Fecha:       formatDate(s.Key.Date),
		Registros:   records,
		Porcentaje:  attendance.Percentage(s.Records),
		Actualizado: formatTimestamp(&s.UpdatedAt),
	}
}

type attendancePlayerDTO struct {
	JugadorID   int64 `json:"jugadorId"`
	Asistencias int   `json:"asistencias"`
	Total       int   `json:"total"`
	Porcentaje  int   `json:"porcentaje"`
}

type attendanceStatsDTO struct {
	EquipoID   int64                 `json:"equipoId"`
	Sesiones   int                   `json:"sesiones"`
	Porcentaje int                   `json:"porcentaje"`
	Jugadores  []attendancePlayerDTO `json:"jugadores"`
}

func attendanceStatsToDTO(s usecase.AttendanceStats) attendanceStatsDTO {
	players := make([]attendancePlayerDTO, 0, len(s.Players))
	for _, p := range s.Players {
		players = append(players, attendancePlayerDTO{
			JugadorID:   p.PlayerID,
			Asistencias: p.Attended,
			Total:       p.Total,
			Porcentaje:  p.Percentage,
		})
	}
	return attendanceStatsDTO{
		EquipoID:   s.TeamID,
		Sesiones:   s.Sheets,
		Porcentaje: s.Percentage,
		Jugadores:  players,
	}
}

type matchRequest struct {
	ID          int64  `json:"id"`
	EquipoID    int64  `json:"equipoId" validate:"required,gt=0"`
	TemporadaID *int64 `json:"temporadaId"`
	Rival       string `json:"rival" validate:"required,max=100"`
	Local       bool   `json:"local"`
	Campo       string `json:"campo" validate:"max=150"`
	Inicio      string `json:"inicio" validate:"required"`
	NotasRival  string `json:"notasRival"`
	GolesContra int    `json:"golesContra" validate:"min=0"`
}

type playerSlotDTO struct {
	JugadorID      int64      `json:"jugadorId"`
	Rol            match.Role `json:"rol"`
	Posicion       string     `json:"posicion,omitempty"`
	Dorsal         *int       `json:"dorsal"`
	Minutos        int        `json:"minutos"`
	PorteriaCero   *bool      `json:"porteriaCero,omitempty"`
	GolesEncajados *int       `json:"golesEncajados,omitempty"`
}

type eventDTO struct {
	ID             int64           `json:"id"`
	Minuto         int             `json:"minuto"`
	Periodo        match.Period    `json:"periodo"`
	MinutoRelativo int             `json:"minutoRelativo"`
	Tipo           match.EventType `json:"tipo"`
	JugadorID      *int64          `json:"jugadorId"`
	Nota           string          `json:"nota,omitempty"`
	Metadata       map[string]any  `json:"metadata,omitempty"`
}

type matchDTO struct {
	ID          int64           `json:"id"`
	EquipoID    int64           `json:"equipoId"`
	TemporadaID *int64          `json:"temporadaId"`
	Rival       string          `json:"rival"`
	Local       bool            `json:"local"`
	Campo       string          `json:"campo"`
	Inicio      *string         `json:"inicio"`
	Alineacion  []playerSlotDTO `json:"alineacion"`
	Eventos     []eventDTO      `json:"eventos"`
	NotasRival  string          `json:"notasRival"`
	Finalizado  bool            `json:"finalizado"`
	GolesFavor  int             `json:"golesFavor"`
	GolesContra int             `json:"golesContra"`
}

func slotsToDTO(slots []match.PlayerSlot) []playerSlotDTO {
	out := make([]playerSlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, playerSlotDTO{
			JugadorID:      s.PlayerID,
			Rol:            s.Role,
			Posicion:       s.Position,
			Dorsal:         s.Jersey,
			Minutos:        s.Minutes,
			PorteriaCero:   s.CleanSheet,
			GolesEncajados: s.GoalsConceded,
		})
	}
	return out
}

func eventToDTO(ev match.Event) eventDTO {
	timing := ev.Timing()
	return eventDTO{
		ID:             ev.ID,
		Minuto:         timing.Absolute,
		Periodo:        timing.Period,
		MinutoRelativo: timing.Relative,
		Tipo:           ev.Type,
		JugadorID:      ev.PlayerID,
		Nota:           ev.Note,
		Metadata:       ev.Metadata,
	}
}

func matchToDTO(m match.Match) matchDTO {
	events := make([]eventDTO, 0, len(m.Events))
	for _, ev := range match.SortTimeline(m.Events) {
		events = append(events, eventToDTO(ev))
	}
	return matchDTO{
		ID:          m.ID,
		EquipoID:    m.TeamID,
		TemporadaID: m.SeasonID,
		Rival:       m.Opponent,
		Local:       m.Home,
		Campo:       m.Venue,
		Inicio:      formatTimestamp(&m.Kickoff),
		Alineacion:  slotsToDTO(m.Lineup),
		Eventos:     events,
		NotasRival:  m.OpponentNotes,
		Finalizado:  m.Finished,
		GolesFavor:  m.GoalsFor,
		GolesContra: m.GoalsAgainst,
	}
}

type eventRequest struct {
	PartidoID      int64           `json:"partidoId" validate:"required,gt=0"`
	Tipo           match.EventType `json:"tipo" validate:"required"`
	JugadorID      *int64          `json:"jugadorId"`
	Periodo        string          `json:"periodo"`
	MinutoRelativo *int            `json:"minutoRelativo"`
	Minuto         *int            `json:"minuto"`
	Nota           string          `json:"nota" validate:"max=500"`
}

type lineupRequest struct {
	PartidoID     int64          `json:"partidoId" validate:"required,gt=0"`
	Formacion     string         `json:"formacion"`
	Titulares     []int64        `json:"titulares"`
	Suplentes     []int64        `json:"suplentes"`
	NoDisponibles []int64        `json:"noDisponibles"`
	Posiciones    []string       `json:"posiciones"`
	Inicio        string         `json:"inicio"`
	Minutos       map[string]int `json:"minutos"`
}

type lineupDTO struct {
	PartidoID  int64           `json:"partidoId"`
	Formacion  string          `json:"formacion"`
	Posiciones []string        `json:"posiciones"`
	Alineacion []playerSlotDTO `json:"alineacion"`
	Inicio     *string         `json:"inicio"`
	Finalizado bool            `json:"finalizado"`
}

func lineupViewToDTO(v usecase.LineupView) lineupDTO {
	positions := v.Positions
	if positions == nil {
		positions = []string{}
	}
	return lineupDTO{
		PartidoID:  v.Match.ID,
		Formacion:  v.Formation,
		Posiciones: positions,
		Alineacion: slotsToDTO(v.Match.Lineup),
		Inicio:     formatTimestamp(&v.Match.Kickoff),
		Finalizado: v.Match.Finished,
	}
}

type ignoredAssignmentDTO struct {
	Posicion  string              `json:"posicion"`
	JugadorID string              `json:"jugadorId"`
	Motivo    lineup.IgnoreReason `json:"motivo"`
}

type lineupResultDTO struct {
	lineupDTO
	Ignoradas             []ignoredAssignmentDTO `json:"ignoradas"`
	JugadoresDesconocidos []int64                `json:"jugadoresDesconocidos"`
	Excedentes            []int64                `json:"excedentes"`
}

func lineupResultToDTO(res usecase.LineupResult) lineupResultDTO {
	ignored := make([]ignoredAssignmentDTO, 0, len(res.Ignored))
	for _, ig := range res.Ignored {
		ignored = append(ignored, ignoredAssignmentDTO{Posicion: ig.Position, JugadorID: ig.PlayerID, Motivo: ig.Reason})
	}
	unknown := res.UnknownPlayers
	if unknown == nil {
		unknown = []int64{}
	}
	overflow := res.Overflow
	if overflow == nil {
		overflow = []int64{}
	}
	return lineupResultDTO{
		lineupDTO:             lineupViewToDTO(res.LineupView),
		Ignoradas:             ignored,
		JugadoresDesconocidos: unknown,
		Excedentes:            overflow,
	}
}

type dashboardDTO struct {
	Equipo               teamDTO             `json:"equipo"`
	Jugadores            int                 `json:"jugadores"`
	Asistencia           int                 `json:"asistencia"`
	ValoracionMedia      string              `json:"valoracionMedia"`
	ObjetivosCompletados int                 `json:"objetivosCompletados"`
	ProximoPartido       *matchDTO           `json:"proximoPartido"`
	ProximaSesion        *trainingSessionDTO `json:"proximaSesion"`
}

func dashboardToDTO(d usecase.Dashboard) dashboardDTO {
	out := dashboardDTO{
		Equipo:               teamToDTO(d.Team),
		Jugadores:            d.Players,
		Asistencia:           d.AttendancePercentage,
		ValoracionMedia:      d.RatingAverage,
		ObjetivosCompletados: d.ObjectivesCompleted,
	}
	if d.NextMatch != nil {
		m := matchToDTO(*d.NextMatch)
		out.ProximoPartido = &m
	}
	if d.NextSession != nil {
		s := trainingSessionToDTO(*d.NextSession)
		out.ProximaSesion = &s
	}
	return out
}
