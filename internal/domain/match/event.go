package match

// EventType classifies a match event.
type EventType string

const (
	EventGoal   EventType = "goal"
	EventYellow EventType = "yellow"
	EventRed    EventType = "red"
	EventOther  EventType = "other"
)

func (t EventType) Valid() bool {
	switch t {
	case EventGoal, EventYellow, EventRed, EventOther:
		return true
	default:
		return false
	}
}

// Event is a timeline entry. Minute is absolute. Metadata carries the period and
// per-period minute for events recorded with them.
type Event struct {
	ID       int64
	Minute   int
	Type     EventType
	PlayerID *int64
	Note     string
	Metadata map[string]any
}

func (e Event) Stored() StoredEvent {
	return DecodeStoredEvent(e.Minute, e.Metadata)
}

func (e Event) Timing() Timing {
	return Resolve(e.Stored())
}

// NewEvent builds an event recorded by period and per-period minute.
func NewEvent(id int64, typ EventType, playerID *int64, period Period, relative int, note string) Event {
	stored := WithMetadata{Period: period, RelativeMinute: relative}
	return Event{
		ID:       id,
		Minute:   ToAbsolute(period, relative),
		Type:     typ,
		PlayerID: playerID,
		Note:     note,
		Metadata: stored.Metadata(),
	}
}
