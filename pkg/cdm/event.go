package cdm

import "time"

// CalendarEvent is the shape of one event from the calendar feed. All-day
// events carry Start.Date only; timed events carry Start.DateTime.
type CalendarEvent struct {
	Summary  string `json:"summary"`
	Location string `json:"location,omitempty"`
	Status   string `json:"status,omitempty"`

	Start CalendarEventTime `json:"start"`
}

type CalendarEventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
}

// StartTime parses the event's timed start. ok is false for all-day events
// and for unparseable timestamps.
func (e *CalendarEvent) StartTime() (time.Time, bool) {
	if e.Start.DateTime == "" {
		return time.Time{}, false
	}

	start, err := time.Parse(time.RFC3339, e.Start.DateTime)
	if err != nil {
		return time.Time{}, false
	}

	return start, true
}

// ParsedLocation is a building code plus optional room number extracted from
// free text. Room is empty when only the building could be identified.
type ParsedLocation struct {
	Building string `json:"building"`
	Room     string `json:"room,omitempty"`
}
