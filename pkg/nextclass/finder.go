package nextclass

import (
	"time"

	"github.com/campusnav/campusnav/pkg/cdm"
	"golang.org/x/exp/slices"
)

// NextClassInfo is the soonest upcoming class with its parsed location.
type NextClassInfo struct {
	Event cdm.CalendarEvent `json:"event"`

	Location *cdm.ParsedLocation `json:"location,omitempty"`

	StartTime  time.Time `json:"start_time"`
	CourseName string    `json:"course_name"`
}

// FindNextClass picks the closest future timed event from a flat event feed.
//
// All-day events, cancelled events and events already started are skipped.
// The location comes from the event's Location field, falling back to its
// Summary. Returns nil when no qualifying event exists.
func (p *Parser) FindNextClass(events []cdm.CalendarEvent, now time.Time) *NextClassInfo {
	type candidate struct {
		event cdm.CalendarEvent
		start time.Time
	}

	var upcoming []candidate
	for _, event := range events {
		if event.Status == "cancelled" {
			continue
		}

		start, ok := event.StartTime()
		if !ok || !start.After(now) {
			continue
		}

		upcoming = append(upcoming, candidate{event: event, start: start})
	}

	if len(upcoming) == 0 {
		return nil
	}

	slices.SortStableFunc(upcoming, func(a, b candidate) int {
		return a.start.Compare(b.start)
	})

	next := upcoming[0]

	location := p.Parse(next.event.Location)
	if location == nil {
		location = p.Parse(next.event.Summary)
	}

	return &NextClassInfo{
		Event:      next.event,
		Location:   location,
		StartTime:  next.start,
		CourseName: next.event.Summary,
	}
}
