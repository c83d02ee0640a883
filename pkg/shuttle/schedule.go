// Package shuttle implements the inter-campus shuttle decision layer: next
// departure lookup over the timetable and composition of the three leg
// walk/shuttle/walk trip.
package shuttle

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/campusnav/campusnav/pkg/cdm"
)

type DepartureStatus string

const (
	// DepartureStatusFound means a departure was found and the result carries
	// its time and countdown.
	DepartureStatusFound DepartureStatus = "Found"

	// The no-service variants are deliberately distinct - the UI surfaces a
	// different message for each.
	DepartureStatusNoSchedule   DepartureStatus = "NoSchedule"
	DepartureStatusWeekend      DepartureStatus = "Weekend"
	DepartureStatusNoDepartures DepartureStatus = "NoDepartures"
	DepartureStatusAllDeparted  DepartureStatus = "AllDeparted"
)

// DepartureResult is the outcome of a next-departure lookup. Time and
// MinutesUntil are only meaningful when Status is DepartureStatusFound.
type DepartureResult struct {
	Status DepartureStatus `json:"status"`

	Time         string `json:"time,omitempty"`
	MinutesUntil int    `json:"minutes_until"`
}

// NextDeparture finds the next shuttle leaving the origin campus at or after
// now. Weekends, a missing timetable, an empty departure sequence and a fully
// elapsed day each produce their own status.
//
// The origin/destination pair is assumed to already be a valid inter-campus
// pair; that check belongs to the caller.
func NextDeparture(table *cdm.ShuttleSchedule, origin cdm.Campus, now time.Time) DepartureResult {
	dayGroup, operating := DayGroupFor(now.Weekday())
	if !operating {
		return DepartureResult{Status: DepartureStatusWeekend}
	}

	daySchedules := table.ActiveSchedule()
	if daySchedules == nil {
		return DepartureResult{Status: DepartureStatusNoSchedule}
	}

	daySchedule := daySchedules[dayGroup]
	if daySchedule == nil {
		return DepartureResult{Status: DepartureStatusNoSchedule}
	}

	times := daySchedule.DepartureTimes(origin)
	if len(times) == 0 {
		return DepartureResult{Status: DepartureStatusNoDepartures}
	}

	nowMinutes := now.Hour()*60 + now.Minute()

	// The sequence is sorted and small, so a linear scan keeps the
	// comparison logic trivial.
	for _, departure := range times {
		departureMinutes, err := ParseClock(departure)
		if err != nil {
			continue
		}

		if departureMinutes >= nowMinutes {
			minutesUntil := departureMinutes - nowMinutes
			if minutesUntil < 0 {
				minutesUntil = 0
			}

			return DepartureResult{
				Status:       DepartureStatusFound,
				Time:         departure,
				MinutesUntil: minutesUntil,
			}
		}
	}

	return DepartureResult{Status: DepartureStatusAllDeparted}
}

// UpcomingDepartures returns every departure from the origin campus within
// hoursAhead hours of now, for the current day group. Empty on non-operating
// days.
func UpcomingDepartures(table *cdm.ShuttleSchedule, origin cdm.Campus, now time.Time, hoursAhead int) []string {
	dayGroup, operating := DayGroupFor(now.Weekday())
	if !operating {
		return nil
	}

	daySchedules := table.ActiveSchedule()
	if daySchedules == nil || daySchedules[dayGroup] == nil {
		return nil
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	windowEnd := nowMinutes + hoursAhead*60

	var upcoming []string
	for _, departure := range daySchedules[dayGroup].DepartureTimes(origin) {
		departureMinutes, err := ParseClock(departure)
		if err != nil {
			continue
		}

		if departureMinutes >= nowMinutes && departureMinutes <= windowEnd {
			upcoming = append(upcoming, departure)
		}
	}

	return upcoming
}

// DayGroupFor maps a weekday onto its schedule bucket. operating is false on
// weekends, when the shuttle does not run at all.
func DayGroupFor(weekday time.Weekday) (dayGroup cdm.DayGroup, operating bool) {
	switch weekday {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday:
		return cdm.DayGroupMondayThursday, true
	case time.Friday:
		return cdm.DayGroupFriday, true
	}

	return "", false
}

// ParseClock converts a zero-padded 24h "HH:MM" string to minutes since
// midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed clock value %q", clock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed clock value %q", clock)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed clock value %q", clock)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock value %q out of range", clock)
	}

	return hours*60 + minutes, nil
}

// Message renders the result as the title/subtitle pair the UI shows.
func (r DepartureResult) Message(origin cdm.Campus, destination cdm.Campus) (title string, subtitle string) {
	switch r.Status {
	case DepartureStatusFound:
		return fmt.Sprintf("Next shuttle at %s", r.Time),
			fmt.Sprintf("%s to %s · in %d min", origin, destination, r.MinutesUntil)
	case DepartureStatusNoSchedule:
		return "No schedule available", "Check back later for updates."
	case DepartureStatusWeekend:
		return "No shuttle service today", "Service runs Monday to Friday."
	case DepartureStatusNoDepartures:
		return "No departures listed", "Check back later for updates."
	case DepartureStatusAllDeparted:
		return "No more shuttles today", "Try again tomorrow."
	}

	return "Select origin and destination", "Shuttle schedules show after both campuses are set."
}

// FormatCountdown renders a minutes-until-departure countdown.
func FormatCountdown(minutes int) string {
	if minutes < 1 {
		return "Departing now"
	}

	if minutes < 60 {
		if minutes == 1 {
			return "In 1 min"
		}
		return fmt.Sprintf("In %d mins", minutes)
	}

	return fmt.Sprintf("In %dh %dm", minutes/60, minutes%60)
}
