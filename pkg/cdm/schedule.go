package cdm

// DayGroup is the named schedule bucket a weekday falls into.
type DayGroup string

const (
	DayGroupMondayThursday DayGroup = "Monday-Thursday"
	DayGroupFriday         DayGroup = "Friday"
)

// DaySchedule holds the ordered "HH:MM" departure sequences for one day group,
// one sequence per origin campus. Sequences are sorted ascending; weekends have
// no DaySchedule at all - absence signals no service.
type DaySchedule struct {
	DepartureTimesSGW []string `json:"departure_times_sgw" yaml:"departure_times_sgw"`
	DepartureTimesLOY []string `json:"departure_times_loy" yaml:"departure_times_loy"`
}

// DepartureTimes returns the sequence for the given origin campus.
func (d *DaySchedule) DepartureTimes(origin Campus) []string {
	if origin == CampusLoyola {
		return d.DepartureTimesLOY
	}

	return d.DepartureTimesSGW
}

// Semester is one named semester's timetable keyed by day group.
type Semester struct {
	Schedule map[DayGroup]*DaySchedule `json:"schedule" yaml:"schedule"`
}

// ShuttleSchedule is the full timetable. Exactly one semester is active at a
// time; the table is loaded once from static configuration and never mutated,
// so it is safe for concurrent reads.
type ShuttleSchedule struct {
	ActiveSemester string               `json:"active_semester" yaml:"active_semester"`
	Semesters      map[string]*Semester `json:"semesters" yaml:"semesters"`
}

// ActiveSchedule returns the active semester's day-group table, or nil when
// the active semester key resolves to nothing.
func (s *ShuttleSchedule) ActiveSchedule() map[DayGroup]*DaySchedule {
	if s == nil {
		return nil
	}

	semester := s.Semesters[s.ActiveSemester]
	if semester == nil {
		return nil
	}

	return semester.Schedule
}

// ShuttleRoute is one catalogue entry for the inter-campus shuttle service.
type ShuttleRoute struct {
	ID   string `json:"id" yaml:"id" groups:"basic"`
	Name string `json:"name" yaml:"name" groups:"basic"`

	Origin      Campus `json:"origin" yaml:"origin" groups:"basic"`
	Destination Campus `json:"destination" yaml:"destination" groups:"basic"`

	FrequencyMinutes int `json:"frequency_minutes" yaml:"frequency_minutes" groups:"basic"`

	OperatingHours struct {
		Start string `json:"start" yaml:"start" groups:"basic"`
		End   string `json:"end" yaml:"end" groups:"basic"`
	} `json:"operating_hours" yaml:"operating_hours" groups:"basic"`
}
