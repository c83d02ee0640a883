package shuttle

import (
	"testing"
	"time"

	"github.com/campusnav/campusnav/pkg/cdm"
)

func testSchedule() *cdm.ShuttleSchedule {
	return &cdm.ShuttleSchedule{
		ActiveSemester: "test",
		Semesters: map[string]*cdm.Semester{
			"test": {
				Schedule: map[cdm.DayGroup]*cdm.DaySchedule{
					cdm.DayGroupMondayThursday: {
						DepartureTimesSGW: []string{"08:00", "08:30", "09:00"},
						DepartureTimesLOY: []string{"07:45", "08:15", "08:45"},
					},
					cdm.DayGroupFriday: {
						DepartureTimesSGW: []string{"10:00"},
						DepartureTimesLOY: []string{"10:30"},
					},
				},
			},
		},
	}
}

// 2025-09-01 is a Monday.
func mondayAt(hour, minute int) time.Time {
	return time.Date(2025, time.September, 1, hour, minute, 0, 0, time.UTC)
}

func TestNextDeparture(t *testing.T) {
	schedule := testSchedule()

	result := NextDeparture(schedule, cdm.CampusSGW, mondayAt(8, 5))
	if result.Status != DepartureStatusFound {
		t.Fatalf("expected a departure, got status %q", result.Status)
	}
	if result.Time != "08:30" || result.MinutesUntil != 25 {
		t.Errorf("got %s in %d min, want 08:30 in 25 min", result.Time, result.MinutesUntil)
	}
}

func TestNextDepartureExactMatchIsZeroMinutes(t *testing.T) {
	result := NextDeparture(testSchedule(), cdm.CampusSGW, mondayAt(8, 30))
	if result.Status != DepartureStatusFound || result.Time != "08:30" {
		t.Fatalf("expected 08:30, got %+v", result)
	}
	if result.MinutesUntil != 0 {
		t.Errorf("MinutesUntil = %d, want 0", result.MinutesUntil)
	}
}

func TestNextDeparturePerCampusSequences(t *testing.T) {
	result := NextDeparture(testSchedule(), cdm.CampusLoyola, mondayAt(8, 5))
	if result.Status != DepartureStatusFound || result.Time != "08:15" {
		t.Errorf("Loyola origin should use the LOY sequence, got %+v", result)
	}
}

func TestNextDepartureAllDeparted(t *testing.T) {
	result := NextDeparture(testSchedule(), cdm.CampusSGW, mondayAt(9, 1))
	if result.Status != DepartureStatusAllDeparted {
		t.Errorf("status = %q, want %q", result.Status, DepartureStatusAllDeparted)
	}
}

func TestNextDepartureWeekend(t *testing.T) {
	// 2025-09-06 and 07 are Saturday and Sunday. Weekend wins regardless of
	// time of day.
	for day := 6; day <= 7; day++ {
		now := time.Date(2025, time.September, day, 8, 5, 0, 0, time.UTC)
		result := NextDeparture(testSchedule(), cdm.CampusSGW, now)
		if result.Status != DepartureStatusWeekend {
			t.Errorf("day %d: status = %q, want %q", day, result.Status, DepartureStatusWeekend)
		}
	}
}

func TestNextDepartureMissingSchedule(t *testing.T) {
	schedule := testSchedule()
	schedule.ActiveSemester = "missing"

	result := NextDeparture(schedule, cdm.CampusSGW, mondayAt(8, 5))
	if result.Status != DepartureStatusNoSchedule {
		t.Errorf("status = %q, want %q", result.Status, DepartureStatusNoSchedule)
	}
}

func TestNextDepartureEmptySequence(t *testing.T) {
	schedule := testSchedule()
	schedule.Semesters["test"].Schedule[cdm.DayGroupMondayThursday].DepartureTimesSGW = nil

	result := NextDeparture(schedule, cdm.CampusSGW, mondayAt(8, 5))
	if result.Status != DepartureStatusNoDepartures {
		t.Errorf("status = %q, want %q", result.Status, DepartureStatusNoDepartures)
	}
}

func TestNextDepartureFridayUsesFridayTable(t *testing.T) {
	// 2025-09-05 is a Friday.
	friday := time.Date(2025, time.September, 5, 9, 0, 0, 0, time.UTC)

	result := NextDeparture(testSchedule(), cdm.CampusSGW, friday)
	if result.Status != DepartureStatusFound || result.Time != "10:00" {
		t.Errorf("Friday lookup got %+v, want 10:00", result)
	}
}

func TestUpcomingDepartures(t *testing.T) {
	upcoming := UpcomingDepartures(testSchedule(), cdm.CampusSGW, mondayAt(8, 5), 1)
	want := []string{"08:30", "09:00"}

	if len(upcoming) != len(want) {
		t.Fatalf("got %v, want %v", upcoming, want)
	}
	for i := range want {
		if upcoming[i] != want[i] {
			t.Errorf("upcoming[%d] = %q, want %q", i, upcoming[i], want[i])
		}
	}
}

func TestUpcomingDeparturesWeekendEmpty(t *testing.T) {
	saturday := time.Date(2025, time.September, 6, 8, 0, 0, 0, time.UTC)
	if got := UpcomingDepartures(testSchedule(), cdm.CampusSGW, saturday, 4); got != nil {
		t.Errorf("weekend departures = %v, want none", got)
	}
}

func TestParseClock(t *testing.T) {
	testCases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"08:60", 0, true},
		{"0830", 0, true},
		{"eight", 0, true},
	}

	for _, tc := range testCases {
		got, err := ParseClock(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) should error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) error: %v", tc.input, err)
		} else if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestFormatCountdown(t *testing.T) {
	testCases := []struct {
		minutes int
		want    string
	}{
		{0, "Departing now"},
		{1, "In 1 min"},
		{25, "In 25 mins"},
		{90, "In 1h 30m"},
	}

	for _, tc := range testCases {
		if got := FormatCountdown(tc.minutes); got != tc.want {
			t.Errorf("FormatCountdown(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}
