package dataset_test

import (
	"testing"

	"github.com/campusnav/campusnav/pkg/cdm"
	"github.com/campusnav/campusnav/pkg/dataset"
	"github.com/campusnav/campusnav/pkg/shuttle"
)

func TestBuildingsTable(t *testing.T) {
	buildings := dataset.Buildings()
	if len(buildings) == 0 {
		t.Fatal("building table is empty")
	}

	seen := map[string]bool{}
	for _, building := range buildings {
		if building.ID == "" {
			t.Error("building with empty id")
		}
		if seen[building.ID] {
			t.Errorf("duplicate building id %q", building.ID)
		}
		seen[building.ID] = true

		if len(building.Footprint) < 3 {
			t.Errorf("building %q footprint has %d vertices, need at least 3", building.ID, len(building.Footprint))
		}

		if building.Campus != cdm.CampusSGW && building.Campus != cdm.CampusLoyola {
			t.Errorf("building %q has campus %q", building.ID, building.Campus)
		}
	}

	if dataset.Building("H") == nil {
		t.Error("lookup by id failed for H")
	}
	if dataset.Building("NOPE") != nil {
		t.Error("lookup of unknown id should be nil")
	}
}

func TestRegions(t *testing.T) {
	for _, campus := range []cdm.Campus{cdm.CampusSGW, cdm.CampusLoyola} {
		region := dataset.Region(campus)
		if region == nil {
			t.Fatalf("no region for campus %s", campus)
		}

		stop, ok := dataset.ShuttleStop(campus)
		if !ok {
			t.Fatalf("no shuttle stop for campus %s", campus)
		}
		if stop.Latitude == 0 || stop.Longitude == 0 {
			t.Errorf("campus %s shuttle stop is zero valued", campus)
		}
	}

	if _, ok := dataset.ShuttleStop(cdm.CampusUnknown); ok {
		t.Error("unknown campus should have no shuttle stop")
	}
}

// Every departure sequence must parse as a clock value and be sorted
// ascending - the next-departure scan relies on both.
func TestScheduleSequencesSortedAndValid(t *testing.T) {
	schedule := dataset.Schedule()
	if schedule == nil || schedule.ActiveSemester == "" {
		t.Fatal("no active semester configured")
	}

	daySchedules := schedule.ActiveSchedule()
	if daySchedules == nil {
		t.Fatal("active semester has no schedule")
	}

	for dayGroup, daySchedule := range daySchedules {
		for _, origin := range []cdm.Campus{cdm.CampusSGW, cdm.CampusLoyola} {
			times := daySchedule.DepartureTimes(origin)
			if len(times) == 0 {
				t.Errorf("%s/%s has no departures", dayGroup, origin)
				continue
			}

			previous := -1
			for _, departure := range times {
				minutes, err := shuttle.ParseClock(departure)
				if err != nil {
					t.Errorf("%s/%s: %v", dayGroup, origin, err)
					continue
				}

				if minutes <= previous {
					t.Errorf("%s/%s: departures not sorted ascending at %q", dayGroup, origin, departure)
				}
				previous = minutes
			}
		}
	}
}

func TestShuttleRoutesCatalogue(t *testing.T) {
	routes := dataset.ShuttleRoutes()
	if len(routes) != 2 {
		t.Fatalf("got %d shuttle routes, want 2", len(routes))
	}

	for _, route := range routes {
		if route.Origin == route.Destination {
			t.Errorf("route %q is not inter-campus", route.ID)
		}
		if route.FrequencyMinutes <= 0 {
			t.Errorf("route %q has no frequency", route.ID)
		}
	}
}
