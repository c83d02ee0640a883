// Package dataset owns the static configuration the rest of the system reads:
// the building footprint table, per-campus shuttle geography and the departure
// timetable. Everything is decoded once from embedded YAML and is read-only
// afterwards, so concurrent readers need no locking.
package dataset

import (
	"bytes"
	"embed"
	"sync"

	"github.com/campusnav/campusnav/pkg/cdm"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed data/buildings.yaml data/shuttle.yaml
var dataFiles embed.FS

type buildingsFile struct {
	Buildings []*cdm.Building `yaml:"buildings"`
}

type shuttleFile struct {
	Regions  []*cdm.CampusRegion  `yaml:"regions"`
	Routes   []*cdm.ShuttleRoute  `yaml:"routes"`
	Schedule *cdm.ShuttleSchedule `yaml:"schedule"`
}

var (
	loadOnce sync.Once

	buildings     []*cdm.Building
	buildingsByID map[string]*cdm.Building
	regions       map[cdm.Campus]*cdm.CampusRegion
	routes        []*cdm.ShuttleRoute
	schedule      *cdm.ShuttleSchedule
)

func load() {
	var bf buildingsFile
	decodeFile("data/buildings.yaml", &bf)

	var sf shuttleFile
	decodeFile("data/shuttle.yaml", &sf)

	buildings = bf.Buildings
	buildingsByID = map[string]*cdm.Building{}
	for _, building := range buildings {
		buildingsByID[building.ID] = building
	}

	regions = map[cdm.Campus]*cdm.CampusRegion{}
	for _, region := range sf.Regions {
		regions[region.Campus] = region
	}

	routes = sf.Routes
	schedule = sf.Schedule

	log.Debug().
		Int("buildings", len(buildings)).
		Int("regions", len(regions)).
		Str("activesemester", schedule.ActiveSemester).
		Msg("Loaded campus dataset")
}

func decodeFile(name string, out interface{}) {
	contents, err := dataFiles.ReadFile(name)
	if err != nil {
		log.Fatal().Err(err).Str("file", name).Msg("Failed to read dataset file")
	}

	if err := yaml.NewDecoder(bytes.NewReader(contents)).Decode(out); err != nil {
		log.Fatal().Err(err).Str("file", name).Msg("Failed to decode dataset file")
	}
}

// Buildings returns the building table in its defined order.
func Buildings() []*cdm.Building {
	loadOnce.Do(load)
	return buildings
}

// Building looks a building up by its code, or nil when unknown.
func Building(id string) *cdm.Building {
	loadOnce.Do(load)
	return buildingsByID[id]
}

// Region returns the static geography for a campus, or nil when unknown.
func Region(campus cdm.Campus) *cdm.CampusRegion {
	loadOnce.Do(load)
	return regions[campus]
}

// ShuttleStop returns the fixed shuttle stop coordinate for a campus.
func ShuttleStop(campus cdm.Campus) (cdm.Coordinate, bool) {
	loadOnce.Do(load)

	region := regions[campus]
	if region == nil {
		return cdm.Coordinate{}, false
	}

	return region.ShuttleStop, true
}

// ShuttleRoutes returns the shuttle route catalogue.
func ShuttleRoutes() []*cdm.ShuttleRoute {
	loadOnce.Do(load)
	return routes
}

// Schedule returns the shuttle departure timetable.
func Schedule() *cdm.ShuttleSchedule {
	loadOnce.Do(load)
	return schedule
}
