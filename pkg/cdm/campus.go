package cdm

type Campus string

const (
	CampusSGW    Campus = "SGW"
	CampusLoyola Campus = "LOYOLA"

	// CampusUnknown is the zero value - "could not be determined",
	// which callers must treat as undetermined rather than an error.
	CampusUnknown Campus = ""
)

// Other returns the opposite campus. The shuttle only runs between the two.
func (c Campus) Other() Campus {
	switch c {
	case CampusSGW:
		return CampusLoyola
	case CampusLoyola:
		return CampusSGW
	}

	return CampusUnknown
}

// CampusRegion is the static per-campus geography: the designated shuttle
// stop and the region centre used for nearest-campus fallback.
type CampusRegion struct {
	Campus Campus `json:"campus" yaml:"campus" groups:"basic"`

	ShuttleStop  Coordinate `json:"shuttle_stop" yaml:"shuttle_stop" groups:"basic"`
	RegionCentre Coordinate `json:"region_centre" yaml:"region_centre" groups:"basic"`
}
