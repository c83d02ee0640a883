package cdm

// RouteStep is one human-readable instruction within a routed leg.
type RouteStep struct {
	Instruction string `json:"instruction" groups:"basic"`
	Distance    string `json:"distance" groups:"basic"`
	Duration    string `json:"duration" groups:"basic"`
	Maneuver    string `json:"maneuver" groups:"basic"`
}

// RouteLeg is the result of a single Directions provider call: the decoded
// path, human-readable totals, raw metre/second totals and the step list.
type RouteLeg struct {
	Path []Coordinate `json:"path" groups:"detailed"`

	DistanceText string `json:"distance_text" groups:"basic"`
	DurationText string `json:"duration_text" groups:"basic"`

	DistanceMeters  float64 `json:"distance_meters" groups:"basic"`
	DurationSeconds float64 `json:"duration_seconds" groups:"basic"`

	Steps []RouteStep `json:"steps" groups:"basic"`
}

// RouteSegment is a mode-tagged slice of a composed route's path, kept
// separate so a renderer can style the walking and shuttle portions apart.
type RouteSegment struct {
	Mode   string       `json:"mode" groups:"basic"`
	Coords []Coordinate `json:"coords" groups:"detailed"`
}

// ComposedShuttleRoute is the three-leg walk/shuttle/walk trip flattened into
// one renderable route. Created per request, never persisted.
type ComposedShuttleRoute struct {
	Coords   []Coordinate   `json:"coords" groups:"detailed"`
	Segments []RouteSegment `json:"segments" groups:"detailed"`

	Steps []RouteStep `json:"steps" groups:"basic"`

	Distance string `json:"distance" groups:"basic"`
	Duration string `json:"duration" groups:"basic"`
}
