package directions

import (
	"context"

	"github.com/campusnav/campusnav/pkg/cdm"
	"googlemaps.github.io/maps"
)

// DirectionsResult is the proxy endpoint's response shape: the route summary
// the map renderer reads plus a processed step-by-step breakdown.
type DirectionsResult struct {
	Status string         `json:"status"`
	Routes []RouteSummary `json:"routes"`

	ProcessedRoute *ProcessedRoute `json:"processedRoute,omitempty"`
}

type RouteSummary struct {
	OverviewPolyline PolylineSummary `json:"overview_polyline"`
	Legs             []LegSummary    `json:"legs"`
}

type PolylineSummary struct {
	Points string `json:"points"`
}

type LegSummary struct {
	Distance TextValue `json:"distance"`
	Duration TextValue `json:"duration"`
}

type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type ProcessedRoute struct {
	Polyline      string          `json:"polyline"`
	TotalDistance string          `json:"totalDistance"`
	TotalDuration string          `json:"totalDuration"`
	Steps         []ProcessedStep `json:"steps"`
	StartAddress  string          `json:"startAddress"`
	EndAddress    string          `json:"endAddress"`
}

type ProcessedStep struct {
	StepNumber  int    `json:"stepNumber"`
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
	Maneuver    string `json:"maneuver"`

	StartLocation cdm.Coordinate `json:"startLocation"`
	EndLocation   cdm.Coordinate `json:"endLocation"`
}

// GetDirections fetches a route between two free-form endpoints and reshapes
// it for the map UI.
func (g *GoogleClient) GetDirections(ctx context.Context, origin string, destination string, mode Mode) (*DirectionsResult, error) {
	route, leg, err := g.fetchRoute(ctx, origin, destination, mode)
	if err != nil {
		return nil, err
	}

	result := &DirectionsResult{
		Status: "OK",
		Routes: []RouteSummary{{
			OverviewPolyline: PolylineSummary{Points: route.OverviewPolyline.Points},
			Legs: []LegSummary{{
				Distance: TextValue{Text: leg.Distance.HumanReadable, Value: leg.Distance.Meters},
				Duration: TextValue{Text: formatDurationText(leg.Duration), Value: int(leg.Duration.Seconds())},
			}},
		}},
		ProcessedRoute: &ProcessedRoute{
			Polyline:      route.OverviewPolyline.Points,
			TotalDistance: leg.Distance.HumanReadable,
			TotalDuration: formatDurationText(leg.Duration),
			Steps:         processSteps(leg.Steps),
			StartAddress:  leg.StartAddress,
			EndAddress:    leg.EndAddress,
		},
	}

	return result, nil
}

func processSteps(steps []*maps.Step) []ProcessedStep {
	processed := make([]ProcessedStep, 0, len(steps))

	for index, step := range steps {
		instruction := StripHTML(step.HTMLInstructions)

		processed = append(processed, ProcessedStep{
			StepNumber:    index + 1,
			Instruction:   instruction,
			Distance:      step.Distance.HumanReadable,
			Duration:      formatDurationText(step.Duration),
			Maneuver:      maneuverFromInstruction(instruction),
			StartLocation: cdm.Coordinate{Latitude: step.StartLocation.Lat, Longitude: step.StartLocation.Lng},
			EndLocation:   cdm.Coordinate{Latitude: step.EndLocation.Lat, Longitude: step.EndLocation.Lng},
		})
	}

	return processed
}
