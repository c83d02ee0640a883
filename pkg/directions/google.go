package directions

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/campusnav/campusnav/pkg/cdm"
	"googlemaps.github.io/maps"
)

// DefaultRequestTimeout bounds each Directions call; a timed out leg is
// treated the same as any other provider failure.
const DefaultRequestTimeout = 30 * time.Second

// GoogleClient is the Provider backed by the Google Directions API.
type GoogleClient struct {
	client  *maps.Client
	timeout time.Duration
}

func NewGoogleClient(apiKey string) (*GoogleClient, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}

	return &GoogleClient{
		client:  client,
		timeout: DefaultRequestTimeout,
	}, nil
}

func (g *GoogleClient) GetLeg(ctx context.Context, origin cdm.Coordinate, destination cdm.Coordinate, mode Mode) (*cdm.RouteLeg, error) {
	route, leg, err := g.fetchRoute(ctx, origin.String(), destination.String(), mode)
	if err != nil {
		return nil, err
	}

	path, err := maps.DecodePolyline(route.OverviewPolyline.Points)
	if err != nil {
		return nil, fmt.Errorf("decode polyline: %w", err)
	}

	routeLeg := &cdm.RouteLeg{
		Path:            coordinatesFromLatLngs(path),
		DistanceText:    leg.Distance.HumanReadable,
		DurationText:    formatDurationText(leg.Duration),
		DistanceMeters:  float64(leg.Distance.Meters),
		DurationSeconds: leg.Duration.Seconds(),
	}

	for _, step := range leg.Steps {
		instruction := StripHTML(step.HTMLInstructions)

		routeLeg.Steps = append(routeLeg.Steps, cdm.RouteStep{
			Instruction: instruction,
			Distance:    step.Distance.HumanReadable,
			Duration:    formatDurationText(step.Duration),
			Maneuver:    maneuverFromInstruction(instruction),
		})
	}

	return routeLeg, nil
}

func (g *GoogleClient) fetchRoute(ctx context.Context, origin string, destination string, mode Mode) (*maps.Route, *maps.Leg, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	routes, _, err := g.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        mode.googleMode(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("directions request: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, nil, ErrNoRoutes
	}

	return &routes[0], routes[0].Legs[0], nil
}

func coordinatesFromLatLngs(path []maps.LatLng) []cdm.Coordinate {
	coords := make([]cdm.Coordinate, 0, len(path))
	for _, point := range path {
		coords = append(coords, cdm.Coordinate{Latitude: point.Lat, Longitude: point.Lng})
	}

	return coords
}

func formatDurationText(duration time.Duration) string {
	minutes := int(math.Round(duration.Minutes()))
	if minutes < 1 {
		minutes = 1
	}

	if minutes == 1 {
		return "1 min"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d mins", minutes)
	}

	hours := minutes / 60
	remainder := minutes % 60
	if remainder == 0 {
		return fmt.Sprintf("%d hours", hours)
	}

	return fmt.Sprintf("%d hours %d mins", hours, remainder)
}

// StripHTML removes markup from the instruction strings the Directions API
// returns, leaving plain renderable text.
func StripHTML(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))

	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			builder.WriteRune(r)
		}
	}

	return strings.TrimSpace(builder.String())
}

// maneuverFromInstruction derives a coarse maneuver tag from the instruction
// text. The upstream API reports a maneuver for some steps only, so this
// stays a heuristic with "straight" as the fallback.
func maneuverFromInstruction(instruction string) string {
	lower := strings.ToLower(instruction)

	switch {
	case strings.Contains(lower, "roundabout"):
		return "roundabout"
	case strings.Contains(lower, "u-turn"):
		return "uturn"
	case strings.Contains(lower, "merge"):
		return "merge"
	case strings.Contains(lower, "left"):
		return "turn-left"
	case strings.Contains(lower, "right"):
		return "turn-right"
	}

	return "straight"
}
