package shuttle

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/campusnav/campusnav/pkg/cdm"
	"github.com/campusnav/campusnav/pkg/dataset"
	"github.com/campusnav/campusnav/pkg/directions"
	"github.com/sourcegraph/conc/pool"
)

// DefaultShuttleTravelMinutes is the assumed shuttle ride time between the
// two stops. The driving leg's estimate is deliberately not used - the
// shuttle's actual road time differs from point-to-point driving time - so
// this stays a named, overridable constant.
const DefaultShuttleTravelMinutes = 30

var (
	// ErrRouteUnavailable is the single failure every leg-level problem
	// collapses into; no partial route is ever surfaced.
	ErrRouteUnavailable = errors.New("unable to calculate shuttle route")

	// ErrSameCampus means the origin and destination resolve to one campus;
	// the shuttle only runs between the two.
	ErrSameCampus = errors.New("shuttle runs between campuses only")
)

// Composer builds the three leg walk/shuttle/walk trip through an injected
// directions provider.
type Composer struct {
	Provider directions.Provider

	// ShuttleTravelMinutes overrides DefaultShuttleTravelMinutes when > 0.
	ShuttleTravelMinutes int
}

func NewComposer(provider directions.Provider) *Composer {
	return &Composer{Provider: provider}
}

func (c *Composer) shuttleMinutes() int {
	if c.ShuttleTravelMinutes > 0 {
		return c.ShuttleTravelMinutes
	}

	return DefaultShuttleTravelMinutes
}

// ComposeRoute fetches the walk-to-stop, inter-campus and walk-to-destination
// legs concurrently and flattens them into one route. The legs have no data
// dependency on each other, so total latency is bounded by the slowest leg
// rather than their sum. Any leg failing fails the whole composition.
func (c *Composer) ComposeRoute(ctx context.Context, originCoord cdm.Coordinate, destinationCoord cdm.Coordinate, originCampus cdm.Campus, destinationCampus cdm.Campus) (*cdm.ComposedShuttleRoute, error) {
	if originCampus == destinationCampus {
		return nil, ErrSameCampus
	}

	originStop, ok := dataset.ShuttleStop(originCampus)
	if !ok {
		return nil, fmt.Errorf("%w: no shuttle stop for campus %s", ErrRouteUnavailable, originCampus)
	}
	destinationStop, ok := dataset.ShuttleStop(destinationCampus)
	if !ok {
		return nil, fmt.Errorf("%w: no shuttle stop for campus %s", ErrRouteUnavailable, destinationCampus)
	}

	legRequests := []struct {
		from cdm.Coordinate
		to   cdm.Coordinate
		mode directions.Mode
	}{
		{originCoord, originStop, directions.ModeWalking},
		{originStop, destinationStop, directions.ModeDriving},
		{destinationStop, destinationCoord, directions.ModeWalking},
	}

	legs := make([]*cdm.RouteLeg, len(legRequests))

	p := pool.New().WithContext(ctx).WithCancelOnError()
	for index, request := range legRequests {
		p.Go(func(ctx context.Context) error {
			leg, err := c.Provider.GetLeg(ctx, request.from, request.to, request.mode)
			if err != nil {
				return err
			}

			if len(leg.Path) == 0 {
				return directions.ErrNoRoutes
			}

			legs[index] = leg
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRouteUnavailable, err)
	}

	walkToStop, shuttleLeg, walkToDestination := legs[0], legs[1], legs[2]

	// Boundary vertices between legs are left duplicated - each leg's
	// polyline naturally starts and ends at the shared stop coordinate.
	var coords []cdm.Coordinate
	coords = append(coords, walkToStop.Path...)
	coords = append(coords, shuttleLeg.Path...)
	coords = append(coords, walkToDestination.Path...)

	segments := []cdm.RouteSegment{
		{Mode: string(directions.ModeWalking), Coords: walkToStop.Path},
		{Mode: string(directions.ModeShuttle), Coords: shuttleLeg.Path},
		{Mode: string(directions.ModeWalking), Coords: walkToDestination.Path},
	}

	shuttleStep := cdm.RouteStep{
		Instruction: fmt.Sprintf("Take shuttle from %s stop to %s stop", originCampus, destinationCampus),
		Distance:    shuttleLeg.DistanceText,
		Duration:    fmt.Sprintf("%d min", c.shuttleMinutes()),
		Maneuver:    "shuttle",
	}

	var steps []cdm.RouteStep
	steps = append(steps, walkToStop.Steps...)
	steps = append(steps, shuttleStep)
	steps = append(steps, walkToDestination.Steps...)

	totalMeters := walkToStop.DistanceMeters + shuttleLeg.DistanceMeters + walkToDestination.DistanceMeters
	totalMinutes := roundedMinutes(walkToStop.DurationSeconds) +
		c.shuttleMinutes() +
		roundedMinutes(walkToDestination.DurationSeconds)

	return &cdm.ComposedShuttleRoute{
		Coords:   coords,
		Segments: segments,
		Steps:    steps,
		Distance: FormatDistance(totalMeters),
		Duration: FormatDuration(totalMinutes),
	}, nil
}

func roundedMinutes(seconds float64) int {
	return int(math.Round(seconds / 60))
}
