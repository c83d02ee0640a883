// Package directions wraps the Google Directions API behind a small provider
// interface so route composition can be exercised against a stub.
package directions

import (
	"context"
	"errors"

	"github.com/campusnav/campusnav/pkg/cdm"
	"googlemaps.github.io/maps"
)

// Mode is the travel mode vocabulary the rest of the system speaks. SHUTTLE
// is only meaningful on the plain proxy path, where it maps to transit
// routing; the shuttle composer requests WALKING and DRIVING legs explicitly.
type Mode string

const (
	ModeWalking   Mode = "WALKING"
	ModeDriving   Mode = "DRIVING"
	ModeTransit   Mode = "TRANSIT"
	ModeBicycling Mode = "BICYCLING"
	ModeShuttle   Mode = "SHUTTLE"
)

// ErrNoRoutes is returned when the upstream answers successfully but offers
// no route between the two points.
var ErrNoRoutes = errors.New("no routes found")

// Provider fetches a single routed leg between two coordinates.
type Provider interface {
	GetLeg(ctx context.Context, origin cdm.Coordinate, destination cdm.Coordinate, mode Mode) (*cdm.RouteLeg, error)
}

func (m Mode) googleMode() maps.Mode {
	switch m {
	case ModeDriving:
		return maps.TravelModeDriving
	case ModeTransit, ModeShuttle:
		return maps.TravelModeTransit
	case ModeBicycling:
		return maps.TravelModeBicycling
	}

	return maps.TravelModeWalking
}
