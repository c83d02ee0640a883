package geofence

import (
	"testing"

	"github.com/campusnav/campusnav/pkg/cdm"
)

var (
	sgwCentre    = cdm.Coordinate{Latitude: 45.4971, Longitude: -73.5788}
	loyolaCentre = cdm.Coordinate{Latitude: 45.4582, Longitude: -73.6405}
)

func TestResolveCampusKnownShortCircuits(t *testing.T) {
	// A point right next to the SGW centre must still resolve to LOYOLA when
	// the campus is already known from the building the user is inside.
	nearSGW := cdm.Coordinate{Latitude: 45.4970, Longitude: -73.5789}

	got := ResolveCampus(cdm.CampusLoyola, &nearSGW, sgwCentre, loyolaCentre)
	if got != cdm.CampusLoyola {
		t.Errorf("known campus should win, got %q", got)
	}
}

func TestResolveCampusNearestCentre(t *testing.T) {
	testCases := []struct {
		name     string
		location cdm.Coordinate
		want     cdm.Campus
	}{
		{"near SGW centre", cdm.Coordinate{Latitude: 45.4968, Longitude: -73.5790}, cdm.CampusSGW},
		{"near Loyola centre", cdm.Coordinate{Latitude: 45.4585, Longitude: -73.6400}, cdm.CampusLoyola},
		{"exactly at SGW centre", sgwCentre, cdm.CampusSGW},
		{"exactly at Loyola centre", loyolaCentre, cdm.CampusLoyola},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveCampus(cdm.CampusUnknown, &tc.location, sgwCentre, loyolaCentre)
			if got != tc.want {
				t.Errorf("ResolveCampus(%v) = %q, want %q", tc.location, got, tc.want)
			}
		})
	}
}

func TestResolveCampusTieGoesToSGW(t *testing.T) {
	// Equidistant from both centres.
	midpoint := cdm.Coordinate{
		Latitude:  (sgwCentre.Latitude + loyolaCentre.Latitude) / 2,
		Longitude: (sgwCentre.Longitude + loyolaCentre.Longitude) / 2,
	}

	got := ResolveCampus(cdm.CampusUnknown, &midpoint, sgwCentre, loyolaCentre)
	if got != cdm.CampusSGW {
		t.Errorf("tie should resolve to SGW, got %q", got)
	}
}

func TestResolveCampusNoInformation(t *testing.T) {
	got := ResolveCampus(cdm.CampusUnknown, nil, sgwCentre, loyolaCentre)
	if got != cdm.CampusUnknown {
		t.Errorf("no campus and no location should resolve to unknown, got %q", got)
	}
}
