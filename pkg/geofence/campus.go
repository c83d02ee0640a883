package geofence

import "github.com/campusnav/campusnav/pkg/cdm"

// ResolveCampus decides which campus a location belongs to.
//
// A known campus (the user is standing inside a building whose campus we
// already know) short-circuits everything. Otherwise the nearest region
// centre wins, compared in raw degree space - the campuses are ~6km apart so
// geodesic correction buys nothing here. Ties resolve to SGW. With neither a
// known campus nor a location the answer is CampusUnknown, never an error.
func ResolveCampus(known cdm.Campus, userLocation *cdm.Coordinate, sgwCentre cdm.Coordinate, loyolaCentre cdm.Coordinate) cdm.Campus {
	if known != cdm.CampusUnknown {
		return known
	}

	if userLocation == nil {
		return cdm.CampusUnknown
	}

	if userLocation.DistanceSquaredFrom(sgwCentre) <= userLocation.DistanceSquaredFrom(loyolaCentre) {
		return cdm.CampusSGW
	}

	return cdm.CampusLoyola
}
