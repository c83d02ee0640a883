// Package geofence maps raw coordinates onto campus geography: which building
// footprint a point falls inside, and which campus a location belongs to.
package geofence

import "github.com/campusnav/campusnav/pkg/cdm"

// LocateBuilding returns the first building in table order whose footprint
// contains the point, or nil when no footprint does. Overlapping footprints
// resolve by table order; points on a footprint edge follow the even-odd rule
// consistently but are not guaranteed inclusive.
func LocateBuilding(point cdm.Coordinate, buildings []*cdm.Building) *cdm.Building {
	for _, building := range buildings {
		if PointInPolygon(point, building.Footprint) {
			return building
		}
	}

	return nil
}

// PointInPolygon reports whether the point lies inside the polygon using the
// even-odd ray casting rule. Polygons with fewer than 3 vertices contain
// nothing.
func PointInPolygon(point cdm.Coordinate, polygon []cdm.Coordinate) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false

	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		vertexA := polygon[i]
		vertexB := polygon[j]

		crossesLatitude := (vertexA.Latitude > point.Latitude) != (vertexB.Latitude > point.Latitude)
		if crossesLatitude {
			intersectLongitude := (vertexB.Longitude-vertexA.Longitude)*
				(point.Latitude-vertexA.Latitude)/
				(vertexB.Latitude-vertexA.Latitude) + vertexA.Longitude

			if point.Longitude < intersectLongitude {
				inside = !inside
			}
		}

		j = i
	}

	return inside
}
