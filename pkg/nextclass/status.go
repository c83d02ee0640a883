package nextclass

import (
	"github.com/campusnav/campusnav/pkg/cdm"
	"golang.org/x/exp/slices"
)

type StatusKind string

const (
	StatusFound               StatusKind = "found"
	StatusNoUpcoming          StatusKind = "no_upcoming"
	StatusLocationUnavailable StatusKind = "location_unavailable"
	StatusBuildingUnknown     StatusKind = "building_unknown"
	StatusAPIError            StatusKind = "api_error"
)

// UserMessages maps each non-found status to the message the UI shows.
var UserMessages = map[StatusKind]string{
	StatusNoUpcoming:          "No upcoming classes",
	StatusLocationUnavailable: "Location not available",
	StatusBuildingUnknown:     "Building not found on campus map",
	StatusAPIError:            "Could not load calendar events",
}

// Status classifies a find-next-class result so callers can switch on it
// without null checks.
type Status struct {
	Kind StatusKind `json:"kind"`

	Data    *NextClassInfo `json:"data,omitempty"`
	Message string         `json:"message,omitempty"`
}

// Classify turns a FindNextClass result into a Status against the known
// building table.
func Classify(result *NextClassInfo, buildings []*cdm.Building) Status {
	if result == nil {
		return Status{Kind: StatusNoUpcoming, Message: UserMessages[StatusNoUpcoming]}
	}

	if result.Location == nil {
		return Status{Kind: StatusLocationUnavailable, Data: result, Message: UserMessages[StatusLocationUnavailable]}
	}

	known := slices.IndexFunc(buildings, func(building *cdm.Building) bool {
		return building.ID == result.Location.Building
	}) >= 0
	if !known {
		return Status{Kind: StatusBuildingUnknown, Data: result, Message: UserMessages[StatusBuildingUnknown]}
	}

	return Status{Kind: StatusFound, Data: result}
}

// APIErrorStatus builds an api_error status from a caught error.
func APIErrorStatus(err error) Status {
	message := UserMessages[StatusAPIError]
	if err != nil {
		message = err.Error()
	}

	return Status{Kind: StatusAPIError, Message: message}
}
