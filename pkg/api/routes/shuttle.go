package routes

import (
	"errors"
	"strconv"
	"time"

	"github.com/campusnav/campusnav/pkg/cdm"
	"github.com/campusnav/campusnav/pkg/dataset"
	"github.com/campusnav/campusnav/pkg/geofence"
	"github.com/campusnav/campusnav/pkg/shuttle"
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
)

func ShuttleRouter(router fiber.Router, composer *shuttle.Composer) {
	router.Get("/routes", getShuttleRoutes)
	router.Get("/schedule", getShuttleSchedule)
	router.Get("/departures", getShuttleDepartures)
	router.Get("/plan", getShuttlePlan(composer))
}

func getShuttleRoutes(c *fiber.Ctx) error {
	routesReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, dataset.ShuttleRoutes())
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce ShuttleRoutes",
		})
	}

	return c.JSON(fiber.Map{
		"routes": routesReduced,
	})
}

func getShuttleSchedule(c *fiber.Ctx) error {
	origin, err := campusQuery(c, "origin")
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result := shuttle.NextDeparture(dataset.Schedule(), origin, requestTime(c))
	title, subtitle := result.Message(origin, origin.Other())

	return c.JSON(fiber.Map{
		"origin":      origin,
		"destination": origin.Other(),
		"result":      result,
		"title":       title,
		"subtitle":    subtitle,
	})
}

func getShuttleDepartures(c *fiber.Ctx) error {
	origin, err := campusQuery(c, "origin")
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	hoursAhead, err := strconv.Atoi(c.Query("hoursAhead", "2"))
	if err != nil || hoursAhead < 1 {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter hoursAhead should be a positive integer",
		})
	}

	departures := shuttle.UpcomingDepartures(dataset.Schedule(), origin, requestTime(c), hoursAhead)

	return c.JSON(fiber.Map{
		"origin":     origin,
		"departures": departures,
	})
}

func getShuttlePlan(composer *shuttle.Composer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		originCoord, err := namedCoordinateQuery(c, "origin_lat", "origin_lon")
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		destinationCoord, err := namedCoordinateQuery(c, "destination_lat", "destination_lon")
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		originCampus := resolveCampusParam(c, "origin_campus", originCoord)
		destinationCampus := resolveCampusParam(c, "destination_campus", destinationCoord)

		if originCampus == cdm.CampusUnknown || destinationCampus == cdm.CampusUnknown {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Select origin and destination campuses",
			})
		}

		if originCampus == destinationCampus {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Shuttle runs between campuses only",
			})
		}

		route, err := composer.ComposeRoute(c.Context(), originCoord, destinationCoord, originCampus, destinationCampus)
		if err != nil {
			if errors.Is(err, shuttle.ErrSameCampus) {
				c.SendStatus(fiber.StatusBadRequest)
			} else {
				c.SendStatus(fiber.StatusInternalServerError)
			}

			return c.JSON(fiber.Map{
				"error": "Unable to calculate shuttle route",
			})
		}

		return c.JSON(route)
	}
}

// resolveCampusParam takes the campus from the query when given, otherwise
// falls back to locating the coordinate: inside a known building first, then
// nearest region centre.
func resolveCampusParam(c *fiber.Ctx, param string, coord cdm.Coordinate) cdm.Campus {
	if campus, err := parseCampus(c.Query(param)); err == nil {
		return campus
	}

	var knownCampus cdm.Campus
	if building := geofence.LocateBuilding(coord, dataset.Buildings()); building != nil {
		knownCampus = building.Campus
	}

	return geofence.ResolveCampus(
		knownCampus,
		&coord,
		dataset.Region(cdm.CampusSGW).RegionCentre,
		dataset.Region(cdm.CampusLoyola).RegionCentre,
	)
}

func campusQuery(c *fiber.Ctx, param string) (cdm.Campus, error) {
	campus, err := parseCampus(c.Query(param))
	if err != nil {
		return cdm.CampusUnknown, errors.New("Parameter " + param + " should be SGW or LOYOLA")
	}

	return campus, nil
}

func parseCampus(value string) (cdm.Campus, error) {
	switch cdm.Campus(value) {
	case cdm.CampusSGW:
		return cdm.CampusSGW, nil
	case cdm.CampusLoyola:
		return cdm.CampusLoyola, nil
	}

	return cdm.CampusUnknown, errors.New("unknown campus")
}

func namedCoordinateQuery(c *fiber.Ctx, latParam string, lonParam string) (cdm.Coordinate, error) {
	latitude, err := strconv.ParseFloat(c.Query(latParam), 64)
	if err != nil {
		return cdm.Coordinate{}, errors.New("Parameter " + latParam + " should be a number")
	}

	longitude, err := strconv.ParseFloat(c.Query(lonParam), 64)
	if err != nil {
		return cdm.Coordinate{}, errors.New("Parameter " + lonParam + " should be a number")
	}

	return cdm.Coordinate{Latitude: latitude, Longitude: longitude}, nil
}

// requestTime honours an optional RFC3339 datetime query so schedule answers
// are reproducible; otherwise the server clock is used.
func requestTime(c *fiber.Ctx) time.Time {
	if datetime := c.Query("datetime"); datetime != "" {
		if parsed, err := time.Parse(time.RFC3339, datetime); err == nil {
			return parsed
		}
	}

	return time.Now()
}
