package routes

import (
	"strconv"

	"github.com/campusnav/campusnav/pkg/cdm"
	"github.com/campusnav/campusnav/pkg/dataset"
	"github.com/campusnav/campusnav/pkg/geofence"
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
)

func BuildingsRouter(router fiber.Router) {
	router.Get("/", getBuildings)
	router.Get("/locate", getLocate)
}

func getBuildings(c *fiber.Ctx) error {
	groups := []string{"basic"}
	if c.QueryBool("detailed", false) {
		groups = append(groups, "detailed")
	}

	buildingsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, dataset.Buildings())
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Buildings",
		})
	}

	return c.JSON(buildingsReduced)
}

func getLocate(c *fiber.Ctx) error {
	point, err := coordinateQuery(c)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	building := geofence.LocateBuilding(point, dataset.Buildings())

	var knownCampus cdm.Campus
	if building != nil {
		knownCampus = building.Campus
	}

	campus := geofence.ResolveCampus(
		knownCampus,
		&point,
		dataset.Region(cdm.CampusSGW).RegionCentre,
		dataset.Region(cdm.CampusLoyola).RegionCentre,
	)

	return c.JSON(fiber.Map{
		"building": building,
		"campus":   campus,
	})
}

func coordinateQuery(c *fiber.Ctx) (cdm.Coordinate, error) {
	latitude, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return cdm.Coordinate{}, fiber.NewError(fiber.StatusBadRequest, "lat must be a number")
	}

	longitude, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return cdm.Coordinate{}, fiber.NewError(fiber.StatusBadRequest, "lon must be a number")
	}

	return cdm.Coordinate{Latitude: latitude, Longitude: longitude}, nil
}
