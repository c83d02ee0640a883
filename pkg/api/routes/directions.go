package routes

import (
	"errors"

	"github.com/campusnav/campusnav/pkg/directions"
	"github.com/gofiber/fiber/v2"
)

func DirectionsRouter(router fiber.Router, client *directions.GoogleClient) {
	router.Get("/", getDirections(client))
}

func getDirections(client *directions.GoogleClient) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Query("origin")
		destination := c.Query("destination")
		mode := directions.Mode(c.Query("mode", string(directions.ModeWalking)))

		if origin == "" || destination == "" {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "origin and destination query parameters are required",
			})
		}

		result, err := client.GetDirections(c.Context(), origin, destination, mode)
		if err != nil {
			if errors.Is(err, directions.ErrNoRoutes) {
				c.SendStatus(fiber.StatusNotFound)
				return c.JSON(fiber.Map{
					"error": err.Error(),
				})
			}

			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Failed to fetch directions",
			})
		}

		return c.JSON(result)
	}
}
