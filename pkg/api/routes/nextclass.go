package routes

import (
	"github.com/campusnav/campusnav/pkg/cdm"
	"github.com/campusnav/campusnav/pkg/dataset"
	"github.com/campusnav/campusnav/pkg/nextclass"
	"github.com/gofiber/fiber/v2"
)

func NextClassRouter(router fiber.Router, parser *nextclass.Parser) {
	router.Post("/", postNextClass(parser))
}

// postNextClass accepts a flat calendar event feed and answers with the next
// upcoming class, classified the way the next-class widget consumes it.
func postNextClass(parser *nextclass.Parser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var requestBody struct {
			Events []cdm.CalendarEvent `json:"events"`
		}

		if err := c.BodyParser(&requestBody); err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(nextclass.APIErrorStatus(err))
		}

		result := parser.FindNextClass(requestBody.Events, requestTime(c))

		return c.JSON(nextclass.Classify(result, dataset.Buildings()))
	}
}
