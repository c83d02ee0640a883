package api

import (
	"github.com/campusnav/campusnav/pkg/api/routes"
	"github.com/campusnav/campusnav/pkg/config"
	"github.com/campusnav/campusnav/pkg/dataset"
	"github.com/campusnav/campusnav/pkg/directions"
	"github.com/campusnav/campusnav/pkg/nextclass"
	"github.com/campusnav/campusnav/pkg/shuttle"
	"github.com/gofiber/fiber/v2"
)

func SetupServer(listen string, cfg config.Config) error {
	googleClient, err := directions.NewGoogleClient(cfg.GoogleMapsAPIKey)
	if err != nil {
		return err
	}

	provider := directions.NewCachedProvider(googleClient, directions.DefaultLegCacheTTL)
	composer := shuttle.NewComposer(provider)
	parser := nextclass.NewParser(dataset.Buildings())

	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/api")

	group.Get("version", routes.APIVersion)

	routes.DirectionsRouter(group.Group("/route"), googleClient)
	routes.BuildingsRouter(group.Group("/buildings"))
	routes.ShuttleRouter(group.Group("/shuttle"), composer)
	routes.NextClassRouter(group.Group("/nextclass"), parser)

	return webApp.Listen(listen)
}
