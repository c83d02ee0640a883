package api

import (
	"github.com/campusnav/campusnav/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the campus navigation web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":3000",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					cfg := config.Load()

					if cfg.GoogleMapsAPIKey == "" {
						log.Warn().Msg("GOOGLE_MAPS_API_KEY is not set; directions requests will fail")
					}

					return SetupServer(c.String("listen"), cfg)
				},
			},
		},
	}
}
