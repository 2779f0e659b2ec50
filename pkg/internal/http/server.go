package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/testepaprubenaecerco/Posts/pkg/internal/http/api"
)

type App struct {
	*fiber.App
}

func NewServer() *App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Paprubene.Posts",
		AppName:               "Paprubene.Posts",
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	api.MapAPIs(app)

	return &App{app}
}

func (v *App) Listen() {
	if err := v.App.Listen(fmt.Sprintf("0.0.0.0:%d", viper.GetInt("port"))); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting the http server.")
	}
}
