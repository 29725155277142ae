package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func NewFiber(logger *logrus.Logger, views *html.Engine) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:           "Manhwa Catalog",
			BodyLimit:         1 * 1024 * 1024,
			DisableKeepalive:  false,
			StrictRouting:     true,
			CaseSensitive:     true,
			UnescapePath:      true,
			EnablePrintRoutes: logger.IsLevelEnabled(logrus.DebugLevel),
			Views:             views,
			JSONEncoder:       jsoniter.Marshal,
			JSONDecoder:       jsoniter.Unmarshal,
		})

	return app
}
