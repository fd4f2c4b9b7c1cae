package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"
	"github.com/spf13/viper"

	"github.com/ovalentin/tracker/internal/pkg/constants"
)

func requestIDMiddleware() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return random.String(16, random.Hex) },
	})
}

func corsMiddleware() echo.MiddlewareFunc {
	origins := viper.GetStringSlice(constants.ViperKeyCORSOrigins)
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	})
}
