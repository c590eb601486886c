package server

import (
	"app/internal/config"
	appmw "app/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// New はミドルウェア適用済みのechoを組み立てる。
func New(cfg config.Config, log *logrus.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(appmw.RequestLogger(log))

	if cfg.FEURL != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: []string{cfg.FEURL},
		}))
	}

	RegisterRoutes(e, h)
	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
