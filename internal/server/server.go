package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New はミドルウェアとルーティングを組んだechoを返す。
func New(cfg config.Config, cartH *handler.CartHandler, orderH *handler.OrderHandler, productH *handler.ProductHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// FE_URLがあるときだけCORS（静的ページを別originで配る構成）
	if cfg.FEURL != "" {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{cfg.FEURL},
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		}))
	}

	cartH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
	productH.RegisterRoutes(e)

	return e
}

func Start(e *echo.Echo, port string) error {
	return e.Start(":" + port)
}
