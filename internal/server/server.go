package server

import (
	"net/http"

	"marketplace/internal/config"
	"marketplace/internal/metrics"
	"marketplace/internal/middleware"
	auth "marketplace/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

func Start(cfg config.Config, revoker auth.TokenRevoker, h Handlers) error {
	e := echo.New()
	e.HideBanner = true

	//共通ミドルウェア
	m := metrics.NewServerMetrics()
	e.Use(m.Middleware())
	e.Use(middleware.RateLimit(100, 50))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	RegisterRoutes(e, cfg, revoker, h)

	addr := cfg.Port
	if addr == "" {
		addr = "8080"
	}
	if addr[0] != ':' {
		addr = ":" + addr
	}
	return e.Start(addr)
}
