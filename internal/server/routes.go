package server

import (
	"marketplace/internal/config"
	"marketplace/internal/handler"
	auth "marketplace/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// Handlersはルーティングに使う全ハンドラ
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Shop     *handler.ShopHandler
	Product  *handler.ProductHandler
	Category *handler.CategoryHandler
	Review   *handler.ReviewHandler
	Order    *handler.OrderHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, revoker auth.TokenRevoker, h Handlers) {
	h.Auth.RegisterRoutes(e, cfg, revoker)
	h.User.RegisterRoutes(e)
	h.Category.RegisterRoutes(e)
	h.Shop.RegisterRoutes(e, cfg, revoker)
	h.Product.RegisterRoutes(e, cfg, revoker)
	h.Review.RegisterRoutes(e, cfg, revoker)
	h.Order.RegisterRoutes(e, cfg, revoker)
}
