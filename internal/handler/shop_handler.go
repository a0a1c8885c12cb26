package handler

import (
	"net/http"

	"marketplace/internal/config"
	"marketplace/internal/middleware"
	"marketplace/internal/usecase"
	auth "marketplace/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type ShopHandler struct {
	uc          *usecase.ShopUsecase
	dashboardUC *usecase.DashboardUsecase
}

// DI
func NewShopHandler(uc *usecase.ShopUsecase, dashboardUC *usecase.DashboardUsecase) *ShopHandler {
	return &ShopHandler{uc: uc, dashboardUC: dashboardUC}
}

func (h *ShopHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, revoker auth.TokenRevoker) {
	e.GET("/shops", h.list)
	e.GET("/shops/:id", h.detail)

	g := e.Group("/shops")
	g.Use(middleware.AuthJWT(cfg, revoker))
	g.Use(middleware.SellerGuard())

	g.POST("", h.create)
	//ダッシュボードはセラー本人のショップ集計
	e.GET("/shops/dashboard", h.dashboard, middleware.AuthJWT(cfg, revoker), middleware.SellerGuard())
}

type ShopCreateRequest struct {
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Hotline     *string `json:"hotline"`
}

func (h *ShopHandler) list(c echo.Context) error {
	shopID, err := queryInt64(c, "shop_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid shop_id"})
	}
	ownerID, err := queryInt64(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}

	out, err := h.uc.ListShops(c.Request().Context(), usecase.ListShopsInput{
		ShopID:      shopID,
		OwnerUserID: ownerID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ShopHandler) detail(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	s, err := h.uc.GetShop(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *ShopHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ShopCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	_, err := h.uc.CreateShop(c.Request().Context(), userID, usecase.CreateShopInput{
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Location:    req.Location,
		Hotline:     req.Hotline,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: "Your shop has been created successfully!"})
}

func (h *ShopHandler) dashboard(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.dashboardUC.MyDashboard(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
