package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/config"
	"marketplace/internal/middleware"
	auth "marketplace/internal/usecase/auth_usecase"
	"marketplace/internal/validator"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	registerUC *auth.RegisterUsecase
	activateUC *auth.ActivateUsecase
	loginUC    *auth.LoginUsecase
	logoutUC   *auth.LogoutUsecase
}

// DI
func NewAuthHandler(
	registerUC *auth.RegisterUsecase,
	activateUC *auth.ActivateUsecase,
	loginUC *auth.LoginUsecase,
	logoutUC *auth.LogoutUsecase,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		activateUC: activateUC,
		loginUC:    loginUC,
		logoutUC:   logoutUC,
	}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, revoker auth.TokenRevoker) {
	g := e.Group("/auth")
	g.POST("/register/seller", h.registerSeller)
	g.POST("/register/customer", h.registerCustomer)
	g.GET("/activate/:uid/:token", h.activate)
	g.POST("/login", h.login)
	g.POST("/logout", h.logout, middleware.AuthJWT(cfg, revoker))
}

type registerRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Image       string `json:"image"`
	MobileNo    string `json:"mobile_no"`
	FullAddress string `json:"full_address"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) registerSeller(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := validator.ValidateRegister(req.Username, req.Email, req.Password); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	_, err := h.registerUC.RegisterSeller(c.Request().Context(), auth.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		Image:       req.Image,
		MobileNo:    req.MobileNo,
		FullAddress: req.FullAddress,
	})
	if err != nil {
		return writeAuthError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: "Please check your email for confirmation!"})
}

func (h *AuthHandler) registerCustomer(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := validator.ValidateRegister(req.Username, req.Email, req.Password); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	_, err := h.registerUC.RegisterCustomer(c.Request().Context(), auth.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		Image:       req.Image,
		FullAddress: req.FullAddress,
	})
	if err != nil {
		return writeAuthError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: "Please check your email for confirmation!"})
}

func (h *AuthHandler) activate(c echo.Context) error {
	uid, err := strconv.ParseInt(c.Param("uid"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Something went wrong"})
	}
	token := c.Param("token")

	if err := h.activateUC.Execute(c.Request().Context(), uid, token); err != nil {
		if errors.Is(err, auth.ErrInvalidActivation) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Something went wrong"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: "Email confirmed. You can log in now."})
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := validator.ValidateLogin(req.Username, req.Password); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid information provided!"})
		case errors.Is(err, auth.ErrUserInactive):
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "Please confirm your email first."})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.JSON(http.StatusOK, out)
}

// logoutは認証必須。現トークンを失効させる。
func (h *AuthHandler) logout(c echo.Context) error {
	jti, _ := c.Get(middleware.CtxTokenJTIKey).(string)
	exp, _ := c.Get(middleware.CtxTokenExpKey).(time.Time)

	if err := h.logoutUC.Execute(c.Request().Context(), jti, exp); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: "Logout successful!"})
}

func writeAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrUsernameRequired),
		errors.Is(err, auth.ErrInvalidEmailFormat),
		errors.Is(err, auth.ErrPasswordTooShort):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrEmailAlreadyExists),
		errors.Is(err, auth.ErrUsernameAlreadyExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
