package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zainxyz/thriller/internal/config"
	"github.com/zainxyz/thriller/internal/repository"
	"github.com/zainxyz/thriller/internal/utils"
	"github.com/zainxyz/thriller/internal/validation"
)

// AuthHandler exchanges credentials for access tokens.
type AuthHandler struct {
	Cfg      config.Config
	Users    *repository.UserRepo
	Validate *validation.Validator
}

// NewAuthHandler constructs an AuthHandler and panics on nil dependencies.
func NewAuthHandler(cfg config.Config, users *repository.UserRepo, v *validation.Validator) *AuthHandler {
	if users == nil || v == nil {
		panic("nil dependency passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Users: users, Validate: v}
}

type loginReq struct {
	Email    string `json:"email" validate:"required,min=5,max=255,email"`
	Password string `json:"password" validate:"required,min=5,max=255"`
}

// Login handles POST /api/auth. Unknown emails and bad passwords share one
// message so the response does not leak which accounts exist.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := h.Validate.Struct(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return fail(c, http.StatusBadRequest, "invalid email or password")
		}
		return fail(c, http.StatusInternalServerError, "could not look up user")
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return fail(c, http.StatusBadRequest, "invalid email or password")
	}

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.IsAdmin, h.Cfg.AccessTTLMin)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not issue token")
	}
	return respond(c, http.StatusOK, echo.Map{"accessToken": token})
}
