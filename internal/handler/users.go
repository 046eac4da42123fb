package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zainxyz/thriller/internal/config"
	"github.com/zainxyz/thriller/internal/middleware"
	"github.com/zainxyz/thriller/internal/repository"
	"github.com/zainxyz/thriller/internal/utils"
	"github.com/zainxyz/thriller/internal/validation"
)

// UserHandler serves account registration and the current-user lookup.
type UserHandler struct {
	Cfg      config.Config
	Users    *repository.UserRepo
	Validate *validation.Validator
}

// NewUserHandler constructs a UserHandler and panics on nil dependencies.
func NewUserHandler(cfg config.Config, users *repository.UserRepo, v *validation.Validator) *UserHandler {
	if users == nil || v == nil {
		panic("nil dependency passed to NewUserHandler")
	}
	return &UserHandler{Cfg: cfg, Users: users, Validate: v}
}

type registerReq struct {
	Name     string `json:"name" validate:"required,min=5,max=50"`
	Email    string `json:"email" validate:"required,min=5,max=255,email"`
	Password string `json:"password" validate:"required,password"`
}

type userPart struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register handles POST /api/users: create the account and sign the caller
// in immediately by returning a fresh access token.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := h.Validate.Struct(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Name, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailExists {
			return fail(c, http.StatusBadRequest, "a user has already been registered with this email")
		}
		return fail(c, http.StatusInternalServerError, "could not create user")
	}

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, uid, false, h.Cfg.AccessTTLMin)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not issue token")
	}
	return respond(c, http.StatusCreated, echo.Map{
		"token": token,
		"user":  userPart{ID: uid, Name: req.Name, Email: req.Email},
	})
}

// Current handles GET /api/users/current for the authenticated principal.
func (h *UserHandler) Current(c echo.Context) error {
	p, ok := middleware.Principal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "access denied, a bearer token must be provided")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, p.UserID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return fail(c, http.StatusNotFound, "user with the given id was not found")
		}
		return fail(c, http.StatusInternalServerError, "could not load user")
	}
	return respond(c, http.StatusOK, echo.Map{
		"user": userPart{ID: u.ID, Name: u.Name, Email: u.Email},
	})
}
