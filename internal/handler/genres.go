package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zainxyz/thriller/internal/model"
	"github.com/zainxyz/thriller/internal/repository"
	"github.com/zainxyz/thriller/internal/validation"
)

// GenreHandler serves CRUD for the genre catalog.
type GenreHandler struct {
	Genres   *repository.GenreRepo
	Validate *validation.Validator
}

// NewGenreHandler constructs a GenreHandler and panics on nil dependencies.
func NewGenreHandler(genres *repository.GenreRepo, v *validation.Validator) *GenreHandler {
	if genres == nil || v == nil {
		panic("nil dependency passed to NewGenreHandler")
	}
	return &GenreHandler{Genres: genres, Validate: v}
}

type genreReq struct {
	Name string `json:"name" validate:"required,min=5,max=50"`
}

type genrePart struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

func toGenrePart(g model.Genre) genrePart { return genrePart{ID: g.ID, Name: g.Name} }

// List handles GET /api/genres.
func (h *GenreHandler) List(c echo.Context) error {
	genres, err := h.Genres.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not load genres")
	}
	out := make([]genrePart, 0, len(genres))
	for _, g := range genres {
		out = append(out, toGenrePart(g))
	}
	return respond(c, http.StatusOK, echo.Map{"genres": out, "totalRecords": len(out)})
}

// Get handles GET /api/genres/:id.
func (h *GenreHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return failInvalidID(c)
	}
	g, err := h.Genres.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrGenreNotFound {
			return fail(c, http.StatusNotFound, "genre with the given id was not found")
		}
		return fail(c, http.StatusInternalServerError, "could not load genre")
	}
	return respond(c, http.StatusOK, echo.Map{"genre": toGenrePart(g)})
}

// Create handles POST /api/genres.
func (h *GenreHandler) Create(c echo.Context) error {
	var req genreReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := h.Validate.Struct(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	g := model.Genre{Name: req.Name}
	if err := h.Genres.Create(c.Request().Context(), &g); err != nil {
		if err == repository.ErrGenreExists {
			return fail(c, http.StatusBadRequest, "genre name already exists")
		}
		return fail(c, http.StatusInternalServerError, "could not create genre")
	}
	return respond(c, http.StatusCreated, echo.Map{"genre": toGenrePart(g)})
}

// Update handles PUT /api/genres/:id.
func (h *GenreHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return failInvalidID(c)
	}
	var req genreReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := h.Validate.Struct(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	if err := h.Genres.UpdateName(c.Request().Context(), id, req.Name); err != nil {
		switch err {
		case repository.ErrGenreNotFound:
			return fail(c, http.StatusNotFound, "genre with the given id was not found")
		case repository.ErrGenreExists:
			return fail(c, http.StatusBadRequest, "genre name already exists")
		}
		return fail(c, http.StatusInternalServerError, "could not update genre")
	}
	return respond(c, http.StatusOK, echo.Map{"genre": genrePart{ID: id, Name: req.Name}})
}

// Delete handles DELETE /api/genres/:id (admin only).
func (h *GenreHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return failInvalidID(c)
	}
	g, err := h.Genres.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrGenreNotFound {
			return fail(c, http.StatusNotFound, "genre with the given id was not found")
		}
		return fail(c, http.StatusInternalServerError, "could not load genre")
	}
	if err := h.Genres.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrGenreNotFound {
			return fail(c, http.StatusNotFound, "genre with the given id was not found")
		}
		return fail(c, http.StatusInternalServerError, "could not delete genre")
	}
	return respond(c, http.StatusOK, echo.Map{"genre": toGenrePart(g)})
}
