package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zainxyz/thriller/internal/model"
	"github.com/zainxyz/thriller/internal/repository"
	"github.com/zainxyz/thriller/internal/validation"
)

// MovieHandler serves CRUD for the movie catalog.  Creating or updating a
// movie resolves the referenced genre and embeds its {id, name} snapshot;
// the two steps are not atomic, which is acceptable because genres rarely
// change concurrently with movie writes.
type MovieHandler struct {
	Movies   *repository.MovieRepo
	Genres   *repository.GenreRepo
	Validate *validation.Validator
}

// NewMovieHandler constructs a MovieHandler and panics on nil dependencies.
func NewMovieHandler(movies *repository.MovieRepo, genres *repository.GenreRepo, v *validation.Validator) *MovieHandler {
	if movies == nil || genres == nil || v == nil {
		panic("nil dependency passed to NewMovieHandler")
	}
	return &MovieHandler{Movies: movies, Genres: genres, Validate: v}
}

// Stock and rate are pointers so that zero values still satisfy "required".
type movieReq struct {
	Title           string   `json:"title" validate:"required,min=5,max=255"`
	GenreID         uint64   `json:"genreId" validate:"required"`
	NumberInStock   *int     `json:"numberInStock" validate:"required,min=0,max=100"`
	DailyRentalRate *float64 `json:"dailyRentalRate" validate:"required,min=0,max=25"`
}

type movieResp struct {
	ID              uint64    `json:"id"`
	Title           string    `json:"title"`
	Genre           genrePart `json:"genre"`
	NumberInStock   int       `json:"numberInStock"`
	DailyRentalRate float64   `json:"dailyRentalRate"`
}

func toMovieResp(m model.Movie) movieResp {
	return movieResp{
		ID:              m.ID,
		Title:           m.Title,
		Genre:           genrePart{ID: m.GenreID, Name: m.GenreName},
		NumberInStock:   m.NumberInStock,
		DailyRentalRate: m.DailyRentalRate,
	}
}

// List handles GET /api/movies.
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.Movies.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not load movies")
	}
	out := make([]movieResp, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovieResp(m))
	}
	return respond(c, http.StatusOK, echo.Map{"movies": out, "totalRecords": len(out)})
}

// Get handles GET /api/movies/:id.
func (h *MovieHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return failInvalidID(c)
	}
	m, err := h.Movies.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrMovieNotFound {
			return fail(c, http.StatusNotFound, "movie with the given id was not found")
		}
		return fail(c, http.StatusInternalServerError, "could not load movie")
	}
	return respond(c, http.StatusOK, echo.Map{"movie": toMovieResp(m)})
}

// Create handles POST /api/movies.
func (h *MovieHandler) Create(c echo.Context) error {
	var req movieReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := h.Validate.Struct(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	genre, err := h.Genres.GetByID(c.Request().Context(), req.GenreID)
	if err != nil {
		if err == repository.ErrGenreNotFound {
			return fail(c, http.StatusNotFound, "genre with the given id was not found")
		}
		return fail(c, http.StatusInternalServerError, "could not resolve genre")
	}
	m := model.Movie{
		Title:           req.Title,
		GenreID:         genre.ID,
		GenreName:       genre.Name,
		NumberInStock:   *req.NumberInStock,
		DailyRentalRate: *req.DailyRentalRate,
	}
	if err := h.Movies.Create(c.Request().Context(), &m); err != nil {
		return fail(c, http.StatusInternalServerError, "could not create movie")
	}
	return respond(c, http.StatusCreated, echo.Map{"movie": toMovieResp(m)})
}

// Update handles PUT /api/movies/:id.  The genre snapshot is refreshed from
// the genre referenced in the request body.
func (h *MovieHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return failInvalidID(c)
	}
	var req movieReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := h.Validate.Struct(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	genre, err := h.Genres.GetByID(c.Request().Context(), req.GenreID)
	if err != nil {
		if err == repository.ErrGenreNotFound {
			return fail(c, http.StatusNotFound, "genre with the given id was not found")
		}
		return fail(c, http.StatusInternalServerError, "could not resolve genre")
	}
	m := model.Movie{
		ID:              id,
		Title:           req.Title,
		GenreID:         genre.ID,
		GenreName:       genre.Name,
		NumberInStock:   *req.NumberInStock,
		DailyRentalRate: *req.DailyRentalRate,
	}
	if err := h.Movies.Update(c.Request().Context(), &m); err != nil {
		if err == repository.ErrMovieNotFound {
			return fail(c, http.StatusNotFound, "movie with the given id was not found")
		}
		return fail(c, http.StatusInternalServerError, "could not update movie")
	}
	return respond(c, http.StatusOK, echo.Map{"movie": toMovieResp(m)})
}

// Delete handles DELETE /api/movies/:id (admin only).
func (h *MovieHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return failInvalidID(c)
	}
	m, err := h.Movies.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrMovieNotFound {
			return fail(c, http.StatusNotFound, "movie with the given id was not found")
		}
		return fail(c, http.StatusInternalServerError, "could not load movie")
	}
	if err := h.Movies.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrMovieNotFound {
			return fail(c, http.StatusNotFound, "movie with the given id was not found")
		}
		return fail(c, http.StatusInternalServerError, "could not delete movie")
	}
	return respond(c, http.StatusOK, echo.Map{"movie": toMovieResp(m)})
}
