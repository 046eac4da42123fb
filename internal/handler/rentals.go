package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zainxyz/thriller/internal/model"
	"github.com/zainxyz/thriller/internal/queue"
	"github.com/zainxyz/thriller/internal/repository"
	"github.com/zainxyz/thriller/internal/service"
	"github.com/zainxyz/thriller/internal/validation"
)

// RentalHandler serves the rental lifecycle endpoints.  Events is optional:
// when nil no broker messages are published, which is how handler tests run.
type RentalHandler struct {
	Service  *service.RentalService
	Validate *validation.Validator
	Events   *service.EventPublisher
}

// NewRentalHandler constructs a RentalHandler and panics on nil dependencies.
// The event publisher may be nil.
func NewRentalHandler(svc *service.RentalService, v *validation.Validator, events *service.EventPublisher) *RentalHandler {
	if svc == nil || v == nil {
		panic("nil dependency passed to NewRentalHandler")
	}
	return &RentalHandler{Service: svc, Validate: v, Events: events}
}

type rentalReq struct {
	CustomerID uint64 `json:"customerId" validate:"required"`
	MovieID    uint64 `json:"movieId" validate:"required"`
}

type rentalCustomerPart struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type rentalMoviePart struct {
	ID              uint64  `json:"id"`
	Title           string  `json:"title"`
	DailyRentalRate float64 `json:"dailyRentalRate"`
}

type rentalResp struct {
	ID           uint64             `json:"id"`
	Customer     rentalCustomerPart `json:"customer"`
	Movie        rentalMoviePart    `json:"movie"`
	DateOut      time.Time          `json:"dateOut"`
	DateReturned *time.Time         `json:"dateReturned"`
	RentalFee    *float64           `json:"rentalFee"`
}

func toRentalResp(r model.Rental) rentalResp {
	return rentalResp{
		ID: r.ID,
		Customer: rentalCustomerPart{
			ID:    r.CustomerID,
			Name:  r.CustomerName,
			Phone: r.CustomerPhone,
		},
		Movie: rentalMoviePart{
			ID:              r.MovieID,
			Title:           r.MovieTitle,
			DailyRentalRate: r.DailyRentalRate,
		},
		DateOut:      r.DateOut,
		DateReturned: r.DateReturned,
		RentalFee:    r.RentalFee,
	}
}

// List handles GET /api/rentals, most recent checkout first.
func (h *RentalHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rentals, err := h.Service.ListRentals(ctx)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not list rentals")
	}
	out := make([]rentalResp, 0, len(rentals))
	for _, r := range rentals {
		out = append(out, toRentalResp(r))
	}
	return respond(c, http.StatusOK, echo.Map{
		"rentals":      out,
		"totalRecords": len(out),
	})
}

// Create handles POST /api/rentals: check a movie out to a customer.
func (h *RentalHandler) Create(c echo.Context) error {
	var req rentalReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := h.Validate.Struct(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rental, err := h.Service.CreateRental(ctx, req.CustomerID, req.MovieID)
	if err != nil {
		switch err {
		case repository.ErrCustomerNotFound:
			return fail(c, http.StatusNotFound, "customer with the given id was not found")
		case repository.ErrMovieNotFound:
			return fail(c, http.StatusNotFound, "movie with the given id was not found")
		case repository.ErrNoStock:
			return fail(c, http.StatusBadRequest, "movie is out of stock")
		case service.ErrAlreadyRented:
			return fail(c, http.StatusBadRequest, "customer already has this movie checked out")
		default:
			return fail(c, http.StatusInternalServerError, "could not create rental")
		}
	}

	if h.Events != nil {
		_ = h.Events.RentalCreated(ctx, queue.RentalCreatedEvent{
			RentalID:        rental.ID,
			CustomerID:      rental.CustomerID,
			CustomerName:    rental.CustomerName,
			MovieID:         rental.MovieID,
			MovieTitle:      rental.MovieTitle,
			DailyRentalRate: rental.DailyRentalRate,
			DateOut:         rental.DateOut.Format(time.RFC3339),
		})
	}

	return respond(c, http.StatusCreated, echo.Map{"rental": toRentalResp(rental)})
}
