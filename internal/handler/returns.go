package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zainxyz/thriller/internal/queue"
	"github.com/zainxyz/thriller/internal/repository"
	"github.com/zainxyz/thriller/internal/service"
)

// Return handles POST /api/returns: close the open rental for the given
// customer and movie, compute the fee and restore stock.
func (h *RentalHandler) Return(c echo.Context) error {
	var req rentalReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := h.Validate.Struct(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rental, err := h.Service.ReturnRental(ctx, req.CustomerID, req.MovieID)
	if err != nil {
		switch err {
		case repository.ErrRentalNotFound:
			return fail(c, http.StatusNotFound, "no rental was found for this customer and movie")
		case service.ErrAlreadyReturned:
			return fail(c, http.StatusBadRequest, "your return has already been processed")
		default:
			return fail(c, http.StatusInternalServerError, "could not process return")
		}
	}

	if h.Events != nil {
		_ = h.Events.RentalReturned(ctx, queue.RentalReturnedEvent{
			RentalID:     rental.ID,
			CustomerID:   rental.CustomerID,
			CustomerName: rental.CustomerName,
			MovieID:      rental.MovieID,
			MovieTitle:   rental.MovieTitle,
			DateOut:      rental.DateOut.Format(time.RFC3339),
			DateReturned: rental.DateReturned.Format(time.RFC3339),
			RentalFee:    *rental.RentalFee,
		})
	}

	return respond(c, http.StatusOK, echo.Map{"rental": toRentalResp(rental)})
}
