package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zainxyz/thriller/internal/model"
	"github.com/zainxyz/thriller/internal/repository"
	"github.com/zainxyz/thriller/internal/validation"
)

// CustomerHandler serves CRUD for customers.
type CustomerHandler struct {
	Customers *repository.CustomerRepo
	Validate  *validation.Validator
}

// NewCustomerHandler constructs a CustomerHandler and panics on nil
// dependencies.
func NewCustomerHandler(customers *repository.CustomerRepo, v *validation.Validator) *CustomerHandler {
	if customers == nil || v == nil {
		panic("nil dependency passed to NewCustomerHandler")
	}
	return &CustomerHandler{Customers: customers, Validate: v}
}

type customerReq struct {
	Name   string `json:"name" validate:"required,min=5,max=50"`
	Phone  string `json:"phone" validate:"required,min=5,max=50"`
	IsGold bool   `json:"isGold"`
}

type customerResp struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	IsGold bool   `json:"isGold"`
}

func toCustomerResp(c model.Customer) customerResp {
	return customerResp{ID: c.ID, Name: c.Name, Phone: c.Phone, IsGold: c.IsGold}
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.Customers.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not load customers")
	}
	out := make([]customerResp, 0, len(customers))
	for _, cust := range customers {
		out = append(out, toCustomerResp(cust))
	}
	return respond(c, http.StatusOK, echo.Map{"customers": out, "totalRecords": len(out)})
}

// Get handles GET /api/customers/:id.
func (h *CustomerHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return failInvalidID(c)
	}
	cust, err := h.Customers.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrCustomerNotFound {
			return fail(c, http.StatusNotFound, "customer with the given id was not found")
		}
		return fail(c, http.StatusInternalServerError, "could not load customer")
	}
	return respond(c, http.StatusOK, echo.Map{"customer": toCustomerResp(cust)})
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := h.Validate.Struct(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	cust := model.Customer{Name: req.Name, Phone: req.Phone, IsGold: req.IsGold}
	if err := h.Customers.Create(c.Request().Context(), &cust); err != nil {
		return fail(c, http.StatusInternalServerError, "could not create customer")
	}
	return respond(c, http.StatusCreated, echo.Map{"customer": toCustomerResp(cust)})
}

// Update handles PUT /api/customers/:id.
func (h *CustomerHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return failInvalidID(c)
	}
	var req customerReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := h.Validate.Struct(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	cust := model.Customer{ID: id, Name: req.Name, Phone: req.Phone, IsGold: req.IsGold}
	if err := h.Customers.Update(c.Request().Context(), &cust); err != nil {
		if err == repository.ErrCustomerNotFound {
			return fail(c, http.StatusNotFound, "customer with the given id was not found")
		}
		return fail(c, http.StatusInternalServerError, "could not update customer")
	}
	return respond(c, http.StatusOK, echo.Map{"customer": toCustomerResp(cust)})
}

// Delete handles DELETE /api/customers/:id (admin only).
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return failInvalidID(c)
	}
	cust, err := h.Customers.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrCustomerNotFound {
			return fail(c, http.StatusNotFound, "customer with the given id was not found")
		}
		return fail(c, http.StatusInternalServerError, "could not load customer")
	}
	if err := h.Customers.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrCustomerNotFound {
			return fail(c, http.StatusNotFound, "customer with the given id was not found")
		}
		return fail(c, http.StatusInternalServerError, "could not delete customer")
	}
	return respond(c, http.StatusOK, echo.Map{"customer": toCustomerResp(cust)})
}
