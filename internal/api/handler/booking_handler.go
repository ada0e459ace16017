package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Titan327/4CITE-backend/internal/api/metrics"
	"github.com/Titan327/4CITE-backend/internal/core/domain"
	"github.com/Titan327/4CITE-backend/internal/core/ports"
)

type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type createBookingRequest struct {
	RoomID         int64     `json:"room_id" validate:"required"`
	NumberOfPeople int       `json:"number_of_people" validate:"required,gt=0"`
	DateIn         time.Time `json:"date_in" validate:"required"`
	DateOut        time.Time `json:"date_out" validate:"required"`
	Paid           bool      `json:"paid"`
}

type bookingPatchRequest struct {
	RoomID         *int64     `json:"room_id"`
	UserID         *int64     `json:"user_id"`
	NumberOfPeople *int       `json:"number_of_people"`
	DateIn         *time.Time `json:"date_in"`
	DateOut        *time.Time `json:"date_out"`
	Paid           *bool      `json:"paid"`
	Active         *bool      `json:"active"`
}

type bookingSearchResponse struct {
	Bookings    []domain.Booking `json:"bookings"`
	TotalCount  int64            `json:"totalCount"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

// Search returns bookings matching allowlisted equality filters, paginated.
// Non-admin callers only ever see their own bookings.
//
// @Summary      Search bookings
// @Tags         booking
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200    {object}  map[string]bookingSearchResponse
// @Failure      449    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /booking/search [get]
func (h *BookingHandler) Search(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	out, err := h.service.Search(c.Request().Context(), actor, queryFilters(c), pagination(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"success": bookingSearchResponse{
		Bookings:    out.Bookings,
		TotalCount:  out.TotalCount,
		TotalPages:  out.TotalPages,
		CurrentPage: out.CurrentPage,
	}})
}

// Create books a room for the authenticated user.
//
// @Summary      Create a booking
// @Tags         booking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  map[string]string
// @Failure      449   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /booking [post]
func (h *BookingHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}

	err = h.service.Create(c.Request().Context(), actor, ports.BookingInput{
		RoomID:         req.RoomID,
		NumberOfPeople: req.NumberOfPeople,
		DateIn:         req.DateIn,
		DateOut:        req.DateOut,
		Paid:           req.Paid,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, map[string]string{"success": "Booking created."})
}

// Update applies a partial update to a booking the caller owns (or any
// booking, for admins).
func (h *BookingHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domain.ErrBookingNotFound)
	if err != nil {
		return err
	}

	var req bookingPatchRequest
	if err := decodeStrict(c, &req); err != nil {
		return err
	}

	err = h.service.Update(c.Request().Context(), actor, id, ports.BookingPatch{
		RoomID:         req.RoomID,
		UserID:         req.UserID,
		NumberOfPeople: req.NumberOfPeople,
		DateIn:         req.DateIn,
		DateOut:        req.DateOut,
		Paid:           req.Paid,
		Active:         req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"success": "Booking updated."})
}

// Delete removes a booking the caller owns (or any booking, for admins).
func (h *BookingHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domain.ErrBookingNotFound)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"success": "Booking deleted."})
}
