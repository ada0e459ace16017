package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
	"github.com/Titan327/4CITE-backend/internal/core/ports"
)

type HotelHandler struct {
	service ports.HotelService
}

func NewHotelHandler(service ports.HotelService) *HotelHandler {
	return &HotelHandler{service: service}
}

type createHotelRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	City        string `json:"city" validate:"required"`
	Country     string `json:"country" validate:"required"`
	Description string `json:"description" validate:"required"`
	Active      *bool  `json:"active"`
}

type hotelPatchRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

type hotelSearchResponse struct {
	Hotels      []domain.Hotel `json:"hotels"`
	TotalCount  int64          `json:"totalCount"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
}

// Search returns hotels matching allowlisted equality filters, paginated.
//
// @Summary      Search hotels
// @Tags         hotel
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200    {object}  map[string]hotelSearchResponse
// @Failure      449    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /hotel/search [get]
func (h *HotelHandler) Search(c echo.Context) error {
	out, err := h.service.Search(c.Request().Context(), queryFilters(c), pagination(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"success": hotelSearchResponse{
		Hotels:      out.Hotels,
		TotalCount:  out.TotalCount,
		TotalPages:  out.TotalPages,
		CurrentPage: out.CurrentPage,
	}})
}

// Create adds a hotel. Admin only.
func (h *HotelHandler) Create(c echo.Context) error {
	var req createHotelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}

	err := h.service.Create(c.Request().Context(), ports.HotelInput{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"success": "Hotel created."})
}

// Update applies a partial update to a hotel. Admin only.
func (h *HotelHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrHotelNotFound)
	if err != nil {
		return err
	}

	var req hotelPatchRequest
	if err := decodeStrict(c, &req); err != nil {
		return err
	}

	err = h.service.Update(c.Request().Context(), id, ports.HotelPatch{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"success": "Hotel updated."})
}

// Delete removes a hotel. Admin only.
func (h *HotelHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrHotelNotFound)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"success": "Hotel deleted."})
}
