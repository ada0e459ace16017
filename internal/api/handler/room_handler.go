package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
	"github.com/Titan327/4CITE-backend/internal/core/ports"
)

type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

type createRoomRequest struct {
	HotelID      int64  `json:"hotel_id" validate:"required"`
	TypeRoom     string `json:"type_room" validate:"required"`
	MaxNbPeople  int    `json:"max_nb_people" validate:"required"`
	NumberOfRoom int    `json:"number_of_room" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Active       *bool  `json:"active"`
}

type roomPatchRequest struct {
	HotelID      *int64  `json:"hotel_id"`
	TypeRoom     *string `json:"type_room"`
	MaxNbPeople  *int    `json:"max_nb_people"`
	NumberOfRoom *int    `json:"number_of_room"`
	Description  *string `json:"description"`
	Active       *bool   `json:"active"`
}

type roomSearchResponse struct {
	Rooms       []domain.Room `json:"rooms"`
	TotalCount  int64         `json:"totalCount"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
}

// Search returns rooms matching allowlisted equality filters, paginated.
//
// @Summary      Search rooms
// @Tags         room
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200    {object}  map[string]roomSearchResponse
// @Failure      449    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /room/search [get]
func (h *RoomHandler) Search(c echo.Context) error {
	out, err := h.service.Search(c.Request().Context(), queryFilters(c), pagination(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"success": roomSearchResponse{
		Rooms:       out.Rooms,
		TotalCount:  out.TotalCount,
		TotalPages:  out.TotalPages,
		CurrentPage: out.CurrentPage,
	}})
}

// Create adds a room type to a hotel. Admin only.
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}

	err := h.service.Create(c.Request().Context(), ports.RoomInput{
		HotelID:      req.HotelID,
		TypeRoom:     req.TypeRoom,
		MaxNbPeople:  req.MaxNbPeople,
		NumberOfRoom: req.NumberOfRoom,
		Description:  req.Description,
		Active:       req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"success": "Room created."})
}

// Update applies a partial update to a room. Admin only.
func (h *RoomHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrRoomNotFound)
	if err != nil {
		return err
	}

	var req roomPatchRequest
	if err := decodeStrict(c, &req); err != nil {
		return err
	}

	err = h.service.Update(c.Request().Context(), id, ports.RoomPatch{
		HotelID:      req.HotelID,
		TypeRoom:     req.TypeRoom,
		MaxNbPeople:  req.MaxNbPeople,
		NumberOfRoom: req.NumberOfRoom,
		Description:  req.Description,
		Active:       req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"success": "Room updated."})
}

// Delete removes a room. Admin only.
func (h *RoomHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrRoomNotFound)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"success": "Room deleted."})
}
