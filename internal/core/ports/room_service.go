package ports

import (
	"context"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
)

type RoomInput struct {
	HotelID      int64
	TypeRoom     string
	MaxNbPeople  int
	NumberOfRoom int
	Description  string
	Active       *bool // nil defaults to true
}

type RoomPatch struct {
	HotelID      *int64
	TypeRoom     *string
	MaxNbPeople  *int
	NumberOfRoom *int
	Description  *string
	Active       *bool
}

type RoomSearchOutput struct {
	Rooms       []domain.Room
	TotalCount  int64
	TotalPages  int
	CurrentPage int
}

type RoomService interface {
	Search(ctx context.Context, filters map[string]string, page Pagination) (*RoomSearchOutput, error)
	Create(ctx context.Context, input RoomInput) error
	Update(ctx context.Context, id int64, patch RoomPatch) error
	Delete(ctx context.Context, id int64) error
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	FindByID(ctx context.Context, id int64) (*domain.Room, error)
	SearchAndCount(ctx context.Context, filters map[string]string, limit, offset int) ([]domain.Room, int64, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}
