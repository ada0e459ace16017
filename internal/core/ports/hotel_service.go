package ports

import (
	"context"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
)

type HotelInput struct {
	Name        string
	Address     string
	City        string
	Country     string
	Description string
	Active      *bool // nil defaults to true
}

type HotelPatch struct {
	Name        *string
	Address     *string
	City        *string
	Country     *string
	Description *string
	Active      *bool
}

type HotelSearchOutput struct {
	Hotels      []domain.Hotel
	TotalCount  int64
	TotalPages  int
	CurrentPage int
}

type HotelService interface {
	Search(ctx context.Context, filters map[string]string, page Pagination) (*HotelSearchOutput, error)
	Create(ctx context.Context, input HotelInput) error
	Update(ctx context.Context, id int64, patch HotelPatch) error
	Delete(ctx context.Context, id int64) error
}

type HotelRepository interface {
	Create(ctx context.Context, hotel *domain.Hotel) error
	FindByID(ctx context.Context, id int64) (*domain.Hotel, error)
	SearchAndCount(ctx context.Context, filters map[string]string, limit, offset int) ([]domain.Hotel, int64, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}
