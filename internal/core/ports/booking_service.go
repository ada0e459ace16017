package ports

import (
	"context"
	"time"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
)

type BookingInput struct {
	RoomID         int64
	NumberOfPeople int
	DateIn         time.Time
	DateOut        time.Time
	Paid           bool
}

type BookingPatch struct {
	RoomID         *int64
	UserID         *int64
	NumberOfPeople *int
	DateIn         *time.Time
	DateOut        *time.Time
	Paid           *bool
	Active         *bool
}

type BookingSearchOutput struct {
	Bookings    []domain.Booking
	TotalCount  int64
	TotalPages  int
	CurrentPage int
}

// BookingService is the one resource service that takes an Actor: searches
// are scoped to the caller's own bookings unless the caller is an admin, and
// mutation and deletion run the ownership check first.
type BookingService interface {
	Search(ctx context.Context, actor Actor, filters map[string]string, page Pagination) (*BookingSearchOutput, error)
	Create(ctx context.Context, actor Actor, input BookingInput) error
	Update(ctx context.Context, actor Actor, id int64, patch BookingPatch) error
	Delete(ctx context.Context, actor Actor, id int64) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	FindByID(ctx context.Context, id int64) (*domain.Booking, error)
	SearchAndCount(ctx context.Context, filters map[string]string, limit, offset int) ([]domain.Booking, int64, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}
