package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
	"github.com/Titan327/4CITE-backend/internal/core/ports"
)

type BookingService struct {
	repo   ports.BookingRepository
	logger zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, logger: logger}
}

// Search scopes non-admin callers to their own bookings: whatever user_id
// the query carried is overwritten with the actor's id. The empty-filter
// check runs before scoping so that a bare search fails the same way for
// every role.
func (s *BookingService) Search(ctx context.Context, actor ports.Actor, filters map[string]string, page ports.Pagination) (*ports.BookingSearchOutput, error) {
	filters, err := searchFilters(domain.BookingSearchFields, filters)
	if err != nil {
		return nil, err
	}

	if actor.Role != domain.RoleAdmin {
		filters["user_id"] = strconv.FormatInt(actor.ID, 10)
	}

	bookings, count, err := s.repo.SearchAndCount(ctx, filters, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}

	return &ports.BookingSearchOutput{
		Bookings:    bookings,
		TotalCount:  count,
		TotalPages:  page.TotalPages(count),
		CurrentPage: page.Page,
	}, nil
}

// Create books a room for the acting user. The owner is always the actor;
// the payload cannot book on behalf of someone else.
func (s *BookingService) Create(ctx context.Context, actor ports.Actor, input ports.BookingInput) error {
	booking := &domain.Booking{
		RoomID:         input.RoomID,
		UserID:         actor.ID,
		NumberOfPeople: input.NumberOfPeople,
		DateIn:         input.DateIn,
		DateOut:        input.DateOut,
		Paid:           input.Paid,
		Active:         true,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.logger.Error().Err(err).Msg("failed to create booking")
		return err
	}

	s.logger.Info().Int64("booking_id", booking.ID).Int64("user_id", actor.ID).Msg("booking created")
	return nil
}

func (s *BookingService) Update(ctx context.Context, actor ports.Actor, id int64, patch ports.BookingPatch) error {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := checkOwnership(actor, booking.UserID); err != nil {
		return err
	}

	fields := make(map[string]any)
	if patch.RoomID != nil {
		fields["room_id"] = *patch.RoomID
	}
	if patch.UserID != nil {
		fields["user_id"] = *patch.UserID
	}
	if patch.NumberOfPeople != nil {
		fields["number_of_people"] = *patch.NumberOfPeople
	}
	if patch.DateIn != nil {
		fields["date_in"] = *patch.DateIn
	}
	if patch.DateOut != nil {
		fields["date_out"] = *patch.DateOut
	}
	if patch.Paid != nil {
		fields["paid"] = *patch.Paid
	}
	if patch.Active != nil {
		fields["active"] = *patch.Active
	}
	if len(fields) == 0 {
		return nil
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *BookingService) Delete(ctx context.Context, actor ports.Actor, id int64) error {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := checkOwnership(actor, booking.UserID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// checkOwnership allows admins and the record's owner; everyone else is
// denied.
func checkOwnership(actor ports.Actor, ownerID int64) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	if actor.ID == ownerID {
		return nil
	}
	return domain.ErrNotOwner
}
