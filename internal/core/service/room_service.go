package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
	"github.com/Titan327/4CITE-backend/internal/core/ports"
)

type RoomService struct {
	repo   ports.RoomRepository
	logger zerolog.Logger
}

func NewRoomService(repo ports.RoomRepository, logger zerolog.Logger) *RoomService {
	return &RoomService{repo: repo, logger: logger}
}

func (s *RoomService) Search(ctx context.Context, filters map[string]string, page ports.Pagination) (*ports.RoomSearchOutput, error) {
	filters, err := searchFilters(domain.RoomSearchFields, filters)
	if err != nil {
		return nil, err
	}

	rooms, count, err := s.repo.SearchAndCount(ctx, filters, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}

	return &ports.RoomSearchOutput{
		Rooms:       rooms,
		TotalCount:  count,
		TotalPages:  page.TotalPages(count),
		CurrentPage: page.Page,
	}, nil
}

func (s *RoomService) Create(ctx context.Context, input ports.RoomInput) error {
	room := &domain.Room{
		HotelID:      input.HotelID,
		TypeRoom:     input.TypeRoom,
		MaxNbPeople:  input.MaxNbPeople,
		NumberOfRoom: input.NumberOfRoom,
		Description:  input.Description,
		Active:       defaultTrue(input.Active),
	}

	if err := s.repo.Create(ctx, room); err != nil {
		s.logger.Error().Err(err).Msg("failed to create room")
		return err
	}

	s.logger.Info().Int64("room_id", room.ID).Int64("hotel_id", room.HotelID).Msg("room created")
	return nil
}

func (s *RoomService) Update(ctx context.Context, id int64, patch ports.RoomPatch) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	fields := make(map[string]any)
	if patch.HotelID != nil {
		fields["hotel_id"] = *patch.HotelID
	}
	if patch.TypeRoom != nil {
		fields["type_room"] = *patch.TypeRoom
	}
	if patch.MaxNbPeople != nil {
		fields["max_nb_people"] = *patch.MaxNbPeople
	}
	if patch.NumberOfRoom != nil {
		fields["number_of_room"] = *patch.NumberOfRoom
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Active != nil {
		fields["active"] = *patch.Active
	}
	if len(fields) == 0 {
		return nil
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *RoomService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
