package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
	"github.com/Titan327/4CITE-backend/internal/core/ports"
)

type HotelService struct {
	repo   ports.HotelRepository
	logger zerolog.Logger
}

func NewHotelService(repo ports.HotelRepository, logger zerolog.Logger) *HotelService {
	return &HotelService{repo: repo, logger: logger}
}

func (s *HotelService) Search(ctx context.Context, filters map[string]string, page ports.Pagination) (*ports.HotelSearchOutput, error) {
	filters, err := searchFilters(domain.HotelSearchFields, filters)
	if err != nil {
		return nil, err
	}

	hotels, count, err := s.repo.SearchAndCount(ctx, filters, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}

	return &ports.HotelSearchOutput{
		Hotels:      hotels,
		TotalCount:  count,
		TotalPages:  page.TotalPages(count),
		CurrentPage: page.Page,
	}, nil
}

func (s *HotelService) Create(ctx context.Context, input ports.HotelInput) error {
	hotel := &domain.Hotel{
		Name:        input.Name,
		Address:     input.Address,
		City:        input.City,
		Country:     input.Country,
		Description: input.Description,
		Active:      defaultTrue(input.Active),
	}

	if err := s.repo.Create(ctx, hotel); err != nil {
		s.logger.Error().Err(err).Msg("failed to create hotel")
		return err
	}

	s.logger.Info().Int64("hotel_id", hotel.ID).Str("name", hotel.Name).Msg("hotel created")
	return nil
}

func (s *HotelService) Update(ctx context.Context, id int64, patch ports.HotelPatch) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	fields := make(map[string]any)
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Address != nil {
		fields["address"] = *patch.Address
	}
	if patch.City != nil {
		fields["city"] = *patch.City
	}
	if patch.Country != nil {
		fields["country"] = *patch.Country
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

func (s *HotelService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// searchFilters validates the raw query keys against the operation's
// allowlist, strips the pagination controls, and requires at least one real
// filter to remain. The input map is not mutated.
func searchFilters(allowed domain.FieldSet, raw map[string]string) (map[string]string, error) {
	if err := allowed.Check(mapKeys(raw)); err != nil {
		return nil, err
	}

	filters := make(map[string]string, len(raw))
	for k, v := range raw {
		if k == "page" || k == "limit" {
			continue
		}
		filters[k] = v
	}
	if len(filters) == 0 {
		return nil, domain.ErrEmptySearch
	}
	return filters, nil
}

func defaultTrue(b *bool) bool {
	if b == nil {
		return true
	}
	return *b
}
