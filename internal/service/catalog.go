package service

import (
	"context"
	"fmt"
	"pokedex/internal/domain"

	"github.com/rs/zerolog"
)

type CatalogService struct {
	gateway Gateway
	logger  zerolog.Logger
}

func NewCatalogService(gateway Gateway, logger zerolog.Logger) *CatalogService {
	return &CatalogService{gateway: gateway, logger: logger}
}

// ListAll fetches the whole catalog in one request.
func (s *CatalogService) ListAll(ctx context.Context) ([]domain.CreatureSummary, error) {
	resp, err := s.gateway.ListPokemon(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch pokemon list")
		return nil, fmt.Errorf("failed to fetch pokemon list: %w", err)
	}

	list := make([]domain.CreatureSummary, 0, len(resp.Results))
	for _, r := range resp.Results {
		list = append(list, domain.CreatureSummary{Name: r.Name, URL: r.URL})
	}

	s.logger.Info().Int("count", len(list)).Int("upstream_count", resp.Count).Msg("pokemon list fetched")
	return list, nil
}
