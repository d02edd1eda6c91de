package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"pokedex/internal/domain"
	"strings"

	"github.com/rs/zerolog"
)

var ErrInvalidChainURL = errors.New("evolution chain url has no identifier")

type DetailService struct {
	gateway    Gateway
	evolutions *EvolutionService
	logger     zerolog.Logger
}

func NewDetailService(gateway Gateway, evolutions *EvolutionService, logger zerolog.Logger) *DetailService {
	return &DetailService{gateway: gateway, evolutions: evolutions, logger: logger}
}

// ComposeDetails runs pokemon -> species -> evolution chain in order. Any
// failure aborts the whole composition.
func (s *DetailService) ComposeDetails(ctx context.Context, name string) (*domain.CreatureDetails, error) {
	s.logger.Debug().Str("name", name).Msg("composing details")

	pokemon, err := s.gateway.GetPokemon(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to fetch pokemon")
		return nil, fmt.Errorf("failed to fetch pokemon: %w", err)
	}

	species, err := s.gateway.GetSpecies(ctx, pokemon.Name)
	if err != nil {
		s.logger.Error().Err(err).Str("name", pokemon.Name).Msg("failed to fetch species")
		return nil, fmt.Errorf("failed to fetch species: %w", err)
	}

	chainID, err := ChainIDFromURL(species.EvolutionChain.URL)
	if err != nil {
		s.logger.Error().Err(err).Str("url", species.EvolutionChain.URL).Msg("failed to extract chain id")
		return nil, err
	}

	evolutions, err := s.evolutions.ResolveEvolutionNames(ctx, chainID)
	if err != nil {
		return nil, err
	}

	details := &domain.CreatureDetails{
		Name:       pokemon.Name,
		Moves:      make([]string, 0, len(pokemon.Moves)),
		Types:      make([]string, 0, len(pokemon.Types)),
		Evolutions: evolutions,
	}
	for _, m := range pokemon.Moves {
		details.Moves = append(details.Moves, m.Move.Name)
	}
	for _, t := range pokemon.Types {
		details.Types = append(details.Types, t.Type.Name)
	}

	s.logger.Info().
		Str("name", details.Name).
		Int("moves", len(details.Moves)).
		Int("types", len(details.Types)).
		Int("evolutions", len(details.Evolutions)).
		Msg("details composed")
	return details, nil
}

// ChainIDFromURL returns the last non-empty path segment,
// e.g. ".../evolution-chain/5/" -> "5".
func ChainIDFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse evolution chain url %q: %w", raw, err)
	}

	var last string
	for _, seg := range strings.Split(u.Path, "/") {
		if seg != "" {
			last = seg
		}
	}
	if last == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidChainURL, raw)
	}
	return last, nil
}
