package service

import (
	"context"
	"errors"
	"fmt"
	"pokedex/internal/api"
	"pokedex/internal/constants"
	"pokedex/internal/domain"

	"github.com/rs/zerolog"
)

var ErrEvolutionChainTooDeep = errors.New("evolution chain exceeds maximum depth")

type EvolutionService struct {
	gateway Gateway
	logger  zerolog.Logger
}

func NewEvolutionService(gateway Gateway, logger zerolog.Logger) *EvolutionService {
	return &EvolutionService{gateway: gateway, logger: logger}
}

// ResolveEvolutionNames fetches the chain and returns its species names,
// root first. Only the first listed evolution of each species is followed,
// so branching lines (eevee and friends) collapse to one path.
func (s *EvolutionService) ResolveEvolutionNames(ctx context.Context, chainID string) ([]string, error) {
	s.logger.Debug().Str("chain_id", chainID).Msg("resolving evolution chain")

	resp, err := s.gateway.GetEvolutionChain(ctx, chainID)
	if err != nil {
		s.logger.Error().Err(err).Str("chain_id", chainID).Msg("failed to fetch evolution chain")
		return nil, fmt.Errorf("failed to fetch evolution chain %s: %w", chainID, err)
	}

	root, err := toEvolutionNode(resp.Chain, 1)
	if err == nil {
		var names []string
		if names, err = Linearize(root); err == nil {
			s.logger.Debug().Str("chain_id", chainID).Strs("evolutions", names).Msg("evolution chain resolved")
			return names, nil
		}
	}

	s.logger.Warn().Err(err).Str("chain_id", chainID).Msg("rejecting evolution chain")
	return nil, fmt.Errorf("evolution chain %s: %w", chainID, err)
}

// Linearize walks the left spine of the tree.
func Linearize(root domain.EvolutionNode) ([]string, error) {
	names := []string{root.SpeciesName}
	current := root
	for len(current.Next) > 0 {
		if len(names) >= constants.MaxEvolutionDepth {
			return nil, ErrEvolutionChainTooDeep
		}
		current = current.Next[0]
		names = append(names, current.SpeciesName)
	}
	return names, nil
}

// toEvolutionNode copies the upstream tree. Recursion stops at
// MaxEvolutionDepth levels, the same bound Linearize applies.
func toEvolutionNode(link api.ChainLink, depth int) (domain.EvolutionNode, error) {
	if depth > constants.MaxEvolutionDepth {
		return domain.EvolutionNode{}, ErrEvolutionChainTooDeep
	}

	node := domain.EvolutionNode{SpeciesName: link.Species.Name}
	if len(link.EvolvesTo) > 0 {
		node.Next = make([]domain.EvolutionNode, 0, len(link.EvolvesTo))
		for _, next := range link.EvolvesTo {
			child, err := toEvolutionNode(next, depth+1)
			if err != nil {
				return domain.EvolutionNode{}, err
			}
			node.Next = append(node.Next, child)
		}
	}
	return node, nil
}
