package service

import (
	"context"
	"pokedex/internal/api"
)

// Gateway is the subset of the PokeAPI client the services depend on.
type Gateway interface {
	ListPokemon(ctx context.Context) (*api.ListResponse, error)
	GetPokemon(ctx context.Context, name string) (*api.PokemonResponse, error)
	GetSpecies(ctx context.Context, name string) (*api.SpeciesResponse, error)
	GetEvolutionChain(ctx context.Context, id string) (*api.EvolutionChainResponse, error)
}

var _ Gateway = (*api.PokeAPIClient)(nil)
