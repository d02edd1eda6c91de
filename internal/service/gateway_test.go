package service_test

import (
	"context"
	"fmt"
	"pokedex/internal/api"
	"sync"
)

// fakeGateway serves canned responses keyed by name or chain id and records
// the calls it receives.
type fakeGateway struct {
	mu sync.Mutex

	list    *api.ListResponse
	pokemon map[string]*api.PokemonResponse
	species map[string]*api.SpeciesResponse
	chains  map[string]*api.EvolutionChainResponse
	listErr error

	calls []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		pokemon: map[string]*api.PokemonResponse{},
		species: map[string]*api.SpeciesResponse{},
		chains:  map[string]*api.EvolutionChainResponse{},
	}
}

func (g *fakeGateway) record(call string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, call)
}

func (g *fakeGateway) ListPokemon(ctx context.Context) (*api.ListResponse, error) {
	g.record("list")
	if g.listErr != nil {
		return nil, g.listErr
	}
	return g.list, nil
}

func (g *fakeGateway) GetPokemon(ctx context.Context, name string) (*api.PokemonResponse, error) {
	g.record("pokemon/" + name)
	if p, ok := g.pokemon[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: pokemon/%s", api.ErrNotFound, name)
}

func (g *fakeGateway) GetSpecies(ctx context.Context, name string) (*api.SpeciesResponse, error) {
	g.record("pokemon-species/" + name)
	if s, ok := g.species[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: pokemon-species/%s", api.ErrNotFound, name)
}

func (g *fakeGateway) GetEvolutionChain(ctx context.Context, id string) (*api.EvolutionChainResponse, error) {
	g.record("evolution-chain/" + id)
	if c, ok := g.chains[id]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: evolution-chain/%s", api.ErrNotFound, id)
}

func link(name string, next ...api.ChainLink) api.ChainLink {
	return api.ChainLink{
		Species:   api.NamedResource{Name: name},
		EvolvesTo: next,
	}
}
