package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"pokedex/internal/config"
	"time"

	"github.com/valyala/fasthttp"
)

var ErrNotFound = errors.New("resource not found")

type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error: %d (%s)", e.StatusCode, e.URL)
}

type PokeAPIClient struct {
	baseURL   string
	userAgent string
	listLimit int
	client    *fasthttp.Client
}

func NewPokeAPIClient(cfg *config.Config) *PokeAPIClient {
	return newPokeAPIClient(cfg, &fasthttp.Client{
		MaxConnsPerHost:     16,
		ReadTimeout:         10 * time.Second,
		WriteTimeout:        10 * time.Second,
		MaxIdleConnDuration: 1 * time.Minute,
		// the pokemon list is one large response
		MaxResponseBodySize: 64 << 20,
	})
}

func newPokeAPIClient(cfg *config.Config, hc *fasthttp.Client) *PokeAPIClient {
	return &PokeAPIClient{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		listLimit: cfg.ListLimit,
		client:    hc,
	}
}

func (c *PokeAPIClient) ListPokemon(ctx context.Context) (*ListResponse, error) {
	u := fmt.Sprintf("%s/pokemon?limit=%d", c.baseURL, c.listLimit)
	return doRequest[ListResponse](ctx, c, u)
}

func (c *PokeAPIClient) GetPokemon(ctx context.Context, name string) (*PokemonResponse, error) {
	u := fmt.Sprintf("%s/pokemon/%s/", c.baseURL, url.PathEscape(name))
	return doRequest[PokemonResponse](ctx, c, u)
}

func (c *PokeAPIClient) GetSpecies(ctx context.Context, name string) (*SpeciesResponse, error) {
	u := fmt.Sprintf("%s/pokemon-species/%s/", c.baseURL, url.PathEscape(name))
	return doRequest[SpeciesResponse](ctx, c, u)
}

func (c *PokeAPIClient) GetEvolutionChain(ctx context.Context, id string) (*EvolutionChainResponse, error) {
	u := fmt.Sprintf("%s/evolution-chain/%s/", c.baseURL, url.PathEscape(id))
	return doRequest[EvolutionChainResponse](ctx, c, u)
}

func doRequest[T any](ctx context.Context, client *PokeAPIClient, u string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(u)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	req.Header.SetUserAgent(client.userAgent)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("request %s: %w", u, err)
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, fmt.Errorf("request %s: %w", u, err)
		}
	}

	switch resp.StatusCode() {
	case fasthttp.StatusOK:
	case fasthttp.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, u)
	default:
		return nil, &StatusError{URL: u, StatusCode: resp.StatusCode()}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode %s: %w", u, err)
	}
	return &result, nil
}

type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type ListResponse struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}

type PokemonResponse struct {
	ID    int        `json:"id"`
	Name  string     `json:"name"`
	Moves []MoveSlot `json:"moves"`
	Types []TypeSlot `json:"types"`
}

type MoveSlot struct {
	Move NamedResource `json:"move"`
}

type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type SpeciesResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

type EvolutionChainResponse struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

type ChainLink struct {
	IsBaby    bool          `json:"is_baby"`
	Species   NamedResource `json:"species"`
	EvolvesTo []ChainLink   `json:"evolves_to"`
}
