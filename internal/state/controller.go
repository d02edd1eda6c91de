package state

import (
	"context"
	"pokedex/internal/domain"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type Catalog interface {
	ListAll(ctx context.Context) ([]domain.CreatureSummary, error)
}

type Composer interface {
	ComposeDetails(ctx context.Context, name string) (*domain.CreatureDetails, error)
}

// Controller holds the application state and applies user actions to it.
// Errors from the catalog and composer are returned to the caller and
// logged, but never show up in the state: a failed load looks like an
// empty catalog and a failed detail request looks like no request at all.
type Controller struct {
	catalog  Catalog
	composer Composer
	logger   zerolog.Logger

	mu         sync.RWMutex
	state      State
	generation uint64
}

func NewController(catalog Catalog, composer Composer, logger zerolog.Logger) *Controller {
	return &Controller{
		catalog:  catalog,
		composer: composer,
		logger:   logger,
		state:    Initial(),
	}
}

func (c *Controller) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Controller) View() View {
	return Render(c.Snapshot())
}

func (c *Controller) LoadList(ctx context.Context) error {
	c.apply(BeginLoad)

	list, err := c.catalog.ListAll(ctx)
	if err != nil {
		c.apply(AbortLoad)
		c.logger.Warn().Err(err).Msg("pokemon list unavailable")
		return err
	}

	c.apply(func(s State) State { return FinishLoad(s, list) })
	c.logger.Info().Int("count", len(list)).Msg("pokemon list loaded")
	return nil
}

func (c *Controller) UpdateQuery(q string) {
	c.apply(func(s State) State { return WithQuery(s, q) })
	c.logger.Debug().Str("query", q).Msg("query updated")
}

// RequestDetails clears the current details before fetching. Only the most
// recent request may store its result; older ones that finish later are
// dropped.
func (c *Controller) RequestDetails(ctx context.Context, name string) error {
	token, err := gonanoid.New()
	if err != nil {
		token = "unknown"
	}
	log := c.logger.With().Str("request_token", token).Str("name", name).Logger()

	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.state = ClearDetails(c.state)
	c.mu.Unlock()

	log.Debug().Uint64("generation", gen).Msg("details requested")

	details, err := c.composer.ComposeDetails(ctx, name)
	if err != nil {
		log.Warn().Err(err).Msg("details unavailable")
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		log.Debug().
			Uint64("generation", gen).
			Uint64("current_generation", c.generation).
			Msg("discarding stale details")
		return nil
	}
	c.state = WithDetails(c.state, details)
	log.Info().Msg("details ready")
	return nil
}

func (c *Controller) apply(transition func(State) State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = transition(c.state)
}
