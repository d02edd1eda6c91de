package fx

import (
	"pokedex/internal/api"
	"pokedex/internal/config"
	"pokedex/internal/logger"
	"pokedex/internal/server"
	"pokedex/internal/service"
	"pokedex/internal/state"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideController(catalog *service.CatalogService, details *service.DetailService, logger zerolog.Logger) *state.Controller {
	return state.NewController(catalog, details, logger)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// api client
	fx.Provide(fx.Annotate(api.NewPokeAPIClient, fx.As(new(service.Gateway)))),
	// svc
	fx.Provide(service.NewCatalogService),
	fx.Provide(service.NewEvolutionService),
	fx.Provide(service.NewDetailService),
	// state
	fx.Provide(ProvideController),
	// server
	fx.Provide(server.NewPokedexServer),
)
