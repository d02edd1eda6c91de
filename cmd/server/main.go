package main

import (
	"context"
	"fmt"
	"net/http"
	"pokedex/internal/config"
	"pokedex/internal/constants"
	fxmodules "pokedex/internal/fx"
	"pokedex/internal/server"
	"pokedex/internal/state"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	pokedexServer *server.PokedexServer,
	controller *state.Controller,
	cfg *config.Config,
	logger zerolog.Logger,
) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           pokedexServer.Handler(),
		ReadHeaderTimeout: constants.ReadHeaderTimeout,
	}

	var (
		g          errgroup.Group
		cancelLoad context.CancelFunc = func() {}
	)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// the load deadline starts with the app, not with graph construction
			loadCtx, cancel := context.WithTimeout(context.Background(), constants.ExternalAPITimeout)
			cancelLoad = cancel
			g.Go(func() error {
				defer cancel()
				// failure leaves an empty list; the controller already logged it
				_ = controller.LoadList(loadCtx)
				return nil
			})

			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			cancelLoad()
			if err := g.Wait(); err != nil {
				logger.Warn().Err(err).Msg("startup load ended with error")
			}

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
				return err
			}
			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}
