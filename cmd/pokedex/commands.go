package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"pokedex/internal/api"
	"pokedex/internal/config"
	"pokedex/internal/constants"
	"pokedex/internal/domain"
	"pokedex/internal/logger"
	"pokedex/internal/service"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type app struct {
	catalog    *service.CatalogService
	evolutions *service.EvolutionService
	details    *service.DetailService
}

type rootOptions struct {
	logLevel string
	asJSON   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	var a *app

	root := &cobra.Command{
		Use:           "pokedex",
		Short:         "Browse pokemon from PokeAPI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// --log-level wins over LOG_LEVEL so command output stays quiet by default
			log := logger.NewWithWriter(os.Stderr, level)
			log.Debug().Object("config", cfg).Msg("configuration loaded")

			var gateway service.Gateway = api.NewPokeAPIClient(cfg)
			evolutions := service.NewEvolutionService(gateway, log)
			a = &app{
				catalog:    service.NewCatalogService(gateway, log),
				evolutions: evolutions,
				details:    service.NewDetailService(gateway, evolutions, log),
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of text")

	getApp := func() *app { return a }
	root.AddCommand(
		newListCmd(opts, getApp),
		newDetailsCmd(opts, getApp),
		newEvolutionsCmd(opts, getApp),
	)
	return root
}

func newListCmd(opts *rootOptions, getApp func() *app) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all pokemon, optionally filtered by a search string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), constants.RequestTimeout)
			defer cancel()

			list, err := getApp().catalog.ListAll(ctx)
			if err != nil {
				return err
			}
			return printList(cmd.OutOrStdout(), service.Filter(list, search), opts.asJSON)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "substring to match against names")
	return cmd
}

func newDetailsCmd(opts *rootOptions, getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "details <name>",
		Short: "Show types, moves and evolutions of one pokemon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), constants.RequestTimeout)
			defer cancel()

			details, err := getApp().details.ComposeDetails(ctx, args[0])
			if err != nil {
				return err
			}
			return printDetails(cmd.OutOrStdout(), details, opts.asJSON)
		},
	}
}

func newEvolutionsCmd(opts *rootOptions, getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "evolutions <chain-id>",
		Short: "Show the evolution line of an evolution chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), constants.RequestTimeout)
			defer cancel()

			names, err := getApp().evolutions.ResolveEvolutionNames(ctx, args[0])
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), names)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " -> "))
			return err
		},
	}
}

func printList(w io.Writer, list []domain.CreatureSummary, asJSON bool) error {
	if asJSON {
		return writeJSON(w, list)
	}
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, constants.NoResultsMessage)
		return err
	}
	for _, c := range list {
		if _, err := fmt.Fprintln(w, c.Name); err != nil {
			return err
		}
	}
	return nil
}

func printDetails(w io.Writer, d *domain.CreatureDetails, asJSON bool) error {
	if asJSON {
		return writeJSON(w, d)
	}
	_, err := fmt.Fprintf(w, "%s\n\nTypes\n%s\nMoves\n%s\nEvolutions\n%s",
		d.Name, bullets(d.Types), bullets(d.Moves), bullets(d.Evolutions))
	return err
}

func bullets(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("  - ")
		b.WriteString(item)
		b.WriteByte('\n')
	}
	return b.String()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
