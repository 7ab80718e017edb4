package main

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/angeloszaimis/storeconfig/config"
	"github.com/angeloszaimis/storeconfig/internal/graphql"
	"github.com/angeloszaimis/storeconfig/pkg/logger"
)

var Version = "dev" // Overridden by ldflags

const (
	flagBackendURL    = "backend-url"
	flagStoreViewCode = "store-view-code"
	flagOutput        = "output"
	flagDebug         = "debug"
)

// app is what PersistentPreRunE hands to every subcommand.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	output string
}

// client builds a GraphQL client that reads the backend URL through viper
// on every call.
func (a *app) client(opts ...graphql.Option) *graphql.Client {
	opts = append([]graphql.Option{
		graphql.WithStoreViewCode(a.cfg.Backend.StoreViewCode),
		graphql.WithLogger(a.log),
	}, opts...)

	return graphql.NewClient(config.NewLiveEndpoint(nil), opts...)
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "storeconfig",
		Short: "Fetch store configuration and schema metadata from a GraphQL backend",
		Long: `storeconfig queries a commerce backend's GraphQL endpoint for the store
view configuration and the schema's union and interface types that a
storefront build needs.

The backend URL comes from --backend-url, MAGENTO_BACKEND_URL or
backend.url in config.yaml, in that order.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagBackendURL, "", "Backend base URL, e.g. https://shop.example.com/")
	flags.String(flagStoreViewCode, "", "Store view code sent in the Store header (default \"default\")")
	flags.StringP(flagOutput, "o", "json", "Output format: json or yaml")
	flags.Bool(flagDebug, false, "Enable debug logging")

	rootCmd.AddCommand(
		newStoreConfigCommand(a),
		newMediaURLCommand(a),
		newStoresCommand(a),
		newSchemaTypesCommand(a),
		newUnionTypesCommand(a),
		newPossibleTypesCommand(a),
		newDumpCommand(a),
		newServeCommand(a),
	)

	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	flags := cmd.Flags()

	if err := viper.BindPFlag(config.KeyBackendURL, flags.Lookup(flagBackendURL)); err != nil {
		return err
	}
	if err := viper.BindPFlag(config.KeyStoreViewCode, flags.Lookup(flagStoreViewCode)); err != nil {
		return err
	}

	output, _ := flags.GetString(flagOutput)
	if err := validation.Validate(output, validation.In(formatJSON, formatYAML)); err != nil {
		return fmt.Errorf("invalid --%s: %w", flagOutput, err)
	}
	a.output = output

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	level := cfg.Logging.Level
	if debug, _ := flags.GetBool(flagDebug); debug {
		level = config.LogLevelDebug
	}
	// stdout carries command output
	a.log = logger.NewWithWriter(cmd.ErrOrStderr(), level, false, cfg.Server.Environment)

	return nil
}
