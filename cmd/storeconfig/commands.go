package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/angeloszaimis/storeconfig/internal/graphql"
)

type fetchFunc func(ctx context.Context, c *graphql.Client) (any, error)

// newFetchCommand builds a subcommand that runs one query and prints the
// result. A field the backend left out prints as null.
func newFetchCommand(a *app, use, short string, fetch fetchFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := fetch(cmd.Context(), a.client())
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), a.output, result)
		},
	}
}

func newStoreConfigCommand(a *app) *cobra.Command {
	return newFetchCommand(a, "store-config", "Print the store view's configuration",
		func(ctx context.Context, c *graphql.Client) (any, error) {
			return c.StoreConfig(ctx)
		})
}

func newMediaURLCommand(a *app) *cobra.Command {
	return newFetchCommand(a, "media-url", "Print the secure base media URL",
		func(ctx context.Context, c *graphql.Client) (any, error) {
			return c.MediaURL(ctx)
		})
}

func newStoresCommand(a *app) *cobra.Command {
	return newFetchCommand(a, "stores", "List the store views available on the backend",
		func(ctx context.Context, c *graphql.Client) (any, error) {
			return c.AvailableStores(ctx)
		})
}

func newSchemaTypesCommand(a *app) *cobra.Command {
	return newFetchCommand(a, "schema-types", "Print every type in the GraphQL schema",
		func(ctx context.Context, c *graphql.Client) (any, error) {
			return c.SchemaTypes(ctx)
		})
}

func newUnionTypesCommand(a *app) *cobra.Command {
	return newFetchCommand(a, "union-types", "Print the schema's union and interface types",
		func(ctx context.Context, c *graphql.Client) (any, error) {
			return c.UnionAndInterfaceTypes(ctx)
		})
}

func newPossibleTypesCommand(a *app) *cobra.Command {
	return newFetchCommand(a, "possible-types", "Print the possible types map for a GraphQL cache",
		func(ctx context.Context, c *graphql.Client) (any, error) {
			return c.PossibleTypes(ctx)
		})
}
