package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// dumpFiles names the files written by dump, keyed by what they hold.
var dumpFiles = []string{"store-config", "stores", "schema-types", "possible-types"}

func newDumpCommand(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Fetch all metadata concurrently and write one file per query",
		Long: `dump runs the store config, available stores, schema types and possible
types queries in parallel and writes each result to --dir. A failed query
or an unwritable file aborts the dump before any file is put in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dump(cmd, dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to write the files to")

	return cmd
}

func (a *app) dump(cmd *cobra.Command, dir string) error {
	client := a.client()
	results := make([]any, len(dumpFiles))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() (err error) {
		results[0], err = client.StoreConfig(ctx)
		return err
	})
	g.Go(func() (err error) {
		results[1], err = client.AvailableStores(ctx)
		return err
	})
	g.Go(func() (err error) {
		results[2], err = client.SchemaTypes(ctx)
		return err
	})
	g.Go(func() (err error) {
		results[3], err = client.PossibleTypes(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("dump failed: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	paths := make([]string, len(dumpFiles))
	staged := make([]string, 0, len(dumpFiles))
	for i, name := range dumpFiles {
		paths[i] = filepath.Join(dir, name+extension(a.output))
		tmp := paths[i] + ".tmp"
		if err := writeFile(tmp, a.output, results[i]); err != nil {
			removeAll(staged)
			return fmt.Errorf("dump failed: %w", err)
		}
		staged = append(staged, tmp)
	}

	for i, tmp := range staged {
		if err := os.Rename(tmp, paths[i]); err != nil {
			removeAll(staged[i:])
			return fmt.Errorf("dump failed: %w", err)
		}

		a.log.Info("Wrote metadata", slog.String("file", paths[i]))
		fmt.Fprintln(cmd.OutOrStdout(), paths[i])
	}

	return nil
}

func removeAll(paths []string) {
	for _, p := range paths {
		_ = os.Remove(p)
	}
}

func writeFile(path, format string, v any) error {
	var buf bytes.Buffer
	if err := writeOutput(&buf, format, v); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}
