// Command storeconfig fetches store configuration and GraphQL schema
// metadata from a commerce backend, either once from the command line or
// continuously over HTTP with the serve subcommand.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
