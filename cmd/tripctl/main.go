// Command tripctl prices trips and classifies quiz answers from the terminal
// using the same engines as the API.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tripnation/internal/catalog"
)

type options struct {
	catalogFile string
	jsonOutput  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "tripctl",
		Short:         "TripNation pricing and quiz tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.catalogFile, "catalog", os.Getenv("CATALOG_FILE"), "Catalog YAML (default: built-in)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Print JSON instead of text")

	root.AddCommand(newQuoteCmd(opts))
	root.AddCommand(newQuizCmd(opts))
	root.AddCommand(newPackagesCmd(opts))
	return root
}

func (o *options) loadCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Load(o.catalogFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
