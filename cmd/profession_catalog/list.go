package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/profession-catalog/internal/catalog"
	"github.com/jonathan/profession-catalog/internal/config"
	"github.com/jonathan/profession-catalog/internal/llm"
	"github.com/jonathan/profession-catalog/internal/observability"
	"github.com/jonathan/profession-catalog/internal/schemas"
	"github.com/jonathan/profession-catalog/internal/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Collect professions with a single catalog call per category",
	Long:  "List is the one-shot alternative to collect: each request asks the model for complete profession records in one payload instead of discovering names first. Less reliable for long catalogs, useful for quick runs.",
	RunE:  runList,
}

var (
	listLocale     string
	listCategories string
	listMaxItems   int
	listDebug      bool
)

func init() {
	listCmd.Flags().StringVarP(&listLocale, "locale", "l", "Global", "Locale/country the catalog is collected for")
	listCmd.Flags().StringVarP(&listCategories, "categories", "c", "", "Comma-separated category filter (unknown entries are dropped)")
	listCmd.Flags().IntVar(&listMaxItems, "max-items", 0, "Approximate cap on returned professions (0 = as many as possible)")
	listCmd.Flags().BoolVar(&listDebug, "debug", false, "Print raw layer responses and transport warnings to stderr")

	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if listDebug {
		cfg = cfg.WithDebug()
	}

	client, err := llm.NewOpenAIClient(cfg)
	if err != nil {
		return err
	}
	ladder := llm.NewLadder(client, cfg)

	ctx := context.Background()
	printer := observability.NewPrinter(os.Stdout)

	requests := []string{""}
	if categories := parseCategories(listCategories); len(categories) > 0 {
		requests = categories
	}

	var accepted []types.ProfessionRecord
	var rejected []types.RejectionEntry
	for _, category := range requests {
		payload := ladder.Fetch(ctx, llm.ListRequest(listLocale, category, listMaxItems))
		warnOnSchemaMismatch(payload)
		acc, rej := catalog.ListRecords(payload)
		accepted = append(accepted, acc...)
		rejected = append(rejected, rej...)
	}

	return writeArtifacts(printer, cfg.OutDir, listLocale, len(accepted)+len(rejected), accepted, rejected)
}

// warnOnSchemaMismatch reports structural drift in the one-shot payload.
// Per-record validation still decides what is kept, so this only warns.
func warnOnSchemaMismatch(payload map[string]any) {
	doc, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := schemas.List.Check(string(doc)); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: payload does not match the professions schema: %v\n", err)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not check payload against schema: %v\n", err)
		}
	}
}
