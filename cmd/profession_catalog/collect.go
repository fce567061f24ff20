package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/profession-catalog/internal/catalog"
	"github.com/jonathan/profession-catalog/internal/config"
	"github.com/jonathan/profession-catalog/internal/llm"
	"github.com/jonathan/profession-catalog/internal/observability"
	"github.com/jonathan/profession-catalog/internal/output"
	"github.com/jonathan/profession-catalog/internal/types"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect professions in two stages: name discovery, then per-name details",
	Long:  "Collect discovers profession names for the locale (or reads them from a file), fetches full details for each name with bounded concurrency, validates every record, and writes the catalog plus the preflight rejection report.",
	RunE:  runCollect,
}

var (
	collectLocale     string
	collectCategories string
	collectNamesFile  string
	collectMaxItems   int
	collectDebug      bool
)

func init() {
	collectCmd.Flags().StringVarP(&collectLocale, "locale", "l", "Global", "Locale/country the catalog is collected for")
	collectCmd.Flags().StringVarP(&collectCategories, "categories", "c", "", "Comma-separated category filter (unknown entries are dropped)")
	collectCmd.Flags().StringVar(&collectNamesFile, "names-file", "", "Newline-delimited profession names; skips model-based discovery")
	collectCmd.Flags().IntVar(&collectMaxItems, "max-items", 0, "Approximate cap on discovered names (0 = as many as possible)")
	collectCmd.Flags().BoolVar(&collectDebug, "debug", false, "Print raw layer responses and transport warnings to stderr")

	rootCmd.AddCommand(collectCmd)
}

func runCollect(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if collectDebug {
		cfg = cfg.WithDebug()
	}

	client, err := llm.NewOpenAIClient(cfg)
	if err != nil {
		return err
	}
	ladder := llm.NewLadder(client, cfg)

	ctx := context.Background()
	printer := observability.NewPrinter(os.Stdout)
	categories := parseCategories(collectCategories)

	// Stage A: assemble the deduplicated name list.
	var names []string
	if collectNamesFile != "" {
		names, err = catalog.ReadNamesFile(collectNamesFile)
		if err != nil {
			return err
		}
		fmt.Printf("Stage A: %d names loaded from %s\n", len(names), collectNamesFile)
	} else {
		fmt.Printf("Stage A: discovering profession names for %s...\n", collectLocale)
		names = catalog.CollectNames(ctx, ladder, collectLocale, categories, collectMaxItems)
		fmt.Printf("Stage A: %d names collected\n", len(names))
	}

	// Stage B: fan out detail fetches, bounded by the configured concurrency.
	fmt.Printf("Stage B: fetching details (%d in flight max)...\n", cfg.Concurrency)
	res := catalog.EnrichAll(ctx, ladder, collectLocale, names, cfg.Concurrency, func(ev catalog.ProgressEvent) {
		printer.PrintProgress(ev.Done, ev.Total, ev.Name, ev.Accepted, ev.Reason)
	})

	return writeArtifacts(printer, cfg.OutDir, collectLocale, len(names), res.Accepted, res.Rejected)
}

// writeArtifacts writes both output files and prints the summary box.
func writeArtifacts(printer *observability.Printer, outDir, locale string, namesUsed int, accepted []types.ProfessionRecord, rejected []types.RejectionEntry) error {
	profPath, err := output.WriteProfessions(outDir, output.LocaleSlug(locale), accepted)
	if err != nil {
		return err
	}
	reportPath, err := output.WritePreflightReport(outDir, rejected)
	if err != nil {
		return err
	}

	printer.PrintSummary(namesUsed, len(accepted), len(rejected), profPath, reportPath)
	return nil
}

// parseCategories filters a comma-separated list down to valid category
// names, uppercased and trimmed. Unknown entries are silently dropped; an
// empty result means no category filter.
func parseCategories(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(s, ",") {
		c := strings.ToUpper(strings.TrimSpace(item))
		if c == "" {
			continue
		}
		if types.Category(c).IsValid() {
			out = append(out, c)
		}
	}
	return out
}
