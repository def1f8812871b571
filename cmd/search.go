package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/crunchy/crunchyroll"
)

var (
	searchLimit uint32
	searchType  string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog",
	Long: `Search the Crunchyroll catalog. Results are grouped by type unless a filter
is given, in which case all matching results are listed together.

Filter expressions use the expr language, for example:
  crunchy search darling --filter 'isType("series") and hasAudio("de-DE")'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Uint32VarP(&searchLimit, "limit", "n", 0, "results per type (default from config)")
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "", "only search one type (series, movie_listing, episode)")
	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	searchCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	query := strings.Join(args, " ")

	opts := crunchyroll.QueryOptions{Limit: cfg.Search.Limit}
	if searchLimit > 0 {
		opts.Limit = searchLimit
	}
	if searchType != "" {
		qt, err := crunchyroll.ParseQueryType(searchType)
		if err != nil {
			return err
		}
		opts.ResultType = qt
	}

	f, err := getFilterExpression()
	if err != nil {
		return err
	}

	logger.Info().Str("query", query).Uint32("limit", opts.Limit).Msg("Searching catalog")

	results, err := client.Query(ctx, query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if f == nil {
		if outputFormat == "json" {
			return writeJSON(cmd.OutOrStdout(), results)
		}
		fmt.Fprint(cmd.OutOrStdout(), NewConsoleFormatter().FormatQueryResults(results))
		return nil
	}

	matches, err := filters.Evaluate(ctx, f, uniqueCollections(results.All()))
	if err != nil {
		return fmt.Errorf("filter evaluation failed: %w", err)
	}

	logger.Debug().Str("filter", f.Expression()).Int("matches", len(matches)).Msg("Filter applied")

	if outputFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), matches)
	}
	fmt.Fprint(cmd.OutOrStdout(), NewConsoleFormatter().FormatCollections("Matches", matches))
	return nil
}

// uniqueCollections drops repeated ids; top results repeat entries of the
// other slots
func uniqueCollections(items []*crunchyroll.Collection) []*crunchyroll.Collection {
	seen := make(map[string]struct{}, len(items))
	out := make([]*crunchyroll.Collection, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}
