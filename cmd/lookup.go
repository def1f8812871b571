package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/crunchy/crunchyroll"
)

// seriesCmd represents the series command
var seriesCmd = &cobra.Command{
	Use:   "series <id|url>...",
	Short: "Fetch series by id or url",
	Long:  `Fetch one or more series. Arguments can be series ids or series urls.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSeries,
}

// movieListingCmd represents the movie-listing command
var movieListingCmd = &cobra.Command{
	Use:     "movie-listing <id|url>...",
	Aliases: []string{"movie"},
	Short:   "Fetch movie listings by id or url",
	Long:    `Fetch one or more movie listings. Arguments can be movie listing ids or urls.`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runMovieListing,
}

func runSeries(cmd *cobra.Command, args []string) error {
	ids, err := idsFromArgs(args, crunchyroll.URLSeries)
	if err != nil {
		return err
	}

	logger.Info().Strs("ids", ids).Msg("Fetching series")

	series, err := client.SeriesFromIDs(cmd.Context(), ids, cfg.Concurrency.Workers)
	if err != nil {
		return fmt.Errorf("failed to fetch series: %w", err)
	}

	if outputFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), series)
	}
	fmt.Fprint(cmd.OutOrStdout(), NewConsoleFormatter().FormatSeries(series))
	return nil
}

func runMovieListing(cmd *cobra.Command, args []string) error {
	ids, err := idsFromArgs(args, crunchyroll.URLMovieListing)
	if err != nil {
		return err
	}

	logger.Info().Strs("ids", ids).Msg("Fetching movie listings")

	listings, err := client.MovieListingsFromIDs(cmd.Context(), ids, cfg.Concurrency.Workers)
	if err != nil {
		return fmt.Errorf("failed to fetch movie listings: %w", err)
	}

	if outputFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), listings)
	}
	fmt.Fprint(cmd.OutOrStdout(), NewConsoleFormatter().FormatMovieListings(listings))
	return nil
}

// idsFromArgs accepts plain ids and urls of the expected kind
func idsFromArgs(args []string, kind crunchyroll.URLKind) ([]string, error) {
	ids := make([]string, 0, len(args))
	for _, arg := range args {
		parsed, err := crunchyroll.ParseURL(arg)
		if err != nil {
			// not a url, use it as an id
			ids = append(ids, arg)
			continue
		}
		if parsed.Kind != kind {
			return nil, fmt.Errorf("%s is a %s url, expected %s", arg, parsed.Kind, kind)
		}
		ids = append(ids, parsed.ID)
	}
	return ids, nil
}
