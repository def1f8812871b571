package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/crunchy/crunchyroll"
)

var resolveURLs bool

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <url>...",
	Short: "Classify crunchyroll urls",
	Long: `Print the kind and id of every url. Parsing happens offline; with --resolve
the referenced series or movie listing is fetched as well, which needs a
configuration.`,
	Args:        cobra.MinimumNArgs(1),
	Annotations: map[string]string{annotationStandalone: "true"},
	RunE:        runParse,
}

func init() {
	parseCmd.Flags().BoolVarP(&resolveURLs, "resolve", "r", false, "fetch the referenced entity")
}

// parsedEntry is the json output of the parse command
type parsedEntry struct {
	URL       string `json:"url"`
	Kind      string `json:"kind,omitempty"`
	ID        string `json:"id,omitempty"`
	Available *bool  `json:"available,omitempty"`
	Error     string `json:"error,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if resolveURLs {
		if err := loadApp(ctx); err != nil {
			return err
		}
	}

	entries := make([]parsedEntry, 0, len(args))
	failed := 0

	for _, arg := range args {
		entry := parsedEntry{URL: arg}

		parsed, err := crunchyroll.ParseURL(arg)
		if err != nil {
			entry.Error = err.Error()
			entries = append(entries, entry)
			failed++
			continue
		}
		entry.Kind = parsed.Kind.String()
		entry.ID = parsed.ID

		if resolveURLs {
			entity, err := client.Resolve(ctx, parsed)
			switch {
			case errors.Is(err, crunchyroll.ErrUnsupportedKind):
				logger.Debug().Str("url", arg).Msg("Watch pages cannot be resolved")
			case err != nil:
				entry.Error = err.Error()
				failed++
			default:
				available := entity.Available()
				entry.Available = &available
			}
		}

		entries = append(entries, entry)
	}

	if outputFormat == "json" {
		if err := writeJSON(cmd.OutOrStdout(), entries); err != nil {
			return err
		}
	} else {
		out := cmd.OutOrStdout()
		for _, e := range entries {
			if e.Error != "" {
				fmt.Fprintf(out, "✗ %s: %s\n", e.URL, e.Error)
				continue
			}
			fmt.Fprintf(out, "✓ %s: %s %s", e.URL, e.Kind, e.ID)
			if e.Available != nil {
				fmt.Fprintf(out, " (available: %t)", *e.Available)
			}
			fmt.Fprintln(out)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d urls could not be handled", failed, len(args))
	}
	return nil
}
