package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to Crunchyroll",
	Long:  `Test the connection and credentials by loading the session index, then print the session settings.`,
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	e := client.Executor()

	if outputFormat == "console" {
		fmt.Fprintf(out, "Testing connection to Crunchyroll at %s...\n", e.Config().APIURL)
	}

	index, err := client.Index(cmd.Context())
	if err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}

	if outputFormat == "json" {
		return writeJSON(out, map[string]any{
			"api_url":           e.Config().APIURL,
			"service_available": index.ServiceAvailable,
			"bucket":            e.Bucket(),
			"index_bucket":      index.CMS.Bucket,
			"locale":            e.Locale(),
			"premium":           e.Premium(),
			"presets":           filters.ListFilters(),
		})
	}

	fmt.Fprintln(out, "✓ Connection successful!")
	fmt.Fprintf(out, "\nSession:\n")
	fmt.Fprintf(out, "- Service available: %s\n", boolToStatus(index.ServiceAvailable))
	fmt.Fprintf(out, "- Bucket: %s\n", e.Bucket())
	fmt.Fprintf(out, "- Locale: %s\n", e.Locale())
	fmt.Fprintf(out, "- Premium: %s\n", boolToStatus(e.Premium()))
	if !e.Locale().IsKnown() {
		fmt.Fprintf(out, "  (locale %s is not one the catalog is known to serve)\n", e.Locale())
	}

	if presets := filters.ListFilters(); len(presets) > 0 {
		fmt.Fprintf(out, "\nFilter presets:\n")
		for _, name := range presets {
			f, _ := filters.GetFilter(name)
			fmt.Fprintf(out, "  • %s: %s\n", name, f.Expression())
		}
	}

	return nil
}

func boolToStatus(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
