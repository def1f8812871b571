package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion sets the version reported by the version command
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationStandalone: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputFormat == "json" {
			return writeJSON(cmd.OutOrStdout(), map[string]string{
				"version":    version,
				"build_time": buildTime,
				"go":         runtime.Version(),
			})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "crunchy %s (built %s, %s)\n", version, buildTime, runtime.Version())
		return nil
	},
}
