package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/crunchy/config"
	"github.com/s0up4200/crunchy/crunchyroll"
	"github.com/s0up4200/crunchy/filter"
)

// annotationStandalone marks commands that run without configuration
const annotationStandalone = "standalone"

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *crunchyroll.Crunchyroll
	filters *filter.Manager

	// Command flags
	outputFormat string
	filterExpr   string
	preset       string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "crunchy",
	Short: "Search and inspect the Crunchyroll catalog",
	Long: `crunchy is a CLI for the Crunchyroll catalog API. It searches the catalog,
fetches series and movie listings by id or url, and filters search results
with expressions.`,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: shutdownApp,
	SilenceUsage:       true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "console", "output format (console, json)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(movieListingCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp validates the global flags and, unless the command runs
// standalone, loads the configuration and creates the client
func initializeApp(cmd *cobra.Command, args []string) error {
	if outputFormat != "console" && outputFormat != "json" {
		return fmt.Errorf("invalid output format: %s (must be 'console' or 'json')", outputFormat)
	}

	if cmd.Annotations[annotationStandalone] == "true" {
		logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true})
		return nil
	}

	return loadApp(cmd.Context())
}

// loadApp loads the configuration and creates the client and filter manager
func loadApp(ctx context.Context) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	opts := append(cfg.Crunchyroll.ClientOptions(), crunchyroll.WithLogger(logger))
	client, err = crunchyroll.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Crunchyroll client: %w", err)
	}

	filters = filter.NewManager(
		filter.WithEvaluator(filter.NewConcurrentEvaluator(filter.WithWorkers(cfg.Concurrency.Workers))),
	)
	if err := filters.RegisterFilters(cfg.Filter.Presets); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	logger.Debug().
		Str("locale", string(client.Executor().Locale())).
		Str("bucket", client.Executor().Bucket()).
		Bool("premium", client.Executor().Premium()).
		Int("presets", len(cfg.Filter.Presets)).
		Msg("Client initialized")

	return nil
}

// shutdownApp releases the filter worker pool
func shutdownApp(cmd *cobra.Command, args []string) error {
	if filters == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return filters.Close(ctx)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// no color codes when stderr is redirected
	color := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilterExpression determines the filter to apply. A nil filter means
// results are shown unfiltered.
func getFilterExpression() (filter.CompiledFilter, error) {
	// Priority: command line filter > preset > default preset
	if filterExpr != "" {
		f, err := filters.Compile(filterExpr)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
		return f, nil
	}

	name := preset
	if name == "" {
		name = cfg.Filter.Default
	}
	if name == "" {
		return nil, nil
	}

	f, ok := filters.GetFilter(name)
	if !ok {
		return nil, fmt.Errorf("preset '%s' not found in config", name)
	}
	return f, nil
}
