package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/textstat/textstat/internal/config"
	"github.com/textstat/textstat/internal/output"
	"github.com/textstat/textstat/internal/scan"
	"github.com/textstat/textstat/internal/util"
)

var (
	cfgFile string
)

// Execute runs the root command with the provided context
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textstat <workers> <directory> [directory...]",
		Short: "Textstat - Concurrent text file analyzer",
		Long: `Textstat walks one or more directories and analyzes every regular file
it finds, computing word counts, line counts, byte sizes, and character
frequencies on a resizable worker pool.

Progress for each file is printed as it completes, and a summary report
follows in table, json, or yaml format. Pressing Enter while the scan is
running cancels it: queued files are marked canceled, in-flight files
finish, and everything analyzed so far is kept in the report.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Arg validation has already run, so anything failing past
			// this point is a runtime error rather than a usage mistake
			cmd.SilenceUsage = true
			return initConfig(cmd)
		},
		RunE: runScan,
	}

	// Define persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.textstat.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output with debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().Bool("wide", false, "include the per-file stats table in the report")

	// Bind flags to viper
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("wide", rootCmd.PersistentFlags().Lookup("wide"))

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// runScan discovers files under the given directories and analyzes them
// on a worker pool, then prints the report
func runScan(cmd *cobra.Command, args []string) error {
	workers, err := strconv.Atoi(args[0])
	if err != nil || workers < 1 {
		return fmt.Errorf("worker count must be a positive integer, got %q", args[0])
	}

	manager := config.NewManager(cfgFile)
	cfg, err := manager.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	format, err := resolveFormat(cfg)
	if err != nil {
		return err
	}
	noColor := viper.GetBool("no-color") || cfg.Defaults.NoColor
	wide := viper.GetBool("wide") || cfg.Defaults.Wide

	files := scan.Discover(args[1:], slog.Default())
	if len(files) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No files found to process.")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Found %d files to process\n", len(files))
	fmt.Fprintf(out, "Using %d worker threads\n", workers)
	fmt.Fprintln(out, "Press Enter to cancel...")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Any line on stdin cancels the scan
	go util.CancelOnLine(cmd.InOrStdin(), cancel)

	resizeTo := viper.GetInt("resize-to")
	if resizeTo == 0 {
		resizeTo = cfg.Defaults.ResizeTo
	}

	printer := output.NewPrinter(out, noColor)
	report, err := scan.Run(ctx, files, scan.Options{
		Workers:  workers,
		ResizeTo: resizeTo,
		Progress: printer.Print,
		Logger:   slog.Default(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	formatter := output.NewFormatter(format,
		output.WithNoColor(noColor),
		output.WithWide(wide),
	)
	return formatter.FormatReport(out, report)
}

// resolveFormat picks the output format from the flag, the environment,
// or the config file defaults
func resolveFormat(cfg *config.Config) (output.Format, error) {
	name := viper.GetString("output")
	if name == "" {
		name = cfg.Defaults.OutputFormat
	}
	return output.ParseFormat(name)
}

// initConfig initializes configuration and logging
func initConfig(cmd *cobra.Command) error {
	// Initialize viper configuration
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory, then the current directory
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".textstat")
	}

	// Read environment variables
	viper.SetEnvPrefix("TEXTSTAT")
	viper.AutomaticEnv()
	viper.BindEnv("resize-to", "TEXTSTAT_RESIZE_TO")

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Setup structured logging
	setupLogging(cmd)

	return nil
}

// setupLogging configures structured logging with slog
func setupLogging(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")

	// Set log level based on verbose flag
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if noColor {
		// Use JSON handler for no-color mode
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		// Use text handler for colored output
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	// Set default logger
	logger := slog.New(handler)
	slog.SetDefault(logger)

	if verbose {
		slog.Debug("verbose logging enabled")
		if viper.ConfigFileUsed() != "" {
			slog.Debug("loaded configuration", "file", viper.ConfigFileUsed())
		}
	}
}
