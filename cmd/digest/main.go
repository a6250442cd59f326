package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bamsammich/digest/internal/config"
	"github.com/bamsammich/digest/internal/digest"
	"github.com/bamsammich/digest/internal/stats"
	"github.com/bamsammich/digest/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// algorithmFlag is a pflag.Value that rejects unknown algorithm names at
// parse time.
type algorithmFlag struct {
	alg *digest.Algorithm
}

var _ pflag.Value = (*algorithmFlag)(nil)

func (f *algorithmFlag) String() string {
	if f.alg == nil {
		return digest.Default.String()
	}
	return f.alg.String()
}

func (*algorithmFlag) Type() string { return "name" }

func (f *algorithmFlag) Set(val string) error {
	a, err := digest.ParseAlgorithm(val)
	if err != nil {
		return err
	}
	*f.alg = a
	return nil
}

//nolint:revive // cognitive-complexity: CLI entry point wires flags, config and logging
func run(args []string, stdout, stderr io.Writer) int {
	var (
		text        string
		file        string
		configPath  string
		logFile     string
		quiet       bool
		verbose     bool
		showVersion bool
		alg         = digest.Default
	)

	rootCmd := &cobra.Command{
		Use:           "digest [flags]",
		Short:         "Compute the digest of a text string or the contents of a file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				fmt.Fprintf(stdout, "digest %s\n", version)
				return nil
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			applyConfigDefaults(cmd, cfg.Defaults, &alg, &quiet, &verbose)

			logOpts := ui.LogOptions{Stderr: stderr, Quiet: quiet, Verbose: verbose}
			if logFile != "" {
				lf, lfErr := os.Create(logFile)
				if lfErr != nil {
					return fmt.Errorf("open log file: %w", lfErr)
				}
				defer lf.Close()
				logOpts.File = lf
			}
			logger := ui.NewLogger(logOpts)

			collector := stats.NewCollector()
			hasher := digest.NewHasher(logger, collector)

			switch {
			case cmd.Flags().Changed("text"):
				sum, err := hasher.HashText(text, alg)
				if err != nil {
					logger.Error("error hashing text", "error", err)
					return &exitError{code: 1}
				}
				fmt.Fprintf(stdout, "Hashed text: %s\n", sum)
			case cmd.Flags().Changed("file"):
				sum, err := hasher.HashFile(file, alg)
				if err != nil {
					logger.Error("error hashing file", "error", err)
					return &exitError{code: 1}
				}
				logger.Debug("file hashed", ui.SnapshotAttrs(collector.Snapshot())...)
				fmt.Fprintf(stdout, "Hashed file: %s\n", sum)
			default:
				logger.Error("no input provided; use --text or --file")
				_ = cmd.Help() //nolint:errcheck // help output failure is not actionable
				return &exitError{code: 1}
			}
			return nil
		},
	}
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().BoolVar(&showVersion, "version", false, "print version and exit")

	rootCmd.Flags().StringVarP(&text, "text", "t", "", "hash a given text string")
	rootCmd.Flags().StringVarP(&file, "file", "f", "", "hash the contents of a specified file")
	rootCmd.Flags().VarP(&algorithmFlag{alg: &alg}, "algorithm", "a",
		"hashing algorithm to use, one of: "+strings.Join(digest.Names(), ", "))
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress logging output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose (debug) logging")
	rootCmd.Flags().StringVar(&logFile, "log", "", "write structured JSON log to FILE")
	rootCmd.Flags().StringVar(&configPath, "config", "", "read flag defaults from TOML FILE")
	rootCmd.MarkFlagsMutuallyExclusive("text", "file")

	rootCmd.AddCommand(newAlgorithmsCmd())
	rootCmd.AddCommand(newDocsCmd())

	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// applyConfigDefaults applies config file defaults for flags not explicitly set on the CLI.
func applyConfigDefaults(
	cmd *cobra.Command,
	defaults config.DefaultsConfig,
	alg *digest.Algorithm,
	quiet *bool,
	verbose *bool,
) {
	if !cmd.Flags().Changed("algorithm") && defaults.Algorithm != nil {
		// Load has already validated the name.
		if a, err := digest.ParseAlgorithm(*defaults.Algorithm); err == nil {
			*alg = a
		}
	}
	if !cmd.Flags().Changed("quiet") && defaults.Quiet != nil {
		*quiet = *defaults.Quiet
	}
	if !cmd.Flags().Changed("verbose") && defaults.Verbose != nil {
		*verbose = *defaults.Verbose
	}
}

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}
