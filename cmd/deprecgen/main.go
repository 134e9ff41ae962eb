// cmd/deprecgen/main.go
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sghaida/deprecate/deprecate"
	"github.com/sghaida/deprecate/internal/logging"
)

// Version information (set at build time with -ldflags)
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// loadDotEnv loads a .env file from the working directory; a missing file is fine.
var loadDotEnv = func() error { return godotenv.Load() }

// options collects the command-line input of one run.
type options struct {
	specPath   string
	legacySpec string
	outPath    string
	cfg        deprecate.Config
	envErr     error
}

// newRootCmd builds the deprecgen command tree writing to stdout/stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	if err := loadDotEnv(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(stderr, "deprecgen: unable to load .env: %v\n", err)
	}
	opts.cfg, opts.envErr = deprecate.ConfigFromEnv()

	root := &cobra.Command{
		Use:     "deprecgen --spec <file.deprecate.json> --out <file.gen.go>",
		Short:   "Generate one-shot deprecation forwarders for renamed functions and methods",
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.envErr
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, stderr)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.Flags()
	flags.StringVar(&opts.specPath, "spec", "", "path to the *.deprecate.json spec")
	flags.StringVar(&opts.outPath, "out", "", "output .gen.go file path")
	flags.StringVar(&opts.legacySpec, "in", "", "deprecated alias of --spec")
	deprecate.BindFlags(root.PersistentFlags(), &opts.cfg)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "deprecgen %s\n", Version)
			if GitCommit != "unknown" {
				fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", GitCommit)
			}
		},
	})

	return root
}

// runGenerate executes the generator.
func runGenerate(opts *options, stderr io.Writer) error {
	facility := deprecate.New(opts.cfg, deprecate.WithLogger(newLogger(stderr)))

	specPath := opts.specPath
	if strings.TrimSpace(opts.legacySpec) != "" {
		if !facility.Suppressed() {
			if err := facility.Warn("--in", "--spec"); err != nil {
				return err
			}
		}
		if strings.TrimSpace(specPath) == "" {
			specPath = opts.legacySpec
		}
	}

	if strings.TrimSpace(specPath) == "" || strings.TrimSpace(opts.outPath) == "" {
		return fmt.Errorf("usage: deprecgen --spec <file.deprecate.json> --out <file.gen.go>")
	}

	specBytes, err := os.ReadFile(specPath)
	if err != nil {
		return fmt.Errorf("read spec: %w", err)
	}

	spec, err := parseSpec(specBytes)
	if err != nil {
		return err
	}

	generatedFilePath := filepath.Clean(opts.outPath)
	idx, err := indexPackage(filepath.Dir(generatedFilePath), generatedFilePath)
	if err != nil {
		return fmt.Errorf("index package: %w", err)
	}

	source, err := generate(spec, idx, generatedFilePath)
	if err != nil {
		return fmt.Errorf("generate %s: %w", generatedFilePath, err)
	}

	if err := writeFileAtomic(generatedFilePath, source, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", generatedFilePath, err)
	}
	return nil
}

func newLogger(stderr io.Writer) zerolog.Logger {
	return logging.New(logging.Config{Format: "console", Component: "deprecgen"}, stderr)
}

// run executes the command and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
