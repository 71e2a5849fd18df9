package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/buildmanifest/internal/app"
	"github.com/quantmind-br/buildmanifest/internal/config"
	"github.com/quantmind-br/buildmanifest/internal/output"
	"github.com/quantmind-br/buildmanifest/internal/utils"
	"github.com/quantmind-br/buildmanifest/pkg/version"
)

func main() {
	args, err := utils.ExpandResponseFiles(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options holds the flags that apply to the whole run
type options struct {
	cfgFile   string
	verbose   bool
	logFormat string
	stamp     string
	report    string
	writer    output.Options
}

func newRootCmd() *cobra.Command {
	var (
		opts options
		rec  recorder
	)

	rootCmd := &cobra.Command{
		Use:   "buildmanifest --output FILE [--manifest FILE | --entry TARGET=SOURCE]...",
		Short: "Merge, filter and materialize build manifests",
		Long: `buildmanifest reads manifests of "[{group}]target=source" lines and writes
merged output manifests, source lists, inlined file contents, or directory
trees of copies.

Flags are order-sensitive: --output, --cwd, --output-cwd, --groups and
--entry-manifest apply to every --manifest and --entry that follows them.
Arguments of the form @FILE are replaced by the contents of FILE.`,
		Version:       version.Short(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts, &rec)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ~/.buildmanifest/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", config.DefaultLogFormat, "Log format (pretty, json)")

	// Order-sensitive flags
	rec.register(rootCmd.Flags())
	_ = rootCmd.MarkFlagRequired("output")

	// Output mode flags
	rootCmd.Flags().BoolVar(&opts.writer.Absolute, "absolute", false, "Write absolute source paths")
	rootCmd.Flags().BoolVar(&opts.writer.CopyTree, "copytree", false, "Copy sources into a directory tree at each output")
	rootCmd.Flags().BoolVar(&opts.writer.Sources, "sources", false, "Write source paths only")
	rootCmd.Flags().BoolVar(&opts.writer.Contents, "contents", false, "Write each source file's single line instead of its path")
	rootCmd.Flags().BoolVar(&opts.writer.Unique, "unique", false, "Keep only the last entry for each target")
	rootCmd.Flags().BoolVar(&opts.writer.Progress, "progress", false, "Show progress bars on a terminal while writing manifests or copying trees")

	rootCmd.Flags().StringVar(&opts.stamp, "stamp", "", "File to touch once every output is written")
	rootCmd.Flags().StringVar(&opts.report, "report", "", "Write a YAML provenance report to this file")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func run(cmd *cobra.Command, opts *options, rec *recorder) error {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = opts.logFormat
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: opts.verbose,
	})

	writer, err := output.NewWriter(output.WriterOptions{
		Options: opts.writer,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	assembler, err := app.NewAssembler(app.AssemblerOptions{
		Logger: log,
		Writer: writer,
	})
	if err != nil {
		return fmt.Errorf("failed to create assembler: %w", err)
	}

	return assembler.Run(app.Plan{
		Outputs:      rec.Outputs(),
		Declarations: rec.Declarations(cfg),
		Stamp:        opts.stamp,
		Report:       opts.report,
	})
}

func newVersionCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !asYAML {
				fmt.Fprintln(cmd.OutOrStdout(), version.Full())
				return nil
			}
			data, err := yaml.Marshal(version.Get())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print version information as YAML")

	return cmd
}
