// Package cli provides the command-line interface for huepick.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/huepick/internal/colour"
	"github.com/jmylchreest/huepick/internal/config"
	"github.com/jmylchreest/huepick/internal/version"
)

// rootOptions holds global flag values and state shared by subcommands.
type rootOptions struct {
	verbose    bool
	quiet      bool
	noColor    bool
	configPath string

	cfg    config.Config
	logger hclog.Logger
}

// NewRootCmd builds the huepick command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{
		cfg:    config.Default(),
		logger: hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "huepick",
		Short: "An HSL colour picker for the terminal",
		Long: `huepick converts colours between HSL, RGB and hex-with-alpha and runs an
interactive editing session that emits a CSS rgba() value.

Adjust hue, saturation, lightness and opacity, or type a hex code or CSS
colour name, and every representation stays in sync.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable ANSI colour previews")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/huepick/config.yaml)")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newPickCmd(opts))
	rootCmd.AddCommand(newNamesCmd(opts))

	return rootCmd
}

// Execute runs the root command with a context cancelled on SIGINT or
// SIGTERM and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger once flags are parsed.
func (o *rootOptions) setup(stderr io.Writer) error {
	o.logger = newLogger(o.verbose && !o.quiet, stderr)

	cfg, err := config.NewLoader().
		WithFile(o.configPath).
		WithEnvConfig().
		Load()
	if err != nil {
		return err
	}
	o.cfg = cfg
	colour.DisableColourOutput = cfg.NoColor || o.noColor

	o.logger.Debug("configuration loaded", "path", o.configPath, "format", cfg.Format, "preview", cfg.Preview)
	return nil
}

// newLogger returns a debug logger on w when verbose, otherwise a silent one.
func newLogger(verbose bool, w io.Writer) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "huepick",
			Output: w,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "huepick",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
