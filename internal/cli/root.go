// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bijector/internal/config"
)

var version = "dev"

// ErrUsage indicates malformed flag values.
var ErrUsage = errors.New("usage")

// options is the state shared by every command after PersistentPreRunE.
type options struct {
	configPath string
	verbose    bool
	cfg        config.Config
}

// Execute runs the bijector CLI with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree writing results to out and logs to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{cfg: config.Default()}

	root := &cobra.Command{
		Use:           "bijector",
		Short:         "Apply invertible transforms and evaluate KL divergences",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			level, err := cfg.LogLevel()
			if err != nil {
				return err
			}
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			opts.cfg = cfg

			logger := newLogger(errOut, level)
			logger.Debug("configuration loaded", "path", opts.configPath, "format", cfg.Output.Format)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(fmt.Sprintf("bijector %s\n", version))
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newApplyCmd(opts, forwardOp))
	root.AddCommand(newApplyCmd(opts, inverseOp))
	root.AddCommand(newApplyCmd(opts, ldjOp))
	root.AddCommand(newShapeCmd(opts))
	root.AddCommand(newKLCmd(opts))

	return root
}
