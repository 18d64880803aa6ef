// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bijector/internal/chainfile"
	"github.com/katalvlaran/bijector/tensor"
	"github.com/katalvlaran/bijector/transform"
)

// applyOp is one tensor-valued transform operation.
type applyOp struct {
	name  string
	short string
	run   func(t transform.Transform, x *tensor.Dense, inverse bool) (*tensor.Dense, error)
}

var (
	forwardOp = applyOp{
		name:  "forward",
		short: "Map values through the chain",
		run: func(t transform.Transform, x *tensor.Dense, _ bool) (*tensor.Dense, error) {
			return t.Forward(x)
		},
	}
	inverseOp = applyOp{
		name:  "inverse",
		short: "Map values back through the chain",
		run: func(t transform.Transform, x *tensor.Dense, _ bool) (*tensor.Dense, error) {
			return t.Inverse(x)
		},
	}
	ldjOp = applyOp{
		name:  "ldj",
		short: "Log-determinant of the Jacobian at the given values",
		run: func(t transform.Transform, x *tensor.Dense, inverse bool) (*tensor.Dense, error) {
			if inverse {
				return t.InverseLogDetJacobian(x)
			}
			return t.ForwardLogDetJacobian(x)
		},
	}
)

func newApplyCmd(opts *options, op applyOp) *cobra.Command {
	var (
		chainPath string
		values    string
		shape     string
		inverse   bool
	)

	cmd := &cobra.Command{
		Use:   op.name,
		Short: op.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())

			t, err := loadChain(chainPath, opts)
			if err != nil {
				return err
			}
			x, err := parseTensor(values, shape)
			if err != nil {
				return err
			}
			logger.Debug("applying", "op", op.name, "transform", t.String(), "shape", x.Shape())

			y, err := op.run(t, x, inverse)
			if err != nil {
				return fmt.Errorf("%s: %w", op.name, err)
			}

			return writeTensor(cmd.OutOrStdout(), y, opts.cfg.Output)
		},
	}
	cmd.Flags().StringVarP(&chainPath, "chain", "c", "", "chain file (.toml, .yaml, .yml)")
	cmd.Flags().StringVar(&values, "values", "", "comma-separated values in row-major order")
	cmd.Flags().StringVar(&shape, "shape", "", "comma-separated shape (default: one axis)")
	if op.name == ldjOp.name {
		cmd.Flags().BoolVar(&inverse, "inverse", false, "evaluate the inverse log-determinant")
	}
	_ = cmd.MarkFlagRequired("values")

	return cmd
}

func newShapeCmd(opts *options) *cobra.Command {
	var (
		chainPath string
		shape     string
		inverse   bool
	)

	cmd := &cobra.Command{
		Use:   "shape",
		Short: "Infer the output shape of the chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := loadChain(chainPath, opts)
			if err != nil {
				return err
			}
			in, err := parseInts(shape)
			if err != nil {
				return err
			}

			var out []int
			if inverse {
				out, err = t.InverseShape(in)
			} else {
				out, err = t.ForwardShape(in)
			}
			if err != nil {
				return fmt.Errorf("shape: %w", err)
			}

			return writeShape(cmd.OutOrStdout(), out, opts.cfg.Output)
		},
	}
	cmd.Flags().StringVarP(&chainPath, "chain", "c", "", "chain file (.toml, .yaml, .yml)")
	cmd.Flags().StringVar(&shape, "shape", "", "comma-separated input shape")
	cmd.Flags().BoolVar(&inverse, "inverse", false, "infer the inverse shape")
	_ = cmd.MarkFlagRequired("shape")

	return cmd
}

// loadChain reads the chain file from the flag or the configured default.
func loadChain(path string, opts *options) (transform.Transform, error) {
	if path == "" {
		path = opts.cfg.Chain
	}
	if path == "" {
		return nil, fmt.Errorf("%w: --chain is required", ErrUsage)
	}
	f, err := chainfile.Load(path)
	if err != nil {
		return nil, err
	}

	return f.Build()
}
