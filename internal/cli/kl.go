// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bijector/divergence"
)

func newKLCmd(opts *options) *cobra.Command {
	var (
		pSpec string
		qSpec string
		list  bool
	)

	cmd := &cobra.Command{
		Use:   "kl",
		Short: "Evaluate KL(p‖q) between two distributions",
		Long: `Evaluate KL(p‖q) with the built-in closed forms.

Distributions are written kind:params, for example beta:2,3, normal:0,1,
uniform:-1,1, dirichlet:1,2,3 or categorical:0.1,0.2,0.7 (logits).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())
			reg := divergence.NewRegistry(divergence.WithLogger(logger))
			if err := divergence.RegisterClosedForms(reg); err != nil {
				return err
			}

			if list {
				for _, pair := range reg.Pairs() {
					fmt.Fprintln(cmd.OutOrStdout(), pair)
				}
				return nil
			}
			if pSpec == "" || qSpec == "" {
				return fmt.Errorf("%w: --p and --q are required", ErrUsage)
			}

			p, err := parseDistribution(pSpec)
			if err != nil {
				return err
			}
			q, err := parseDistribution(qSpec)
			if err != nil {
				return err
			}
			if match, ok := reg.Match(p.Kind(), q.Kind()); ok {
				logger.Debug("resolved KL handler", "p", p.Kind(), "q", q.Kind(), "match", match)
			}

			out, err := reg.KLDivergence(p, q)
			if err != nil {
				return fmt.Errorf("kl: %w", err)
			}

			return writeTensor(cmd.OutOrStdout(), out, opts.cfg.Output)
		},
	}
	cmd.Flags().StringVar(&pSpec, "p", "", "first distribution, kind:params")
	cmd.Flags().StringVar(&qSpec, "q", "", "second distribution, kind:params")
	cmd.Flags().BoolVar(&list, "list", false, "list the registered (p, q) pairs")

	return cmd
}
