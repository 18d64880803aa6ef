// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/bijector/internal/config"
	"github.com/katalvlaran/bijector/tensor"
)

// writeTensor prints t rounded to the configured precision.
func writeTensor(w io.Writer, t *tensor.Dense, out config.OutputConfig) error {
	if out.Format == config.FormatJSON {
		vals := t.Values()
		enc := make([]any, len(vals))
		for i, v := range vals {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				enc[i] = strconv.FormatFloat(v, 'g', -1, 64) // JSON has no non-finite numbers
				continue
			}
			enc[i] = round(v, out.Precision)
		}
		return json.NewEncoder(w).Encode(struct {
			Shape  []int `json:"shape"`
			Values []any `json:"values"`
		}{Shape: t.Shape(), Values: enc})
	}

	_, err := fmt.Fprintln(w, t.Map(func(v float64) float64 { return round(v, out.Precision) }))
	return err
}

// writeShape prints a shape.
func writeShape(w io.Writer, shape []int, out config.OutputConfig) error {
	if out.Format == config.FormatJSON {
		return json.NewEncoder(w).Encode(struct {
			Shape []int `json:"shape"`
		}{Shape: shape})
	}

	_, err := fmt.Fprintln(w, shape)
	return err
}

func round(v float64, precision int) float64 {
	if precision < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	p := math.Pow(10, float64(precision))

	return math.Round(v*p) / p
}
