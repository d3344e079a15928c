package cmd

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// result is one reported value.
type result struct {
	Name      string             `yaml:"name"`
	Value     float64            `yaml:"value"`
	StdErr    float64            `yaml:"stderr,omitempty"`
	Reference *float64           `yaml:"reference,omitempty"`
	Params    map[string]float64 `yaml:"params,omitempty"`
}

// writeResults renders results in the selected format. Text mode prints one
// "name: value" line per result, followed by optional details.
func writeResults(w io.Writer, format string, results ...result) error {
	if format == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s: %v\n", r.Name, r.Value); err != nil {
			return err
		}
		if r.StdErr != 0 {
			fmt.Fprintf(w, "  ± %.3g (1σ)\n", r.StdErr)
		}
		if r.Reference != nil {
			fmt.Fprintf(w, "  reference: %v (|Δ| = %.3g)\n", *r.Reference, abs(r.Value-*r.Reference))
		}
	}
	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func ptr(v float64) *float64 { return &v }
