package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fernandezvara/pwcheck"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
	ansiGreen  = "\033[32m"
	ansiReset  = "\033[0m"

	noWarnings = "Looks good, no specific warnings."
)

var categoryColors = map[pwcheck.Category]string{
	pwcheck.Weak:       ansiRed,
	pwcheck.Fair:       ansiYellow,
	pwcheck.Strong:     ansiCyan,
	pwcheck.VeryStrong: ansiGreen,
}

type printer struct {
	w      io.Writer
	format string
	color  bool
}

// printAll writes results as one document in json/yaml, or as consecutive
// blocks in text.
func (p *printer) printAll(results []pwcheck.Detail) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(results), "error encoding json")
	case formatYAML:
		return p.writeYAML(results)
	default:
		for i, r := range results {
			if i > 0 {
				if _, err := fmt.Fprintln(p.w); err != nil {
					return err
				}
			}
			if err := p.writeText(r); err != nil {
				return err
			}
		}
		return nil
	}
}

// printOne writes a single result; json is emitted as one line per result.
func (p *printer) printOne(r pwcheck.Detail) error {
	switch p.format {
	case formatJSON:
		return errors.Wrap(json.NewEncoder(p.w).Encode(r), "error encoding json")
	case formatYAML:
		if _, err := fmt.Fprintln(p.w, "---"); err != nil {
			return err
		}
		return p.writeYAML(r)
	default:
		return p.writeText(r)
	}
}

func (p *printer) writeYAML(v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "error encoding yaml")
	}
	_, err = p.w.Write(b)
	return err
}

func (p *printer) writeText(r pwcheck.Detail) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Score: %d\n", r.Score)
	fmt.Fprintf(&sb, "Bucket: %s\n", p.label(r.Category))
	sb.WriteString("Reasons:\n")
	if len(r.Reasons) == 0 {
		sb.WriteString("  " + noWarnings + "\n")
	}
	for _, reason := range r.Reasons {
		sb.WriteString("  • " + reason + "\n")
	}
	_, err := io.WriteString(p.w, sb.String())
	return err
}

func (p *printer) label(c pwcheck.Category) string {
	if !p.color {
		return c.Label()
	}
	return categoryColors[c] + c.Label() + ansiReset
}
