package diagnostic

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format is an output format for rendered diagnostics.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (valid: text, json, yaml)", s)
	}
}

// record is the serialized form of a Diagnostic.
type record struct {
	File     string             `json:"file,omitempty" yaml:"file,omitempty"`
	Line     int                `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int                `json:"column,omitempty" yaml:"column,omitempty"`
	Severity DiagnosticSeverity `json:"severity" yaml:"severity"`
	Code     string             `json:"code" yaml:"code"`
	Message  string             `json:"message" yaml:"message"`
	Function string             `json:"function,omitempty" yaml:"function,omitempty"`
	Target   string             `json:"target,omitempty" yaml:"target,omitempty"`
	Fields   []string           `json:"fields,omitempty" yaml:"fields,omitempty"`
}

func toRecords(diags []Diagnostic) []record {
	out := make([]record, 0, len(diags))
	for _, d := range diags {
		out = append(out, record{
			File:     d.Position.Filename,
			Line:     d.Position.Line,
			Column:   d.Position.Column,
			Severity: d.Severity,
			Code:     d.Code,
			Message:  d.Message,
			Function: d.Function,
			Target:   d.Target,
			Fields:   d.Fields,
		})
	}

	return out
}

// Write renders diags to w in the given format.
func Write(w io.Writer, diags []Diagnostic, format Format) error {
	switch format {
	case FormatText, "":
		return writeText(w, diags)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(toRecords(diags))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toRecords(diags)); err != nil {
			return fmt.Errorf("failed to encode diagnostics: %w", err)
		}

		return enc.Close()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeText writes one line per diagnostic in the usual compiler layout:
// file:line:col: severity: message
func writeText(w io.Writer, diags []Diagnostic) error {
	for _, d := range diags {
		var err error
		if d.Position.IsValid() {
			_, err = fmt.Fprintf(w, "%s: %s: %s\n", d.Position, d.Severity, d.Message)
		} else {
			_, err = fmt.Fprintf(w, "%s: %s\n", d.Severity, d.Message)
		}

		if err != nil {
			return err
		}
	}

	return nil
}
