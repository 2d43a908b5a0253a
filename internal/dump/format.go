package dump

import (
	"fmt"

	"xsd-generator/internal/common"
	"xsd-generator/internal/ir"
)

// Format selects a serialization.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatSpew
)

// String returns the configuration name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatSpew:
		return "spew"
	default:
		return common.UnknownStr
	}
}

// Extension returns the file suffix appended to the rendered file name.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatSpew:
		return ".spew"
	default:
		return ".json"
	}
}

// ParseFormat parses a format name as produced by String.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "spew":
		return FormatSpew, nil
	default:
		return 0, fmt.Errorf("unknown dump format %q (supported: json, yaml, spew)", s)
	}
}

// ParseFormats parses a list of format names, dropping duplicates.
func ParseFormats(names []string) ([]Format, error) {
	var out []Format

	seen := make(map[Format]bool)

	for _, name := range names {
		f, err := ParseFormat(name)
		if err != nil {
			return nil, err
		}

		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}

	return out, nil
}

// Serialize renders rec in format f.
func Serialize(rec ir.Record, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return MarshalJSON(rec)
	case FormatYAML:
		return MarshalYAML(rec)
	case FormatSpew:
		return Spew(rec), nil
	default:
		return nil, fmt.Errorf("unknown dump format %d", int(f))
	}
}
