package display

import (
	"encoding/json"
	"io"
	"strings"

	"emperror.dev/errors"
	"gopkg.in/yaml.v3"

	"toolbelt/stats"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errors.Errorf("unknown output format %q (expected table, json or yaml)", s)
	}
}

// Write renders result to w in the given format.
func Write(w io.Writer, format Format, account, language string, result stats.Result) error {
	switch format {
	case FormatJSON:
		return JSON(w, NewReport(account, language, result))
	case FormatYAML:
		return YAML(w, NewReport(account, language, result))
	default:
		return Table(w, account, result)
	}
}

func JSON(w io.Writer, report Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(report), "failed to encode JSON report")
}

func YAML(w io.Writer, report Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		_ = enc.Close()
		return errors.Wrap(err, "failed to encode YAML report")
	}
	return errors.Wrap(enc.Close(), "failed to encode YAML report")
}
