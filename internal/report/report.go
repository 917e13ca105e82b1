// Package report renders a GCD result for humans or machines.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format selects a renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// Result is the input list and its greatest common divisor.
type Result struct {
	Numbers []uint64 `json:"numbers" yaml:"numbers"`
	GCD     uint64   `json:"gcd" yaml:"gcd"`
}

// ParseFormat validates a user supplied format name. The empty string means text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	f := Format(strings.ToLower(s))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format: %q (supported: %s)", s, formatsCSV())
}

// Write renders r to w.
func Write(w io.Writer, format Format, r Result) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintln(w, Sentence(r))
		return err
	case FormatJSON:
		return encodeJSON(w, r)
	case FormatYAML:
		b, err := MarshalYAML(r)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return fmt.Errorf("unsupported format: %q (supported: %s)", string(format), formatsCSV())
}

// Sentence is the plain text report line.
func Sentence(r Result) string {
	return fmt.Sprintf("The greatest common divisor of %s is %d", List(r.Numbers), r.GCD)
}

// List formats numbers as "[a, b, c]".
func List(nums []uint64) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.FormatUint(n, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatsCSV() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
