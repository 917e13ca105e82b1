// Package buildinfo exposes version metadata for the CLI. Values can be
// overridden at build time via -ldflags. Empty values fall back to the cli
// package (cli.Version/cli.Date) so older build scripts keep working.
package buildinfo

import (
	"strings"

	"github.com/flarebyte/gcd/cli"
)

var (
	// Version is the semantic version or custom string.
	Version = "dev"
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time in RFC3339 or similar (optional).
	Date = ""
	// BuiltBy is an optional builder identifier.
	BuiltBy = ""
)

// ResolvedVersion returns Version, then cli.Version, then "dev".
func ResolvedVersion() string {
	if Version != "" {
		return Version
	}
	if cli.Version != "" {
		return cli.Version
	}
	return "dev"
}

// ResolvedDate returns Date or cli.Date.
func ResolvedDate() string {
	if Date != "" {
		return Date
	}
	return cli.Date
}

// Summary returns a concise single-line version string.
func Summary() string {
	v := ResolvedVersion()
	parts := make([]string, 0, 2)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if d := ResolvedDate(); d != "" {
		parts = append(parts, "date="+d)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
