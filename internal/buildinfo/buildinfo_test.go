package buildinfo

import (
	"testing"

	"github.com/flarebyte/gcd/cli"
)

func TestSummary(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	oldCliVersion, oldCliDate := cli.Version, cli.Date
	defer func() {
		Version, Commit, Date = oldVersion, oldCommit, oldDate
		cli.Version, cli.Date = oldCliVersion, oldCliDate
	}()

	tests := []struct {
		name                          string
		version, commit, date, cliVer string
		want                          string
	}{
		{"defaults", "", "", "", "", "dev"},
		{"cli fallback", "", "", "", "0.9.0", "0.9.0"},
		{"full", "1.2.3", "0123456789abcdef", "2026-02-09", "", "1.2.3 (commit=0123456, date=2026-02-09)"},
		{"short commit", "1.2.3", "abc", "", "", "1.2.3 (commit=abc)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			Version, Commit, Date = tc.version, tc.commit, tc.date
			cli.Version, cli.Date = tc.cliVer, ""
			if got := Summary(); got != tc.want {
				t.Fatalf("Summary() = %q, want %q", got, tc.want)
			}
		})
	}
}
