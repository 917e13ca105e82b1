// Package config loads optional CLI defaults from CUE or HCL files.
package config

import (
	"slices"
	"strings"
)

// CurrentConfigVersion is written by `configVersion` in new config files.
const CurrentConfigVersion = "1"

var supportedConfigVersions = []string{CurrentConfigVersion}

func IsSupportedConfigVersion(v string) bool {
	return slices.Contains(supportedConfigVersions, v)
}

func SupportedConfigVersionsCSV() string {
	return strings.Join(supportedConfigVersions, ", ")
}
