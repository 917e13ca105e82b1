package version

import (
	"encoding/json"
	"io"
)

type info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	BuiltBy   string `json:"built_by"`
	Go        string `json:"go"`
	GoOS      string `json:"go_os"`
	GoArch    string `json:"go_arch"`
	Timestamp string `json:"timestamp"`
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
