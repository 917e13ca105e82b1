package config

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

func loadCUE(path string) (Config, error) {
	v, err := compileCUE(path)
	if err != nil {
		return Config{}, err
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&cfg.ConfigVersion); err != nil {
		return Config{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	if err := decodeOptionalString(v, "output.format", &cfg.Output.Format); err != nil {
		return Config{}, err
	}
	if err := decodeOptionalString(v, "log.level", &cfg.Log.Level); err != nil {
		return Config{}, err
	}
	if err := decodeOptionalString(v, "log.format", &cfg.Log.Format); err != nil {
		return Config{}, err
	}
	tv := v.LookupPath(cue.ParsePath("script.timeoutMs"))
	if tv.Exists() {
		if tv.Kind() != cue.IntKind {
			return Config{}, fmt.Errorf("invalid type for field: script.timeoutMs (expected int)")
		}
		if err := tv.Decode(&cfg.Script.TimeoutMs); err != nil {
			return Config{}, fmt.Errorf("invalid value for script.timeoutMs: %v", err)
		}
	}
	lv := v.LookupPath(cue.ParsePath("script.libs"))
	if lv.Exists() {
		if lv.Kind() != cue.ListKind {
			return Config{}, fmt.Errorf("invalid type for field: script.libs (expected list)")
		}
		var libs []string
		if err := lv.Decode(&libs); err != nil {
			return Config{}, fmt.Errorf("invalid value for script.libs: %v", err)
		}
		cfg.Script.Libs = libs
	}
	return cfg, nil
}

// compileCUE loads and compiles a CUE file at the given path.
func compileCUE(path string) (cue.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read config: %w", err)
	}
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("invalid config: %v", err)
	}
	return v, nil
}

func requireStringField(v cue.Value, name string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return nil
}

func decodeOptionalString(v cue.Value, name string, dst *string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return nil
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	if err := f.Decode(dst); err != nil {
		return fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return nil
}
