package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

type hclRoot struct {
	ConfigVersion string     `hcl:"configVersion"`
	Output        *hclOutput `hcl:"output,block"`
	Log           *hclLog    `hcl:"log,block"`
	Script        *hclScript `hcl:"script,block"`
}

type hclOutput struct {
	Format *string `hcl:"format,optional"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

type hclScript struct {
	TimeoutMs *int     `hcl:"timeoutMs,optional"`
	Libs      []string `hcl:"libs,optional"`
}

func loadHCL(path string) (Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		if _, statErr := os.Stat(path); statErr != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", statErr)
		}
		return Config{}, fmt.Errorf("invalid config: %w", diags)
	}
	var root hclRoot
	if diags := gohcl.DecodeBody(f.Body, envEvalContext(os.Environ()), &root); diags.HasErrors() {
		return Config{}, fmt.Errorf("invalid config: %w", diags)
	}

	cfg := Default()
	cfg.ConfigVersion = root.ConfigVersion
	if root.Output != nil && root.Output.Format != nil {
		cfg.Output.Format = *root.Output.Format
	}
	if root.Log != nil {
		if root.Log.Level != nil {
			cfg.Log.Level = *root.Log.Level
		}
		if root.Log.Format != nil {
			cfg.Log.Format = *root.Log.Format
		}
	}
	if root.Script != nil {
		if root.Script.TimeoutMs != nil {
			cfg.Script.TimeoutMs = *root.Script.TimeoutMs
		}
		if root.Script.Libs != nil {
			cfg.Script.Libs = root.Script.Libs
		}
	}
	return cfg, nil
}

// envEvalContext exposes the process environment as the `env` map, so a
// config can say `format = env["GCD_FORMAT"]`.
func envEvalContext(environ []string) *hcl.EvalContext {
	vars := map[string]cty.Value{}
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	env := cty.MapValEmpty(cty.String)
	if len(vars) > 0 {
		env = cty.MapVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}
