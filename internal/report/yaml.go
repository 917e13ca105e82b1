package report

import (
	"bytes"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML returns canonical YAML for r: numbers first, then gcd.
func MarshalYAML(r Result) ([]byte, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, n := range r.Numbers {
		seq.Content = append(seq.Content, intNode(n))
	}
	top := &yaml.Node{Kind: yaml.MappingNode}
	top.Content = append(top.Content, keyNode("numbers"), seq)
	top.Content = append(top.Content, keyNode("gcd"), intNode(r.GCD))

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(top); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}

func keyNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func intNode(n uint64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(n, 10)}
}
