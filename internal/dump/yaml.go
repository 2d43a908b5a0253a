package dump

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"xsd-generator/internal/ir"
)

// MarshalYAML renders rec as a YAML mapping in IR order.
func MarshalYAML(rec ir.Record) ([]byte, error) {
	root := mapping()
	root.Content = append(root.Content, scalar("name"), scalar(rec.Name))
	root.Content = append(root.Content, scalar("data"), yamlValue(rec.Data))

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encoding yaml dump: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml dump: %w", err)
	}

	return buf.Bytes(), nil
}

func yamlValue(v ir.Value) *yaml.Node {
	m := mapping()

	switch tv := v.(type) {
	case *ir.Attributes:
		for _, p := range tv.Pairs() {
			m.Content = append(m.Content, scalar(p.Key), scalar(p.Value))
		}

	case *ir.Node:
		for _, e := range tv.Entries() {
			m.Content = append(m.Content, scalar(e.Name.String()), yamlValue(e.Value))
		}
	}

	if len(m.Content) == 0 {
		m.Style = yaml.FlowStyle
	}

	return m
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
