package schema

import (
	"fmt"
	"os"

	"aqwari.net/xml/xmltree"
)

// LoadFile reads and parses the schema document at path.
func LoadFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	root, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return root, nil
}

// Parse parses a schema document into its node tree.
func Parse(data []byte) (*Node, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema XML: %w", err)
	}

	return convert(root), nil
}

func convert(el *xmltree.Element) *Node {
	n := &Node{
		Space: el.Name.Space,
		Local: el.Name.Local,
	}

	for _, a := range el.StartElement.Attr {
		// Namespace declarations are scope, not schema attributes.
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}

		n.Attrs = append(n.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
	}

	for i := range el.Children {
		n.Children = append(n.Children, convert(&el.Children[i]))
	}

	return n
}
