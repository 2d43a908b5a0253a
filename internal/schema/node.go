package schema

// Attr is a single attribute of a schema element.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of a schema document.
type Node struct {
	// Space is the namespace URI of the element.
	Space string
	// Local is the element's local name, e.g. "complexType".
	Local string
	// Attrs holds the attributes in document order.
	Attrs []Attr
	// Children holds the child elements in document order.
	Children []*Node
}

// Tag returns the classified tag of the node.
func (n *Node) Tag() Tag {
	return ClassifyTag(n.Local)
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}

	return total
}
