package ir

// Value is either an *Attributes or a *Node.
type Value interface {
	// Empty reports whether the value carries no payload.
	Empty() bool

	clone() Value
}

// Attr is a single attribute of an element or attribute declaration.
type Attr struct {
	Key   string
	Value string
}

// Attributes is an ordered attribute set. The zero value is ready to use.
type Attributes struct {
	pairs []Attr
	index map[string]int
}

// NewAttributes returns an attribute set holding pairs in order.
func NewAttributes(pairs ...Attr) *Attributes {
	a := &Attributes{}
	for _, p := range pairs {
		a.Set(p.Key, p.Value)
	}

	return a
}

// Set assigns value to key. An existing key keeps its position.
func (a *Attributes) Set(key, value string) {
	if i, ok := a.index[key]; ok {
		a.pairs[i].Value = value
		return
	}

	if a.index == nil {
		a.index = make(map[string]int)
	}

	a.index[key] = len(a.pairs)
	a.pairs = append(a.pairs, Attr{Key: key, Value: value})
}

// Get returns the value of key.
func (a *Attributes) Get(key string) (string, bool) {
	i, ok := a.index[key]
	if !ok {
		return "", false
	}

	return a.pairs[i].Value, true
}

// Value returns the value of key or the empty string.
func (a *Attributes) Value(key string) string {
	v, _ := a.Get(key)
	return v
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}

	return len(a.pairs)
}

// Pairs returns a copy of the attributes in insertion order.
func (a *Attributes) Pairs() []Attr {
	if a == nil {
		return nil
	}

	out := make([]Attr, len(a.pairs))
	copy(out, a.pairs)

	return out
}

// Empty implements Value.
func (a *Attributes) Empty() bool { return a.Len() == 0 }

// Clone returns a deep copy.
func (a *Attributes) Clone() *Attributes {
	return NewAttributes(a.Pairs()...)
}

func (a *Attributes) clone() Value { return a.Clone() }

// Entry is one key/value pair of a Node.
type Entry struct {
	Name  Name
	Value Value
}

// Node is an ordered mapping from classified names to values. The zero
// value is ready to use.
type Node struct {
	entries []Entry
	index   map[Name]int
}

// NewNode returns an empty node.
func NewNode() *Node {
	return &Node{}
}

// Set inserts name -> v. Setting an existing name replaces its value and
// keeps its position.
func (n *Node) Set(name Name, v Value) {
	if i, ok := n.index[name]; ok {
		n.entries[i].Value = v
		return
	}

	if n.index == nil {
		n.index = make(map[Name]int)
	}

	n.index[name] = len(n.entries)
	n.entries = append(n.entries, Entry{Name: name, Value: v})
}

// Merge inserts every entry of other into n, in other's order.
func (n *Node) Merge(other *Node) {
	for _, e := range other.Entries() {
		n.Set(e.Name, e.Value)
	}
}

// Get returns the value stored under name.
func (n *Node) Get(name Name) (Value, bool) {
	if n == nil {
		return nil, false
	}

	i, ok := n.index[name]
	if !ok {
		return nil, false
	}

	return n.entries[i].Value, true
}

// Has reports whether the plain key exists.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(Plain(key))
	return ok
}

// Child returns the nested node stored under the plain key, or nil.
func (n *Node) Child(key string) *Node {
	v, _ := n.Get(Plain(key))
	child, _ := v.(*Node)

	return child
}

// Attrs returns the attribute set stored under the plain key, or nil.
func (n *Node) Attrs(key string) *Attributes {
	v, _ := n.Get(Plain(key))
	attrs, _ := v.(*Attributes)

	return attrs
}

// Len returns the number of entries.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}

	return len(n.entries)
}

// Entries returns a copy of the entries in insertion order.
func (n *Node) Entries() []Entry {
	if n == nil {
		return nil
	}

	out := make([]Entry, len(n.entries))
	copy(out, n.entries)

	return out
}

// Names returns the keys in insertion order.
func (n *Node) Names() []Name {
	out := make([]Name, 0, n.Len())
	for _, e := range n.Entries() {
		out = append(out, e.Name)
	}

	return out
}

// Empty implements Value.
func (n *Node) Empty() bool { return n.Len() == 0 }

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	out := NewNode()
	for _, e := range n.Entries() {
		var v Value
		if e.Value != nil {
			v = e.Value.clone()
		}

		out.Set(e.Name, v)
	}

	return out
}

func (n *Node) clone() Value { return n.Clone() }

// Equal reports whether a and b hold the same keys in the same order with
// structurally equal values. An empty attribute set and an empty node are
// the same empty payload.
func Equal(a, b Value) bool {
	aEmpty := a == nil || a.Empty()
	bEmpty := b == nil || b.Empty()

	if aEmpty || bEmpty {
		return aEmpty == bEmpty
	}

	switch av := a.(type) {
	case *Attributes:
		bv, ok := b.(*Attributes)
		if !ok || av.Len() != bv.Len() {
			return false
		}

		for i, p := range av.pairs {
			if bv.pairs[i] != p {
				return false
			}
		}

		return true

	case *Node:
		bv, ok := b.(*Node)
		if !ok || av.Len() != bv.Len() {
			return false
		}

		for i, e := range av.entries {
			other := bv.entries[i]
			if e.Name != other.Name || !Equal(e.Value, other.Value) {
				return false
			}
		}

		return true

	default:
		return false
	}
}
