package walk

import (
	"errors"
	"fmt"
	"strings"

	"xsd-generator/internal/common"
	"xsd-generator/internal/ir"
	"xsd-generator/internal/sanitize"
	"xsd-generator/internal/schema"
	"xsd-generator/internal/typemap"
)

// Reserved name prefixes.
const (
	ClassPrefix = "t_"
	EnumPrefix  = "e_"
)

// Errors returned for malformed schema input.
var (
	ErrMissingName  = errors.New("missing name attribute")
	ErrMissingBase  = errors.New("missing base attribute")
	ErrMissingType  = errors.New("unbounded element without type")
	ErrMissingValue = errors.New("enumeration without value")
)

// AttributeTypePolicy selects when the type of an attribute declaration is
// mapped to a C++ type.
type AttributeTypePolicy int

const (
	// MapMultiAttribute maps the type only when the declaration carries
	// more than one attribute. A single-entry declaration is kept as is.
	MapMultiAttribute AttributeTypePolicy = iota
	// MapAlways maps the type of every attribute declaration that has one.
	MapAlways
)

// String returns the configuration name of the policy.
func (p AttributeTypePolicy) String() string {
	switch p {
	case MapMultiAttribute:
		return "multi"
	case MapAlways:
		return "always"
	default:
		return common.UnknownStr
	}
}

// ParseAttributeTypePolicy parses a policy name as produced by String.
func ParseAttributeTypePolicy(s string) (AttributeTypePolicy, error) {
	switch s {
	case "", "multi":
		return MapMultiAttribute, nil
	case "always":
		return MapAlways, nil
	default:
		return 0, fmt.Errorf("unknown attribute type policy %q (supported: multi, always)", s)
	}
}

// Options configures a Walker.
type Options struct {
	AttributeTypes AttributeTypePolicy
}

// Walker turns schema node trees into raw IR.
type Walker struct {
	opts Options
}

// New returns a Walker with the given options.
func New(opts Options) *Walker {
	return &Walker{opts: opts}
}

// Walk returns the IR built from the children of n.
func (w *Walker) Walk(n *schema.Node) (*ir.Node, error) {
	out := ir.NewNode()
	attributes := ir.NewNode()

	for _, child := range n.Children {
		switch tag := child.Tag(); {
		case tag.IsTypeDefinition():
			name, members, err := w.typeDefinition(child)
			if err != nil {
				return nil, err
			}

			out.Set(name, members)

		case tag.IsDerivation():
			base, ok := child.Attr("base")
			if !ok {
				return nil, fmt.Errorf("%s: %w", tag, ErrMissingBase)
			}

			members, err := w.Walk(child)
			if err != nil {
				return nil, fmt.Errorf("%s of %s: %w", tag, base, err)
			}

			derived := ir.NewNode()
			derived.Set(ir.Plain(typemap.Base(base)), members)
			out.Set(ir.Plain(ir.KeyBase), derived)

		case tag == schema.TagSequence:
			members, err := w.Walk(child)
			if err != nil {
				return nil, err
			}

			out.Set(ir.Plain(ir.KeySequence), members)

		case tag == schema.TagEnumeration:
			value, ok := child.Attr("value")
			if !ok {
				return nil, fmt.Errorf("%s: %w", tag, ErrMissingValue)
			}

			out.Set(ir.Plain(sanitize.Identifier(value)), ir.NewNode())

		case tag == schema.TagElement:
			name, attrs, err := element(child)
			if err != nil {
				return nil, err
			}

			out.Set(ir.Plain(name), attrs)

		case tag == schema.TagAttribute:
			name, attrs, err := w.attribute(child)
			if err != nil {
				return nil, err
			}

			attributes.Set(ir.Plain(name), attrs)

		case tag == schema.TagUnion:
			out.Set(ir.Plain(ir.KeyUnion), copyAttrs(child))

		default:
			inner, err := w.Walk(child)
			if err != nil {
				return nil, err
			}

			out.Merge(inner)
		}
	}

	if !attributes.Empty() {
		out.Set(ir.Plain(ir.KeyAttributes), attributes)
	}

	return out, nil
}

func (w *Walker) typeDefinition(n *schema.Node) (ir.Name, *ir.Node, error) {
	ident, ok := n.Attr("name")
	if !ok {
		return ir.Name{}, nil, fmt.Errorf("%s: %w", n.Tag(), ErrMissingName)
	}

	members, err := w.Walk(n)
	if err != nil {
		return ir.Name{}, nil, fmt.Errorf("%s %s: %w", n.Tag(), ident, err)
	}

	return Classify(ident, members), members, nil
}

// Classify derives the classified name of a type definition from its
// declared name and its finished member map.
func Classify(ident string, members *ir.Node) ir.Name {
	if members.Has(ir.KeyUnion) {
		return ir.Struct(ident)
	}

	if base, ok := aliasedBase(members); ok {
		return ir.Alias(base, ident)
	}

	switch {
	case strings.HasPrefix(ident, ClassPrefix):
		return ir.Class(ident)
	case strings.HasPrefix(ident, EnumPrefix):
		return ir.EnumClass(ident)
	default:
		return ir.Plain(ident)
	}
}

// aliasedBase returns the base type token when the base grouping holds a
// single base with no members of its own.
func aliasedBase(members *ir.Node) (string, bool) {
	base := members.Child(ir.KeyBase)
	entries := base.Entries()

	if !common.IsSingle(entries) {
		return "", false
	}

	only, _ := common.First(entries)
	if only.Value != nil && !only.Value.Empty() {
		return "", false
	}

	return only.Name.Ident, true
}

func element(n *schema.Node) (string, *ir.Attributes, error) {
	name, ok := n.Attr("name")
	if !ok {
		return "", nil, fmt.Errorf("element: %w", ErrMissingName)
	}

	attrs := copyAttrs(n)
	if t, ok := attrs.Get("type"); ok {
		attrs.Set("type", typemap.Map(t))
	}

	if attrs.Value("maxOccurs") == typemap.Unbounded {
		t, ok := attrs.Get("type")
		if !ok {
			return "", nil, fmt.Errorf("element %s: %w", name, ErrMissingType)
		}

		attrs.Set("type", typemap.Vector(t))
	}

	return name, attrs, nil
}

func (w *Walker) attribute(n *schema.Node) (string, *ir.Attributes, error) {
	name, ok := n.Attr("name")
	if !ok {
		return "", nil, fmt.Errorf("attribute: %w", ErrMissingName)
	}

	attrs := copyAttrs(n)

	mapType := attrs.Len() > 1
	if w.opts.AttributeTypes == MapAlways {
		mapType = true
	}

	if t, ok := attrs.Get("type"); ok && mapType {
		attrs.Set("type", typemap.Map(t))
	}

	return name, attrs, nil
}

func copyAttrs(n *schema.Node) *ir.Attributes {
	attrs := ir.NewAttributes()
	for _, a := range n.Attrs {
		attrs.Set(a.Name, a.Value)
	}

	return attrs
}
