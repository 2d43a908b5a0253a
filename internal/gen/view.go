package gen

import (
	"strings"

	"xsd-generator/internal/ir"
	"xsd-generator/internal/typemap"
)

// Declaration kinds understood by the header template.
const (
	declAlias  = "alias"
	declEnum   = "enum"
	declClass  = "class"
	declStruct = "struct"
)

// Fallback for elements and attributes declared without a type.
const untypedMember = "std::string"

// headerData holds all data needed for the header template.
type headerData struct {
	Name      string
	Namespace string
	Decls     []declData
}

// declData is one C++ declaration.
type declData struct {
	Kind        string
	Name        string
	Base        string
	Enumerators []string
	Fields      []fieldData
	Nested      []declData
	// deps are the identifiers of other declarations this one refers to.
	deps []string
}

// fieldData is one data member.
type fieldData struct {
	Type    string
	Name    string
	Comment string
}

// buildDecl converts a top-level IR entry into a declaration.
func buildDecl(e ir.Entry) declData {
	d := declData{Name: e.Name.Ident}
	node, _ := e.Value.(*ir.Node)

	switch e.Name.Kind {
	case ir.KindAlias:
		d.Kind = declAlias
		d.Base = e.Name.Base

	case ir.KindEnumClass:
		d.Kind = declEnum
		d.Enumerators = enumerators(node)

	case ir.KindStruct:
		d.Kind = declStruct
		for _, m := range node.Entries() {
			if m.Name.Kind == ir.KindAlias {
				d.Fields = append(d.Fields, fieldData{Type: m.Name.Base, Name: m.Name.Ident})
				continue
			}

			nested := buildDecl(m)
			d.Nested = append(d.Nested, nested)
			d.deps = append(d.deps, nested.deps...)
			d.Fields = append(d.Fields, fieldData{Type: nested.Name, Name: memberName(nested.Name)})
		}

	default:
		d.Kind = declClass
		d.collect(node)
	}

	return d
}

// enumerators returns the values of the single restriction base.
func enumerators(node *ir.Node) []string {
	var out []string

	for _, base := range node.Child(ir.KeyBase).Entries() {
		members, _ := base.Value.(*ir.Node)
		for _, m := range members.Entries() {
			out = append(out, m.Name.Ident)
		}
	}

	return out
}

// collect adds the members of a class-like node to d.
func (d *declData) collect(node *ir.Node) {
	for _, e := range node.Entries() {
		switch v := e.Value.(type) {
		case *ir.Attributes:
			d.addField(e.Name.Ident, v, "")

		case *ir.Node:
			switch {
			case e.Name.Is(ir.KeySequence):
				d.collect(v)
			case e.Name.Is(ir.KeyAttributes):
				for _, a := range v.Entries() {
					attrs, _ := a.Value.(*ir.Attributes)
					d.addField(a.Name.Ident, attrs, "attribute")
				}
			case e.Name.Is(ir.KeyBase):
				d.collectBase(v)
			}
		}
	}
}

func (d *declData) collectBase(base *ir.Node) {
	for _, b := range base.Entries() {
		token := b.Name.Ident
		if isDeclaredType(token) {
			d.Base = token
			d.deps = append(d.deps, token)
		} else {
			d.Fields = append(d.Fields, fieldData{Type: token, Name: "value", Comment: "content"})
		}

		if members, ok := b.Value.(*ir.Node); ok {
			d.collect(members)
		}
	}
}

func (d *declData) addField(name string, attrs *ir.Attributes, kind string) {
	typ := attrs.Value("type")
	if typ == "" {
		typ = untypedMember
	}

	var notes []string
	if kind != "" {
		notes = append(notes, kind)
	}

	if attrs.Value("minOccurs") == "0" || attrs.Value("use") == "optional" {
		notes = append(notes, "optional")
	}

	d.Fields = append(d.Fields, fieldData{Type: typ, Name: name, Comment: strings.Join(notes, ", ")})
	d.deps = append(d.deps, elementType(typ))
}

// isDeclaredType reports whether a base token names a schema type rather
// than a C++ or XSD primitive.
func isDeclaredType(token string) bool {
	if typemap.Map(token) != token || strings.Contains(token, ":") {
		return false
	}

	switch token {
	case "double", "float", "int", "bool":
		return false
	}

	return true
}

// elementType strips the vector wrapper from a member type.
func elementType(t string) string {
	if inner, ok := strings.CutPrefix(t, "std::vector<"); ok {
		return strings.TrimSuffix(inner, ">")
	}

	return t
}

// memberName derives a data member name from a type name.
func memberName(typeName string) string {
	for _, prefix := range []string{"t_", "e_"} {
		if rest, ok := strings.CutPrefix(typeName, prefix); ok && rest != "" {
			return rest
		}
	}

	return "value"
}
