package ir

import (
	"strings"

	"xsd-generator/internal/common"
)

// Kind is the target-language role of a classified name.
type Kind int

const (
	// KindPlain is a name without a special role (members, structural keys).
	KindPlain Kind = iota
	// KindClass is a class-like type definition.
	KindClass
	// KindEnumClass is an enumeration type definition.
	KindEnumClass
	// KindStruct is a type assembled from union members.
	KindStruct
	// KindAlias is a trivial alias of its base type.
	KindAlias
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindClass:
		return "class"
	case KindEnumClass:
		return "enum class"
	case KindStruct:
		return "struct"
	case KindAlias:
		return "alias"
	default:
		return common.UnknownStr
	}
}

// Structural keys used inside type definitions.
const (
	KeySequence   = "sequence"
	KeyBase       = "base"
	KeyAttributes = "attributes"
	KeyUnion      = "union"
)

// Name is a classified name. Base is only meaningful for KindAlias.
type Name struct {
	Kind  Kind
	Ident string
	Base  string
}

// Plain returns an unclassified name.
func Plain(ident string) Name { return Name{Kind: KindPlain, Ident: ident} }

// Class returns a class-classified name.
func Class(ident string) Name { return Name{Kind: KindClass, Ident: ident} }

// EnumClass returns an enum-class-classified name.
func EnumClass(ident string) Name { return Name{Kind: KindEnumClass, Ident: ident} }

// Struct returns a struct-classified name.
func Struct(ident string) Name { return Name{Kind: KindStruct, Ident: ident} }

// Alias returns a name aliasing base.
func Alias(base, ident string) Name { return Name{Kind: KindAlias, Ident: ident, Base: base} }

// String renders the name in its prefixed form, e.g. "class t_road" or
// "double t_grZero". This is the key used by the debug dumps.
func (n Name) String() string {
	switch n.Kind {
	case KindClass:
		return "class " + n.Ident
	case KindEnumClass:
		return "enum class " + n.Ident
	case KindStruct:
		return "struct " + n.Ident
	case KindAlias:
		return n.Base + " " + n.Ident
	default:
		return n.Ident
	}
}

// Is reports whether n is the plain structural key s.
func (n Name) Is(s string) bool {
	return n.Kind == KindPlain && n.Ident == s
}

// ParseName is the inverse of Name.String for classified names. Keys
// without a recognised prefix and without a space are plain.
func ParseName(s string) Name {
	switch {
	case strings.HasPrefix(s, "enum class "):
		return EnumClass(strings.TrimPrefix(s, "enum class "))
	case strings.HasPrefix(s, "class "):
		return Class(strings.TrimPrefix(s, "class "))
	case strings.HasPrefix(s, "struct "):
		return Struct(strings.TrimPrefix(s, "struct "))
	}

	if base, ident, ok := strings.Cut(s, " "); ok && base != "" && ident != "" {
		return Alias(base, ident)
	}

	return Plain(s)
}
