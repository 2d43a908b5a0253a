// Package typemap maps schema primitive type tokens to C++ type names.
package typemap

// Core-file aliases that are treated as plain doubles.
const (
	GrEqZero = "t_grEqZero"
	GrZero   = "t_grZero"
)

// Vector sentinel used when an element may occur an unbounded number of times.
const Unbounded = "unbounded"

var primitives = map[string]string{
	"xs:string":          "std::string",
	"xs:double":          "double",
	"xs:integer":         "int",
	"xs:negativeInteger": "int",
	"xs:float":           "float",
	GrEqZero:             "double",
	GrZero:               "double",
}

// Map returns the C++ type for a schema type token. Unknown tokens are
// returned unchanged.
func Map(token string) string {
	if t, ok := primitives[token]; ok {
		return t
	}

	return token
}

// Base maps the base type of an extension or restriction. Only the string
// and double primitives are rewritten here.
func Base(token string) string {
	switch token {
	case "xs:string", "xs:double":
		return primitives[token]
	default:
		return token
	}
}

// Vector wraps t in a dynamically sized sequence type.
func Vector(t string) string {
	return "std::vector<" + t + ">"
}

// IsCoreAlias reports whether token is one of the core-file double aliases.
func IsCoreAlias(token string) bool {
	return token == GrEqZero || token == GrZero
}
