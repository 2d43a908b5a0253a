package schema

import "xsd-generator/internal/common"

// Tag classifies a schema element by its local name.
type Tag int

const (
	TagOther Tag = iota
	TagComplexType
	TagSimpleType
	TagExtension
	TagRestriction
	TagSequence
	TagEnumeration
	TagElement
	TagAttribute
	TagUnion
)

var tagsByLocal = map[string]Tag{
	"complexType": TagComplexType,
	"simpleType":  TagSimpleType,
	"extension":   TagExtension,
	"restriction": TagRestriction,
	"sequence":    TagSequence,
	"enumeration": TagEnumeration,
	"element":     TagElement,
	"attribute":   TagAttribute,
	"union":       TagUnion,
}

// ClassifyTag returns the Tag for a local element name.
func ClassifyTag(local string) Tag {
	return tagsByLocal[local]
}

// String returns the schema local name of the tag.
func (t Tag) String() string {
	switch t {
	case TagOther:
		return "other"
	case TagComplexType:
		return "complexType"
	case TagSimpleType:
		return "simpleType"
	case TagExtension:
		return "extension"
	case TagRestriction:
		return "restriction"
	case TagSequence:
		return "sequence"
	case TagEnumeration:
		return "enumeration"
	case TagElement:
		return "element"
	case TagAttribute:
		return "attribute"
	case TagUnion:
		return "union"
	default:
		return common.UnknownStr
	}
}

// IsTypeDefinition reports whether the tag declares a named type.
func (t Tag) IsTypeDefinition() bool {
	return t == TagComplexType || t == TagSimpleType
}

// IsDerivation reports whether the tag derives from a base type.
func (t Tag) IsDerivation() bool {
	return t == TagExtension || t == TagRestriction
}
