// Package ir provides the intermediate representation produced from a schema
// file and consumed by the renderer and the debug dumpers.
//
// The IR is a tree of ordered mappings. Every key is a classified Name: a
// bare identifier tagged with its target-language role (class, enum class,
// struct, alias of a base type, or plain). Values are either an attribute
// set (element and attribute declarations) or a nested Node (type
// definitions and the structural "sequence", "base" and "attributes"
// groupings).
//
// Key types:
//   - Name: classified name, rendered in the legacy prefixed form by String
//   - Attributes: ordered attribute-name to value set
//   - Node: ordered Name to Value mapping with stable iteration order
//   - Record: the per-file deliverable {Name, Data}
package ir
