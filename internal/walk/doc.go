// Package walk builds the raw IR of a schema file by recursive descent
// over its node tree.
//
// Each call builds and returns a fresh ir.Node for the children of the
// node it is given; the caller inserts it under the appropriate key. A
// type definition is classified only after its whole subtree has been
// walked, because the classification looks at the finished member map.
//
// Classification of a named type, first match wins:
//  1. it carries a union marker: struct
//  2. its base maps to an empty member map: alias of the base type
//  3. its name starts with "t_": class
//  4. its name starts with "e_": enum class
//  5. otherwise: plain
package walk
