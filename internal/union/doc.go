// Package union resolves union markers left by the walker into
// self-contained struct declarations.
//
// A struct lists its members by type name in the marker's memberTypes
// attribute. Each token is looked up among the other top-level
// declarations by substring, so "t_road_link" also matches
// "t_road_linkage". Every matching declaration is copied into the struct
// and dropped from the top level. The core-file aliases t_grEqZero and
// t_grZero are not looked up; they become a single double member named
// after the struct.
package union
