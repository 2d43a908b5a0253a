// Package gen renders IR records into C++ header files.
//
// Generation approach uses text/template over a small view model built
// from the IR, so the template only switches on declaration kinds and
// never parses classified names.
//
// Declaration patterns:
//   - alias: using Name = Base;
//   - enum class with one enumerator per sanitized value
//   - class with members from sequences, attributes and extension bases
//   - struct holding the declarations absorbed from a union
//
// Declarations are emitted in IR order, or in dependency order when
// SortByDependency is set and the dependency graph has no cycle.
package gen
