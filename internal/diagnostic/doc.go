// Package diagnostic provides structured warnings and errors collected
// while restructuring the IR of a schema file.
//
// Key capabilities:
//   - Unresolved union member reports with closest-name suggestions
//   - Ambiguous union member reports listing every absorbed declaration
//   - A combined error for the error-level findings
package diagnostic
