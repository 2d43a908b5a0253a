// Package pipeline runs schema files through the whole generator: load,
// walk, union restructuring, header rendering and debug dumps.
//
// Transform is the side-effect free core for one file. Run processes a
// list of jobs, sequentially or with a bounded worker pool, and writes the
// generated files through a single gen.Writer.
package pipeline
