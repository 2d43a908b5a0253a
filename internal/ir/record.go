package ir

// Record is the result of transforming one schema file. It is not
// modified after construction.
type Record struct {
	// Name is the output name, e.g. "Road".
	Name string
	// Data is the final top-level IR of the file.
	Data *Node
}

// Declarations returns the top-level entries whose names carry a role.
func (r Record) Declarations(kind Kind) []Entry {
	var out []Entry

	for _, e := range r.Data.Entries() {
		if e.Name.Kind == kind {
			out = append(out, e)
		}
	}

	return out
}
