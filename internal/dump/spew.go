package dump

import (
	"github.com/davecgh/go-spew/spew"

	"xsd-generator/internal/ir"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Spew returns a go-spew dump of rec, including the unexported ordering
// state of every node. Names print through their String method, e.g.
// "(ir.Name) struct t_maxSpeed".
func Spew(rec ir.Record) []byte {
	return []byte(spewConfig.Sdump(rec))
}
