// Package netlist holds the logical-block / net data model the placer
// operates on, and the stable integer index registry that maps each
// movable block to its position in the solver's and legalizer's arrays.
package netlist

import "github.com/sarchlab/aplace/device"

// Block is a logical entity placed onto the device grid. Index is only
// meaningful for blocks known to a Registry; it is stable for the
// lifetime of a placement session.
type Block struct {
	Name     string
	Category device.Category
	TypeName string // type name for hard blocks and CLBs ("CLB" when empty); ignored for IO
	Index    int
}
