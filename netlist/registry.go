package netlist

import (
	"fmt"

	"github.com/sarchlab/aplace/device"
)

// Registry is the stable integer index assignment for movable blocks:
// I/O indices first ([0, NumIO())), followed by type-contiguous
// ranges. TypeStart is monotonically non-decreasing, TypeStart[0]==0 and
// TypeStart[len(TypeStart)-1]==NumBlocks.
type Registry interface {
	NumBlocks() int
	NumIO() int
	// TypeStart has len(Types())+1 entries; block type t owns indices
	// [TypeStart[t], TypeStart[t+1]).
	TypeStart() []int
	// Types returns the ordered type names, IO first ("IO" is always
	// Types()[0] and owns [0, NumIO())).
	Types() []string
	BlockTypeIndexOf(blockIndex int) int
}

// ConfigurationError reports an invariant violation in the block-index
// assignment supplied to the placer: a missing IO type at position 0, or
// a TypeStart slice whose length doesn't match the type list. It is
// fatal at session start.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("netlist configuration error: %s", e.Reason)
}

type registry struct {
	numBlocks int
	numIO     int
	typeStart []int
	types     []string
}

// NewRegistry builds a Registry from an ordered block list: blocks must
// already be grouped by type with every IO block first. types names each
// contiguous group in blocks' order, with types[0] == "IO".
func NewRegistry(blocks []Block, types []string) (Registry, error) {
	if len(blocks) == 0 {
		return nil, &ConfigurationError{Reason: "no blocks supplied"}
	}
	if len(types) == 0 || types[0] != "IO" {
		return nil, &ConfigurationError{Reason: "the first block type is not IO"}
	}

	typeStart := make([]int, len(types)+1)
	cur := 0
	for i, name := range types {
		typeStart[i] = cur
		for cur < len(blocks) && blockGroupName(blocks[cur]) == name {
			cur++
		}
	}
	typeStart[len(types)] = len(blocks)

	if cur != len(blocks) {
		return nil, &ConfigurationError{
			Reason: "blocks are not grouped contiguously by type, or an unknown type was encountered",
		}
	}
	for i := 1; i <= len(types); i++ {
		if typeStart[i] < typeStart[i-1] {
			return nil, &ConfigurationError{Reason: "typeStart is not monotonically non-decreasing"}
		}
	}

	return &registry{
		numBlocks: len(blocks),
		numIO:     typeStart[1],
		typeStart: typeStart,
		types:     append([]string(nil), types...),
	}, nil
}

func blockGroupName(b Block) string {
	switch b.Category {
	case device.IO:
		return "IO"
	case device.Hard:
		return b.TypeName
	default:
		if b.TypeName != "" {
			return b.TypeName
		}
		return "CLB"
	}
}

func (r *registry) NumBlocks() int   { return r.numBlocks }
func (r *registry) NumIO() int       { return r.numIO }
func (r *registry) TypeStart() []int { return r.typeStart }
func (r *registry) Types() []string  { return r.types }
func (r *registry) BlockTypeIndexOf(blockIndex int) int {
	for t := len(r.typeStart) - 2; t >= 0; t-- {
		if blockIndex >= r.typeStart[t] {
			return t
		}
	}
	return 0
}
