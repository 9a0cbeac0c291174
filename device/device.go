// Package device provides a read-only, column-typed view of the FPGA-like
// grid the placer assigns blocks onto, plus the mutation the placer uses
// to commit its final result.
package device

import "fmt"

// Site is a single placement location on the grid.
type Site struct {
	X, Y int
	Type BlockType
}

// Device is the read-only grid view the placer consumes, plus the single
// mutation (PlaceBlock) it uses to write a placement. Width, Height,
// ColumnType and Site never change after construction; PlaceBlock is the
// only method that mutates state. The placer calls it once per movable
// block at the end of a session, and additionally mid-run for cost
// calculators that read the device: the candidate placement is written
// before scoring and the best placement restored on non-improvement, so
// placing an already-placed block moves it.
type Device interface {
	Width() int
	Height() int

	// Site returns the site at (x, y) and whether one exists there (the
	// border ring and hard-block gaps may have no site of a given type).
	Site(x, y int) (Site, bool)

	// ColumnType returns the block type whose column covers x.
	ColumnType(x int) BlockType

	// BlockTypes returns every block type known to the device, IO first.
	BlockTypes() []BlockType

	// PlaceBlock commits a movable block to site (x, y). It is an error
	// to call this for an IO block (IOs are fixed at construction).
	PlaceBlock(x, y int, blockIndex int) error
}

// Grid is the concrete, in-memory Device implementation used by both the
// demo command and the test suites. Columns are typed by index; hard
// blocks additionally live on a (start, repeat, height) lattice within
// their column range.
type Grid struct {
	width, height int
	columnType    []BlockType
	blockTypes    []BlockType

	occupied map[[2]int]int // site -> block index, for PlacementIntegrityError detection
	position map[int][2]int // block index -> site, so a re-place vacates the old site
}

// Width returns the grid width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height.
func (g *Grid) Height() int { return g.height }

// ColumnType returns the block type assigned to column x.
func (g *Grid) ColumnType(x int) BlockType {
	return g.columnType[x]
}

// BlockTypes returns the device's registered block types, IO first.
func (g *Grid) BlockTypes() []BlockType {
	return g.blockTypes
}

// Site reports the site at (x, y), if this coordinate is occupiable by the
// column's type. The border ring is always IO; interior sites follow the
// hard-block lattice when the column type is a hard block.
func (g *Grid) Site(x, y int) (Site, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Site{}, false
	}

	bt := g.columnType[x]

	isBorder := x == 0 || x == g.width-1 || y == 0 || y == g.height-1
	if isBorder {
		if bt.Category != IO {
			// Build guarantees the first registered block type is IO.
			bt = g.blockTypes[0]
		}
		return Site{X: x, Y: y, Type: bt}, true
	}
	if bt.Category == IO {
		return Site{}, false
	}

	if bt.Category == Hard {
		if x < bt.Start || (x-bt.Start)%bt.Repeat != 0 {
			return Site{}, false
		}
		if y < 1 || (y-1)%bt.Height != 0 {
			return Site{}, false
		}
	}

	return Site{X: x, Y: y, Type: bt}, true
}

// PlaceBlock writes blockIndex to (x, y), vacating the block's previous
// site if it had one. A block already at the target site is displaced
// (last writer wins): full placements are written one block at a time,
// so two blocks swapping sites must not fail halfway. It returns a
// PlacementIntegrityError if the site does not exist or is a fixed IO
// site.
func (g *Grid) PlaceBlock(x, y int, blockIndex int) error {
	site, ok := g.Site(x, y)
	if !ok {
		return &PlacementIntegrityError{
			BlockIndex: blockIndex,
			X:          x,
			Y:          y,
			Reason:     "no site at this coordinate",
		}
	}
	if site.Type.Category == IO {
		return &PlacementIntegrityError{
			BlockIndex: blockIndex,
			X:          x,
			Y:          y,
			Reason:     "cannot re-place a fixed IO block",
		}
	}

	key := [2]int{x, y}
	if g.occupied == nil {
		g.occupied = make(map[[2]int]int)
		g.position = make(map[int][2]int)
	}

	if prev, ok := g.position[blockIndex]; ok && g.occupied[prev] == blockIndex {
		delete(g.occupied, prev)
	}
	if other, taken := g.occupied[key]; taken && other != blockIndex {
		delete(g.position, other)
	}
	g.occupied[key] = blockIndex
	g.position[blockIndex] = key
	return nil
}

// BlockAt returns the block currently placed at (x, y), if any.
func (g *Grid) BlockAt(x, y int) (int, bool) {
	idx, ok := g.occupied[[2]int{x, y}]
	return idx, ok
}

// PlacementIntegrityError reports that a movable block could not be
// mapped to any legal site, or that committing the final placement found
// a site already occupied by a different block. It is fatal: it bubbles
// up to the driver of the placement session.
type PlacementIntegrityError struct {
	BlockIndex int
	X, Y       int
	Reason     string
}

func (e *PlacementIntegrityError) Error() string {
	return fmt.Sprintf("placement integrity: block %d at (%d,%d): %s",
		e.BlockIndex, e.X, e.Y, e.Reason)
}
