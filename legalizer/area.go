// Package legalizer snaps a real-valued placement onto legal,
// column-typed, non-overlapping grid sites via area growth followed by
// recursive bipartition, and tracks the best legal placement seen so
// far.
package legalizer

// rect is an inclusive grid rectangle aligned to a block type's
// lattice.
type rect struct {
	left, top, right, bottom int
}

func (r rect) width() int  { return r.right - r.left + 1 }
func (r rect) height() int { return r.bottom - r.top + 1 }

// area is a transient rectangular region grouping blocks before
// bipartition. Areas live in a single arena owned by one legalization
// pass; an area never holds a pointer to another area, only the pass's
// pointer grid does, by arena index.
type area struct {
	rect     rect
	blocks   []int
	sites    int // count of this-type sites currently covered by rect
	absorbed bool
}

func (a *area) occupation() int { return len(a.blocks) }

// arena owns every area created during one block type's pass within a
// single legalization call. Index 0 is never reused; absorbed areas
// stay in place (their rect/blocks get folded into the absorber) so
// that pointer-grid indices recorded before an absorption remain valid
// to dereference (just marked absorbed).
type arena struct {
	areas []*area
}

func newArena() *arena { return &arena{} }

func (a *arena) create(r rect) int {
	a.areas = append(a.areas, &area{rect: r})
	return len(a.areas) - 1
}

func (a *arena) get(idx int) *area { return a.areas[idx] }

// unabsorbed returns the arena indices of every area that survived to
// bipartition.
func (a *arena) unabsorbed() []int {
	var out []int
	for i, ar := range a.areas {
		if !ar.absorbed {
			out = append(out, i)
		}
	}
	return out
}

// pointerGrid maps grid cells to the arena index of the area that
// currently owns them, or -1 if unowned.
type pointerGrid struct {
	width, height int
	owner         []int
}

func newPointerGrid(width, height int) *pointerGrid {
	owner := make([]int, width*height)
	for i := range owner {
		owner[i] = -1
	}
	return &pointerGrid{width: width, height: height, owner: owner}
}

func (g *pointerGrid) at(x, y int) int { return g.owner[y*g.width+x] }

func (g *pointerGrid) set(x, y, idx int) { g.owner[y*g.width+x] = idx }
