package device

// Category distinguishes the three kinds of block a site can host. It is
// a tagged enum rather than an interface hierarchy: the legalizer's
// closest-site rule switches on it directly (see package legalizer).
type Category int

const (
	// IO marks a perimeter pad site.
	IO Category = iota
	// CLB marks a general logic block site.
	CLB
	// Hard marks a hard-block site (e.g. a multiplier or RAM column).
	Hard
)

// Name returns a human-readable label for the category.
func (c Category) Name() string {
	switch c {
	case IO:
		return "IO"
	case CLB:
		return "CLB"
	case Hard:
		return "HARD"
	default:
		panic("invalid block category")
	}
}

// BlockType describes one column/lattice family on the device grid.
//
// For IO and CLB, Start/Repeat/Height are unused (CLBs occupy every
// matching column, one row per site). For hard blocks, sites occur at
// x = Start + k*Repeat, y = 1 + r*Height.
type BlockType struct {
	Name     string
	Category Category
	Start    int
	Repeat   int
	Height   int
}
