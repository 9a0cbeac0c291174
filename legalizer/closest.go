package legalizer

import "github.com/sarchlab/aplace/device"

// closestSite rounds a real-valued position to the nearest legal site
// of bt's type. The policy is category-specific: I/O uses quadrant
// selection against the device border, CLB walks outward from the
// rounded column until it hits a matching column type, and hard blocks
// round straight to their (start, repeat, height) lattice.
func closestSite(dev device.Device, bt device.BlockType, x, y float64) (int, int) {
	switch bt.Category {
	case device.IO:
		return closestIOSite(dev, x, y)
	case device.Hard:
		cx := roundToLattice(x, bt.Start, bt.Repeat, bt.Start, dev.Width()-2)
		cy := roundToLattice(y, 1, bt.Height, 1, dev.Height()-2)
		return cx, cy
	default: // CLB
		return closestCLBSite(dev, bt, x, y)
	}
}

// closestCLBSite clamps y to the interior and walks outward from the
// rounded column, alternating +1/-1 steps, until it finds a column of
// bt's type.
func closestCLBSite(dev device.Device, bt device.BlockType, x, y float64) (int, int) {
	cy := int(y + 0.5)
	if cy < 1 {
		cy = 1
	}
	if cy > dev.Height()-2 {
		cy = dev.Height() - 2
	}

	cx := int(x + 0.5)
	if cx < 1 {
		cx = 1
	}
	if cx > dev.Width()-1 {
		cx = dev.Width() - 1
	}

	if dev.ColumnType(cx).Name == bt.Name {
		return cx, cy
	}

	for step := 1; step < dev.Width(); step++ {
		if right := cx + step; right < dev.Width()-1 && dev.ColumnType(right).Name == bt.Name {
			return right, cy
		}
		if left := cx - step; left > 0 && dev.ColumnType(left).Name == bt.Name {
			return left, cy
		}
	}

	return cx, cy // unreachable for a correctly-typed device
}

// closestIOSite maps (x, y) to the nearest perimeter site, choosing a
// quadrant relative to the grid center; exact-midpoint ties favor the
// right edge over bottom, and the top edge over left.
func closestIOSite(dev device.Device, x, y float64) (int, int) {
	w, h := dev.Width(), dev.Height()
	cx, cy := float64(w)/2, float64(h)/2

	dx, dy := x-cx, y-cy
	// Normalize by extent so the comparison is quadrant-fair on
	// non-square grids.
	nx, ny := dx/float64(w), dy/float64(h)

	switch {
	case ny <= 0 && -ny >= absF(nx): // top edge wins ties against left/right
		cx := int(x + 0.5)
		return clampInt(cx, 1, w-2), 0
	case nx >= 0 && nx >= absF(ny): // right edge, ties favor right over bottom
		cy := int(y + 0.5)
		return w - 1, clampInt(cy, 1, h-2)
	case ny >= 0:
		cx := int(x + 0.5)
		return clampInt(cx, 1, w-2), h - 1
	default:
		cy := int(y + 0.5)
		return 0, clampInt(cy, 1, h-2)
	}
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
