package legalizer

import (
	"math"

	"github.com/sarchlab/aplace/device"
)

// columnStep returns the horizontal lattice spacing for bt: its own
// Repeat for a hard block, or the spacing between consecutive matching
// columns on the device for a CLB (device.BlockType leaves Repeat
// unused for non-hard categories, so it's derived by scanning).
func columnStep(dev device.Device, bt device.BlockType) int {
	if bt.Category == device.Hard {
		return bt.Repeat
	}
	first, second := -1, -1
	for x := 0; x < dev.Width(); x++ {
		if dev.ColumnType(x).Name == bt.Name {
			if first == -1 {
				first = x
			} else if second == -1 {
				second = x
				break
			}
		}
	}
	if first == -1 || second == -1 {
		return 1
	}
	return second - first
}

// rowStep returns the vertical lattice spacing for bt: its own Height
// for a hard block, 1 for a CLB (every interior row is a valid site).
func rowStep(bt device.BlockType) int {
	if bt.Category == device.Hard {
		if bt.Height < 1 {
			return 1
		}
		return bt.Height
	}
	return 1
}

// rowStart returns the first row on the lattice: always 1 (the row
// directly inside the border ring), for both CLB and hard blocks.
func rowStart() int { return 1 }

// roundToLattice rounds v to the nearest point start + k*step (k >= 0),
// clamping the result into [lo, hi].
func roundToLattice(v float64, start, step, lo, hi int) int {
	if step < 1 {
		step = 1
	}
	k := math.Round((v - float64(start)) / float64(step))
	if k < 0 {
		k = 0
	}
	x := start + int(k)*step
	for x > hi {
		x -= step
	}
	for x < lo {
		x += step
	}
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	return x
}
