package legalizer

import (
	"math"
	"sort"

	"github.com/sarchlab/aplace/device"
)

const (
	axisX = iota
	axisY
)

// legalizeArea recursively bipartitions one area's block list into its
// rectangle. place is called once per block with its final legal site.
func legalizeArea(dev device.Device, bt device.BlockType, r rect, blocks []int, axis int, linearX, linearY []float64, place func(blockIndex, x, y int)) {
	colStep := columnStep(dev, bt)
	rowStepV := rowStep(bt)

	if r.width() < colStep && r.height() < rowStepV {
		for _, b := range blocks {
			place(b, r.left, r.top)
		}
		return
	}
	if len(blocks) == 0 {
		return
	}
	if len(blocks) == 1 {
		x, y := findClosestInRect(dev, bt, r, linearX[blocks[0]], linearY[blocks[0]])
		place(blocks[0], x, y)
		return
	}

	if axis == axisX {
		cols := latticeColumnsInRect(dev, bt, r)
		rows := latticeRowsInRect(bt, r)
		if len(cols) <= 1 {
			if len(rows) <= 1 {
				for _, b := range blocks {
					place(b, r.left, r.top)
				}
				return
			}
			legalizeArea(dev, bt, r, blocks, axisY, linearX, linearY, place)
			return
		}

		half := len(cols) / 2
		if bt.Category == device.CLB {
			half = (len(cols) + 1) / 2
		}
		half = clampInt(half, 1, len(cols)-1)
		splitRatio := float64(half) / float64(len(cols))

		left := r
		left.right = cols[half-1]
		right := r
		right.left = cols[half]

		sorted := append([]int(nil), blocks...)
		sort.Slice(sorted, func(i, j int) bool { return linearX[sorted[i]] < linearX[sorted[j]] })
		split := splitCount(splitRatio, len(sorted))

		legalizeArea(dev, bt, left, sorted[:split], axisY, linearX, linearY, place)
		legalizeArea(dev, bt, right, sorted[split:], axisY, linearX, linearY, place)
		return
	}

	rows := latticeRowsInRect(bt, r)
	cols := latticeColumnsInRect(dev, bt, r)
	if len(rows) <= 1 {
		if len(cols) <= 1 {
			for _, b := range blocks {
				place(b, r.left, r.top)
			}
			return
		}
		legalizeArea(dev, bt, r, blocks, axisX, linearX, linearY, place)
		return
	}

	half := len(rows) / 2
	if bt.Category == device.CLB {
		// CLB rows are contiguous: split at the rectangle midpoint.
		half = (len(rows) + 1) / 2
	}
	half = clampInt(half, 1, len(rows)-1)
	splitRatio := float64(half) / float64(len(rows))

	top := r
	top.bottom = rows[half-1]
	bottom := r
	bottom.top = rows[half]

	sorted := append([]int(nil), blocks...)
	sort.Slice(sorted, func(i, j int) bool { return linearY[sorted[i]] < linearY[sorted[j]] })
	split := splitCount(splitRatio, len(sorted))

	legalizeArea(dev, bt, top, sorted[:split], axisX, linearX, linearY, place)
	legalizeArea(dev, bt, bottom, sorted[split:], axisX, linearX, linearY, place)
}

func splitCount(ratio float64, n int) int {
	s := int(math.Ceil(ratio * float64(n)))
	return clampInt(s, 0, n)
}

func latticeColumnsInRect(dev device.Device, bt device.BlockType, r rect) []int {
	var cols []int
	if bt.Category == device.Hard {
		for x := r.left; x <= r.right; x++ {
			if mod(x-bt.Start, bt.Repeat) == 0 {
				cols = append(cols, x)
			}
		}
		return cols
	}
	// CLB columns need not form a regular lattice; match by column type.
	for x := r.left; x <= r.right; x++ {
		if dev.ColumnType(x).Name == bt.Name {
			cols = append(cols, x)
		}
	}
	return cols
}

func latticeRowsInRect(bt device.BlockType, r rect) []int {
	step := rowStep(bt)
	start := rowStart()
	var rows []int
	for y := r.top; y <= r.bottom; y++ {
		if mod(y-start, step) == 0 {
			rows = append(rows, y)
		}
	}
	return rows
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// findClosestInRect picks the rectangle's matching-lattice site nearest
// (x, y) by squared Euclidean distance, the single-block base case of
// the bipartition.
func findClosestInRect(dev device.Device, bt device.BlockType, r rect, x, y float64) (int, int) {
	cols := latticeColumnsInRect(dev, bt, r)
	rows := latticeRowsInRect(bt, r)
	if len(cols) == 0 {
		cols = []int{r.left}
	}
	if len(rows) == 0 {
		rows = []int{r.top}
	}

	bestX, bestY := cols[0], rows[0]
	bestDist := math.MaxFloat64
	for _, cx := range cols {
		for _, cy := range rows {
			dx, dy := x-float64(cx), y-float64(cy)
			d := dx*dx + dy*dy
			if d < bestDist {
				bestDist = d
				bestX, bestY = cx, cy
			}
		}
	}
	return bestX, bestY
}
