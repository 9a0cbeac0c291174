package legalizer

import "github.com/sarchlab/aplace/device"

// buckets groups blocks of one type by their closest legal site.
type buckets map[[2]int][]int

// buildAreas seeds one area per occupied cell found by an outward
// Chebyshev spiral from the grid center, then grows each until its
// occupation no longer exceeds its site count scaled by tileCapacity.
func buildAreas(dev device.Device, bt device.BlockType, bk buckets, tileCapacity float64) (*arena, *pointerGrid) {
	pg := newPointerGrid(dev.Width(), dev.Height())
	ac := newArena()

	seedAreas(dev, bt, bk, pg, ac)

	for idx := 0; idx < len(ac.areas); idx++ {
		ar := ac.get(idx)
		if ar.absorbed {
			continue
		}
		growArea(ar, idx, pg, ac, bk, dev, bt, tileCapacity)
	}

	return ac, pg
}

func seedAreas(dev device.Device, bt device.BlockType, bk buckets, pg *pointerGrid, ac *arena) {
	w, h := dev.Width(), dev.Height()
	cx, cy := w/2, h/2

	visit := func(x, y int) {
		if x < 0 || x >= w || y < 0 || y >= h {
			return
		}
		if pg.at(x, y) != -1 {
			return
		}
		bs := bk[[2]int{x, y}]
		if len(bs) == 0 {
			return
		}
		idx := ac.create(rect{left: x, top: y, right: x, bottom: y})
		ar := ac.get(idx)
		ar.blocks = append(ar.blocks, bs...)
		if site, ok := dev.Site(x, y); ok && site.Type.Name == bt.Name {
			ar.sites = 1
		}
		pg.set(x, y, idx)
	}

	visit(cx, cy)

	maxRadius := w
	if h > maxRadius {
		maxRadius = h
	}
	for r := 1; r <= maxRadius; r++ {
		for x := cx - r; x <= cx+r; x++ {
			visit(x, cy-r)
			visit(x, cy+r)
		}
		for y := cy - r + 1; y <= cy+r-1; y++ {
			visit(cx-r, y)
			visit(cx+r, y)
		}
	}
}

func needsGrowth(ar *area, tileCapacity float64) bool {
	return float64(ar.occupation()) > float64(ar.sites)*tileCapacity
}

// direction indices, in growth rotation order.
const (
	dirRight = iota
	dirDown
	dirLeft
	dirUp
)

func opposite(d int) int { return (d + 2) % 4 }

func growArea(ar *area, idx int, pg *pointerGrid, ac *arena, bk buckets, dev device.Device, bt device.BlockType, tileCapacity float64) {
	colStep := columnStep(dev, bt)
	rowStepV := rowStep(bt)

	var exhausted [4]bool
	d := dirRight

	for needsGrowth(ar, tileCapacity) && !(exhausted[0] && exhausted[1] && exhausted[2] && exhausted[3]) {
		if exhausted[d] {
			d = (d + 1) % 4
			continue
		}

		goal, ok := stepGoal(ar.rect, d, colStep, rowStepV, dev)
		if !ok {
			o := opposite(d)
			if exhausted[o] {
				exhausted[d] = true
				continue
			}
			goal2, ok2 := stepGoal(ar.rect, o, colStep, rowStepV, dev)
			if !ok2 {
				exhausted[d] = true
				exhausted[o] = true
				continue
			}
			growTo(ar, goal2, pg, ac, bk, dev, bt, idx)
			d = (d + 1) % 4
			continue
		}

		growTo(ar, goal, pg, ac, bk, dev, bt, idx)
		d = (d + 1) % 4
	}
}

func stepGoal(r rect, dir int, colStep, rowStepV int, dev device.Device) (rect, bool) {
	g := r
	switch dir {
	case dirRight:
		g.right += colStep
	case dirLeft:
		g.left -= colStep
	case dirDown:
		g.bottom += rowStepV
	case dirUp:
		g.top -= rowStepV
	}
	if g.left < 1 || g.right > dev.Width()-2 || g.top < 1 || g.bottom > dev.Height()-2 {
		return rect{}, false
	}
	return g, true
}

func unionRect(a, b rect) rect {
	u := a
	if b.left < u.left {
		u.left = b.left
	}
	if b.top < u.top {
		u.top = b.top
	}
	if b.right > u.right {
		u.right = b.right
	}
	if b.bottom > u.bottom {
		u.bottom = b.bottom
	}
	return u
}

// growTo incrementally extends ar toward goal, absorbing any
// unabsorbed area it newly overlaps and folding that area's rectangle
// into goal before the final sweep.
func growTo(ar *area, goal rect, pg *pointerGrid, ac *arena, bk buckets, dev device.Device, bt device.BlockType, idx int) {
	for {
		absorbedAny := false
		for y := goal.top; y <= goal.bottom; y++ {
			for x := goal.left; x <= goal.right; x++ {
				owner := pg.at(x, y)
				if owner == -1 || owner == idx {
					continue
				}
				n := ac.get(owner)
				if n.absorbed {
					continue
				}
				n.absorbed = true
				goal = unionRect(goal, n.rect)
				ar.blocks = append(ar.blocks, n.blocks...)
				absorbedAny = true
			}
		}
		if !absorbedAny {
			break
		}
	}

	for y := goal.top; y <= goal.bottom; y++ {
		for x := goal.left; x <= goal.right; x++ {
			owner := pg.at(x, y)
			if owner == idx {
				continue
			}
			pg.set(x, y, idx)
			// A cell owned by an absorbed area already contributed its
			// bucket blocks through the transfer above; only unowned
			// cells bring new blocks.
			if owner == -1 {
				if bs := bk[[2]int{x, y}]; len(bs) > 0 {
					ar.blocks = append(ar.blocks, bs...)
				}
			}
			if site, ok := dev.Site(x, y); ok && site.Type.Name == bt.Name {
				ar.sites++
			}
		}
	}

	ar.rect = goal
}
