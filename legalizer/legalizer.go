package legalizer

import (
	"fmt"

	"github.com/sarchlab/aplace/cost"
	"github.com/sarchlab/aplace/device"
	"github.com/sarchlab/aplace/netlist"
)

// Stats summarizes one Legalize call for diagnostics logging only; it
// is never consumed by placement logic.
type Stats struct {
	AreasCreated        int
	AreasAbsorbed       int
	BlocksBipartitioned int
}

// Legalizer owns the legal-coordinate arrays and the best-known-legal
// placement across an entire placement session: block indices never
// change, tmpLegal mutates every pass, bestLegal only advances on
// strict cost improvement at full tile capacity.
type Legalizer struct {
	Device   device.Device
	Registry netlist.Registry
	Cost     cost.Calculator

	TmpLegalX, TmpLegalY   []int
	BestLegalX, BestLegalY []int
	BestCost               float64
	hasBest                bool
}

// New returns a Legalizer with zeroed legal-coordinate arrays sized to
// reg.NumBlocks(). Call SeedIO before the first Legalize.
func New(dev device.Device, reg netlist.Registry, calc cost.Calculator) *Legalizer {
	n := reg.NumBlocks()
	return &Legalizer{
		Device:     dev,
		Registry:   reg,
		Cost:       calc,
		TmpLegalX:  make([]int, n),
		TmpLegalY:  make([]int, n),
		BestLegalX: make([]int, n),
		BestLegalY: make([]int, n),
	}
}

// SeedIO fixes I/O coordinates once at session construction. They are
// written to both tmpLegal and bestLegal; bestLegal's I/O range is never
// touched again, while tmpLegal's I/O range is overwritten only by a
// Legalize call with legalizeIO set.
func (l *Legalizer) SeedIO(x, y []int) {
	copy(l.TmpLegalX, x)
	copy(l.TmpLegalY, y)
	copy(l.BestLegalX, x)
	copy(l.BestLegalY, y)
}

// Legalize runs one full legalization pass: optionally re-distributes
// I/O blocks over the perimeter, then for every movable block type
// buckets its blocks into closest sites, grows areas, and recursively
// bipartitions each into tmpLegal coordinates. It finishes by
// recomputing cost and applying the best-legal commit rule.
func (l *Legalizer) Legalize(linearX, linearY []float64, tileCapacity float64, legalizeIO bool) (Stats, error) {
	var stats Stats

	if legalizeIO {
		x, y := LegalizeIOPerimeter(l.Device.Width(), l.Device.Height(), l.Registry.NumIO())
		copy(l.TmpLegalX[:l.Registry.NumIO()], x)
		copy(l.TmpLegalY[:l.Registry.NumIO()], y)
	}

	types := l.Registry.Types()
	ts := l.Registry.TypeStart()

	for t := 1; t < len(types); t++ {
		bt, ok := findBlockType(l.Device, types[t])
		if !ok {
			return stats, &netlist.ConfigurationError{
				Reason: "registry type " + types[t] + " has no matching device block type",
			}
		}

		start, end := ts[t], ts[t+1]
		bk := make(buckets, end-start)
		for i := start; i < end; i++ {
			x, y := closestSite(l.Device, bt, linearX[i], linearY[i])
			bk[[2]int{x, y}] = append(bk[[2]int{x, y}], i)
		}

		ac, _ := buildAreas(l.Device, bt, bk, tileCapacity)

		place := func(blockIndex, x, y int) {
			l.TmpLegalX[blockIndex] = x
			l.TmpLegalY[blockIndex] = y
		}

		for _, idx := range ac.unabsorbed() {
			ar := ac.get(idx)
			legalizeArea(l.Device, bt, ar.rect, ar.blocks, axisX, linearX, linearY, place)
			stats.BlocksBipartitioned += len(ar.blocks)
		}

		stats.AreasCreated += len(ac.areas)
		stats.AreasAbsorbed += len(ac.areas) - len(ac.unabsorbed())
	}

	if err := l.updateBestLegal(tileCapacity); err != nil {
		return stats, err
	}

	return stats, nil
}

// updateBestLegal recomputes cost on tmpLegal; on strict improvement
// at full tile capacity, it advances bestLegal over the movable range
// only (I/O coordinates never move after SeedIO). A calculator that
// declares RequiresDeviceUpdate gets the candidate written to the
// device before Calculate; on non-improvement the device is then put
// back to bestLegal. A pass at tileCapacity > 1 never records a best:
// its tmpLegal may overfill sites.
func (l *Legalizer) updateBestLegal(tileCapacity float64) error {
	if l.Cost.RequiresDeviceUpdate() {
		if err := l.writeDevice(l.TmpLegalX, l.TmpLegalY); err != nil {
			return err
		}
	}
	newCost := l.Cost.Calculate(l.TmpLegalX, l.TmpLegalY)

	if (!l.hasBest || newCost < l.BestCost) && tileCapacity <= 1.0 {
		numIO := l.Registry.NumIO()
		copy(l.BestLegalX[numIO:], l.TmpLegalX[numIO:])
		copy(l.BestLegalY[numIO:], l.TmpLegalY[numIO:])
		l.BestCost = newCost
		l.hasBest = true
		return nil
	}

	if l.hasBest && l.Cost.RequiresDeviceUpdate() {
		return l.Commit()
	}
	return nil
}

// HasBest reports whether a full-tile-capacity legalization has
// recorded a best placement yet.
func (l *Legalizer) HasBest() bool { return l.hasBest }

// FixedX returns the coordinate a currently-fixed movable block
// contributes to the linear system: its best-known legal position, or
// the latest legal position while no full-capacity pass has recorded a
// best yet.
func (l *Legalizer) FixedX(i int) int {
	if l.hasBest {
		return l.BestLegalX[i]
	}
	return l.TmpLegalX[i]
}

// FixedY is the Y counterpart of FixedX.
func (l *Legalizer) FixedY(i int) int {
	if l.hasBest {
		return l.BestLegalY[i]
	}
	return l.TmpLegalY[i]
}

// Commit writes every movable block's bestLegal coordinate to the
// device. Called both mid-run (to revert the device after a candidate
// was written for a device-reading calculator) and once at session
// termination. Two blocks committed to one site is fatal; candidate
// writes via writeDevice skip this check, since a pass above full tile
// capacity may legitimately overfill.
func (l *Legalizer) Commit() error {
	seen := make(map[[2]int]int)
	for i := l.Registry.NumIO(); i < l.Registry.NumBlocks(); i++ {
		key := [2]int{l.BestLegalX[i], l.BestLegalY[i]}
		if other, dup := seen[key]; dup {
			return &device.PlacementIntegrityError{
				BlockIndex: i,
				X:          key[0],
				Y:          key[1],
				Reason:     fmt.Sprintf("site already holds block %d", other),
			}
		}
		seen[key] = i
	}
	return l.writeDevice(l.BestLegalX, l.BestLegalY)
}

// writeDevice writes a full movable placement, one block at a time.
func (l *Legalizer) writeDevice(x, y []int) error {
	for i := l.Registry.NumIO(); i < l.Registry.NumBlocks(); i++ {
		if err := l.Device.PlaceBlock(x[i], y[i], i); err != nil {
			return err
		}
	}
	return nil
}

func findBlockType(dev device.Device, name string) (device.BlockType, bool) {
	for _, bt := range dev.BlockTypes() {
		if bt.Name == name {
			return bt, true
		}
	}
	return device.BlockType{}, false
}
