package solver

import (
	"math"

	"github.com/sarchlab/aplace/netlist"
)

// BuildInput carries everything BuildSystem needs to assemble one
// solveMode's X and Y linear systems.
type BuildInput struct {
	Registry netlist.Registry
	Nets     netlist.NetSet

	// SolveMode selects which block type is free to move: 0 means "all
	// movable blocks", t in [1, numTypes] means "only Registry.Types()[t]".
	SolveMode int

	// FirstSolve disables timing weighting and anchor pseudo-nets.
	FirstSolve bool

	// PseudoWeightFactor is alpha, the current anchor strength.
	PseudoWeightFactor float64

	// DeltaFloor is the minimum effective coordinate gap in spring
	// weights (0.005 when zero).
	DeltaFloor float64

	// TimingDriven enables the per-net timing weight multiplier on
	// non-first solves.
	TimingDriven bool

	// LinearX/LinearY hold the current real-valued position of every
	// block, full length Registry.NumBlocks(). Only entries in the
	// active range are meaningful as unknowns; entries outside it are
	// read only if FixedXY below doesn't already cover that block (it
	// always does, here for completeness with the active range check).
	LinearX, LinearY []float64

	// FixedXY returns the coordinate to use for a block that is fixed
	// for this solve: the device's site for IOs, or the legalizer's
	// best-known-legal coordinate for a movable block of a
	// currently-inactive type.
	FixedXY func(blockIndex int) (x, y float64)

	// AnchorX/AnchorY are the legalizer's tmpLegal arrays, full length
	// Registry.NumBlocks(), read only when !FirstSolve.
	AnchorX, AnchorY []float64
}

// Result is the pair of assembled systems for one solve call, plus the
// active range they were built over. Valid is false when either matrix
// failed the symmetric-and-finite assertion; the caller must skip the
// solve for this iteration.
type Result struct {
	StartIndex, Dimensions int
	X                      *Matrix
	XRHS                   []float64
	Y                      *Matrix
	YRHS                   []float64
	Valid                  bool
}

// ActiveRange returns the half-open block-index range that is free to
// move under solveMode. solveMode 0 means every movable block
// ([NumIO, NumBlocks)); otherwise it is the contiguous range owned by
// Registry.Types()[solveMode].
func ActiveRange(reg netlist.Registry, solveMode int) (start, end int) {
	ts := reg.TypeStart()
	if solveMode == 0 {
		return reg.NumIO(), reg.NumBlocks()
	}
	return ts[solveMode], ts[solveMode+1]
}

// NumTypes returns the number of movable block types (excludes IO);
// solve-mode rotation runs modulo NumTypes+1.
func NumTypes(reg netlist.Registry) int {
	return len(reg.Types()) - 1
}

func isFixedBlock(reg netlist.Registry, blockIndex, solveMode int) bool {
	t := reg.BlockTypeIndexOf(blockIndex)
	if t == 0 { // IO
		return true
	}
	if solveMode == 0 {
		return false
	}
	return t != solveMode
}

// BuildSystem assembles the X and Y linear systems for one solve call:
// B2B net springs plus anchor pseudo-nets. It does not solve them.
func BuildSystem(in BuildInput) Result {
	start, end := ActiveRange(in.Registry, in.SolveMode)
	dim := end - start

	res := Result{
		StartIndex: start,
		Dimensions: dim,
		X:          NewMatrix(dim),
		XRHS:       make([]float64, dim),
		Y:          NewMatrix(dim),
		YRHS:       make([]float64, dim),
		Valid:      true,
	}

	deltaFloor := in.DeltaFloor
	if deltaFloor <= 0 {
		deltaFloor = 0.005
	}

	if !in.FirstSolve {
		addAnchors(res.X, res.XRHS, in.AnchorX, in.LinearX, start, dim, in.PseudoWeightFactor, deltaFloor)
		addAnchors(res.Y, res.YRHS, in.AnchorY, in.LinearY, start, dim, in.PseudoWeightFactor, deltaFloor)
	}

	for _, net := range in.Nets.Nets() {
		nbPins := net.NumPins()
		if nbPins < 2 {
			continue
		}

		timingFactor := 1.0
		if in.TimingDriven && !in.FirstSolve {
			timingFactor = net.TimingWeight()
		}
		netWeightBase := (2.0 / float64(nbPins-1)) * timingFactor

		owners := make([]int, 0, nbPins)
		owners = append(owners, net.Source.Owner)
		for _, s := range net.Sinks {
			owners = append(owners, s.Owner)
		}

		pinsX := make([]pinPos, len(owners))
		pinsY := make([]pinPos, len(owners))
		for i, owner := range owners {
			fixed := isFixedBlock(in.Registry, owner, in.SolveMode)
			var x, y float64
			if fixed {
				x, y = in.FixedXY(owner)
			} else {
				x, y = in.LinearX[owner], in.LinearY[owner]
			}
			idx := -1
			if !fixed {
				idx = owner
			}
			pinsX[i] = pinPos{fixed: fixed, index: idx, pos: x}
			pinsY[i] = pinPos{fixed: fixed, index: idx, pos: y}
		}

		buildAxisSprings(pinsX, netWeightBase, deltaFloor, res.X, res.XRHS, start)
		buildAxisSprings(pinsY, netWeightBase, deltaFloor, res.Y, res.YRHS, start)
	}

	for _, d := range []struct {
		axis string
		m    *Matrix
	}{{"X", res.X}, {"Y", res.Y}} {
		if !d.m.IsSymmetricAndFinite() {
			OnDiagnostic(Diagnostic{Axis: d.axis, Reason: "matrix is not symmetric and finite"})
			res.Valid = false
		}
	}

	return res
}

func addAnchors(m *Matrix, rhs, anchor, linear []float64, start, dim int, alpha, deltaFloor float64) {
	for i := 0; i < dim; i++ {
		global := i + start
		delta := math.Abs(anchor[global] - linear[global])
		if delta < deltaFloor {
			delta = deltaFloor
		}
		w := 2 * alpha * (1 / delta)
		m.Add(i, i, w)
		rhs[i] += w * anchor[global]
	}
}

// pinPos is one net pin's axis-projected state: either a movable block
// (fixed=false, index=its global block index) or a fixed pin (fixed=true,
// index=-1, and pos already resolved to its fixed coordinate).
type pinPos struct {
	fixed bool
	index int
	pos   float64
}

// buildAxisSprings assembles a single axis of a single net: the
// bound-to-bound spring, bound-to-inner springs from every other
// movable pin, and the fixed-pin bound-inner springs with the
// first-occurrence skip rule.
func buildAxisSprings(pins []pinPos, netWeightBase, deltaFloor float64, m *Matrix, rhs []float64, startIndex int) {
	minVal, maxVal := math.MaxFloat64, -math.MaxFloat64
	minIdx, maxIdx := -1, -1

	for _, p := range pins {
		if p.pos > maxVal {
			maxVal = p.pos
			maxIdx = p.index
		}
		if p.pos < minVal {
			minVal = p.pos
			minIdx = p.index
		}
	}

	addSpring := func(aIdx, bIdx int, aVal, bVal, weight float64) {
		if aIdx == bIdx {
			return // same block (aIdx==-1 and bIdx==-1: fixed-fixed, nothing to add; or a self-loop)
		}
		switch {
		case bIdx == -1:
			li := aIdx - startIndex
			m.Add(li, li, weight)
			rhs[li] += weight * bVal
		case aIdx == -1:
			li := bIdx - startIndex
			m.Add(li, li, weight)
			rhs[li] += weight * aVal
		default:
			la, lb := aIdx-startIndex, bIdx-startIndex
			m.Add(la, la, weight)
			m.Add(lb, lb, weight)
			m.Add(la, lb, -weight)
			m.Add(lb, la, -weight)
		}
	}

	floor := func(v float64) float64 {
		if v < deltaFloor {
			return deltaFloor
		}
		return v
	}

	if !(minIdx == -1 && maxIdx == -1) {
		delta := floor(maxVal - minVal)
		addSpring(minIdx, maxIdx, minVal, maxVal, netWeightBase/delta)
	}

	for _, p := range pins {
		if p.fixed {
			continue
		}
		if p.index != minIdx {
			d := floor(math.Abs(p.pos - maxVal))
			addSpring(p.index, maxIdx, p.pos, maxVal, netWeightBase/d)
		}
		if p.index != maxIdx {
			d := floor(math.Abs(p.pos - minVal))
			addSpring(p.index, minIdx, p.pos, minVal, netWeightBase/d)
		}
	}

	firstMax, firstMin := true, true
	for _, p := range pins {
		if !p.fixed {
			continue
		}
		fx := p.pos

		if fx == minVal && minIdx == -1 && firstMax {
			firstMax = false
		} else if maxIdx != -1 {
			d := floor(math.Abs(fx - maxVal))
			w := netWeightBase / d
			li := maxIdx - startIndex
			m.Add(li, li, w)
			rhs[li] += w * fx
		}

		if fx == maxVal && maxIdx == -1 && firstMin {
			firstMin = false
		} else if minIdx != -1 {
			d := floor(math.Abs(fx - minVal))
			w := netWeightBase / d
			li := minIdx - startIndex
			m.Add(li, li, w)
			rhs[li] += w * fx
		}
	}
}
