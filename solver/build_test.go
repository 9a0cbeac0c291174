package solver_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/aplace/netlist"
	"github.com/sarchlab/aplace/solver"
)

// fakeRegistry is a minimal netlist.Registry: 2 IO blocks (indices 0-1),
// 3 CLB blocks (2-4), in a single movable type "CLB".
type fakeRegistry struct{}

func (fakeRegistry) NumBlocks() int   { return 5 }
func (fakeRegistry) NumIO() int       { return 2 }
func (fakeRegistry) TypeStart() []int { return []int{0, 2, 5} }
func (fakeRegistry) Types() []string  { return []string{"IO", "CLB"} }
func (fakeRegistry) BlockTypeIndexOf(i int) int {
	if i < 2 {
		return 0
	}
	return 1
}

var _ = Describe("ActiveRange", func() {
	It("returns the full movable range for solveMode 0", func() {
		start, end := solver.ActiveRange(fakeRegistry{}, 0)
		Expect(start).To(Equal(2))
		Expect(end).To(Equal(5))
	})

	It("returns the type-owned range for a specific solveMode", func() {
		start, end := solver.ActiveRange(fakeRegistry{}, 1)
		Expect(start).To(Equal(2))
		Expect(end).To(Equal(5))
	})
})

var _ = Describe("BuildSystem", func() {
	var reg fakeRegistry

	BeforeEach(func() {
		reg = fakeRegistry{}
	})

	fixedXY := func(i int) (float64, float64) {
		// IOs sit at fixed corners; this is only consulted for index < 2
		// in these tests.
		if i == 0 {
			return 0, 0
		}
		return 9, 9
	}

	It("builds a symmetric, finite matrix for a 2-pin net", func() {
		nets := netlist.Nets{
			{Source: netlist.Pin{Owner: 2}, Sinks: []netlist.Pin{{Owner: 3}}},
		}
		res := solver.BuildSystem(solver.BuildInput{
			Registry:   reg,
			Nets:       nets,
			SolveMode:  0,
			FirstSolve: true,
			DeltaFloor: 0.005,
			LinearX:    []float64{0, 0, 1, 5, 8},
			LinearY:    []float64{0, 0, 1, 5, 8},
			FixedXY:    fixedXY,
		})

		Expect(res.StartIndex).To(Equal(2))
		Expect(res.Dimensions).To(Equal(3))
		Expect(res.Valid).To(BeTrue())
		Expect(res.X.IsSymmetricAndFinite()).To(BeTrue())
		Expect(res.Y.IsSymmetricAndFinite()).To(BeTrue())

		// block 2 (local 0) and block 3 (local 1) are the only pins: the
		// spring should be symmetric between them and nothing should
		// touch local index 2 (block 4, uninvolved).
		Expect(res.X.Get(0, 1)).To(BeNumerically("<", 0))
		Expect(res.X.Get(0, 0)).To(BeNumerically(">", 0))
		Expect(res.X.Get(2, 2)).To(Equal(0.0))
	})

	It("adds no anchor terms on the first solve", func() {
		nets := netlist.Nets{
			{Source: netlist.Pin{Owner: 2}, Sinks: []netlist.Pin{{Owner: 3}}},
		}
		res := solver.BuildSystem(solver.BuildInput{
			Registry:           reg,
			Nets:               nets,
			SolveMode:          0,
			FirstSolve:         true,
			PseudoWeightFactor: 5,
			DeltaFloor:         0.005,
			LinearX:            []float64{0, 0, 1, 5, 8},
			LinearY:            []float64{0, 0, 1, 5, 8},
			FixedXY:            fixedXY,
			AnchorX:            []float64{0, 0, 1, 5, 8},
			AnchorY:            []float64{0, 0, 1, 5, 8},
		})

		// with no movement from anchor, and FirstSolve, the diagonal
		// comes only from the net spring, not 2*alpha/delta.
		Expect(res.X.Get(2, 2)).To(BeNumerically("<", 1000))
	})

	It("adds anchor terms when not the first solve", func() {
		nets := netlist.Nets{}
		res := solver.BuildSystem(solver.BuildInput{
			Registry:           reg,
			Nets:               nets,
			SolveMode:          0,
			FirstSolve:         false,
			PseudoWeightFactor: 1,
			DeltaFloor:         0.005,
			LinearX:            []float64{0, 0, 1, 5, 8},
			LinearY:            []float64{0, 0, 1, 5, 8},
			FixedXY:            fixedXY,
			AnchorX:            []float64{0, 0, 2, 5, 8},
			AnchorY:            []float64{0, 0, 1, 5, 8},
		})

		// block 2's linear (1) differs from its anchor (2): expect a
		// nonzero diagonal and RHS pulling toward the anchor.
		Expect(res.X.Get(0, 0)).To(BeNumerically(">", 0))
		Expect(res.XRHS[0]).To(BeNumerically(">", 0))
	})

	It("builds a star system for a multi-sink net", func() {
		nets := netlist.Nets{
			{
				Source: netlist.Pin{Owner: 2},
				Sinks:  []netlist.Pin{{Owner: 3}, {Owner: 4}},
			},
		}
		res := solver.BuildSystem(solver.BuildInput{
			Registry:   reg,
			Nets:       nets,
			SolveMode:  0,
			FirstSolve: true,
			DeltaFloor: 0.005,
			LinearX:    []float64{0, 0, 1, 5, 8},
			LinearY:    []float64{0, 0, 1, 1, 1},
			FixedXY:    fixedXY,
		})

		Expect(res.X.IsSymmetricAndFinite()).To(BeTrue())
		// min (block 2 at x=1) and max (block 4 at x=8) get a direct
		// bound-to-bound spring; block 3 (x=5, interior) gets
		// bound-to-inner springs to both extremes, so every diagonal
		// entry should be nonzero.
		Expect(res.X.Get(0, 0)).To(BeNumerically(">", 0))
		Expect(res.X.Get(1, 1)).To(BeNumerically(">", 0))
		Expect(res.X.Get(2, 2)).To(BeNumerically(">", 0))
	})
})
