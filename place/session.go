package place

import (
	"context"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/aplace/cost"
	"github.com/sarchlab/aplace/device"
	"github.com/sarchlab/aplace/legalizer"
	"github.com/sarchlab/aplace/netlist"
	"github.com/sarchlab/aplace/solver"
)

// iterationRecord is one row of Session's iteration history, read only
// by DiagnosticsTable.
type iterationRecord struct {
	Iteration          int
	SolveMode          int
	PseudoWeightFactor float64
	Cost               float64
	BestCost           float64
}

// Session owns every long-lived array for one placement run: linearX/Y,
// the legalizer's tmpLegal/bestLegal, and the solve-mode and
// anchor-strength state driving the main loop.
type Session struct {
	id string

	dev    device.Device
	reg    netlist.Registry
	nets   netlist.NetSet
	calc   cost.Calculator
	random RandomSource
	opts   Options

	legal *legalizer.Legalizer

	linearX, linearY []float64

	solveMode          int
	pseudoWeightFactor float64

	history []iterationRecord
}

func newSession(dev device.Device, reg netlist.Registry, nets netlist.NetSet, calc cost.Calculator, random RandomSource, ioX, ioY []int, opts Options) *Session {
	n := reg.NumBlocks()
	s := &Session{
		id:      sim.GetIDGenerator().Generate(),
		dev:     dev,
		reg:     reg,
		nets:    nets,
		calc:    calc,
		random:  random,
		opts:    opts,
		legal:   legalizer.New(dev, reg, calc),
		linearX: make([]float64, n),
		linearY: make([]float64, n),
	}

	s.legal.SeedIO(ioX, ioY)
	for i := 0; i < reg.NumIO(); i++ {
		s.linearX[i] = float64(ioX[i])
		s.linearY[i] = float64(ioY[i])
	}

	return s
}

// ID returns this session's process-wide unique tag, used only to
// correlate Trace output across concurrent sessions in a host process.
func (s *Session) ID() string { return s.id }

// Place runs the full placement loop: N_init anchor-free solves, one
// initializing legalization, then N_main solve+legalize cycles with
// growing anchor strength and rotating solve mode, finishing with a
// commit of the best-known-legal placement to the device.
//
// ctx is checked once per main iteration only: a solve or legalize
// call always runs to completion once started.
func (s *Session) Place(ctx context.Context) error {
	s.seedLinear()

	for i := 0; i < s.opts.InitialSolves; i++ {
		s.solveAxis(true, 0, 0)
	}

	if _, err := s.legal.Legalize(s.linearX, s.linearY, s.opts.tileCapacityAt(0), s.opts.LegalizeIO); err != nil {
		return err
	}

	numTypes := solver.NumTypes(s.reg)

	for i := 0; i < s.opts.MainIterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.solveMode = (s.solveMode + 1) % (numTypes + 1)
		if s.solveMode <= 1 {
			s.pseudoWeightFactor += s.opts.AnchorStepAlpha
		}

		s.solveAxis(false, s.solveMode, s.pseudoWeightFactor)

		tileCapacity := s.opts.tileCapacityAt(i + 1)
		if _, err := s.legal.Legalize(s.linearX, s.linearY, tileCapacity, false); err != nil {
			return err
		}

		s.history = append(s.history, iterationRecord{
			Iteration:          i,
			SolveMode:          s.solveMode,
			PseudoWeightFactor: s.pseudoWeightFactor,
			Cost:               s.calc.Calculate(s.legal.TmpLegalX, s.legal.TmpLegalY),
			BestCost:           s.legal.BestCost,
		})

		Trace("iteration done",
			"session", s.id,
			"iteration", i,
			"solveMode", s.solveMode,
			"pseudoWeightFactor", s.pseudoWeightFactor,
			"bestCost", s.legal.BestCost,
			"tileCapacity", tileCapacity,
		)
	}

	return s.legal.Commit()
}

func (s *Session) seedLinear() {
	w, h := s.dev.Width(), s.dev.Height()
	for i := s.reg.NumIO(); i < s.reg.NumBlocks(); i++ {
		s.linearX[i] = 1 + s.random.Float64()*float64(w-2)
		s.linearY[i] = 1 + s.random.Float64()*float64(h-2)
	}
}

func (s *Session) solveAxis(firstSolve bool, solveMode int, pseudoWeightFactor float64) {
	// Anchors track the latest legalization, which may run at
	// tileCapacity > 1 before any best has been recorded.
	anchorX := intsToFloats(s.legal.TmpLegalX)
	anchorY := intsToFloats(s.legal.TmpLegalY)

	res := solver.BuildSystem(solver.BuildInput{
		Registry:           s.reg,
		Nets:               s.nets,
		SolveMode:          solveMode,
		FirstSolve:         firstSolve,
		PseudoWeightFactor: pseudoWeightFactor,
		DeltaFloor:         s.opts.DeltaFloor,
		TimingDriven:       s.opts.TimingDriven,
		LinearX:            s.linearX,
		LinearY:            s.linearY,
		FixedXY: func(blockIndex int) (float64, float64) {
			return float64(s.legal.FixedX(blockIndex)), float64(s.legal.FixedY(blockIndex))
		},
		AnchorX: anchorX,
		AnchorY: anchorY,
	})

	if !res.Valid {
		// Assembly raised a SolverDiagnostic: skip this solve and let
		// the outer loop reattempt on the next cycle.
		return
	}

	x, _ := res.X.Solve(res.XRHS, s.opts.CGEpsilon, solver.DefaultMaxIterations)
	y, _ := res.Y.Solve(res.YRHS, s.opts.CGEpsilon, solver.DefaultMaxIterations)

	for i := 0; i < res.Dimensions; i++ {
		s.linearX[res.StartIndex+i] = x[i]
		s.linearY[res.StartIndex+i] = y[i]
	}
}

func intsToFloats(v []int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
