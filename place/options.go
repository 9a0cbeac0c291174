// Package place drives the alternating solve/legalize loop (C7): it
// seeds a random linear placement, runs anchor-free solves, then
// iterates solve-mode rotation, anchor growth and legalization until
// committing the best-known-legal placement to a device.
package place

import (
	"github.com/sarchlab/aplace/cost"
	"github.com/sarchlab/aplace/device"
	"github.com/sarchlab/aplace/netlist"
)

// RandomSource is the injected uniform generator: a single Float64()
// in [0, 1).
type RandomSource interface {
	Float64() float64
}

// Options carries every recognized configuration knob of the placement
// loop.
type Options struct {
	// AnchorStepAlpha is the per-cycle pseudo-net strength increment.
	AnchorStepAlpha float64
	// InitialSolves is the number of anchor-free solves before the
	// first legalization.
	InitialSolves int
	// MainIterations is the number of solve+legalize cycles after the
	// initial legalization.
	MainIterations int
	// CGEpsilon is the conjugate-gradient convergence tolerance.
	CGEpsilon float64
	// DeltaFloor is the minimum effective coordinate gap in spring
	// weights.
	DeltaFloor float64
	// TimingDriven enables the netTimingWeight multiplier.
	TimingDriven bool
	// LegalizeIO distributes I/O blocks over the perimeter on the
	// first legalization pass.
	LegalizeIO bool
	// TileCapacitySchedule is an ordered sequence >= 1.0: entry 0 applies
	// to the initializing legalization and entry i+1 to main iteration
	// i, held at its last entry once exhausted; it must floor to 1.0 by
	// the final iterations.
	TileCapacitySchedule []float64
}

// DefaultOptions returns the documented defaults for every knob.
func DefaultOptions() Options {
	return Options{
		AnchorStepAlpha:      0.3,
		InitialSolves:        7,
		MainIterations:       30,
		CGEpsilon:            1e-4,
		DeltaFloor:           0.005,
		TimingDriven:         false,
		LegalizeIO:           true,
		TileCapacitySchedule: []float64{1.3, 1.2, 1.1, 1.0},
	}
}

func (o Options) tileCapacityAt(iteration int) float64 {
	if len(o.TileCapacitySchedule) == 0 {
		return 1.0
	}
	if iteration < len(o.TileCapacitySchedule) {
		return o.TileCapacitySchedule[iteration]
	}
	return o.TileCapacitySchedule[len(o.TileCapacitySchedule)-1]
}

// SessionBuilder assembles a Session. Every With* returns a modified
// copy and all validation happens once, inside Build, the same fluent
// value-receiver idiom used by device.GridBuilder.
type SessionBuilder struct {
	device   device.Device
	registry netlist.Registry
	nets     netlist.NetSet
	calc     cost.Calculator
	random   RandomSource
	ioX, ioY []int
	options  Options
	hasOpts  bool
}

// NewSessionBuilder returns an empty builder.
func NewSessionBuilder() SessionBuilder {
	return SessionBuilder{}
}

// WithDevice sets the target device.
func (b SessionBuilder) WithDevice(d device.Device) SessionBuilder {
	b.device = d
	return b
}

// WithRegistry sets the block index registry.
func (b SessionBuilder) WithRegistry(r netlist.Registry) SessionBuilder {
	b.registry = r
	return b
}

// WithNets sets the net list the solver assembles springs from.
func (b SessionBuilder) WithNets(n netlist.NetSet) SessionBuilder {
	b.nets = n
	return b
}

// WithCostCalculator sets the scalar cost function driving the
// best-legal commit rule.
func (b SessionBuilder) WithCostCalculator(c cost.Calculator) SessionBuilder {
	b.calc = c
	return b
}

// WithRandomSource sets the uniform generator used to seed the initial
// linear placement.
func (b SessionBuilder) WithRandomSource(r RandomSource) SessionBuilder {
	b.random = r
	return b
}

// WithIOSites fixes every I/O block's integer site coordinate, indexed
// [0, NumIO). Required; the coordinates stay constant for the
// session's lifetime.
func (b SessionBuilder) WithIOSites(x, y []int) SessionBuilder {
	b.ioX = append([]int(nil), x...)
	b.ioY = append([]int(nil), y...)
	return b
}

// WithOptions overrides DefaultOptions().
func (b SessionBuilder) WithOptions(o Options) SessionBuilder {
	b.options = o
	b.hasOpts = true
	return b
}

// Build validates the accumulated configuration and returns a Session.
//
// Build panics on nil required fields (programmer error, the same
// convention as device.GridBuilder.Build), and returns a
// netlist.ConfigurationError for data-driven mismatches, e.g. an I/O
// site slice whose length doesn't match the registry.
func (b SessionBuilder) Build() (*Session, error) {
	if b.device == nil {
		panic("place: device is required")
	}
	if b.registry == nil {
		panic("place: registry is required")
	}
	if b.nets == nil {
		panic("place: nets is required")
	}
	if b.calc == nil {
		panic("place: cost calculator is required")
	}
	if b.random == nil {
		panic("place: random source is required")
	}

	if len(b.ioX) != b.registry.NumIO() || len(b.ioY) != b.registry.NumIO() {
		return nil, &netlist.ConfigurationError{
			Reason: "I/O site coordinates must have exactly NumIO entries",
		}
	}

	opts := b.options
	if !b.hasOpts {
		opts = DefaultOptions()
	}

	return newSession(b.device, b.registry, b.nets, b.calc, b.random, b.ioX, b.ioY, opts), nil
}
