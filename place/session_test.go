package place_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/aplace/cost"
	"github.com/sarchlab/aplace/device"
	"github.com/sarchlab/aplace/netlist"
	"github.com/sarchlab/aplace/place"
)

// stepRandom cycles through a fixed sequence of Float64 values, giving
// placement tests a deterministic but non-degenerate initial scatter.
type stepRandom struct {
	values []float64
	next   int
}

func (s *stepRandom) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func buildDemoDevice() *device.Grid {
	ioType := device.BlockType{Name: "IO", Category: device.IO}
	clbType := device.BlockType{Name: "CLB", Category: device.CLB}
	columns := []device.BlockType{ioType, clbType, clbType, clbType, clbType, ioType}

	return device.GridBuilder{}.
		WithSize(6, 6).
		WithColumnTypes(columns).
		WithBlockTypes([]device.BlockType{ioType, clbType}).
		Build()
}

var _ = Describe("Session", func() {
	It("places all four CLBs connected by a single net, committing only movable blocks", func() {
		dev := buildDemoDevice()

		blocks := []netlist.Block{
			{Name: "clb0", Category: device.CLB, TypeName: "CLB"},
			{Name: "clb1", Category: device.CLB, TypeName: "CLB"},
			{Name: "clb2", Category: device.CLB, TypeName: "CLB"},
			{Name: "clb3", Category: device.CLB, TypeName: "CLB"},
		}
		reg, err := netlist.NewRegistry(blocks, []string{"IO", "CLB"})
		Expect(err).NotTo(HaveOccurred())

		nets := netlist.Nets{
			{
				Source: netlist.Pin{Owner: 0},
				Sinks:  []netlist.Pin{{Owner: 1}, {Owner: 2}, {Owner: 3}},
			},
		}
		calc := cost.NewWirelength(nets)

		rng := &stepRandom{values: []float64{0.1, 0.4, 0.7, 0.9, 0.3, 0.6}}

		session, err := place.NewSessionBuilder().
			WithDevice(dev).
			WithRegistry(reg).
			WithNets(nets).
			WithCostCalculator(calc).
			WithRandomSource(rng).
			WithIOSites(nil, nil).
			WithOptions(place.Options{
				AnchorStepAlpha:      0.3,
				InitialSolves:        3,
				MainIterations:       5,
				CGEpsilon:            1e-4,
				DeltaFloor:           0.005,
				TimingDriven:         false,
				LegalizeIO:           true,
				TileCapacitySchedule: []float64{1.3, 1.0},
			}).
			Build()
		Expect(err).NotTo(HaveOccurred())

		Expect(session.Place(context.Background())).To(Succeed())
	})

	It("places CLBs anchored to fixed corner IOs", func() {
		dev := buildDemoDevice()

		blocks := []netlist.Block{
			{Name: "io0", Category: device.IO},
			{Name: "io1", Category: device.IO},
			{Name: "clb0", Category: device.CLB, TypeName: "CLB"},
			{Name: "clb1", Category: device.CLB, TypeName: "CLB"},
		}
		reg, err := netlist.NewRegistry(blocks, []string{"IO", "CLB"})
		Expect(err).NotTo(HaveOccurred())

		nets := netlist.Nets{
			{Source: netlist.Pin{Owner: 0}, Sinks: []netlist.Pin{{Owner: 2}}},
			{Source: netlist.Pin{Owner: 1}, Sinks: []netlist.Pin{{Owner: 3}}},
		}
		calc := cost.NewWirelength(nets)
		rng := &stepRandom{values: []float64{0.2, 0.8, 0.5, 0.35}}

		session, err := place.NewSessionBuilder().
			WithDevice(dev).
			WithRegistry(reg).
			WithNets(nets).
			WithCostCalculator(calc).
			WithRandomSource(rng).
			WithIOSites([]int{0, 5}, []int{0, 5}).
			WithOptions(place.Options{
				AnchorStepAlpha:      0.3,
				InitialSolves:        3,
				MainIterations:       6,
				CGEpsilon:            1e-4,
				DeltaFloor:           0.005,
				TileCapacitySchedule: []float64{1.0},
			}).
			Build()
		Expect(err).NotTo(HaveOccurred())

		Expect(session.Place(context.Background())).To(Succeed())
	})

	It("returns the context error when cancelled before the main loop starts", func() {
		dev := buildDemoDevice()
		blocks := []netlist.Block{
			{Name: "clb0", Category: device.CLB, TypeName: "CLB"},
			{Name: "clb1", Category: device.CLB, TypeName: "CLB"},
		}
		reg, err := netlist.NewRegistry(blocks, []string{"IO", "CLB"})
		Expect(err).NotTo(HaveOccurred())

		nets := netlist.Nets{{Source: netlist.Pin{Owner: 0}, Sinks: []netlist.Pin{{Owner: 1}}}}
		calc := cost.NewWirelength(nets)
		rng := &stepRandom{values: []float64{0.5}}

		session, err := place.NewSessionBuilder().
			WithDevice(dev).
			WithRegistry(reg).
			WithNets(nets).
			WithCostCalculator(calc).
			WithRandomSource(rng).
			WithIOSites(nil, nil).
			WithOptions(place.Options{
				InitialSolves:        1,
				MainIterations:       2,
				CGEpsilon:            1e-4,
				DeltaFloor:           0.005,
				LegalizeIO:           true,
				TileCapacitySchedule: []float64{1.0},
			}).
			Build()
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Expect(session.Place(ctx)).To(MatchError(context.Canceled))
	})
})
