// Command aplace-demo wires up a small device and netlist and runs one
// placement session against them, printing the resulting diagnostics
// table. It exists to exercise the place/legalizer/solver stack
// end-to-end.
package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/aplace/cost"
	"github.com/sarchlab/aplace/device"
	"github.com/sarchlab/aplace/netlist"
	"github.com/sarchlab/aplace/place"
)

// seededRandom adapts math/rand to place.RandomSource.
type seededRandom struct {
	r *rand.Rand
}

func newSeededRandom(seed int64) *seededRandom {
	return &seededRandom{r: rand.New(rand.NewSource(seed))}
}

func (s *seededRandom) Float64() float64 { return s.r.Float64() }

// run builds the toy device and netlist, places it, and returns the
// rendered diagnostics table. Split out from main so it can be driven
// from a test without calling atexit.Exit.
func run() (string, error) {
	ioType := device.BlockType{Name: "IO", Category: device.IO}
	clbType := device.BlockType{Name: "CLB", Category: device.CLB}

	columns := []device.BlockType{ioType, clbType, clbType, clbType, clbType, ioType}

	dev := device.GridBuilder{}.
		WithSize(6, 6).
		WithColumnTypes(columns).
		WithBlockTypes([]device.BlockType{ioType, clbType}).
		Build()

	blocks := []netlist.Block{
		{Name: "clb0", Category: device.CLB, TypeName: "CLB"},
		{Name: "clb1", Category: device.CLB, TypeName: "CLB"},
		{Name: "clb2", Category: device.CLB, TypeName: "CLB"},
		{Name: "clb3", Category: device.CLB, TypeName: "CLB"},
	}

	reg, err := netlist.NewRegistry(blocks, []string{"IO", "CLB"})
	if err != nil {
		return "", err
	}

	nets := netlist.Nets{
		{
			Source: netlist.Pin{Owner: 0},
			Sinks:  []netlist.Pin{{Owner: 1}, {Owner: 2}, {Owner: 3}},
		},
	}

	calc := cost.NewWirelength(nets)

	session, err := place.NewSessionBuilder().
		WithDevice(dev).
		WithRegistry(reg).
		WithNets(nets).
		WithCostCalculator(calc).
		WithRandomSource(newSeededRandom(42)).
		WithIOSites(nil, nil).
		Build()
	if err != nil {
		return "", err
	}

	if err := session.Place(context.Background()); err != nil {
		return "", err
	}

	return session.DiagnosticsTable(), nil
}

func main() {
	table, err := run()
	if err != nil {
		panic(err)
	}

	fmt.Println(table)

	atexit.Exit(0)
}
