// Package cost implements the scalar cost function (C4) the placement
// loop minimizes: half-perimeter wirelength over legal integer
// coordinates, optionally weighted by timing criticality.
package cost

import "github.com/sarchlab/aplace/netlist"

// Calculator is the external collaborator spec'd for C7: given the
// current legal coordinate of every block, return a scalar cost.
// RequiresDeviceUpdate tells the placement loop whether it must commit
// legal coordinates to the device before calling Calculate; a
// calculator that only reads the coordinate arrays directly
// (Wirelength, below) does not.
type Calculator interface {
	RequiresDeviceUpdate() bool
	Calculate(x, y []int) float64
}

// Wirelength is the plain half-perimeter wirelength calculator: for
// every net with at least two pins, sum the bounding box's width plus
// height over the given legal coordinates.
type Wirelength struct {
	Nets netlist.NetSet
}

// NewWirelength returns a Wirelength calculator over nets.
func NewWirelength(nets netlist.NetSet) *Wirelength {
	return &Wirelength{Nets: nets}
}

// RequiresDeviceUpdate is always false: HPWL only needs x, y.
func (w *Wirelength) RequiresDeviceUpdate() bool { return false }

// Calculate returns the summed HPWL of every multi-pin net.
func (w *Wirelength) Calculate(x, y []int) float64 {
	total := 0.0
	for _, net := range w.Nets.Nets() {
		if net.NumPins() < 2 {
			continue
		}
		total += float64(hpwl(net, x, y))
	}
	return total
}

func hpwl(net netlist.Net, x, y []int) int {
	minX, maxX := x[net.Source.Owner], x[net.Source.Owner]
	minY, maxY := y[net.Source.Owner], y[net.Source.Owner]

	for _, sink := range net.Sinks {
		sx, sy := x[sink.Owner], y[sink.Owner]
		if sx < minX {
			minX = sx
		}
		if sx > maxX {
			maxX = sx
		}
		if sy < minY {
			minY = sy
		}
		if sy > maxY {
			maxY = sy
		}
	}

	return (maxX - minX) + (maxY - minY)
}
