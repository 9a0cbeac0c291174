package cost

import "github.com/sarchlab/aplace/netlist"

// TimingCriticality is the per-block timing oracle: something external
// computes it from a timing graph, and this package only reads it.
type TimingCriticality interface {
	BlockCriticality(blockIndex int) float64
}

// TimingWeighted decorates a net set with timing-aware wirelength: each
// net's HPWL is scaled by its own summed timing-edge weight
// (netlist.Net.TimingWeight) and by one plus the highest criticality
// among its pins, so a net touching a hot block costs more to leave
// long even when its own timing edges are unweighted.
type TimingWeighted struct {
	Nets        netlist.NetSet
	Criticality TimingCriticality
}

// NewTimingWeighted returns a timing-weighted wirelength calculator.
func NewTimingWeighted(nets netlist.NetSet, criticality TimingCriticality) *TimingWeighted {
	return &TimingWeighted{Nets: nets, Criticality: criticality}
}

// RequiresDeviceUpdate is always false, same as Wirelength.
func (t *TimingWeighted) RequiresDeviceUpdate() bool { return false }

// Calculate returns the summed, timing-weighted HPWL of every
// multi-pin net.
func (t *TimingWeighted) Calculate(x, y []int) float64 {
	total := 0.0
	for _, net := range t.Nets.Nets() {
		if net.NumPins() < 2 {
			continue
		}

		crit := t.Criticality.BlockCriticality(net.Source.Owner)
		for _, sink := range net.Sinks {
			if c := t.Criticality.BlockCriticality(sink.Owner); c > crit {
				crit = c
			}
		}

		total += float64(hpwl(net, x, y)) * net.TimingWeight() * (1 + crit)
	}
	return total
}
