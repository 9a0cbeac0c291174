package netlist

// Pin references the block that owns it. Owner is a block index into the
// enclosing Registry.
type Pin struct {
	Owner int
}

// TimingEdge is a single timing arc crossing a net; its Cost contributes
// to the net's summed timing weight. The placer never builds these
// itself; it only reads whatever a timing oracle attaches to a Net.
type TimingEdge struct {
	cost float64
}

// NewTimingEdge wraps a precomputed timing cost.
func NewTimingEdge(cost float64) TimingEdge { return TimingEdge{cost: cost} }

// Cost returns the edge's contribution to its net's timing weight.
func (e TimingEdge) Cost() float64 { return e.cost }

// Net is an ordered collection of pins (source, sink1, ..., sinkK). A net
// with fewer than two pins contributes nothing to the linear system.
type Net struct {
	Source Pin
	Sinks  []Pin
	// TimingEdges, if non-empty, sums to this net's timing weight
	// multiplier; an empty slice means weight 1.
	TimingEdges []TimingEdge
}

// NumPins returns 1 + len(Sinks).
func (n Net) NumPins() int { return 1 + len(n.Sinks) }

// TimingWeight returns the sum of this net's timing-edge costs, or 1 if
// it carries no timing information.
func (n Net) TimingWeight() float64 {
	if len(n.TimingEdges) == 0 {
		return 1
	}
	w := 0.0
	for _, e := range n.TimingEdges {
		w += e.Cost()
	}
	return w
}

// NetSet is the collection of nets the solver reads when assembling the
// B2B system.
type NetSet interface {
	Nets() []Net
}

// Nets is the simplest NetSet: a plain slice.
type Nets []Net

// Nets implements NetSet.
func (n Nets) Nets() []Net { return n }
