// SPDX-License-Identifier: MIT

package euler

// Kind is the Eulerian classification of a graph.
type Kind int

const (
	// None: no trail uses every edge exactly once.
	None Kind = iota

	// Path: an open trail exists between the two odd-degree nodes.
	Path

	// Circuit: a closed trail exists; every degree is even.
	Circuit
)

// String returns "none", "path" or "circuit".
func (k Kind) String() string {
	switch k {
	case Path:
		return "path"
	case Circuit:
		return "circuit"
	default:
		return "none"
	}
}

// Classification is the outcome of Classify.
type Classification struct {
	// Exists reports whether an Eulerian path or circuit exists.
	Exists bool

	// Kind is Circuit, Path or None.
	Kind Kind

	// StartCandidates lists valid start nodes in graph node order:
	// every node with degree > 0 for Circuit, the two odd nodes for Path,
	// nothing for None.
	StartCandidates []string

	// OddDegreeNodes lists nodes with an odd degree, in graph node order.
	OddDegreeNodes []string

	// Components counts connected components that contain at least one edge.
	Components int

	// Connected is true when Components <= 1.
	Connected bool
}

// Option configures Classify and BuildPath.
type Option func(*options)

type options struct {
	connectivity bool
}

func defaultOptions() options {
	return options{connectivity: true}
}

// ParityOnly disables the connectivity check: only degree parity decides.
func ParityOnly() Option {
	return func(o *options) { o.connectivity = false }
}

func resolve(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
