package surround

// Observer receives search events. Implementations must be cheap; they are
// called on the innermost loop of the search.
type Observer interface {
	// PlacementTried is called after a candidate placement is made.
	PlacementTried()
	// PlacementPruned is called when a tried placement leaves a hole.
	PlacementPruned()
	// SurroundFound is called for every complete surround.
	SurroundFound()
}

type nopObserver struct{}

func (nopObserver) PlacementTried()  {}
func (nopObserver) PlacementPruned() {}
func (nopObserver) SurroundFound()   {}

type options struct {
	observer Observer
}

// Option configures a search.
type Option func(*options)

// WithObserver reports search events to o.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		if o != nil {
			opts.observer = o
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{observer: nopObserver{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
