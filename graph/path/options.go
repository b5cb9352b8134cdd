package path

import "log/slog"

type options struct {
	heuristic       Heuristic
	stats           bool
	checkInvariants bool
	iterationLimit  int
	logger          *slog.Logger
}

// Option configures a Search.
type Option func(*options)

// WithHeuristic sets the heuristic used to estimate remaining cost.
// The default is Euclidean. A nil h selects Null.
func WithHeuristic(h Heuristic) Option {
	return func(o *options) {
		if h == nil {
			h = Null
		}
		o.heuristic = h
	}
}

// WithStats enables the collection of per-search statistics,
// returned in Result.Stats.
func WithStats(enabled bool) Option {
	return func(o *options) { o.stats = enabled }
}

// WithInvariantChecks makes the search verify the open set's heap
// ordering after every change to it, panicking if it has been broken.
// This makes searches much slower and is intended for tests.
func WithInvariantChecks(enabled bool) Option {
	return func(o *options) { o.checkInvariants = enabled }
}

// WithLogger sets the logger that receives debug records about each
// search. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithIterationLimit lowers the number of nodes a search may expand
// before giving up. The bound never exceeds the graph's node count,
// which is the default. Searches that give up report no path with
// Stats.FailsafeTripped set.
func WithIterationLimit(n int) Option {
	return func(o *options) { o.iterationLimit = n }
}
