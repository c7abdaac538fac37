// Package gen constructs test instances for the editing engine: random
// cotrees and the cographs they denote, disturbed cographs (a cograph plus
// a bounded number of random edge toggles, so the minimum editing cost is
// known to be at most the disturbance count), random non-cographs drawn
// from G(n,p), and labeled path graphs.
//
// Vertex labels are decimal strings ("0", "1", ...). Every stochastic
// constructor takes an explicit *rand.Rand; nil selects a fixed default
// stream so results are reproducible by default.
//
// Errors:
//
//	ErrTooFewVertices     - n below the constructor's minimum.
//	ErrInvalidProbability - edge probability outside [0.1, 0.9].
//	ErrBadDisturbance     - non-positive disturbance count.
package gen
