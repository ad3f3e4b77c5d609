package core

import "time"

// MinGridSize is the smallest playable grid edge. The configuration layer
// rejects anything smaller before a session is constructed.
const MinGridSize = 5

// RuntimeConfig contains the validated parameters a session is built from.
// The CLI/config layer constructs and validates it; the platform layer
// builds the session from it and treats it as immutable.
type RuntimeConfig struct {
	GridWidth         int           // Play field width in cells
	GridHeight        int           // Play field height in cells
	StartLength       int           // Initial snake length
	TickInterval      time.Duration // Base interval between simulation ticks
	ControllerEnabled bool          // Whether controller bindings are active
	Seed              int64         // RNG seed for deterministic gameplay (0 = time-based in platform layer)
}
