package universe

import "fmt"

// ErrOutOfRange reports a coordinate that cannot be reached even after
// repeated root expansion up to MaxLevel.
var ErrOutOfRange = fmt.Errorf("universe: coordinate out of range")

// ErrInvalidLevel reports a StepPow2 exponent whose cutoff level
// (k+2) exceeds MaxLevel.
var ErrInvalidLevel = fmt.Errorf("universe: step exponent out of range")

// ErrEscape reports a step that cannot proceed because the pattern
// sits too close to the int64 coordinate limit for the root to grow
// enough padding.
var ErrEscape = fmt.Errorf("universe: pattern would escape the addressable grid")

func outOfRangeError(p Position) error {
	return fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, p.X, p.Y)
}
