// Package fatal reports programming defects that must abort the process.
//
// Nothing in this module recovers a Defect. Reaching one means two pieces of
// code that are supposed to stay in lockstep have drifted apart.
package fatal

import "fmt"

// Defect is the panic value raised by AssertNever.
type Defect struct {
	Message string
	Value   any
}

func (d *Defect) Error() string {
	return fmt.Sprintf("fatal: %s (value: %v)", d.Message, d.Value)
}

// AssertNever panics with a Defect. Call it from branches that must be
// unreachable, such as the default case of a switch over a closed set.
func AssertNever(value any, msg string) {
	panic(&Defect{Message: msg, Value: value})
}
