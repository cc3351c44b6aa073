// Package fault defines the value type carried by raised faults and the
// primitives for raising them.
//
// A fault is an arbitrary value propagated with panic. Fault does not assume
// the value is an error, truthy, or even non-nil; it is only a container that
// the attempt package knows how to capture and hand to a handler.
package fault

import (
	"fmt"
	"reflect"
)

// Fault wraps a value raised by Raise, or any other panic value captured
// during a protected evaluation.
type Fault struct {
	value any
}

// New returns a Fault wrapping value.
func New(value any) Fault {
	return Fault{value}
}

// Value returns the raised value.
func (f Fault) Value() any {
	return f.value
}

// Error returns the message of the raised value. If the value is an error its
// own message is used; otherwise the value is formatted with fmt.
func (f Fault) Error() string {
	if err, ok := f.value.(error); ok && err != nil {
		return err.Error()
	}
	return fmt.Sprint(f.value)
}

// Unwrap returns the raised value if it is an error, and nil otherwise. It
// lets errors.Is and errors.As see through a Fault.
func (f Fault) Unwrap() error {
	if err, ok := f.value.(error); ok {
		return err
	}
	return nil
}

// Equal reports whether two faults wrap deeply equal values. It also serves
// as the equality hook for go-cmp.
func (f Fault) Equal(rhs Fault) bool {
	return reflect.DeepEqual(f.value, rhs.value)
}

// raised is the panic payload used by Raise, so that the capturing side can
// tell raised faults from stray panics and recover the original value
// exactly.
type raised struct {
	fault Fault
}

// Raise propagates value as a fault, using panic as the transport. It never
// returns.
func Raise(value any) {
	panic(raised{Fault{value}})
}

// Rethrow raises the fault's value again, preserving it exactly. Calling it
// outside a protected evaluation crashes the program like any other
// unrecovered panic.
func (f Fault) Rethrow() {
	panic(raised{f})
}

// From normalizes a recovered panic value into a Fault. Values raised with
// Raise are unwrapped to the original fault; a Fault passes through; anything
// else, including nil, is wrapped as is.
func From(recovered any) Fault {
	switch r := recovered.(type) {
	case raised:
		return r.fault
	case Fault:
		return r
	default:
		return Fault{recovered}
	}
}
