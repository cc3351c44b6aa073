package attempt

import (
	"reflect"

	"attempt.dev/pkg/fault"
)

// Outcome is the tagged result of one protected evaluation: either the
// ordered results of a body that completed normally, or the fault that
// aborted it. Outcomes are transient, describing a single Run; they hold no
// global state.
type Outcome struct {
	values []any
	fault  fault.Fault
	failed bool
}

// Success returns an Outcome carrying the given result values.
func Success(values ...any) Outcome {
	return Outcome{values: values}
}

// Failure returns an Outcome carrying a captured fault.
func Failure(f fault.Fault) Outcome {
	return Outcome{fault: f, failed: true}
}

// OK reports whether the evaluation completed without a fault.
func (o Outcome) OK() bool {
	return !o.failed
}

// Values returns the result values of a successful evaluation, and nil for a
// failed one.
func (o Outcome) Values() []any {
	return o.values
}

// Scalar returns the scalar view of the result values: the last value, or nil
// when there are none.
func (o Outcome) Scalar() any {
	return Scalar(o.values)
}

// Fault returns the captured fault and whether the evaluation failed.
func (o Outcome) Fault() (fault.Fault, bool) {
	return o.fault, o.failed
}

// Equal reports whether two outcomes carry the same tag and equal contents.
// It also serves as the equality hook for go-cmp.
func (o Outcome) Equal(rhs Outcome) bool {
	if o.failed != rhs.failed {
		return false
	}
	if o.failed {
		return o.fault.Equal(rhs.fault)
	}
	return reflect.DeepEqual(o.values, rhs.values)
}

// Scalar returns the scalar view of a result sequence: its last element, or
// nil when the sequence is empty.
func Scalar(values []any) any {
	if len(values) == 0 {
		return nil
	}
	return values[len(values)-1]
}
