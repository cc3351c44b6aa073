// Package attempt implements a minimal structured try/catch construct layered
// over panic-based fault propagation.
//
// The core is Try, which evaluates a computation under fault isolation and
// dispatches any captured fault to an optional handler:
//
//	values := attempt.Try(body, attempt.Catch(func(f fault.Fault) []any {
//		return []any{"fallback"}
//	}))
//
// Catch is a pure identity function; it exists only so the call site reads
// like the construct it implements. There is exactly one body and at most one
// handler, and discriminating fault kinds is entirely the handler's business.
//
// The construct recognizes a single kind of failure: the body panicked, with
// any value. Detection never depends on the recovered value itself, so faults
// carrying nil, empty strings or other falsy values are handled the same as
// any other. Without a handler, a fault is swallowed and the attempt yields
// nil; this best-effort behavior is deliberate.
package attempt

import (
	"attempt.dev/pkg/fault"
	"attempt.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[attempt] ")

// Body is a computation evaluated for an ordered sequence of results.
type Body func() []any

// Handler is a catch-block: it receives the captured fault and produces the
// attempt's results in its place.
type Handler func(fault.Fault) []any

// Catch returns h unchanged. It carries no semantics of its own; wrapping the
// handler in Catch makes a Try call site read as a try/catch pair.
func Catch(h Handler) Handler {
	return h
}

// Run evaluates body under fault isolation and returns a tagged Outcome.
//
// Failure is exactly "body did not reach its normal exit", tracked by a flag
// set after the body returns rather than by any property of the recovered
// value. A fault carrying nil or a falsy value is therefore still a failure.
// The fault is captured in the deferred recovery, before any caller code can
// run.
func Run(body Body) (outcome Outcome) {
	completed := false
	defer func() {
		if completed {
			return
		}
		f := fault.From(recover())
		logger.Println("captured fault:", f.Error())
		outcome = Failure(f)
	}()
	values := body()
	completed = true
	return Success(values...)
}

// Try evaluates body under fault isolation.
//
// On success the body's results are returned untouched. On failure the fault
// is passed to the handler exactly once, and the handler's results become the
// attempt's results; with no handler (or a nil one) the fault is swallowed
// and Try returns nil. A fault raised by the handler itself propagates to the
// caller of Try uncaught.
//
// At most one handler is accepted; passing more is a programming error and
// panics. Try adds call frames of its own, which callers relying on
// stack-depth-sensitive diagnostics must account for.
func Try(body Body, handlers ...Handler) []any {
	if len(handlers) > 1 {
		panic("attempt.Try: at most one handler")
	}
	outcome := Run(body)
	if outcome.OK() {
		return outcome.Values()
	}
	f, _ := outcome.Fault()
	if len(handlers) == 0 || handlers[0] == nil {
		logger.Println("fault swallowed:", f.Error())
		return nil
	}
	return dispatch(handlers[0], f)
}

// Try0 is Try for computations with no results.
func Try0(body func(), handlers ...func(fault.Fault)) {
	if len(handlers) > 1 {
		panic("attempt.Try0: at most one handler")
	}
	outcome := Run(func() []any { body(); return nil })
	f, failed := outcome.Fault()
	if !failed {
		return
	}
	if len(handlers) == 0 || handlers[0] == nil {
		logger.Println("fault swallowed:", f.Error())
		return
	}
	h := handlers[0]
	dispatch(func(f fault.Fault) []any { h(f); return nil }, f)
}

// Try1 is Try for computations with exactly one result. A swallowed fault
// yields the zero value of T.
func Try1[T any](body func() T, handlers ...func(fault.Fault) T) T {
	if len(handlers) > 1 {
		panic("attempt.Try1: at most one handler")
	}
	outcome := Run(func() []any { return []any{body()} })
	if outcome.OK() {
		// Comma-ok so that an interface-typed T holding nil converts to the
		// zero value instead of panicking.
		v, _ := outcome.Scalar().(T)
		return v
	}
	f, _ := outcome.Fault()
	if len(handlers) == 0 || handlers[0] == nil {
		logger.Println("fault swallowed:", f.Error())
		var zero T
		return zero
	}
	h := handlers[0]
	var ret T
	dispatch(func(f fault.Fault) []any { ret = h(f); return nil }, f)
	return ret
}

// current is the topical binding for the innermost executing handler. It is
// package state shared by nested attempts on the same goroutine; dispatch
// save/restores it so an inner attempt cannot corrupt the outer handler's
// view.
var current *fault.Fault

// dispatch invokes h exactly once with f, exposing f via Current for the
// duration of the call. The restore runs even when h raises, so a fault
// propagating out of a handler never leaves a stale binding behind.
func dispatch(h Handler, f fault.Fault) []any {
	prev := current
	current = &f
	defer func() { current = prev }()
	return h(f)
}

// Current returns the fault bound to the innermost handler currently
// executing on this goroutine, if any.
//
// Deprecated: this is a best-effort convenience. The handler's explicit
// argument is the reliable channel for the fault; Current is not
// goroutine-safe.
func Current() (fault.Fault, bool) {
	if current == nil {
		return fault.Fault{}, false
	}
	return *current, true
}
