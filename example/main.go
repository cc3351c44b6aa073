// A small program demonstrating the attempt construct.
package main

import (
	"fmt"
	"os"

	"attempt.dev/pkg/attempt"
	"attempt.dev/pkg/fault"
	"attempt.dev/pkg/logutil"
)

func main() {
	logutil.SetOutput(os.Stderr)

	// A successful attempt passes its results through.
	fmt.Println(attempt.Try(func() []any {
		return []any{"foo", "bar", "gorch"}
	}))

	// A fault is dispatched to the handler.
	fmt.Println(attempt.Try(func() []any {
		fault.Raise("lorem-ipsum")
		return nil
	}, attempt.Catch(func(f fault.Fault) []any {
		return []any{"handled: " + f.Error()}
	})))

	// Without a handler the fault is swallowed.
	fmt.Println(attempt.Try(func() []any {
		fault.Raise("ignored")
		return nil
	}))

	// Run exposes the outcome directly.
	outcome := attempt.Run(func() []any {
		return []any{divide(6, 2)}
	})
	if f, failed := outcome.Fault(); failed {
		fmt.Println("failed:", f.Error())
	} else {
		fmt.Println("6/2 =", outcome.Scalar())
	}

	// Division by zero is a stray panic, captured all the same.
	fmt.Println(attempt.Try1(
		func() int { return divide(1, 0) },
		func(f fault.Fault) int {
			fmt.Fprintln(os.Stderr, "recovered:", f.Error())
			return 0
		}))
}

func divide(a, b int) int {
	return a / b
}
