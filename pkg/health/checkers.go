package health

import (
	"context"
	"fmt"
	"runtime"
)

// GoroutineCountCheck fails when the goroutine count exceeds threshold,
// catching goroutine leaks before they exhaust memory.
func GoroutineCountCheck(threshold int) CheckFunc {
	return func(context.Context) error {
		if n := runtime.NumGoroutine(); n > threshold {
			return fmt.Errorf("too many goroutines: %d > %d", n, threshold)
		}
		return nil
	}
}
