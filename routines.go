package main

import (
	"fmt"
	"runtime"
)

// guarded runs f and turns a panic into an error carrying the stack, so one
// bad beatmap can't take down the other workers.
func guarded(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()
	return f()
}

func panicError(p any) error {
	buf := make([]byte, 100000)
	n := runtime.Stack(buf, false)
	return fmt.Errorf("panic: %v\n\n%s", p, buf[:n])
}
