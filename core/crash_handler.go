package core

import (
	"log"
	"runtime/debug"
)

// Go runs fn in a new goroutine, recovering any panic so one failing
// query cannot take the rest of a worker pool down with it. The panic
// and its stack trace are logged; the goroutine then exits normally.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("gridoracle: recovered panic: %v\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}
