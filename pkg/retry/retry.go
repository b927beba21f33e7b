// Package retry runs an operation a bounded number of times with a delay
// between attempts.
package retry

import (
	"errors"
	"time"
)

var ErrExhausted = errors.New("retries exhausted")

// Policy bounds the attempts made by Do.
type Policy struct {
	Attempts int
	Delay    time.Duration
}

// Default is three attempts a tenth of a second apart.
var Default = Policy{Attempts: 3, Delay: 100 * time.Millisecond}

// sleep is replaced in tests.
var sleep = time.Sleep

// Do calls fn until it reports done or returns an error, waiting p.Delay
// after each attempt that did neither.  After p.Attempts such attempts Do
// returns ErrExhausted.  A policy with fewer than one attempt still calls fn
// once.
func (p Policy) Do(fn func() (bool, error)) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	for k := 0; k < attempts; k++ {
		done, err := fn()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		sleep(p.Delay)
	}
	return ErrExhausted
}
