// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock provides the current time. Every use case that depends on "now"
// (savings goal evaluation, current-month defaults, trailing-month windows)
// receives a Clock instead of calling time.Now directly, so tests can pin
// the time and outputs stay reproducible.
type Clock interface {
	Now() time.Time
}
