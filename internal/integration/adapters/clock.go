package adapters

import (
	"time"

	"github.com/budget-pilot/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock using the wall clock in UTC.
type systemClock struct{}

// NewSystemClock creates a Clock backed by time.Now.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
