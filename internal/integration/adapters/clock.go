// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/nutritrack/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock with the wall clock.
type systemClock struct{}

// NewSystemClock creates a clock reading the current system time in UTC.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current time in UTC.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
