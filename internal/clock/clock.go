// Package clock abstracts "now" so services can compute billing dates
// against an injectable evaluation time.
package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// NewSystem returns the wall clock.
func NewSystem() Clock { return System{} }

// Module provides the wall clock to the fx graph.
var Module = fx.Module("clock",
	fx.Provide(NewSystem),
)
