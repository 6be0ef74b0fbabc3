// Package input merges per-frame axis contributions from on-screen controls.
//
// An Aggregator is owned by the game and handed to the frame driver, to every
// input source and to every consumer. The frame driver calls ResetFrame at the
// start of each update tick and EndFrame once the last consumer has read. Sources
// call AddHorizontal/AddVertical while they are pressed. Each write is added to
// the running value and the result is clamped to [-1, 1] immediately, so several
// sources pushing the same way saturate at 1 instead of summing past it.
package input

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/aerialrush/aerialrush/common"
)

var (
	// ErrWriteOutsideFrame is reported when a source writes before ResetFrame
	// or after EndFrame.
	ErrWriteOutsideFrame = errors.New("input: axis write outside an open frame")
	// ErrFrameNotEnded is reported when ResetFrame runs while the previous frame
	// is still open, usually a double reset.
	ErrFrameNotEnded = errors.New("input: frame reset before previous frame ended")
)

// Axis selects one of the two steering channels.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseAxis accepts the names used in prefab files.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "horizontal", "h", "x":
		return Horizontal, nil
	case "vertical", "v", "y":
		return Vertical, nil
	default:
		return 0, fmt.Errorf("input: unknown axis %q", s)
	}
}

// ViolationHandler receives phase violations when checks are enabled.
type ViolationHandler func(err error)

type Option func(*Aggregator)

// WithPhaseChecks overrides the build default for reporting phase violations.
func WithPhaseChecks(enabled bool) Option {
	return func(a *Aggregator) {
		a.checks = enabled
	}
}

// WithViolationHandler replaces the default log reporter.
func WithViolationHandler(fn ViolationHandler) Option {
	return func(a *Aggregator) {
		if fn != nil {
			a.onViolation = fn
		}
	}
}

// Aggregator is the frame input state. The zero value is usable with phase
// checks off; New applies the build default.
type Aggregator struct {
	h            float64
	v            float64
	contributors int

	open        bool
	checks      bool
	violations  int
	onViolation ViolationHandler
}

func New(opts ...Option) *Aggregator {
	a := &Aggregator{checks: phaseChecksDefault}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ResetFrame zeroes both axes and the contributor count and opens a new frame.
func (a *Aggregator) ResetFrame() {
	if a.checks && a.open {
		a.report(ErrFrameNotEnded)
	}
	a.h = 0
	a.v = 0
	a.contributors = 0
	a.open = true
}

// EndFrame closes the frame opened by ResetFrame. Values stay readable until
// the next reset.
func (a *Aggregator) EndFrame() {
	a.open = false
}

func (a *Aggregator) AddHorizontal(delta float64) {
	a.h = accumulate(a.h, delta)
	a.wrote()
}

func (a *Aggregator) AddVertical(delta float64) {
	a.v = accumulate(a.v, delta)
	a.wrote()
}

// Add writes delta to the given axis. Unknown axes are ignored.
func (a *Aggregator) Add(axis Axis, delta float64) {
	switch axis {
	case Horizontal:
		a.AddHorizontal(delta)
	case Vertical:
		a.AddVertical(delta)
	}
}

func (a *Aggregator) Horizontal() float64 { return a.h }
func (a *Aggregator) Vertical() float64   { return a.v }

// Active reports whether any source wrote since the last reset.
func (a *Aggregator) Active() bool { return a.contributors > 0 }

// Contributors is the number of writes since the last reset, clamped or not.
func (a *Aggregator) Contributors() int { return a.contributors }

func (a *Aggregator) FrameOpen() bool { return a.open }

// Violations counts reported phase violations over the aggregator's lifetime.
func (a *Aggregator) Violations() int { return a.violations }

func (a *Aggregator) wrote() {
	a.contributors++
	if a.checks && !a.open {
		a.report(ErrWriteOutsideFrame)
	}
}

func (a *Aggregator) report(err error) {
	a.violations++
	if a.onViolation != nil {
		a.onViolation(err)
		return
	}
	log.Printf("%v", err)
}

// accumulate adds then clamps. NaN cannot be clamped, so it contributes nothing.
func accumulate(cur, delta float64) float64 {
	if math.IsNaN(delta) {
		return cur
	}
	return common.Clamp(cur+delta, -1, 1)
}
