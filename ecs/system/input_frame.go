package system

import (
	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/input"
)

// InputFrameSystem must run before every input source. It opens the
// aggregator's frame for this tick.
type InputFrameSystem struct {
	agg *input.Aggregator
}

func NewInputFrameSystem(agg *input.Aggregator) *InputFrameSystem {
	return &InputFrameSystem{agg: agg}
}

func (s *InputFrameSystem) Update(_ *ecs.World) {
	if s == nil || s.agg == nil {
		return
	}
	s.agg.ResetFrame()
}

// InputFrameEndSystem runs after the last consumer and closes the frame.
type InputFrameEndSystem struct {
	agg *input.Aggregator
}

func NewInputFrameEndSystem(agg *input.Aggregator) *InputFrameEndSystem {
	return &InputFrameEndSystem{agg: agg}
}

func (s *InputFrameEndSystem) Update(_ *ecs.World) {
	if s == nil || s.agg == nil {
		return
	}
	s.agg.EndFrame()
}
