package component

const (
	DefaultParallaxFactor = 1.2
	DefaultFollowLerp     = 12.0
	MinParallaxFactor     = 0.5
	MaxParallaxFactor     = 2.0
)

// ParallaxFollow moves its entity relative to a target, scaling the target's
// displacement from Origin by Factor. Factor above 1 exaggerates motion, which
// suits a foreground layer; the main camera uses exactly 1.
type ParallaxFollow struct {
	Target      string
	BaseOffsetX float64
	BaseOffsetY float64
	Factor      float64
	FollowLerp  float64
	OriginX     float64
	OriginY     float64
	// Snap places the entity on its desired position on the next update
	// instead of easing toward it.
	Snap bool
}

var ParallaxFollowComponent = NewComponent[ParallaxFollow]()
