package component

// Transform is a world-space position. Y grows downward on screen, so the
// vehicle flying "forward" moves toward negative Y.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
