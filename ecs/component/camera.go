package component

type Camera struct {
	Zoom float64
}

var CameraComponent = NewComponent[Camera]()

// ViewCamera binds a renderable to a named camera instead of the main one.
type ViewCamera struct {
	Camera string
}

var ViewCameraComponent = NewComponent[ViewCamera]()
