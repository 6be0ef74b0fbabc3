package component

// BuildOverlay marks the single entity that owns the build label.
type BuildOverlay struct {
	Label string
}

var BuildOverlayComponent = NewComponent[BuildOverlay]()
