package component

// InputSource records which modality produced the current Control.
type InputSource int

const (
	SourceNone InputSource = iota
	SourceTouch
	SourceKeyboard
	SourceGamepad
)

func (s InputSource) String() string {
	switch s {
	case SourceTouch:
		return "touch"
	case SourceKeyboard:
		return "keyboard"
	case SourceGamepad:
		return "gamepad"
	default:
		return "none"
	}
}

// Control is the per-frame steering intent of a vehicle, both axes in [-1, 1].
type Control struct {
	Steer    float64
	Throttle float64
	Source   InputSource
}

var ControlComponent = NewComponent[Control]()
