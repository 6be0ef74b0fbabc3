package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// CameraTag marks the main camera. Renderables without a ViewCamera use it.
type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// Name lets prefabs refer to entities by string.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
