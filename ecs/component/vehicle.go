package component

// Vehicle holds the handling parameters and kinematic state of the aircraft.
type Vehicle struct {
	CruiseSpeed float64
	MaxSpeed    float64
	MinSpeed    float64
	Accel       float64
	SteerRate   float64 // radians per second at full steer
	BankAngle   float64 // sprite roll at full steer

	Heading float64 // radians, 0 points up the screen
	Speed   float64
}

var VehicleComponent = NewComponent[Vehicle]()

// HandlingScript names a tengo script that reshapes Control before it reaches
// the vehicle.
type HandlingScript struct {
	Path string
}

var HandlingScriptComponent = NewComponent[HandlingScript]()
