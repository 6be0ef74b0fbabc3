package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS matches ebiten's default tick rate; every system treats one Update
	// as DeltaTime seconds.
	TPS       = 60
	DeltaTime = 1.0 / TPS
)
