package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

const (
	VehicleFile  = "vehicle.yaml"
	CameraFile   = "camera.yaml"
	ParallaxFile = "parallax.yaml"
	ControlsFile = "controls.yaml"
)

type VehicleSpec struct {
	Name           string          `yaml:"name"`
	Transform      TransformSpec   `yaml:"transform"`
	Sprite         AircraftSprite  `yaml:"sprite"`
	RenderLayer    RenderLayerSpec `yaml:"render_layer"`
	Vehicle        VehicleParams   `yaml:"vehicle"`
	Physics        PhysicsSpec     `yaml:"physics"`
	HandlingScript string          `yaml:"handling_script"`
}

func LoadVehicleSpec() (*VehicleSpec, error) {
	spec, err := LoadSpec[VehicleSpec](VehicleFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type VehicleParams struct {
	CruiseSpeed float64 `yaml:"cruise_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	MinSpeed    float64 `yaml:"min_speed"`
	Accel       float64 `yaml:"accel"`
	SteerRate   float64 `yaml:"steer_rate"`
	BankAngle   float64 `yaml:"bank_angle"`
}

type PhysicsSpec struct {
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
}

type AircraftSprite struct {
	Size int       `yaml:"size"`
	Body YAMLColor `yaml:"body"`
	Wing YAMLColor `yaml:"wing"`
}

type CameraSpec struct {
	Name   string     `yaml:"name"`
	Target string     `yaml:"target"`
	Zoom   float64    `yaml:"zoom"`
	Follow FollowSpec `yaml:"follow"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type FollowSpec struct {
	BaseOffsetX float64 `yaml:"base_offset_x"`
	BaseOffsetY float64 `yaml:"base_offset_y"`
	Factor      float64 `yaml:"factor"`
	FollowLerp  float64 `yaml:"follow_lerp"`
}

type ParallaxSpec struct {
	Layers []ParallaxLayerSpec `yaml:"layers"`
}

func LoadParallaxSpec() (*ParallaxSpec, error) {
	spec, err := LoadSpec[ParallaxSpec](ParallaxFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ParallaxLayerSpec describes a strip of decor seen through one camera. When
// Follow is set and Camera is not the main camera, a follower camera with that
// name is created.
type ParallaxLayerSpec struct {
	Name        string          `yaml:"name"`
	Camera      string          `yaml:"camera"`
	Follow      *FollowSpec     `yaml:"follow"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
	Tiles       TileStripSpec   `yaml:"tiles"`
}

type TileStripSpec struct {
	Columns []float64 `yaml:"columns"`
	Count   int       `yaml:"count"`
	Spacing float64   `yaml:"spacing"`
	Width   int       `yaml:"width"`
	Height  int       `yaml:"height"`
	Color   YAMLColor `yaml:"color"`
}

type ControlsSpec struct {
	// Visible is one of "auto", "always" or "never". Auto shows the buttons
	// once a touch has been seen.
	Visible string       `yaml:"visible"`
	Buttons []ButtonSpec `yaml:"buttons"`
}

func LoadControlsSpec() (*ControlsSpec, error) {
	spec, err := LoadSpec[ControlsSpec](ControlsFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ButtonSpec struct {
	Label  string  `yaml:"label"`
	Axis   string  `yaml:"axis"`
	Value  float64 `yaml:"value"`
	Anchor string  `yaml:"anchor"`
	X      int     `yaml:"x"`
	Y      int     `yaml:"y"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns c, or fallback when the color was not set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
