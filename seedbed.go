package seedbed

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts to an 8-bit color.RGBA for submission to Ebitengine.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp(c.R, 0, 1) * 255),
		G: uint8(clamp(c.G, 0, 1) * 255),
		B: uint8(clamp(c.B, 0, 1) * 255),
		A: uint8(clamp(c.A, 0, 1) * 255),
	}
}

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Swatch is one named entry of a garden's paint palette.
type Swatch struct {
	Name  string
	Color Color
}

// DefaultPalette is the built-in paint palette, cycled by single taps.
var DefaultPalette = []Swatch{
	{"rose", Color{R: 0.93, G: 0.35, B: 0.55, A: 1}},
	{"marigold", Color{R: 0.97, G: 0.72, B: 0.20, A: 1}},
	{"violet", Color{R: 0.62, G: 0.42, B: 0.90, A: 1}},
	{"sky", Color{R: 0.35, G: 0.68, B: 0.94, A: 1}},
	{"mint", Color{R: 0.38, G: 0.85, B: 0.58, A: 1}},
	{"ember", Color{R: 0.94, G: 0.45, B: 0.25, A: 1}},
}

// PlantID uniquely identifies a plant within one Garden. IDs start at 1 and
// are never reused, even after the garden is cleared. 0 means "no plant".
type PlantID uint64

// PlantKind distinguishes the two growth stages a plant toggles between.
type PlantKind uint8

const (
	KindSprout PlantKind = iota // a young shoot (the placement default)
	KindFlower                  // fully bloomed
)

// String returns the lowercase kind name.
func (k PlantKind) String() string {
	if k == KindFlower {
		return "flower"
	}
	return "sprout"
}

// EventType identifies a kind of garden event.
type EventType uint8

const (
	EventPlanted   EventType = iota // a new plant was placed
	EventTended                     // a plant became the selection
	EventMoving                     // live drag offset changed
	EventMoved                      // a drag committed
	EventTilting                    // live twist delta changed
	EventTilted                     // a twist committed
	EventResizing                   // live pinch factor changed
	EventResized                    // a pinch committed
	EventRecolored                  // a plant took the next palette color
	EventBloomed                    // a plant toggled between sprout and flower
	EventCleared                    // the whole garden was emptied
)

// Event describes one garden state change or live-gesture phase. Which
// fields are meaningful depends on Type: Pos for Planted/Moving/Moved,
// Angle for Tilting/Tilted, Scale for Resizing/Resized, Swatch for
// Recolored, Kind for Bloomed. Live phases (Moving/Tilting/Resizing)
// carry the uncommitted preview value.
type Event struct {
	Type   EventType
	ID     PlantID
	Pos    Vec2
	Angle  float64 // radians
	Scale  float64
	Swatch string
	Kind   PlantKind
}

// EventSink receives every event a Session emits. Use it to mirror garden
// activity into another system — see the Donburi adapter in seedbed/ecs.
type EventSink interface {
	EmitEvent(Event)
}
