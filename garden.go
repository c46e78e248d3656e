package seedbed

// plantHitRadius is the radius in scene pixels of every plant's hit region.
// The region is deliberately independent of the plant's current rotation and
// scale so small plants stay easy to grab.
const plantHitRadius = 34.0

// Plant is one placed garden entity. Position, Rotation, Scale, Color, and
// Kind are the committed fields; in-flight gesture deltas live in a
// [Preview] and are folded in here only when a gesture releases.
type Plant struct {
	ID       PlantID
	Pos      Vec2
	Rotation float64 // radians, kept in [0, 2π)
	Scale    float64 // committed values stay in [ScaleMin, ScaleMax]
	Color    Color
	Kind     PlantKind
}

// Garden owns the committed state of the toy: an insertion-ordered list of
// plants (later plants draw on top) and the single tended plant id. The
// tended id is a weak reference — clearing the garden invalidates it
// without any plant holding a back-pointer.
type Garden struct {
	plants  []*Plant
	nextID  PlantID
	tended  PlantID
	palette []Swatch
	placed  int // round-robin cursor into palette for new plants
}

// NewGarden creates an empty garden using the given palette.
// A nil palette falls back to [DefaultPalette].
func NewGarden(palette []Swatch) *Garden {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &Garden{nextID: 1, palette: palette}
}

// Palette returns the garden's paint palette. The returned slice MUST NOT
// be mutated by the caller.
func (g *Garden) Palette() []Swatch {
	return g.palette
}

// Plants returns the plant list in placement order. The returned slice
// MUST NOT be mutated by the caller.
func (g *Garden) Plants() []*Plant {
	return g.plants
}

// Len returns the number of plants.
func (g *Garden) Len() int {
	return len(g.plants)
}

// Plant returns the plant with the given id, or nil if no such plant exists.
func (g *Garden) Plant(id PlantID) *Plant {
	for _, p := range g.plants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlantAt returns the topmost plant whose hit region contains the point,
// or nil. Later-placed plants draw on top, so the list is walked backward.
func (g *Garden) PlantAt(point Vec2) *Plant {
	for i := len(g.plants) - 1; i >= 0; i-- {
		p := g.plants[i]
		dx := point.X - p.Pos.X
		dy := point.Y - p.Pos.Y
		if dx*dx+dy*dy <= plantHitRadius*plantHitRadius {
			return p
		}
	}
	return nil
}

// PlaceAt creates a new sprout at the given scene point, appends it to the
// garden, and tends it. The color cycles round-robin through the palette so
// consecutive plantings are visually distinct. Always succeeds.
func (g *Garden) PlaceAt(point Vec2) *Plant {
	p := &Plant{
		ID:    g.nextID,
		Pos:   point,
		Scale: 1.0,
		Color: g.palette[g.placed%len(g.palette)].Color,
		Kind:  KindSprout,
	}
	g.nextID++
	g.placed++
	g.plants = append(g.plants, p)
	g.tended = p.ID
	return p
}

// Tend marks the plant with the given id as the selection. At most one
// plant is tended at a time; tending a new plant silently replaces the
// previous one. Unknown ids are ignored.
func (g *Garden) Tend(id PlantID) {
	if g.Plant(id) == nil {
		return
	}
	g.tended = id
}

// TendedID returns the id of the tended plant, or 0 if none.
func (g *Garden) TendedID() PlantID {
	return g.tended
}

// TendedPlant returns the tended plant, or nil if none is tended or the
// id has gone stale (garden cleared since).
func (g *Garden) TendedPlant() *Plant {
	if g.tended == 0 {
		return nil
	}
	return g.Plant(g.tended)
}

// Clear removes every plant and drops the selection. Plant ids are not
// reused afterward.
func (g *Garden) Clear() {
	for i := range g.plants {
		g.plants[i] = nil
	}
	g.plants = g.plants[:0]
	g.tended = 0
}

// CycleColor advances the plant's color to the next palette entry, wrapping
// after the last. A color that is not in the palette (possible only if the
// plant was mutated by hand) resets to the first entry. Returns the new
// swatch, or a zero Swatch for an unknown id.
func (g *Garden) CycleColor(id PlantID) Swatch {
	p := g.Plant(id)
	if p == nil {
		return Swatch{}
	}
	next := 0
	for i, sw := range g.palette {
		if sw.Color == p.Color {
			next = (i + 1) % len(g.palette)
			break
		}
	}
	p.Color = g.palette[next].Color
	return g.palette[next]
}

// ToggleKind flips the plant between sprout and flower. Returns the new
// kind; unknown ids return KindSprout and change nothing.
func (g *Garden) ToggleKind(id PlantID) PlantKind {
	p := g.Plant(id)
	if p == nil {
		return KindSprout
	}
	if p.Kind == KindSprout {
		p.Kind = KindFlower
	} else {
		p.Kind = KindSprout
	}
	return p.Kind
}
