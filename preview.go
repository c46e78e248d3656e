package seedbed

// Committed scale bounds. Live pinch previews may render outside this range;
// the clamp applies once, when the pinch commits.
const (
	ScaleMin = 0.5
	ScaleMax = 2.0
)

// Preview holds the ephemeral deltas of in-flight gestures on the tended
// plant. The three gestures are tracked independently: each arms against
// the selection at its begin time, accumulates while held, and folds its
// delta into the plant's committed field at end time. Releasing one gesture
// never disturbs the other two.
//
// Each End is a strict no-op when the selection changed mid-gesture: the
// armed id must still be the tended id at release, otherwise the stale
// delta is discarded.
type Preview struct {
	DragOffset  Vec2    // live translation, zero when no drag is armed
	TiltDelta   float64 // live rotation delta in radians, zero when no twist is armed
	PinchFactor float64 // live scale multiplier, 1 when no pinch is armed

	scaleMin float64
	scaleMax float64

	dragTarget  PlantID
	tiltTarget  PlantID
	pinchTarget PlantID
}

// NewPreview creates an idle preview with the default commit clamp bounds.
func NewPreview() *Preview {
	return &Preview{PinchFactor: 1, scaleMin: ScaleMin, scaleMax: ScaleMax}
}

// SetScaleBounds overrides the committed scale clamp range.
// Invalid bounds (min <= 0 or min > max) are ignored.
func (pv *Preview) SetScaleBounds(min, max float64) {
	if min <= 0 || min > max {
		return
	}
	pv.scaleMin = min
	pv.scaleMax = max
}

// Active reports whether any gesture is currently armed.
func (pv *Preview) Active() bool {
	return pv.dragTarget != 0 || pv.tiltTarget != 0 || pv.pinchTarget != 0
}

// Dragging reports whether a drag is armed.
func (pv *Preview) Dragging() bool { return pv.dragTarget != 0 }

// Tilting reports whether a twist is armed.
func (pv *Preview) Tilting() bool { return pv.tiltTarget != 0 }

// Pinching reports whether a pinch is armed.
func (pv *Preview) Pinching() bool { return pv.pinchTarget != 0 }

// --- Drag ---

// BeginDrag arms a drag against plant id. The drag only arms when id is the
// garden's tended plant; gestures on any other plant are ignored entirely.
// Reports whether the drag armed.
func (pv *Preview) BeginDrag(g *Garden, id PlantID) bool {
	if id == 0 || id != g.TendedID() {
		return false
	}
	pv.dragTarget = id
	pv.DragOffset = Vec2{}
	return true
}

// DragBy accumulates a live translation delta. No-op unless a drag is armed.
func (pv *Preview) DragBy(dx, dy float64) {
	if pv.dragTarget == 0 {
		return
	}
	pv.DragOffset.X += dx
	pv.DragOffset.Y += dy
}

// EndDrag commits the accumulated offset onto the armed plant's position
// and resets the live value to zero. The offset is applied exactly once:
// the live value is zeroed before the garden mutation so a redraw between
// the two can never double-count. Returns the committed plant, or nil if
// the drag never armed or the selection changed mid-gesture.
func (pv *Preview) EndDrag(g *Garden) *Plant {
	id, off := pv.dragTarget, pv.DragOffset
	pv.dragTarget = 0
	pv.DragOffset = Vec2{}
	if id == 0 || id != g.TendedID() {
		return nil
	}
	p := g.Plant(id)
	if p == nil {
		return nil
	}
	p.Pos.X += off.X
	p.Pos.Y += off.Y
	return p
}

// --- Tilt (two-finger twist) ---

// BeginTilt arms a twist against plant id, under the same selection gate
// as BeginDrag.
func (pv *Preview) BeginTilt(g *Garden, id PlantID) bool {
	if id == 0 || id != g.TendedID() {
		return false
	}
	pv.tiltTarget = id
	pv.TiltDelta = 0
	return true
}

// TiltBy accumulates a live rotation delta in radians.
func (pv *Preview) TiltBy(delta float64) {
	if pv.tiltTarget == 0 {
		return
	}
	pv.TiltDelta += delta
}

// EndTilt commits the accumulated delta onto the plant's rotation, wrapping
// the result into [0, 2π). Same staleness rules as EndDrag.
func (pv *Preview) EndTilt(g *Garden) *Plant {
	id, delta := pv.tiltTarget, pv.TiltDelta
	pv.tiltTarget = 0
	pv.TiltDelta = 0
	if id == 0 || id != g.TendedID() {
		return nil
	}
	p := g.Plant(id)
	if p == nil {
		return nil
	}
	p.Rotation = normalizeAngle(p.Rotation + delta)
	return p
}

// --- Pinch ---

// BeginPinch arms a pinch against plant id, under the same selection gate
// as BeginDrag.
func (pv *Preview) BeginPinch(g *Garden, id PlantID) bool {
	if id == 0 || id != g.TendedID() {
		return false
	}
	pv.pinchTarget = id
	pv.PinchFactor = 1
	return true
}

// PinchBy multiplies the live scale factor by ratio. The live factor is
// unclamped so the preview can visibly overshoot the commit bounds.
func (pv *Preview) PinchBy(ratio float64) {
	if pv.pinchTarget == 0 {
		return
	}
	pv.PinchFactor *= ratio
}

// EndPinch commits scale = clamp(committed * live, min, max) and resets the
// live factor to 1. The clamp happens only here, after accumulation, so
// an overshooting preview still lands on a legal committed value. Same
// staleness rules as EndDrag.
func (pv *Preview) EndPinch(g *Garden) *Plant {
	id, factor := pv.pinchTarget, pv.PinchFactor
	pv.pinchTarget = 0
	pv.PinchFactor = 1
	if id == 0 || id != g.TendedID() {
		return nil
	}
	p := g.Plant(id)
	if p == nil {
		return nil
	}
	p.Scale = clamp(p.Scale*factor, pv.scaleMin, pv.scaleMax)
	return p
}

// --- Composition ---

// Rendered returns the plant's on-screen position, rotation, and scale:
// the committed fields composed with whichever live deltas are armed on
// this plant. Plants other than the tended one always render their
// committed fields. The same formula is used at render time and (per
// gesture) at commit time.
func (pv *Preview) Rendered(g *Garden, p *Plant) (pos Vec2, rotation, scale float64) {
	pos, rotation, scale = p.Pos, p.Rotation, p.Scale
	if p.ID != g.TendedID() {
		return pos, rotation, scale
	}
	if pv.dragTarget == p.ID {
		pos.X += pv.DragOffset.X
		pos.Y += pv.DragOffset.Y
	}
	if pv.tiltTarget == p.ID {
		rotation += pv.TiltDelta
	}
	if pv.pinchTarget == p.ID {
		scale *= pv.PinchFactor
	}
	return pos, rotation, scale
}
