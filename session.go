package seedbed

// Session wires a [Garden], a [Preview], and a [Recognizer] into the
// playable toy. Pointer samples go in through [Session.Pointer] and
// [Session.Advance]; every resulting state change comes out as an [Event]
// through the optional sink and as a one-line human-readable status.
//
// Gesture routing:
//   - tap on bare soil: plant a sprout there
//   - tap on a plant: cycle its color
//   - double tap on a plant: toggle sprout/flower
//   - double tap on bare soil: plant once, at the first tap
//   - long-press on a plant: tend (select) it
//   - long-press on bare soil: clear the garden
//   - drag beginning on the tended plant: live move
//   - two-finger pinch/twist: live resize and tilt of the tended plant
//
// All three transform gestures preview live and commit independently on
// release; see [Preview] for the commit rules.
type Session struct {
	garden  *Garden
	preview *Preview
	rec     *Recognizer
	sink    EventSink
	status  string

	injectQueue []syntheticPointerEvent
	script      *Script

	dragPointer int // pointer slot that armed the live drag, -1 when none
}

// NewSession creates a session from the given config. Zero-value fields of
// cfg fall back to the package defaults, so NewSession(Config{}) works.
func NewSession(cfg Config) *Session {
	cfg.applyDefaults()

	rec := NewRecognizer()
	rec.DragDeadZone = cfg.Gestures.DragDeadZone
	rec.LongPressSeconds = cfg.Gestures.LongPressSeconds
	rec.DoubleTapSeconds = cfg.Gestures.DoubleTapSeconds

	pv := NewPreview()
	pv.SetScaleBounds(cfg.Scale.Min, cfg.Scale.Max)

	s := &Session{
		garden:      NewGarden(cfg.swatches()),
		preview:     pv,
		rec:         rec,
		dragPointer: -1,
	}

	rec.OnTap = s.tap
	rec.OnDoubleTap = s.doubleTap
	rec.OnLongPress = s.longPress
	rec.OnDragStart = s.dragStart
	rec.OnDrag = s.drag
	rec.OnDragEnd = s.dragEnd
	rec.OnPinchStart = s.pinchStart
	rec.OnPinch = s.pinchMove
	rec.OnPinchEnd = s.pinchEnd
	return s
}

// Garden returns the session's committed state.
func (s *Session) Garden() *Garden {
	return s.garden
}

// Preview returns the session's live gesture deltas.
func (s *Session) Preview() *Preview {
	return s.preview
}

// Recognizer returns the session's gesture recognizer, for threshold
// tweaks after construction.
func (s *Session) Recognizer() *Recognizer {
	return s.rec
}

// Status returns the human-readable one-liner describing the last action.
func (s *Session) Status() string {
	return s.status
}

// SetEventSink installs a sink that receives every emitted event.
// Pass nil to detach.
func (s *Session) SetEventSink(sink EventSink) {
	s.sink = sink
}

// Pointer feeds one real pointer sample for this frame.
// See [Recognizer.Pointer] for slot semantics.
func (s *Session) Pointer(id int, x, y float64, pressed bool) {
	s.rec.Pointer(id, x, y, pressed)
}

// Advance steps the attached script (if any), consumes one queued
// synthetic event, then advances the recognizer's clocks by dt seconds.
// Call once per frame.
func (s *Session) Advance(dt float64) {
	if s.script != nil {
		s.script.step(s)
	}
	s.processInjectedInput()
	s.rec.Advance(dt)
}

func (s *Session) emit(e Event) {
	s.status = statusLine(e)
	if s.sink != nil {
		s.sink.EmitEvent(e)
	}
}

// --- Gesture handlers ---

func (s *Session) tap(e TapEvent) {
	pt := Vec2{X: e.X, Y: e.Y}
	if p := s.garden.PlantAt(pt); p != nil {
		sw := s.garden.CycleColor(p.ID)
		s.emit(Event{Type: EventRecolored, ID: p.ID, Swatch: sw.Name})
		return
	}
	p := s.garden.PlaceAt(pt)
	s.emit(Event{Type: EventPlanted, ID: p.ID, Pos: p.Pos, Kind: p.Kind})
}

func (s *Session) doubleTap(e TapEvent) {
	pt := Vec2{X: e.X, Y: e.Y}
	if p := s.garden.PlantAt(pt); p != nil {
		kind := s.garden.ToggleKind(p.ID)
		s.emit(Event{Type: EventBloomed, ID: p.ID, Kind: kind})
		return
	}
	// Two quick taps on bare soil plant once, at the first tap.
	p := s.garden.PlaceAt(pt)
	s.emit(Event{Type: EventPlanted, ID: p.ID, Pos: p.Pos, Kind: p.Kind})
}

func (s *Session) longPress(e LongPressEvent) {
	pt := Vec2{X: e.X, Y: e.Y}
	if p := s.garden.PlantAt(pt); p != nil {
		s.garden.Tend(p.ID)
		s.emit(Event{Type: EventTended, ID: p.ID, Pos: p.Pos})
		return
	}
	// The press origin decides: a hold that began on a plant never clears.
	s.garden.Clear()
	s.emit(Event{Type: EventCleared})
}

func (s *Session) dragStart(e DragEvent) {
	p := s.garden.PlantAt(Vec2{X: e.StartX, Y: e.StartY})
	if p == nil {
		return
	}
	if !s.preview.BeginDrag(s.garden, p.ID) {
		return // not the tended plant; the gesture has no effect
	}
	s.dragPointer = e.Pointer
	// Include the dead-zone crossing movement so the plant tracks the
	// finger from the press origin.
	s.preview.DragBy(e.DeltaX, e.DeltaY)
	s.emit(Event{Type: EventMoving, ID: p.ID, Pos: s.preview.DragOffset})
}

func (s *Session) drag(e DragEvent) {
	// Only the pointer that armed the drag moves the plant; a second
	// finger dragging across the soil stays inert.
	if !s.preview.Dragging() || e.Pointer != s.dragPointer {
		return
	}
	s.preview.DragBy(e.DeltaX, e.DeltaY)
	s.emit(Event{Type: EventMoving, ID: s.garden.TendedID(), Pos: s.preview.DragOffset})
}

func (s *Session) dragEnd(e DragEvent) {
	if !s.preview.Dragging() || e.Pointer != s.dragPointer {
		return
	}
	s.dragPointer = -1
	s.preview.DragBy(e.DeltaX, e.DeltaY)
	if p := s.preview.EndDrag(s.garden); p != nil {
		s.emit(Event{Type: EventMoved, ID: p.ID, Pos: p.Pos})
	}
}

func (s *Session) pinchStart(PinchEvent) {
	id := s.garden.TendedID()
	s.preview.BeginPinch(s.garden, id)
	s.preview.BeginTilt(s.garden, id)
}

func (s *Session) pinchMove(e PinchEvent) {
	p := s.garden.TendedPlant()
	if p == nil {
		return
	}
	if e.FactorDelta != 1 && s.preview.Pinching() {
		s.preview.PinchBy(e.FactorDelta)
		s.emit(Event{Type: EventResizing, ID: p.ID, Scale: p.Scale * s.preview.PinchFactor})
	}
	if e.AngleDelta != 0 && s.preview.Tilting() {
		s.preview.TiltBy(e.AngleDelta)
		s.emit(Event{Type: EventTilting, ID: p.ID, Angle: s.preview.TiltDelta})
	}
}

func (s *Session) pinchEnd(PinchEvent) {
	// Both channels disarm, but only the ones that accumulated a delta
	// announce a commit. A pure twist never resized and vice versa.
	resized := s.preview.PinchFactor != 1
	tilted := s.preview.TiltDelta != 0
	if p := s.preview.EndPinch(s.garden); p != nil && resized {
		s.emit(Event{Type: EventResized, ID: p.ID, Scale: p.Scale})
	}
	if p := s.preview.EndTilt(s.garden); p != nil && tilted {
		s.emit(Event{Type: EventTilted, ID: p.ID, Angle: p.Rotation})
	}
}

// --- Single-pointer conveniences ---

// NudgeScale applies a one-step pinch of the given factor to the tended
// plant, committing (and clamping) immediately. Used by the demo's mouse
// wheel fallback. No-op while a real pinch is live or nothing is tended.
func (s *Session) NudgeScale(factor float64) {
	if s.preview.Pinching() {
		return
	}
	if !s.preview.BeginPinch(s.garden, s.garden.TendedID()) {
		return
	}
	s.preview.PinchBy(factor)
	if p := s.preview.EndPinch(s.garden); p != nil {
		s.emit(Event{Type: EventResized, ID: p.ID, Scale: p.Scale})
	}
}

// NudgeTilt applies a one-step twist of delta radians to the tended plant,
// committing immediately. No-op while a real twist is live.
func (s *Session) NudgeTilt(delta float64) {
	if s.preview.Tilting() {
		return
	}
	if !s.preview.BeginTilt(s.garden, s.garden.TendedID()) {
		return
	}
	s.preview.TiltBy(delta)
	if p := s.preview.EndTilt(s.garden); p != nil {
		s.emit(Event{Type: EventTilted, ID: p.ID, Angle: p.Rotation})
	}
}
