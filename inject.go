package seedbed

// syntheticPointerEvent represents a single injected pointer sample.
// Events flow through the same recognizer path as real input, so gesture
// timing (long-press holds, double-tap windows) behaves identically.
type syntheticPointerEvent struct {
	pointer int
	x, y    float64
	pressed bool
}

// InjectPress queues a press for pointer slot 0 at the given scene
// coordinates. The event is consumed on the next [Session.Advance].
func (s *Session) InjectPress(x, y float64) {
	s.InjectPointer(0, x, y, true)
}

// InjectMove queues a move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (s *Session) InjectMove(x, y float64) {
	s.InjectPointer(0, x, y, true)
}

// InjectRelease queues a release for pointer slot 0.
func (s *Session) InjectRelease(x, y float64) {
	s.InjectPointer(0, x, y, false)
}

// InjectPointer queues a sample for an arbitrary pointer slot. Multi-touch
// gestures are scripted by interleaving slots; see [Script] for a
// ready-made pinch sequence.
func (s *Session) InjectPointer(pointer int, x, y float64, pressed bool) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		pointer: pointer,
		x:       x, y: y,
		pressed: pressed,
	})
}

// InjectTap queues a press followed by a release at the same coordinates.
// Consumes two frames; the tap itself resolves after the double-tap
// window lapses.
func (s *Session) InjectTap(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (s *Session) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// PendingInjections returns the number of queued synthetic events. The
// game loop skips real mouse input while this is nonzero so scripts are
// not disturbed by the cursor.
func (s *Session) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the recognizer. One event per frame keeps injected gestures on
// the same cadence as real ones.
func (s *Session) processInjectedInput() {
	if len(s.injectQueue) == 0 {
		return
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	s.rec.Pointer(evt.pointer, evt.x, evt.y, evt.pressed)
}
