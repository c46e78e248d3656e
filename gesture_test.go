package seedbed

import (
	"math"
	"testing"
)

const frame = 1.0 / 60

// gestureLog records every recognizer callback in order.
type gestureLog struct {
	taps        []TapEvent
	doubleTaps  []TapEvent
	longPresses []LongPressEvent
	dragStarts  []DragEvent
	drags       []DragEvent
	dragEnds    []DragEvent
	pinchStarts []PinchEvent
	pinches     []PinchEvent
	pinchEnds   []PinchEvent
}

func newLoggedRecognizer() (*Recognizer, *gestureLog) {
	r := NewRecognizer()
	log := &gestureLog{}
	r.OnTap = func(e TapEvent) { log.taps = append(log.taps, e) }
	r.OnDoubleTap = func(e TapEvent) { log.doubleTaps = append(log.doubleTaps, e) }
	r.OnLongPress = func(e LongPressEvent) { log.longPresses = append(log.longPresses, e) }
	r.OnDragStart = func(e DragEvent) { log.dragStarts = append(log.dragStarts, e) }
	r.OnDrag = func(e DragEvent) { log.drags = append(log.drags, e) }
	r.OnDragEnd = func(e DragEvent) { log.dragEnds = append(log.dragEnds, e) }
	r.OnPinchStart = func(e PinchEvent) { log.pinchStarts = append(log.pinchStarts, e) }
	r.OnPinch = func(e PinchEvent) { log.pinches = append(log.pinches, e) }
	r.OnPinchEnd = func(e PinchEvent) { log.pinchEnds = append(log.pinchEnds, e) }
	return r, log
}

// advance steps the recognizer n frames with no pointer movement.
func advance(r *Recognizer, n int) {
	for i := 0; i < n; i++ {
		r.Advance(frame)
	}
}

// framesFor returns enough frames to exceed the given duration.
func framesFor(seconds float64) int {
	return int(math.Ceil(seconds/frame)) + 1
}

// --- Taps ---

func TestTap_ResolvesAfterWindow(t *testing.T) {
	r, log := newLoggedRecognizer()

	r.Pointer(0, 100, 200, true)
	r.Advance(frame)
	r.Pointer(0, 100, 200, false)

	// The tap is held back while a second tap could still pair with it.
	r.Advance(frame)
	if len(log.taps) != 0 {
		t.Fatal("tap fired before the double-tap window lapsed")
	}

	advance(r, framesFor(r.DoubleTapSeconds))
	if len(log.taps) != 1 {
		t.Fatalf("taps = %d, want 1", len(log.taps))
	}
	if log.taps[0].X != 100 || log.taps[0].Y != 200 {
		t.Errorf("tap at (%v, %v), want (100, 200)", log.taps[0].X, log.taps[0].Y)
	}
	if len(log.doubleTaps) != 0 {
		t.Error("lone tap misreported as a double")
	}
}

func TestTap_WithinDeadZone(t *testing.T) {
	r, log := newLoggedRecognizer()

	r.Pointer(0, 100, 100, true)
	r.Advance(frame)
	r.Pointer(0, 102, 101, true) // jitter inside the dead zone
	r.Advance(frame)
	r.Pointer(0, 102, 101, false)
	advance(r, framesFor(r.DoubleTapSeconds))

	if len(log.taps) != 1 {
		t.Fatalf("taps = %d, want 1 (jitter should not become a drag)", len(log.taps))
	}
	if len(log.dragStarts) != 0 {
		t.Error("dead-zone jitter started a drag")
	}
	// The tap reports the press origin, not the release position.
	if log.taps[0].X != 100 || log.taps[0].Y != 100 {
		t.Errorf("tap at (%v, %v), want press origin (100, 100)", log.taps[0].X, log.taps[0].Y)
	}
}

func TestDoubleTap(t *testing.T) {
	r, log := newLoggedRecognizer()

	r.Pointer(0, 100, 100, true)
	r.Advance(frame)
	r.Pointer(0, 100, 100, false)
	advance(r, 3)
	r.Pointer(0, 105, 102, true) // within slop of the first tap
	r.Advance(frame)
	r.Pointer(0, 105, 102, false)
	advance(r, framesFor(r.DoubleTapSeconds))

	if len(log.doubleTaps) != 1 {
		t.Fatalf("doubleTaps = %d, want 1", len(log.doubleTaps))
	}
	if len(log.taps) != 0 {
		t.Fatalf("a double tap also fired %d single taps", len(log.taps))
	}
	// The double reports the first tap's position.
	if log.doubleTaps[0].X != 100 || log.doubleTaps[0].Y != 100 {
		t.Errorf("double tap at (%v, %v), want (100, 100)", log.doubleTaps[0].X, log.doubleTaps[0].Y)
	}
}

func TestDoubleTap_FarApartResolvesTwoSingles(t *testing.T) {
	r, log := newLoggedRecognizer()

	r.Pointer(0, 100, 100, true)
	r.Advance(frame)
	r.Pointer(0, 100, 100, false)
	advance(r, 3)
	r.Pointer(0, 300, 300, true) // outside slop
	r.Advance(frame)
	r.Pointer(0, 300, 300, false)
	advance(r, framesFor(r.DoubleTapSeconds))

	if len(log.doubleTaps) != 0 {
		t.Error("far-apart taps paired as a double")
	}
	if len(log.taps) != 2 {
		t.Fatalf("taps = %d, want 2", len(log.taps))
	}
	if log.taps[0].X != 100 || log.taps[1].X != 300 {
		t.Errorf("tap order wrong: %v then %v", log.taps[0], log.taps[1])
	}
}

func TestTap_SlowTapsStaySingles(t *testing.T) {
	r, log := newLoggedRecognizer()

	for i := 0; i < 2; i++ {
		r.Pointer(0, 100, 100, true)
		r.Advance(frame)
		r.Pointer(0, 100, 100, false)
		advance(r, framesFor(r.DoubleTapSeconds))
	}

	if len(log.taps) != 2 || len(log.doubleTaps) != 0 {
		t.Errorf("taps = %d, doubles = %d, want 2 and 0", len(log.taps), len(log.doubleTaps))
	}
}

func TestCancelPending(t *testing.T) {
	r, log := newLoggedRecognizer()

	r.Pointer(0, 100, 100, true)
	r.Advance(frame)
	r.Pointer(0, 100, 100, false)
	r.CancelPending()
	advance(r, framesFor(r.DoubleTapSeconds))

	if len(log.taps) != 0 {
		t.Error("cancelled tap still fired")
	}
}

// --- Long-press ---

func TestLongPress(t *testing.T) {
	r, log := newLoggedRecognizer()

	r.Pointer(0, 150, 250, true)
	advance(r, framesFor(r.LongPressSeconds))

	if len(log.longPresses) != 1 {
		t.Fatalf("longPresses = %d, want 1", len(log.longPresses))
	}
	if log.longPresses[0].X != 150 || log.longPresses[0].Y != 250 {
		t.Errorf("long-press at (%v, %v), want (150, 250)", log.longPresses[0].X, log.longPresses[0].Y)
	}

	// Continue holding: fires exactly once.
	advance(r, framesFor(r.LongPressSeconds))
	if len(log.longPresses) != 1 {
		t.Errorf("long-press fired %d times for one hold", len(log.longPresses))
	}

	// Release: no tap, the hold consumed it.
	r.Pointer(0, 150, 250, false)
	advance(r, framesFor(r.DoubleTapSeconds))
	if len(log.taps) != 0 {
		t.Error("long-press release produced a tap")
	}
}

func TestLongPress_DriftReportsPressOrigin(t *testing.T) {
	r, log := newLoggedRecognizer()

	r.Pointer(0, 150, 250, true)
	r.Advance(frame)
	r.Pointer(0, 152, 251, true) // drift inside the dead zone
	advance(r, framesFor(r.LongPressSeconds))

	if len(log.longPresses) != 1 {
		t.Fatalf("longPresses = %d, want 1", len(log.longPresses))
	}
	if log.longPresses[0].X != 150 || log.longPresses[0].Y != 250 {
		t.Errorf("long-press at (%v, %v), want press origin", log.longPresses[0].X, log.longPresses[0].Y)
	}
}

func TestLongPress_CancelledByDrag(t *testing.T) {
	r, log := newLoggedRecognizer()

	r.Pointer(0, 100, 100, true)
	r.Advance(frame)
	r.Pointer(0, 130, 100, true) // well past the dead zone
	advance(r, framesFor(r.LongPressSeconds))

	if len(log.longPresses) != 0 {
		t.Error("dragging pointer still long-pressed")
	}
	if len(log.dragStarts) != 1 {
		t.Errorf("dragStarts = %d, want 1", len(log.dragStarts))
	}
}

func TestLongPress_SlowReleaseNoTap(t *testing.T) {
	r, log := newLoggedRecognizer()

	// Hold past the threshold, then release without moving.
	r.Pointer(0, 100, 100, true)
	advance(r, framesFor(r.LongPressSeconds))
	r.Pointer(0, 100, 100, false)
	advance(r, framesFor(r.DoubleTapSeconds))

	if len(log.taps) != 0 {
		t.Error("slow press resolved as a tap")
	}
	if len(log.longPresses) != 1 {
		t.Errorf("longPresses = %d, want 1", len(log.longPresses))
	}
}

func TestLongPress_ThenDragInSameHold(t *testing.T) {
	r, log := newLoggedRecognizer()

	// Press-to-tend, then move while still holding.
	r.Pointer(0, 100, 100, true)
	advance(r, framesFor(r.LongPressSeconds))
	if len(log.longPresses) != 1 {
		t.Fatal("long-press did not fire")
	}

	r.Pointer(0, 140, 100, true)
	if len(log.dragStarts) != 1 {
		t.Fatalf("dragStarts = %d, want 1 after post-press movement", len(log.dragStarts))
	}

	r.Pointer(0, 140, 100, false)
	if len(log.dragEnds) != 1 {
		t.Errorf("dragEnds = %d, want 1", len(log.dragEnds))
	}
}

// --- Drag ---

func TestDrag_DeadZoneCrossing(t *testing.T) {
	r, log := newLoggedRecognizer()

	r.Pointer(0, 100, 100, true)
	r.Advance(frame)
	r.Pointer(0, 103, 100, true) // inside dead zone (default 4)
	if len(log.dragStarts) != 0 {
		t.Fatal("drag started inside the dead zone")
	}

	r.Pointer(0, 110, 100, true) // crosses
	if len(log.dragStarts) != 1 {
		t.Fatalf("dragStarts = %d, want 1", len(log.dragStarts))
	}

	// The start event carries the movement since the press origin, so no
	// motion is lost to the dead zone. The crossing sample fires only the
	// start, never a same-sample OnDrag.
	start := log.dragStarts[0]
	if start.StartX != 100 || start.DeltaX != 10 {
		t.Errorf("dragStart startX=%v deltaX=%v, want 100 and 10", start.StartX, start.DeltaX)
	}
	if len(log.drags) != 0 {
		t.Fatalf("drags = %d on the crossing sample, want 0", len(log.drags))
	}

	// Subsequent drags carry per-sample deltas.
	r.Pointer(0, 125, 105, true)
	if len(log.drags) != 1 {
		t.Fatalf("drags = %d, want 1", len(log.drags))
	}
	if log.drags[0].DeltaX != 15 || log.drags[0].DeltaY != 5 {
		t.Errorf("drag delta = (%v, %v), want (15, 5)", log.drags[0].DeltaX, log.drags[0].DeltaY)
	}

	r.Pointer(0, 125, 105, false)
	if len(log.dragEnds) != 1 {
		t.Fatalf("dragEnds = %d, want 1", len(log.dragEnds))
	}

	// A completed drag is not also a tap.
	advance(r, framesFor(r.DoubleTapSeconds))
	if len(log.taps) != 0 {
		t.Error("drag release produced a tap")
	}
}

func TestDrag_DeltasSumToTotal(t *testing.T) {
	r, log := newLoggedRecognizer()

	r.Pointer(0, 100, 100, true)
	path := [][2]float64{{110, 104}, {125, 110}, {140, 98}, {160, 120}}
	for _, pt := range path {
		r.Advance(frame)
		r.Pointer(0, pt[0], pt[1], true)
	}
	r.Pointer(0, 160, 120, false)

	dx, dy := 0.0, 0.0
	for _, e := range log.dragStarts {
		dx += e.DeltaX
		dy += e.DeltaY
	}
	for _, e := range log.drags {
		dx += e.DeltaX
		dy += e.DeltaY
	}
	for _, e := range log.dragEnds {
		dx += e.DeltaX
		dy += e.DeltaY
	}
	if !almostEqual(dx, 60) || !almostEqual(dy, 20) {
		t.Errorf("summed deltas = (%v, %v), want (60, 20)", dx, dy)
	}
}

// --- Pinch ---

// pinchDown presses two touch pointers at the given coordinates.
func pinchDown(r *Recognizer, x0, y0, x1, y1 float64) {
	r.Pointer(1, x0, y0, true)
	r.Pointer(2, x1, y1, true)
	r.Advance(frame)
}

func TestPinch_StartAndFactor(t *testing.T) {
	r, log := newLoggedRecognizer()

	pinchDown(r, 200, 300, 300, 300) // dist 100
	if len(log.pinchStarts) != 1 {
		t.Fatalf("pinchStarts = %d, want 1", len(log.pinchStarts))
	}
	if log.pinchStarts[0].Factor != 1 || log.pinchStarts[0].FactorDelta != 1 {
		t.Errorf("pinch start factor = %+v, want 1/1", log.pinchStarts[0])
	}

	// Spread to dist 150.
	r.Pointer(1, 175, 300, true)
	r.Pointer(2, 325, 300, true)
	r.Advance(frame)

	if len(log.pinches) != 1 {
		t.Fatalf("pinches = %d, want 1", len(log.pinches))
	}
	e := log.pinches[0]
	if !almostEqual(e.Factor, 1.5) {
		t.Errorf("factor = %v, want 1.5", e.Factor)
	}
	if !almostEqual(e.FactorDelta, 1.5) {
		t.Errorf("factorDelta = %v, want 1.5", e.FactorDelta)
	}
	if e.CenterX != 250 || e.CenterY != 300 {
		t.Errorf("center = (%v, %v), want (250, 300)", e.CenterX, e.CenterY)
	}

	// Release one pointer: the gesture ends with the total factor.
	r.Pointer(1, 175, 300, false)
	r.Advance(frame)
	if len(log.pinchEnds) != 1 {
		t.Fatalf("pinchEnds = %d, want 1", len(log.pinchEnds))
	}
	if !almostEqual(log.pinchEnds[0].Factor, 1.5) {
		t.Errorf("end factor = %v, want 1.5", log.pinchEnds[0].Factor)
	}
}

func TestPinch_TwistAngle(t *testing.T) {
	r, log := newLoggedRecognizer()

	pinchDown(r, 200, 300, 300, 300) // horizontal, angle 0

	// Rotate the contact axis 90° around the center.
	r.Pointer(1, 250, 250, true)
	r.Pointer(2, 250, 350, true)
	r.Advance(frame)

	if len(log.pinches) != 1 {
		t.Fatalf("pinches = %d, want 1", len(log.pinches))
	}
	if !almostEqual(log.pinches[0].AngleDelta, math.Pi/2) {
		t.Errorf("angleDelta = %v, want π/2", log.pinches[0].AngleDelta)
	}

	r.Pointer(1, 250, 250, false)
	r.Pointer(2, 250, 350, false)
	r.Advance(frame)
	if !almostEqual(log.pinchEnds[0].Angle, math.Pi/2) {
		t.Errorf("total angle = %v, want π/2", log.pinchEnds[0].Angle)
	}
}

func TestPinch_AngleDeltaWrapsAtSeam(t *testing.T) {
	r, log := newLoggedRecognizer()

	// Start just below the atan2 seam and rotate a small step across it.
	pinchDown(r, 300, 300, 300+100*math.Cos(3.1), 300+100*math.Sin(3.1))
	r.Pointer(2, 300+100*math.Cos(-3.1), 300+100*math.Sin(-3.1), true)
	r.Advance(frame)

	if len(log.pinches) != 1 {
		t.Fatalf("pinches = %d, want 1", len(log.pinches))
	}
	got := log.pinches[0].AngleDelta
	want := 2*math.Pi - 6.2
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("angleDelta across seam = %v, want small step %v", got, want)
	}
}

func TestPinch_SuppressesDragAndTap(t *testing.T) {
	r, log := newLoggedRecognizer()

	pinchDown(r, 200, 300, 300, 300)

	// Pointer movement during a pinch is not a drag.
	r.Pointer(1, 180, 300, true)
	r.Advance(frame)
	if len(log.dragStarts) != 0 {
		t.Error("pinch pointer movement started a drag")
	}

	// A quick release after the pinch is not a tap either.
	r.Pointer(1, 180, 300, false)
	r.Pointer(2, 300, 300, false)
	r.Advance(frame)
	advance(r, framesFor(r.DoubleTapSeconds))
	if len(log.taps) != 0 {
		t.Error("pinch release produced a tap")
	}
}

func TestPinch_JoiningDragCommitsIt(t *testing.T) {
	r, log := newLoggedRecognizer()

	// One finger drags, then a second lands.
	r.Pointer(1, 100, 100, true)
	r.Advance(frame)
	r.Pointer(1, 140, 100, true)
	r.Advance(frame)
	if len(log.dragStarts) != 1 {
		t.Fatal("drag did not start")
	}

	r.Pointer(2, 240, 100, true)
	r.Advance(frame)

	if len(log.dragEnds) != 1 {
		t.Errorf("dragEnds = %d, want 1 (drag commits when the pinch takes over)", len(log.dragEnds))
	}
	if len(log.pinchStarts) != 1 {
		t.Errorf("pinchStarts = %d, want 1", len(log.pinchStarts))
	}
}

func TestPinch_MouseNeverJoins(t *testing.T) {
	r, log := newLoggedRecognizer()

	// Held mouse button plus a single touch contact is not a pinch.
	r.Pointer(0, 100, 100, true)
	r.Pointer(1, 300, 300, true)
	advance(r, 2)

	if len(log.pinchStarts) != 0 {
		t.Fatal("mouse + one touch started a pinch")
	}

	// The mouse can keep dragging while two touches pinch.
	r.Pointer(0, 140, 100, true)
	r.Pointer(2, 400, 300, true)
	r.Advance(frame)

	if len(log.pinchStarts) != 1 {
		t.Fatalf("pinchStarts = %d, want 1 from the two touches", len(log.pinchStarts))
	}
	if len(log.dragStarts) != 1 || log.dragStarts[0].Pointer != 0 {
		t.Fatalf("dragStarts = %+v, want one mouse drag", log.dragStarts)
	}
	if len(log.dragEnds) != 0 {
		t.Error("pinch start committed the live mouse drag")
	}

	r.Pointer(0, 180, 100, true)
	r.Advance(frame)
	if len(log.drags) != 1 || log.drags[0].Pointer != 0 {
		t.Errorf("drags = %+v, want the mouse drag continuing during the pinch", log.drags)
	}
}

func TestPinch_ThirdPointerEndsGesture(t *testing.T) {
	r, log := newLoggedRecognizer()

	pinchDown(r, 200, 300, 300, 300)
	r.Pointer(3, 400, 400, true)
	r.Advance(frame)

	if len(log.pinchEnds) != 1 {
		t.Errorf("pinchEnds = %d, want 1 when a third pointer lands", len(log.pinchEnds))
	}
}

// --- Misc ---

func TestPointer_OutOfRangeIgnored(t *testing.T) {
	r, log := newLoggedRecognizer()

	r.Pointer(-1, 100, 100, true)
	r.Pointer(maxPointers, 100, 100, true)
	advance(r, framesFor(r.LongPressSeconds))

	if len(log.longPresses) != 0 {
		t.Error("out-of-range pointer produced a gesture")
	}
}

func TestWrapPi(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"small positive", 0.5, 0.5},
		{"small negative", -0.5, -0.5},
		{"over pi", math.Pi + 0.1, -math.Pi + 0.1},
		{"under minus pi", -math.Pi - 0.1, math.Pi - 0.1},
		{"exactly pi", math.Pi, math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapPi(tt.in); !almostEqual(got, tt.want) {
				t.Errorf("wrapPi(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
