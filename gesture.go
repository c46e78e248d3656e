package seedbed

import "math"

// --- Constants ---

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

	defaultDragDeadZone     = 4.0  // pixels
	defaultLongPressSeconds = 0.7  // hold duration that fires a long-press
	defaultDoubleTapSeconds = 0.3  // window in which a second tap pairs up
	defaultDoubleTapSlop    = 24.0 // max distance between paired taps, pixels
)

// --- Gesture events ---

// TapEvent carries the press-origin position of a resolved tap.
type TapEvent struct {
	X, Y float64
}

// LongPressEvent carries the press-origin position of a long-press.
// The origin decides what the press was "on", not wherever the finger
// drifted to while holding.
type LongPressEvent struct {
	X, Y float64
}

// DragEvent carries drag data for one pointer. DeltaX/DeltaY are the
// movement since the previous sample; StartX/StartY are the press origin.
type DragEvent struct {
	Pointer        int
	X, Y           float64
	StartX, StartY float64
	DeltaX, DeltaY float64
}

// PinchEvent carries two-finger pinch/twist data. Factor and Angle are
// totals since the gesture began; FactorDelta and AngleDelta are the
// changes since the previous sample. AngleDelta is wrapped into (-π, π]
// so a twist through the atan2 seam never jumps.
type PinchEvent struct {
	CenterX, CenterY float64
	Factor           float64
	FactorDelta      float64
	Angle            float64
	AngleDelta       float64
}

// --- Per-pointer state ---

type gesturePointer struct {
	down           bool
	startX, startY float64
	lastX, lastY   float64
	holdTime       float64
	dragging       bool
	longPressed    bool
	pinching       bool // captured by a two-finger gesture until release
}

// --- Pinch state ---

type pinchState struct {
	active      bool
	pointer0    int
	pointer1    int
	initialDist float64
	prevDist    float64
	prevAngle   float64
	totalAngle  float64
}

// --- Recognizer ---

// Recognizer turns raw multi-pointer samples into gestures. Feed it one
// [Recognizer.Pointer] call per tracked pointer per frame, then one
// [Recognizer.Advance] call with the frame's delta time. Gestures are
// reported through the exported callback fields; nil callbacks are skipped.
//
// Classification rules:
//   - tap: press and release without leaving the dead zone, released
//     before the long-press threshold
//   - double tap: two taps within DoubleTapSeconds and DoubleTapSlop of
//     each other; a lone tap is reported only after the window lapses,
//     so a double is never misreported as two singles
//   - long-press: held for LongPressSeconds without starting a drag;
//     fires once, while still held, and suppresses the tap on release
//   - drag: movement beyond the dead zone; also recognized after a
//     long-press fired in the same hold (press-to-tend, then move)
//   - pinch/twist: exactly two touch pointers (slots 1-9) held; their
//     individual drags end and both are captured by the gesture until
//     released. The mouse (slot 0) never joins a pinch
type Recognizer struct {
	DragDeadZone     float64
	LongPressSeconds float64
	DoubleTapSeconds float64
	DoubleTapSlop    float64

	OnTap        func(TapEvent)
	OnDoubleTap  func(TapEvent)
	OnLongPress  func(LongPressEvent)
	OnDragStart  func(DragEvent)
	OnDrag       func(DragEvent)
	OnDragEnd    func(DragEvent)
	OnPinchStart func(PinchEvent)
	OnPinch      func(PinchEvent)
	OnPinchEnd   func(PinchEvent)

	pointers [maxPointers]gesturePointer
	pinch    pinchState

	pendingTap         bool
	pendingX, pendingY float64
	pendingAge         float64
}

// NewRecognizer creates a recognizer with the default thresholds.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		DragDeadZone:     defaultDragDeadZone,
		LongPressSeconds: defaultLongPressSeconds,
		DoubleTapSeconds: defaultDoubleTapSeconds,
		DoubleTapSlop:    defaultDoubleTapSlop,
	}
}

// Pointer feeds one pointer sample for this frame. id selects a pointer
// slot (0 = mouse, 1-9 = touch contacts); out-of-range ids are ignored.
// Samples for a pointer that is not and was not down are no-ops.
func (r *Recognizer) Pointer(id int, x, y float64, pressed bool) {
	if id < 0 || id >= maxPointers {
		return
	}
	ps := &r.pointers[id]

	switch {
	case pressed && !ps.down:
		*ps = gesturePointer{
			down:   true,
			startX: x, startY: y,
			lastX: x, lastY: y,
		}

	case !pressed && ps.down:
		if ps.dragging {
			r.fireDragEnd(id, x, y)
		} else if !ps.pinching && !ps.longPressed && ps.holdTime < r.LongPressSeconds {
			r.queueTap(ps.startX, ps.startY)
		}
		ps.down = false

	case pressed && ps.down:
		if ps.pinching {
			// Movement belongs to the two-finger gesture; Advance reads it.
			ps.lastX, ps.lastY = x, y
			return
		}
		if x != ps.lastX || y != ps.lastY {
			if !ps.dragging {
				// The crossing sample reports the whole movement since the
				// press, so nothing is lost to the dead zone. OnDrag picks
				// up with per-sample deltas from the next sample on.
				dx := x - ps.startX
				dy := y - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > r.DragDeadZone {
					ps.dragging = true
					if r.OnDragStart != nil {
						r.OnDragStart(DragEvent{
							Pointer: id,
							X:       x, Y: y,
							StartX: ps.startX, StartY: ps.startY,
							DeltaX: dx, DeltaY: dy,
						})
					}
				}
			} else if r.OnDrag != nil {
				r.OnDrag(DragEvent{
					Pointer: id,
					X:       x, Y: y,
					StartX: ps.startX, StartY: ps.startY,
					DeltaX: x - ps.lastX, DeltaY: y - ps.lastY,
				})
			}
		}
		ps.lastX, ps.lastY = x, y
	}
}

// Advance progresses the recognizer's clocks by dt seconds: long-press
// hold timers, the two-finger gesture, and the pending-tap window.
// Call once per frame, after all Pointer samples.
func (r *Recognizer) Advance(dt float64) {
	for i := range r.pointers {
		ps := &r.pointers[i]
		if !ps.down {
			continue
		}
		ps.holdTime += dt
		if !ps.dragging && !ps.pinching && !ps.longPressed && ps.holdTime >= r.LongPressSeconds {
			ps.longPressed = true
			if r.OnLongPress != nil {
				r.OnLongPress(LongPressEvent{X: ps.startX, Y: ps.startY})
			}
		}
	}

	r.detectPinch()

	if r.pendingTap {
		r.pendingAge += dt
		if r.pendingAge >= r.DoubleTapSeconds {
			r.pendingTap = false
			if r.OnTap != nil {
				r.OnTap(TapEvent{X: r.pendingX, Y: r.pendingY})
			}
		}
	}
}

// CancelPending drops any unresolved pending tap. Used when the scene is
// torn down mid-window.
func (r *Recognizer) CancelPending() {
	r.pendingTap = false
}

// --- Tap debouncing ---

// queueTap runs the single-vs-double debounce state machine. The first tap
// is held back for the pairing window; a second tap inside the window and
// slop resolves as a double at the first tap's position.
func (r *Recognizer) queueTap(x, y float64) {
	if r.pendingTap {
		dx := x - r.pendingX
		dy := y - r.pendingY
		if math.Sqrt(dx*dx+dy*dy) <= r.DoubleTapSlop {
			r.pendingTap = false
			if r.OnDoubleTap != nil {
				r.OnDoubleTap(TapEvent{X: r.pendingX, Y: r.pendingY})
			}
			return
		}
		// Far apart: the held tap resolves as a single, the new one queues.
		if r.OnTap != nil {
			r.OnTap(TapEvent{X: r.pendingX, Y: r.pendingY})
		}
	}
	r.pendingTap = true
	r.pendingX, r.pendingY = x, y
	r.pendingAge = 0
}

// --- Pinch detection ---

// detectPinch runs the two-finger gesture. Exactly two held touch pointers
// start it; their individual drags are ended and both pointers stay
// captured by the gesture until they release on their own. Pointer 0 (the
// mouse) never participates, so a mouse drag can stay live alongside a
// two-finger pinch.
func (r *Recognizer) detectPinch() {
	var p0, p1, count int
	for i := 1; i < maxPointers; i++ {
		if r.pointers[i].down {
			if count == 0 {
				p0 = i
			} else if count == 1 {
				p1 = i
			}
			count++
		}
	}

	if count != 2 {
		if r.pinch.active {
			r.pinch.active = false
			if r.OnPinchEnd != nil {
				factor := 1.0
				if r.pinch.initialDist > 0 {
					factor = r.pinch.prevDist / r.pinch.initialDist
				}
				r.OnPinchEnd(PinchEvent{
					Factor: factor,
					Angle:  r.pinch.totalAngle,
				})
			}
		}
		return
	}

	ps0 := &r.pointers[p0]
	ps1 := &r.pointers[p1]

	cx := (ps0.lastX + ps1.lastX) / 2
	cy := (ps0.lastY + ps1.lastY) / 2
	dx := ps1.lastX - ps0.lastX
	dy := ps1.lastY - ps0.lastY
	dist := math.Sqrt(dx*dx + dy*dy)
	angle := math.Atan2(dy, dx)

	if !r.pinch.active {
		// A dragging pointer joining a pinch commits its drag first.
		if ps0.dragging {
			r.fireDragEnd(p0, ps0.lastX, ps0.lastY)
			ps0.dragging = false
		}
		if ps1.dragging {
			r.fireDragEnd(p1, ps1.lastX, ps1.lastY)
			ps1.dragging = false
		}
		ps0.pinching = true
		ps1.pinching = true

		r.pinch = pinchState{
			active:      true,
			pointer0:    p0,
			pointer1:    p1,
			initialDist: dist,
			prevDist:    dist,
			prevAngle:   angle,
		}
		if r.OnPinchStart != nil {
			r.OnPinchStart(PinchEvent{
				CenterX: cx, CenterY: cy,
				Factor: 1, FactorDelta: 1,
			})
		}
		return
	}

	factor := 1.0
	if r.pinch.initialDist > 0 {
		factor = dist / r.pinch.initialDist
	}
	factorDelta := 1.0
	if r.pinch.prevDist > 0 {
		factorDelta = dist / r.pinch.prevDist
	}
	angleDelta := wrapPi(angle - r.pinch.prevAngle)
	r.pinch.totalAngle += angleDelta

	if r.OnPinch != nil {
		r.OnPinch(PinchEvent{
			CenterX: cx, CenterY: cy,
			Factor:      factor,
			FactorDelta: factorDelta,
			Angle:       r.pinch.totalAngle,
			AngleDelta:  angleDelta,
		})
	}

	r.pinch.prevDist = dist
	r.pinch.prevAngle = angle
}

// fireDragEnd emits OnDragEnd for pointer id at (x, y).
func (r *Recognizer) fireDragEnd(id int, x, y float64) {
	if r.OnDragEnd == nil {
		return
	}
	ps := &r.pointers[id]
	r.OnDragEnd(DragEvent{
		Pointer: id,
		X:       x, Y: y,
		StartX: ps.startX, StartY: ps.startY,
		DeltaX: x - ps.lastX, DeltaY: y - ps.lastY,
	})
}

// wrapPi wraps an angle difference into (-π, π].
func wrapPi(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
