package seedbed

import (
	"encoding/json"
	"fmt"
	"math"
)

// scriptTPS is the tick rate scripts are authored against. The game loop
// runs at Ebitengine's default 60 TPS, so script waits are stored in frames.
const scriptTPS = 60

// scriptStep represents a single action in a demo script.
type scriptStep struct {
	Action  string  `json:"action"` // tap, doubletap, longpress, drag, pinch, wait
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Factor  float64 `json:"factor,omitempty"`  // pinch distance ratio
	Angle   float64 `json:"angle,omitempty"`   // pinch twist in degrees
	Seconds float64 `json:"seconds,omitempty"` // wait duration
}

// script is the top-level JSON structure.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"tap": true, "doubletap": true, "longpress": true,
	"drag": true, "pinch": true, "wait": true,
}

// Script replays a JSON sequence of gestures through a Session's inject
// queue, one recognizer sample per frame. Attach with [Session.SetScript];
// the session steps it from [Session.Advance].
//
// Steps:
//
//	{"action": "tap", "x": 100, "y": 200}
//	{"action": "doubletap", "x": 100, "y": 200}
//	{"action": "longpress", "x": 100, "y": 200}
//	{"action": "drag", "fromX": 100, "fromY": 200, "toX": 300, "toY": 250, "frames": 12}
//	{"action": "pinch", "x": 100, "y": 200, "factor": 1.5, "angle": 30, "frames": 16}
//	{"action": "wait", "seconds": 1}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	followUp  func(*Session) // runs after the current wait drains
	done      bool
}

// LoadScript parses a JSON demo script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has been executed.
func (sc *Script) Done() bool {
	return sc.done
}

// SetScript attaches a script to the session. The script is stepped once
// per Advance, before injected input is consumed. Pass nil to detach.
func (s *Session) SetScript(sc *Script) {
	s.script = sc
}

// step advances the script by one frame.
func (sc *Script) step(s *Session) {
	if sc.done {
		return
	}
	// Let queued injections drain before advancing.
	if s.PendingInjections() > 0 {
		return
	}
	if sc.waitCount > 0 {
		sc.waitCount--
		return
	}
	if sc.followUp != nil {
		fn := sc.followUp
		sc.followUp = nil
		fn(s)
		return
	}
	if sc.cursor >= len(sc.steps) {
		sc.done = true
		return
	}

	st := sc.steps[sc.cursor]
	sc.cursor++

	switch st.Action {
	case "tap":
		s.InjectTap(st.X, st.Y)
		// Park until the single tap resolves, so the next step's tap
		// cannot pair with this one.
		sc.waitCount = secondsToFrames(s.rec.DoubleTapSeconds) + 2

	case "doubletap":
		s.InjectTap(st.X, st.Y)
		s.InjectTap(st.X, st.Y)
		sc.waitCount = 2

	case "longpress":
		x, y := st.X, st.Y
		s.InjectPress(x, y)
		sc.waitCount = secondsToFrames(s.rec.LongPressSeconds) + 2
		sc.followUp = func(s *Session) {
			s.InjectRelease(x, y)
		}

	case "drag":
		frames := st.Frames
		if frames == 0 {
			frames = 12
		}
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)

	case "pinch":
		sc.injectPinch(s, st)

	case "wait":
		sc.waitCount = secondsToFrames(st.Seconds)
	}
}

// injectPinch synthesizes a two-finger gesture around (st.X, st.Y): the
// contacts start 60px apart and interpolate toward the requested distance
// ratio and twist angle, one sample per pointer per frame.
func (sc *Script) injectPinch(s *Session, st scriptStep) {
	frames := st.Frames
	if frames < 2 {
		frames = 16
	}
	factor := st.Factor
	if factor == 0 {
		factor = 1
	}
	twist := st.Angle * math.Pi / 180

	const baseDist = 60.0
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		dist := baseDist * (1 + (factor-1)*t)
		ang := twist * t
		dx := math.Cos(ang) * dist / 2
		dy := math.Sin(ang) * dist / 2
		s.InjectPointer(1, st.X-dx, st.Y-dy, true)
		s.InjectPointer(2, st.X+dx, st.Y+dy, true)
	}
	// Release both contacts on the final geometry.
	dist := baseDist * factor
	dx := math.Cos(twist) * dist / 2
	dy := math.Sin(twist) * dist / 2
	s.InjectPointer(1, st.X-dx, st.Y-dy, false)
	s.InjectPointer(2, st.X+dx, st.Y+dy, false)
}

func secondsToFrames(seconds float64) int {
	return int(math.Ceil(seconds * scriptTPS))
}
