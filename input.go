package seedbed

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// inputPoller feeds Ebitengine mouse and touch state into a session once
// per frame. The mouse is pointer 0; touches are assigned stable slots
// 1 through 9 for the lifetime of each contact.
type inputPoller struct {
	touchIDs  []ebiten.TouchID
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
}

// poll samples the mouse and every live touch and pushes the results into
// the session's recognizer.
func (ip *inputPoller) poll(s *Session) {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.Pointer(0, float64(mx), float64(my), pressed)

	ip.touchIDs = ebiten.AppendTouchIDs(ip.touchIDs[:0])

	var activeSlots [maxPointers]bool
	for _, tid := range ip.touchIDs {
		slot := ip.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.Pointer(slot, float64(tx), float64(ty), true)
	}

	// Touches vanish from the ID list on release, so synthesize the
	// release at the last known position.
	for i := 1; i < maxPointers; i++ {
		if ip.touchUsed[i] && !activeSlots[i] {
			ps := &s.rec.pointers[i]
			if ps.down {
				s.Pointer(i, ps.lastX, ps.lastY, false)
			}
			ip.touchUsed[i] = false
			ip.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (ip *inputPoller) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if ip.touchUsed[i] && ip.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !ip.touchUsed[i] {
			ip.touchUsed[i] = true
			ip.touchMap[i] = tid
			return i
		}
	}
	return -1
}
