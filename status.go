package seedbed

import (
	"fmt"
	"math"
)

// statusLine renders an event as the toy's one-line status message.
// The wording is cosmetic; gameplay logic never inspects these strings.
func statusLine(e Event) string {
	switch e.Type {
	case EventPlanted:
		return fmt.Sprintf("planted a %s at (%.0f, %.0f)", e.Kind, e.Pos.X, e.Pos.Y)
	case EventTended:
		return fmt.Sprintf("tending plant #%d", e.ID)
	case EventMoving:
		return fmt.Sprintf("moving (%+.0f, %+.0f)", e.Pos.X, e.Pos.Y)
	case EventMoved:
		return fmt.Sprintf("moved to (%.0f, %.0f)", e.Pos.X, e.Pos.Y)
	case EventTilting:
		return fmt.Sprintf("tilting %+.0f°", degrees(e.Angle))
	case EventTilted:
		return fmt.Sprintf("tilted to %.0f°", degrees(e.Angle))
	case EventResizing:
		return fmt.Sprintf("resizing ×%.2f", e.Scale)
	case EventResized:
		return fmt.Sprintf("resized to ×%.2f", e.Scale)
	case EventRecolored:
		return fmt.Sprintf("painted %s", e.Swatch)
	case EventBloomed:
		if e.Kind == KindFlower {
			return "bloomed into a flower"
		}
		return "folded back to a sprout"
	case EventCleared:
		return "garden cleared"
	}
	return ""
}

// degrees converts radians to degrees for display.
func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
