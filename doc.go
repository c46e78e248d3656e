// Package seedbed is a single-screen touch garden toy built on [Ebitengine].
//
// Tap bare soil to plant a sprout. Long-press a plant to tend (select) it,
// then drag to move it, twist two fingers to tilt it, and pinch to resize
// it — all three gestures can be live at once on the tended plant. A single
// tap repaints a plant with the next palette color; a double tap blooms a
// sprout into a flower (and back). Long-press empty ground to clear the
// whole garden.
//
// # Quick start
//
// The simplest way to get a window is [Run] with the default [Config]:
//
//	if err := seedbed.Run(seedbed.DefaultConfig(), seedbed.RunConfig{}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, implement [ebiten.Game] yourself around a [Session]
// and feed it pointer samples each frame — see game.go for the reference
// loop.
//
// # Architecture
//
// [Garden] holds the committed plant state: an insertion-ordered list of
// [Plant] values plus the single tended plant id. [Preview] holds the
// ephemeral live deltas of in-flight gestures and folds them into the
// garden when a gesture releases. [Recognizer] turns raw multi-pointer
// samples into taps, long-presses, drags, and two-finger pinch/twist
// gestures. [Session] wires the three together and emits [Event]s
// describing every state change, which feed the status line and the
// optional ECS bridge (Donburi adapter in seedbed/ecs).
//
// [Ebitengine]: https://ebitengine.org
package seedbed
