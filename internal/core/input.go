package core

// Button is the debounced state of the single logical control ("flap/start")
// for one frame, together with its state on the previous frame.
// Platforms build it from keyboard, mouse or touch; games only need its edges.
type Button struct {
	Down     bool // Held this frame
	PrevDown bool // Held on the previous frame
}

// Rising returns true if the button went down this frame.
func (b Button) Rising() bool {
	return b.Down && !b.PrevDown
}

// Falling returns true if the button was released this frame.
func (b Button) Falling() bool {
	return !b.Down && b.PrevDown
}

// ButtonTracker remembers the previous frame so platforms can produce
// Button snapshots from a plain "is it held right now" signal.
type ButtonTracker struct {
	prev bool
}

// Next records the current state and returns the snapshot for this frame.
func (t *ButtonTracker) Next(down bool) Button {
	b := Button{Down: down, PrevDown: t.prev}
	t.prev = down
	return b
}

// Reset forgets the previous frame, as if the button had been released.
func (t *ButtonTracker) Reset() {
	t.prev = false
}
