package carousel

// Phase is the stage of a pointer or touch gesture.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
)

// Step is the index change a gesture event asks for.
type Step int

const (
	StepNone    Step = 0
	StepBack    Step = -1
	StepForward Step = 1
)

// Gesture turns horizontal drag coordinates into discrete steps. Crossing
// the threshold re-arms the origin at the current coordinate, so one long
// drag can produce several steps.
type Gesture struct {
	Threshold float64

	origin   float64
	dragging bool
}

// Feed consumes one event and returns the step it triggers, if any.
func (g *Gesture) Feed(x float64, phase Phase) Step {
	switch phase {
	case PhaseStart:
		g.origin = x
		g.dragging = true
	case PhaseMove:
		if !g.dragging {
			return StepNone
		}
		delta := x - g.origin
		switch {
		case delta > g.Threshold:
			g.origin = x
			return StepBack
		case delta < -g.Threshold:
			g.origin = x
			return StepForward
		}
	case PhaseEnd:
		g.origin = 0
		g.dragging = false
	}
	return StepNone
}

// Dragging reports whether a gesture is in progress.
func (g *Gesture) Dragging() bool { return g.dragging }

// Origin returns the current re-armed origin; ok is false when idle.
func (g *Gesture) Origin() (x float64, ok bool) {
	return g.origin, g.dragging
}
