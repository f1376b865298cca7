// Package carousel implements the wheel carousel: slide placement around a
// flattened arc, drag-to-step gestures, and the tweens that move slides
// between placements. It knows nothing about any rendering toolkit; callers
// attach Animatable targets and feed pointer coordinates.
package carousel

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/iburimskiy/super-quads/internal/config"
)

var (
	ErrNoSlides        = errors.New("carousel: no slides")
	ErrDuplicateSlide  = errors.New("carousel: duplicate slide id")
	ErrUnknownSlide    = errors.New("carousel: unknown slide")
	ErrIndexOutOfRange = errors.New("carousel: index out of range")
)

const (
	transitionDuration = config.TransitionMillis * time.Millisecond
	tiltResetDuration  = config.TiltResetMillis * time.Millisecond
	tiltFollowDuration = config.TiltFollowMillis * time.Millisecond
)

type trackKey struct {
	slide SlideID
	wheel bool
}

var wheelKey = trackKey{wheel: true}

// State is a snapshot of the carousel's mutable state.
type State struct {
	ActiveIndex int
	DragOrigin  float64
	Dragging    bool
}

// Carousel owns the active index and everything derived from it.
type Carousel struct {
	slides    []Slide
	byID      map[SlideID]int
	active    int
	gesture   Gesture
	anim      *Animator[trackKey]
	listeners []*listener
}

type listener struct{ fn func(prev, next int) }

// New builds a carousel over slides with slide 0 active.
func New(slides []Slide) (*Carousel, error) {
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}
	byID := make(map[SlideID]int, len(slides))
	for i, s := range slides {
		if _, dup := byID[s.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlide, s.ID)
		}
		byID[s.ID] = i
	}
	own := make([]Slide, len(slides))
	copy(own, slides)
	return &Carousel{
		slides:  own,
		byID:    byID,
		gesture: Gesture{Threshold: config.DragThreshold},
		anim:    NewAnimator[trackKey](),
	}, nil
}

// Attach binds a slide to its on-screen target and places it at its
// current transform without animating.
func (c *Carousel) Attach(id SlideID, target Animatable) error {
	i, ok := c.byID[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSlide, id)
	}
	c.anim.Register(trackKey{slide: id}, target, poseFor(ComputeTransform(i, c.active, len(c.slides))))
	return nil
}

// AttachWheel binds the backdrop target.
func (c *Carousel) AttachWheel(target Animatable) {
	p := NeutralPose()
	p.Rotation = WheelRotation(c.active)
	c.anim.Register(wheelKey, target, p)
}

// Layout snaps every attached target to the current state.
func (c *Carousel) Layout() {
	for i, s := range c.slides {
		k := trackKey{slide: s.ID}
		if !c.anim.Has(k) {
			continue
		}
		t := ComputeTransform(i, c.active, len(c.slides))
		c.anim.Set(k, PropX, t.X)
		c.anim.Set(k, PropY, t.Y)
		c.anim.Set(k, PropRotation, t.Rotation)
		c.anim.Set(k, PropScale, t.Scale)
		c.anim.Set(k, PropOpacity, t.Opacity)
		c.anim.Set(k, PropStackOrder, float64(t.StackOrder))
	}
	c.anim.Set(wheelKey, PropRotation, WheelRotation(c.active))
}

// OnChange registers fn to run after every index step. The returned func
// unregisters it.
func (c *Carousel) OnChange(fn func(prev, next int)) (remove func()) {
	l := &listener{fn: fn}
	c.listeners = append(c.listeners, l)
	return func() {
		c.listeners = slices.DeleteFunc(c.listeners, func(x *listener) bool { return x == l })
	}
}

// Next steps forward one slide, wrapping.
func (c *Carousel) Next() { c.apply(StepForward) }

// Prev steps back one slide, wrapping.
func (c *Carousel) Prev() { c.apply(StepBack) }

// GoTo walks to index one step at a time along the shorter direction.
func (c *Carousel) GoTo(index int) error {
	n := len(c.slides)
	if index < 0 || index >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, n)
	}
	fwd := RelativeIndex(index, c.active, n)
	if fwd == 0 {
		return nil
	}
	step, count := StepForward, fwd
	if n-fwd < fwd {
		step, count = StepBack, n-fwd
	}
	for range count {
		c.apply(step)
	}
	return nil
}

// OnPointerDelta is the single entry point for mouse and touch drags.
func (c *Carousel) OnPointerDelta(x float64, phase Phase) Step {
	s := c.gesture.Feed(x, phase)
	c.apply(s)
	return s
}

// Hover tilts a slide towards the pointer; nx and ny are the pointer's
// position on the card in [-1,1].
func (c *Carousel) Hover(id SlideID, nx, ny float64) {
	k := trackKey{slide: id}
	c.anim.To(k, PropTiltY, clampUnit(nx)*config.MaxHoverTilt, tiltFollowDuration, EaseOutCubic)
	c.anim.To(k, PropTiltX, -clampUnit(ny)*config.MaxHoverTilt, tiltFollowDuration, EaseOutCubic)
}

// Leave ends any drag and eases the slide's tilt back to neutral.
func (c *Carousel) Leave(id SlideID) {
	k := trackKey{slide: id}
	c.anim.To(k, PropTiltX, 0, tiltResetDuration, EaseOutCubic)
	c.anim.To(k, PropTiltY, 0, tiltResetDuration, EaseOutCubic)
	c.gesture.Feed(0, PhaseEnd)
}

// Tick advances all animations.
func (c *Carousel) Tick(dt time.Duration) { c.anim.Tick(dt) }

// Animating reports whether any channel is still moving.
func (c *Carousel) Animating() bool { return c.anim.InFlight() > 0 }

func (c *Carousel) ActiveIndex() int { return c.active }
func (c *Carousel) Active() Slide    { return c.slides[c.active] }
func (c *Carousel) Len() int         { return len(c.slides) }
func (c *Carousel) Dragging() bool   { return c.gesture.Dragging() }

// Caption is the descriptive text of the active slide.
func (c *Carousel) Caption() string { return c.slides[c.active].Caption }

// Transforms computes the target placement of every slide.
func (c *Carousel) Transforms() []Transform {
	return Transforms(c.active, len(c.slides))
}

// Slides returns a copy of the deck.
func (c *Carousel) Slides() []Slide {
	out := make([]Slide, len(c.slides))
	copy(out, c.slides)
	return out
}

// State returns a snapshot of the mutable state.
func (c *Carousel) State() State {
	origin, dragging := c.gesture.Origin()
	return State{ActiveIndex: c.active, DragOrigin: origin, Dragging: dragging}
}

// HitTest finds the topmost visible slide under (x, y), given relative to
// the wheel hub, using the poses currently rendered. nx and ny locate the
// point on the card in [-1,1].
func (c *Carousel) HitTest(x, y, cardW, cardH float64) (id SlideID, nx, ny float64, ok bool) {
	bestLayer := math.MinInt
	for _, s := range c.slides {
		k := trackKey{slide: s.ID}
		if !c.anim.Has(k) {
			continue
		}
		var p Pose
		for prop := Property(0); prop < numProps; prop++ {
			v, _ := c.anim.Value(k, prop)
			p.Set(prop, v)
		}
		if p.Opacity < 0.05 {
			continue
		}
		lx, ly, in := CardLocal(p, cardW, cardH, x, y)
		// Later slides draw over earlier ones on the same layer.
		if in && p.StackOrder >= bestLayer {
			bestLayer = p.StackOrder
			id, nx, ny, ok = s.ID, lx, ly, true
		}
	}
	return id, nx, ny, ok
}

// CardLocal maps (x, y) into the card drawn with pose p and reports whether
// it falls inside. The returned coordinates are in [-1,1] across the card.
func CardLocal(p Pose, cardW, cardH, x, y float64) (nx, ny float64, inside bool) {
	sx := p.Scale * math.Cos(p.TiltY*math.Pi/180)
	sy := p.Scale * math.Cos(p.TiltX*math.Pi/180)
	if sx == 0 || sy == 0 {
		return 0, 0, false
	}
	dx, dy := x-p.X, y-p.Y
	th := p.Rotation * math.Pi / 180
	cos, sin := math.Cos(th), math.Sin(th)
	lx := (dx*cos + dy*sin) / sx
	ly := (-dx*sin + dy*cos) / sy
	nx, ny = lx/(cardW/2), ly/(cardH/2)
	return nx, ny, math.Abs(nx) <= 1 && math.Abs(ny) <= 1
}

func (c *Carousel) apply(s Step) {
	if s == StepNone {
		return
	}
	n := len(c.slides)
	prev := c.active
	c.active = ((c.active+int(s))%n + n) % n
	c.retarget()
	for _, l := range c.listeners {
		l.fn(prev, c.active)
	}
}

func (c *Carousel) retarget() {
	for i, s := range c.slides {
		k := trackKey{slide: s.ID}
		if !c.anim.Has(k) {
			continue
		}
		t := ComputeTransform(i, c.active, len(c.slides))
		c.anim.To(k, PropX, t.X, transitionDuration, EaseOutCubic)
		c.anim.To(k, PropY, t.Y, transitionDuration, EaseOutCubic)
		c.anim.To(k, PropRotation, t.Rotation, transitionDuration, EaseOutCubic)
		c.anim.To(k, PropScale, t.Scale, transitionDuration, EaseOutCubic)
		c.anim.To(k, PropOpacity, t.Opacity, transitionDuration, EaseOutCubic)
		c.anim.Set(k, PropStackOrder, float64(t.StackOrder))
	}
	c.anim.To(wheelKey, PropRotation, WheelRotation(c.active), transitionDuration, EaseOutCubic)
}

func poseFor(t Transform) Pose {
	return Pose{
		X:          t.X,
		Y:          t.Y,
		Rotation:   t.Rotation,
		Scale:      t.Scale,
		Opacity:    t.Opacity,
		StackOrder: t.StackOrder,
	}
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
