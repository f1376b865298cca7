package carousel

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func newTestCarousel(t *testing.T, n int) (*Carousel, []*Pose, *Pose) {
	t.Helper()
	slides := DefaultSlides()
	for len(slides) < n {
		i := len(slides)
		slides = append(slides, Slide{ID: SlideID(fmt.Sprintf("extra-%d", i)), Title: "Extra", Caption: "extra"})
	}
	slides = slides[:n]

	c, err := New(slides)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	poses := make([]*Pose, n)
	for i, s := range slides {
		poses[i] = &Pose{}
		if err := c.Attach(s.ID, poses[i]); err != nil {
			t.Fatalf("Attach %q: %v", s.ID, err)
		}
	}
	wheel := &Pose{}
	c.AttachWheel(wheel)
	return c, poses, wheel
}

func settle(c *Carousel) {
	for i := 0; i < 120 && c.Animating(); i++ {
		c.Tick(frame)
	}
}

func assertPlaced(t *testing.T, c *Carousel, poses []*Pose) {
	t.Helper()
	for i, want := range c.Transforms() {
		if !poses[i].Matches(want) {
			t.Errorf("slide %d pose %+v, want %+v", i, *poses[i], want)
		}
	}
}

func TestNewRejectsBadDecks(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoSlides) {
		t.Errorf("empty deck: %v", err)
	}
	dup := []Slide{{ID: "a"}, {ID: "a"}}
	if _, err := New(dup); !errors.Is(err, ErrDuplicateSlide) {
		t.Errorf("duplicate ids: %v", err)
	}
}

func TestAttachUnknownSlide(t *testing.T) {
	c, _, _ := newTestCarousel(t, 4)
	if err := c.Attach("nope", &Pose{}); !errors.Is(err, ErrUnknownSlide) {
		t.Fatalf("got %v", err)
	}
}

func TestAttachPlacesWithoutAnimating(t *testing.T) {
	c, poses, wheel := newTestCarousel(t, 4)
	if c.ActiveIndex() != 0 {
		t.Fatalf("initial index %d", c.ActiveIndex())
	}
	if c.Animating() {
		t.Fatal("attach started animations")
	}
	assertPlaced(t, c, poses)
	if wheel.Rotation != 0 {
		t.Errorf("wheel rotation %v", wheel.Rotation)
	}
}

func TestWrapAround(t *testing.T) {
	c, _, _ := newTestCarousel(t, 4)
	c.Prev()
	if c.ActiveIndex() != 3 {
		t.Fatalf("back from 0: %d, want 3", c.ActiveIndex())
	}
	c.Next()
	if c.ActiveIndex() != 0 {
		t.Fatalf("forward from 3: %d, want 0", c.ActiveIndex())
	}
}

func TestRoundTrip(t *testing.T) {
	c, poses, _ := newTestCarousel(t, 4)
	before := c.Transforms()

	c.Prev()
	c.Next()
	settle(c)
	if c.ActiveIndex() != 0 {
		t.Fatalf("index %d after round trip", c.ActiveIndex())
	}
	for i, tr := range c.Transforms() {
		if tr != before[i] {
			t.Errorf("slide %d transform changed: %+v vs %+v", i, tr, before[i])
		}
	}
	assertPlaced(t, c, poses)
}

func TestGoToCurrentIsIdempotent(t *testing.T) {
	c, poses, _ := newTestCarousel(t, 4)
	calls := 0
	c.OnChange(func(prev, next int) { calls++ })

	if err := c.GoTo(0); err != nil {
		t.Fatalf("GoTo: %v", err)
	}
	if calls != 0 || c.Animating() {
		t.Fatalf("GoTo(current) changed something: calls=%d animating=%v", calls, c.Animating())
	}
	assertPlaced(t, c, poses)
}

func TestGoToWalksShortestPath(t *testing.T) {
	c, poses, wheel := newTestCarousel(t, 5)
	var seen []int
	c.OnChange(func(prev, next int) { seen = append(seen, next) })

	if err := c.GoTo(4); err != nil {
		t.Fatalf("GoTo: %v", err)
	}
	if len(seen) != 1 || seen[0] != 4 {
		t.Fatalf("steps %v, want [4]", seen)
	}
	seen = nil
	if err := c.GoTo(2); err != nil {
		t.Fatalf("GoTo: %v", err)
	}
	// Backwards 4 -> 3 -> 2 is shorter than 4 -> 0 -> 1 -> 2.
	if len(seen) != 2 || seen[0] != 3 || seen[1] != 2 {
		t.Fatalf("steps %v, want [3 2]", seen)
	}
	settle(c)
	assertPlaced(t, c, poses)
	if wheel.Rotation != WheelRotation(2) {
		t.Errorf("wheel rotation %v, want %v", wheel.Rotation, WheelRotation(2))
	}
}

func TestGoToOutOfRange(t *testing.T) {
	c, _, _ := newTestCarousel(t, 4)
	for _, i := range []int{-1, 4, 100} {
		if err := c.GoTo(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("GoTo(%d): %v", i, err)
		}
	}
	if c.ActiveIndex() != 0 {
		t.Fatalf("index moved to %d", c.ActiveIndex())
	}
}

func TestDragThresholds(t *testing.T) {
	c, _, _ := newTestCarousel(t, 4)

	c.OnPointerDelta(200, PhaseStart)
	if !c.Dragging() {
		t.Fatal("not dragging after start")
	}
	if s := c.OnPointerDelta(249, PhaseMove); s != StepNone || c.ActiveIndex() != 0 {
		t.Fatalf("delta 49 stepped: %d, index %d", s, c.ActiveIndex())
	}
	if s := c.OnPointerDelta(251, PhaseMove); s != StepBack || c.ActiveIndex() != 3 {
		t.Fatalf("delta 51: step %d, index %d", s, c.ActiveIndex())
	}
	if st := c.State(); st.DragOrigin != 251 {
		t.Fatalf("origin %v, want 251", st.DragOrigin)
	}

	c.OnPointerDelta(251, PhaseEnd)
	st := c.State()
	if st.Dragging || st.DragOrigin != 0 {
		t.Fatalf("state after end: %+v", st)
	}
}

func TestContinuousDragStepsInOrder(t *testing.T) {
	c, _, _ := newTestCarousel(t, 4)
	var seen []int
	c.OnChange(func(prev, next int) { seen = append(seen, next) })

	c.OnPointerDelta(0, PhaseStart)
	for x := 0.0; x <= 153; x += 1 {
		c.OnPointerDelta(x, PhaseMove)
	}
	c.OnPointerDelta(153, PhaseEnd)

	want := []int{3, 2, 1}
	if len(seen) != len(want) {
		t.Fatalf("steps %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("steps %v, want %v", seen, want)
		}
	}
}

// The threshold is strict and each step re-arms the origin at the pointer,
// so a unit-sampled drag of exactly 150 crosses at 51 and 102 only.
func TestDragStepBoundaryIsStrict(t *testing.T) {
	c, _, _ := newTestCarousel(t, 4)

	c.OnPointerDelta(0, PhaseStart)
	if s := c.OnPointerDelta(50, PhaseMove); s != StepNone {
		t.Fatalf("delta of exactly 50 stepped: %d", s)
	}
	c.OnPointerDelta(0, PhaseEnd)

	steps := 0
	c.OnPointerDelta(0, PhaseStart)
	for x := 1.0; x <= 150; x++ {
		if c.OnPointerDelta(x, PhaseMove) != StepNone {
			steps++
		}
	}
	c.OnPointerDelta(150, PhaseEnd)
	if steps != 2 || c.ActiveIndex() != 2 {
		t.Fatalf("drag to 150: %d steps, index %d; want 2 steps, index 2", steps, c.ActiveIndex())
	}

	// A single jump of 150 is one event, so one step.
	c.OnPointerDelta(0, PhaseStart)
	if s := c.OnPointerDelta(150, PhaseMove); s != StepBack {
		t.Fatalf("jump of 150: step %d", s)
	}
}

func TestDragLeftSteps(t *testing.T) {
	c, _, _ := newTestCarousel(t, 4)
	c.OnPointerDelta(300, PhaseStart)
	c.OnPointerDelta(240, PhaseMove)
	if c.ActiveIndex() != 1 {
		t.Fatalf("index %d, want 1", c.ActiveIndex())
	}
}

func TestManyCrossingsStayInRange(t *testing.T) {
	c, _, _ := newTestCarousel(t, 3)
	c.OnPointerDelta(0, PhaseStart)
	x := 0.0
	for i := 0; i < 1000; i++ {
		x -= 60
		c.OnPointerDelta(x, PhaseMove)
		if idx := c.ActiveIndex(); idx < 0 || idx >= 3 {
			t.Fatalf("index %d out of range", idx)
		}
	}
	if c.ActiveIndex() != 1000%3 {
		t.Fatalf("index %d, want %d", c.ActiveIndex(), 1000%3)
	}
}

func TestCaptionTracksActiveIndex(t *testing.T) {
	c, _, _ := newTestCarousel(t, 4)
	slides := DefaultSlides()
	if c.Caption() != slides[0].Caption {
		t.Fatalf("caption %q, want %q", c.Caption(), slides[0].Caption)
	}
	c.Next()
	if c.Caption() != slides[1].Caption {
		t.Fatalf("caption %q, want %q", c.Caption(), slides[1].Caption)
	}
	if c.Active().ID != slides[1].ID {
		t.Fatalf("active %q", c.Active().ID)
	}
}

func TestTransitionAnimatesOverHalfSecond(t *testing.T) {
	c, poses, wheel := newTestCarousel(t, 4)
	c.Next()

	// Stack order snaps at once.
	if poses[1].StackOrder != 1 || poses[0].StackOrder != -1 {
		t.Fatalf("stack orders %d/%d", poses[1].StackOrder, poses[0].StackOrder)
	}
	c.Tick(250 * time.Millisecond)
	if poses[1].Scale <= 0.9 || poses[1].Scale >= 1.5 {
		t.Errorf("mid-transition scale %v", poses[1].Scale)
	}
	if wheel.Rotation >= 0 || wheel.Rotation <= -45 {
		t.Errorf("mid-transition wheel %v", wheel.Rotation)
	}
	c.Tick(250 * time.Millisecond)
	if c.Animating() {
		t.Fatal("still animating after 0.5s")
	}
	assertPlaced(t, c, poses)
	if wheel.Rotation != -45 {
		t.Errorf("wheel %v, want -45", wheel.Rotation)
	}
}

func TestLeaveResetsTiltAndEndsDrag(t *testing.T) {
	c, poses, _ := newTestCarousel(t, 4)
	id := c.Active().ID

	c.Hover(id, 1, -1)
	c.Tick(200 * time.Millisecond)
	if poses[0].TiltY == 0 || poses[0].TiltX == 0 {
		t.Fatalf("hover did not tilt: %+v", *poses[0])
	}

	c.OnPointerDelta(10, PhaseStart)
	c.Leave(id)
	if c.Dragging() {
		t.Fatal("leave did not end drag")
	}
	c.Tick(200 * time.Millisecond)
	if poses[0].TiltY == 0 {
		t.Fatal("tilt reset finished too early")
	}
	c.Tick(200 * time.Millisecond)
	if poses[0].TiltX != 0 || poses[0].TiltY != 0 {
		t.Fatalf("tilt after reset %v/%v", poses[0].TiltX, poses[0].TiltY)
	}
	if c.ActiveIndex() != 0 {
		t.Fatalf("leave changed index to %d", c.ActiveIndex())
	}
}

func TestHitTestPicksActiveSlide(t *testing.T) {
	c, _, _ := newTestCarousel(t, 4)
	id, nx, ny, ok := c.HitTest(0, -380, 150, 190)
	if !ok || id != c.Active().ID {
		t.Fatalf("hit %q ok=%v", id, ok)
	}
	if nx != 0 || ny != 0 {
		t.Errorf("centre maps to (%v,%v)", nx, ny)
	}
	if _, _, _, ok := c.HitTest(0, 0, 150, 190); ok {
		t.Error("hub should not hit a card")
	}
}

func TestCardLocalRotation(t *testing.T) {
	p := Pose{Scale: 1, Rotation: 90, Opacity: 1}
	// A card rotated 90° clockwise: its local +x points down the screen.
	nx, ny, in := CardLocal(p, 100, 50, 0, 40)
	if !in {
		t.Fatal("point should be inside rotated card")
	}
	if !near(nx, 0.8) || !near(ny, 0) {
		t.Errorf("local (%v,%v), want (0.8,0)", nx, ny)
	}
	if _, _, in := CardLocal(p, 100, 50, 40, 0); in {
		t.Error("point outside rotated card reported inside")
	}
}

func TestLayoutSnapsMidTransition(t *testing.T) {
	c, poses, wheel := newTestCarousel(t, 4)
	c.Next()
	c.Tick(100 * time.Millisecond)
	if !c.Animating() {
		t.Fatal("expected a transition in flight")
	}

	c.Layout()
	if c.Animating() {
		t.Error("Layout left channels moving")
	}
	assertPlaced(t, c, poses)
	if wheel.Rotation != WheelRotation(1) {
		t.Errorf("wheel rotation %v, want %v", wheel.Rotation, WheelRotation(1))
	}
}

func TestOnChangeRemove(t *testing.T) {
	c, _, _ := newTestCarousel(t, 4)
	var a, b int
	removeA := c.OnChange(func(int, int) { a++ })
	c.OnChange(func(int, int) { b++ })

	c.Next()
	removeA()
	c.Next()
	if a != 1 || b != 2 {
		t.Fatalf("calls a=%d b=%d, want 1 and 2", a, b)
	}
}
