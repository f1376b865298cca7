package carousel

import "time"

// Ease maps linear progress in [0,1] to eased progress.
type Ease func(t float64) float64

// EaseOutCubic decelerates towards the target (power2.out).
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Linear is the identity ease.
func Linear(t float64) float64 { return t }

type tween struct {
	from, to float64
	elapsed  time.Duration
	duration time.Duration
	ease     Ease
}

type channel struct {
	value float64
	tw    *tween
}

type track struct {
	target Animatable
	ch     [numProps]channel
}

// Animator interpolates the channels of registered targets. Each channel
// holds at most one tween; scheduling a new destination while one is in
// flight redirects it from the value currently rendered without resetting
// its elapsed time, so it still lands at the original deadline.
type Animator[K comparable] struct {
	tracks map[K]*track
	order  []K
}

func NewAnimator[K comparable]() *Animator[K] {
	return &Animator[K]{tracks: map[K]*track{}}
}

// Register binds key to target and pushes the initial pose into it.
// Registering an existing key replaces its target and drops its tweens.
func (a *Animator[K]) Register(key K, target Animatable, initial Pose) {
	tr, ok := a.tracks[key]
	if !ok {
		tr = &track{}
		a.tracks[key] = tr
		a.order = append(a.order, key)
	}
	tr.target = target
	for p := Property(0); p < numProps; p++ {
		tr.ch[p] = channel{value: initial.Get(p)}
		target.Set(p, tr.ch[p].value)
	}
}

// Has reports whether key is registered.
func (a *Animator[K]) Has(key K) bool {
	_, ok := a.tracks[key]
	return ok
}

// Set writes v immediately, cancelling any tween on the channel.
func (a *Animator[K]) Set(key K, p Property, v float64) {
	tr, ok := a.tracks[key]
	if !ok {
		return
	}
	tr.ch[p] = channel{value: v}
	tr.target.Set(p, v)
}

// To schedules the channel towards v. It reports whether a tween was
// started or redirected; asking for the destination already in flight, or
// for the value a resting channel already holds, changes nothing. A
// redirect ignores d and ease and keeps the tween's own.
func (a *Animator[K]) To(key K, p Property, v float64, d time.Duration, ease Ease) bool {
	tr, ok := a.tracks[key]
	if !ok {
		return false
	}
	c := &tr.ch[p]
	if c.tw != nil && c.tw.to == v {
		return false
	}
	if c.tw == nil && c.value == v {
		return false
	}
	if d <= 0 {
		a.Set(key, p, v)
		return true
	}
	if tw := c.tw; tw != nil {
		tw.redirect(c.value, v)
		if tw.to == tw.from {
			a.Set(key, p, v)
		}
		return true
	}
	if ease == nil {
		ease = Linear
	}
	c.tw = &tween{from: c.value, to: v, duration: d, ease: ease}
	return true
}

// redirect points the tween at v while keeping its clock. from is re-solved
// so the curve still passes through cur at the current progress.
func (tw *tween) redirect(cur, v float64) {
	k := tw.ease(float64(tw.elapsed) / float64(tw.duration))
	tw.to = v
	if 1-k < 1e-9 {
		tw.from = v
		return
	}
	tw.from = (cur - v*k) / (1 - k)
}

// Tick advances every in-flight tween by dt.
func (a *Animator[K]) Tick(dt time.Duration) {
	for _, key := range a.order {
		tr := a.tracks[key]
		for p := Property(0); p < numProps; p++ {
			c := &tr.ch[p]
			if c.tw == nil {
				continue
			}
			c.tw.elapsed += dt
			if c.tw.elapsed >= c.tw.duration {
				c.value = c.tw.to
				c.tw = nil
			} else {
				k := c.tw.ease(float64(c.tw.elapsed) / float64(c.tw.duration))
				c.value = c.tw.from + (c.tw.to-c.tw.from)*k
			}
			tr.target.Set(p, c.value)
		}
	}
}

// Value is the channel's current rendered value.
func (a *Animator[K]) Value(key K, p Property) (float64, bool) {
	tr, ok := a.tracks[key]
	if !ok {
		return 0, false
	}
	return tr.ch[p].value, true
}

// Destination is where the channel is heading (its value when at rest).
func (a *Animator[K]) Destination(key K, p Property) (float64, bool) {
	tr, ok := a.tracks[key]
	if !ok {
		return 0, false
	}
	if tw := tr.ch[p].tw; tw != nil {
		return tw.to, true
	}
	return tr.ch[p].value, true
}

// Elapsed returns how long the channel's tween has been running.
func (a *Animator[K]) Elapsed(key K, p Property) (time.Duration, bool) {
	tr, ok := a.tracks[key]
	if !ok || tr.ch[p].tw == nil {
		return 0, false
	}
	return tr.ch[p].tw.elapsed, true
}

// InFlight counts channels that are still moving.
func (a *Animator[K]) InFlight() int {
	n := 0
	for _, tr := range a.tracks {
		for p := range tr.ch {
			if tr.ch[p].tw != nil {
				n++
			}
		}
	}
	return n
}
