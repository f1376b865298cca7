package carousel

import "math"

// Property is one animatable channel of a target.
type Property int

const (
	PropX Property = iota
	PropY
	PropRotation
	PropScale
	PropOpacity
	PropStackOrder
	PropTiltX
	PropTiltY

	numProps
)

func (p Property) String() string {
	switch p {
	case PropX:
		return "x"
	case PropY:
		return "y"
	case PropRotation:
		return "rotation"
	case PropScale:
		return "scale"
	case PropOpacity:
		return "opacity"
	case PropStackOrder:
		return "stack-order"
	case PropTiltX:
		return "tilt-x"
	case PropTiltY:
		return "tilt-y"
	}
	return "unknown"
}

// Animatable is anything the animator can push values into. Rendering
// toolkits supply an adapter; Pose is the plain one.
type Animatable interface {
	Set(p Property, v float64)
}

// Pose holds the last values written by the animator.
type Pose struct {
	X, Y         float64
	Rotation     float64
	Scale        float64
	Opacity      float64
	StackOrder   int
	TiltX, TiltY float64
}

// NeutralPose is the pose of an element before any layout.
func NeutralPose() Pose {
	return Pose{Scale: 1, Opacity: 1}
}

func (p *Pose) Set(prop Property, v float64) {
	switch prop {
	case PropX:
		p.X = v
	case PropY:
		p.Y = v
	case PropRotation:
		p.Rotation = v
	case PropScale:
		p.Scale = v
	case PropOpacity:
		p.Opacity = v
	case PropStackOrder:
		p.StackOrder = int(math.Round(v))
	case PropTiltX:
		p.TiltX = v
	case PropTiltY:
		p.TiltY = v
	}
}

// Get reads a channel back.
func (p *Pose) Get(prop Property) float64 {
	switch prop {
	case PropX:
		return p.X
	case PropY:
		return p.Y
	case PropRotation:
		return p.Rotation
	case PropScale:
		return p.Scale
	case PropOpacity:
		return p.Opacity
	case PropStackOrder:
		return float64(p.StackOrder)
	case PropTiltX:
		return p.TiltX
	case PropTiltY:
		return p.TiltY
	}
	return 0
}

// Matches reports whether the pose sits exactly on t.
func (p *Pose) Matches(t Transform) bool {
	const eps = 1e-9
	return math.Abs(p.X-t.X) < eps && math.Abs(p.Y-t.Y) < eps &&
		math.Abs(p.Rotation-t.Rotation) < eps && math.Abs(p.Scale-t.Scale) < eps &&
		math.Abs(p.Opacity-t.Opacity) < eps && p.StackOrder == t.StackOrder
}
