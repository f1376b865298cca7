package carousel

import (
	"math"

	"github.com/iburimskiy/super-quads/internal/config"
)

// Transform is the placement of one slide relative to the wheel hub.
type Transform struct {
	Relative   int
	X, Y       float64
	Rotation   float64 // degrees
	Scale      float64
	Opacity    float64
	StackOrder int
}

// Visible reports whether the slide is drawn at all.
func (t Transform) Visible() bool { return t.Opacity > 0 }

// RelativeIndex returns (slide - active) mod total in [0, total).
func RelativeIndex(slide, active, total int) int {
	r := (slide - active) % total
	if r < 0 {
		r += total
	}
	return r
}

// SignedDistance folds RelativeIndex into [-(total/2), total/2], with the
// slide one step behind the active one at -1.
func SignedDistance(slide, active, total int) int {
	r := RelativeIndex(slide, active, total)
	if r > (total-1)/2 {
		r -= total
	}
	return r
}

// ComputeTransform places slide on the wheel for the given active index.
func ComputeTransform(slide, active, total int) Transform {
	r := RelativeIndex(slide, active, total)
	d := SignedDistance(slide, active, total)

	t := Transform{
		Relative:   d,
		Scale:      config.NeighborScale,
		StackOrder: config.BackLayer,
	}

	angle := float64(r) * config.AngleStep
	switch d {
	case 0:
		angle = 0
		t.Scale = config.ActiveScale
		t.Opacity = config.ActiveOpacity
		t.StackOrder = config.FrontLayer
	case -1:
		angle = -config.AngleStep
		t.Rotation = -config.NeighborRotation
		t.Opacity = config.NeighborOpacity
	case 1:
		angle = config.AngleStep
		t.Rotation = config.NeighborRotation
		t.Opacity = config.NeighborOpacity
	}

	// Flattened arc: the divisor is not 180.
	rad := angle * math.Pi / config.ArcDivisor
	t.X = config.OrbitRadius * math.Sin(rad)
	t.Y = -config.OrbitRadius * math.Cos(rad)
	return t
}

// WheelRotation is the backdrop rotation in degrees for the active index.
func WheelRotation(active int) float64 {
	return -float64(active) * config.AngleStep
}

// Transforms computes every slide's placement.
func Transforms(active, total int) []Transform {
	out := make([]Transform, total)
	for i := range out {
		out[i] = ComputeTransform(i, active, total)
	}
	return out
}
