package carousel

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestRelativeIndex(t *testing.T) {
	tests := []struct {
		slide, active, total, want int
	}{
		{0, 0, 4, 0},
		{1, 0, 4, 1},
		{3, 0, 4, 3},
		{0, 3, 4, 1},
		{2, 3, 4, 3},
		{0, 0, 1, 0},
	}
	for _, tt := range tests {
		if got := RelativeIndex(tt.slide, tt.active, tt.total); got != tt.want {
			t.Errorf("RelativeIndex(%d,%d,%d) = %d, want %d", tt.slide, tt.active, tt.total, got, tt.want)
		}
	}
}

func TestSignedDistanceRange(t *testing.T) {
	for n := 1; n <= 9; n++ {
		for a := 0; a < n; a++ {
			for s := 0; s < n; s++ {
				d := SignedDistance(s, a, n)
				if d < -(n/2) || d > n/2 {
					t.Fatalf("SignedDistance(%d,%d,%d) = %d outside [-%d,%d]", s, a, n, d, n/2, n/2)
				}
			}
		}
	}
	if d := SignedDistance(3, 0, 4); d != -1 {
		t.Errorf("slide behind active: got %d, want -1", d)
	}
	if d := SignedDistance(1, 0, 2); d != -1 {
		t.Errorf("two slides: other slide got %d, want -1", d)
	}
}

func TestComputeTransformRoles(t *testing.T) {
	for n := 1; n <= 8; n++ {
		for a := 0; a < n; a++ {
			for s := 0; s < n; s++ {
				tr := ComputeTransform(s, a, n)
				switch SignedDistance(s, a, n) {
				case 0:
					if tr.Opacity != 1.0 || tr.Scale != 1.5 || tr.Rotation != 0 || tr.StackOrder != 1 {
						t.Fatalf("n=%d active=%d slide=%d: active transform %+v", n, a, s, tr)
					}
				case -1, 1:
					if tr.Opacity != 0.4 || tr.Scale != 0.9 || tr.StackOrder != -1 {
						t.Fatalf("n=%d active=%d slide=%d: neighbour transform %+v", n, a, s, tr)
					}
				default:
					if tr.Opacity != 0 || tr.Visible() {
						t.Fatalf("n=%d active=%d slide=%d: hidden slide has opacity %v", n, a, s, tr.Opacity)
					}
				}
			}
		}
	}
}

func TestComputeTransformPlacement(t *testing.T) {
	active := ComputeTransform(0, 0, 4)
	if !near(active.X, 0) || !near(active.Y, -380) {
		t.Errorf("active at (%v,%v), want (0,-380)", active.X, active.Y)
	}

	rad := 45 * math.Pi / 120
	next := ComputeTransform(1, 0, 4)
	if !near(next.X, 380*math.Sin(rad)) || !near(next.Y, -380*math.Cos(rad)) {
		t.Errorf("next at (%v,%v)", next.X, next.Y)
	}
	if next.Rotation != 55 {
		t.Errorf("next rotation %v, want 55", next.Rotation)
	}

	prev := ComputeTransform(3, 0, 4)
	if !near(prev.X, -next.X) || !near(prev.Y, next.Y) {
		t.Errorf("prev at (%v,%v), want mirror of next", prev.X, prev.Y)
	}
	if prev.Rotation != -55 {
		t.Errorf("prev rotation %v, want -55", prev.Rotation)
	}
}

func TestComputeTransformDependsOnlyOnDistance(t *testing.T) {
	const n = 6
	for a := 0; a < n; a++ {
		for s := 0; s < n; s++ {
			got := ComputeTransform(s, a, n)
			ref := ComputeTransform(RelativeIndex(s, a, n), 0, n)
			if got != ref {
				t.Fatalf("slide %d active %d: %+v != %+v", s, a, got, ref)
			}
			if again := ComputeTransform(s, a, n); again != got {
				t.Fatalf("not deterministic: %+v vs %+v", again, got)
			}
		}
	}
}

func TestWheelRotation(t *testing.T) {
	if r := WheelRotation(0); r != 0 {
		t.Errorf("WheelRotation(0) = %v", r)
	}
	if r := WheelRotation(3); r != -135 {
		t.Errorf("WheelRotation(3) = %v, want -135", r)
	}
}
