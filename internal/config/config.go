package config

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Header
	HeaderHeight     = 64
	HeaderCollapseAt = 820
	MenuButtonSize   = 40
	BookButtonWidth  = 120
	BookButtonHeight = 36

	// Wheel placement (hub height on the reference window)
	WheelCenterY = 730
	WheelRadius  = 300

	// Slide cards
	CardWidth  = 150
	CardHeight = 190
	CaptionY   = WindowHeight - 40

	// Carousel geometry
	AngleStep        = 45.0
	OrbitRadius      = 380.0
	ArcDivisor       = 120.0
	ActiveScale      = 1.5
	NeighborScale    = 0.9
	ActiveOpacity    = 1.0
	NeighborOpacity  = 0.4
	NeighborRotation = 55.0
	FrontLayer       = 1
	BackLayer        = -1

	// Gestures
	DragThreshold = 50.0
	MaxHoverTilt  = 12.0

	// Animation (milliseconds)
	TransitionMillis = 500
	TiltResetMillis  = 400
	TiltFollowMillis = 150

	// Sound
	SampleRate      = 44100
	TapRingSize     = 4096
	ClickMillis     = 45
	ClickFrequency  = 880.0
	GlowSmoothing   = 0.8
	ColorShiftSpeed = 0.01
)
