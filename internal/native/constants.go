//go:build !ios && !android && (amd64 || arm64)

package native

// GLFW enum values used by glfwgo and by the simulated library. Names follow
// glfw3.h without the GLFW_ prefix.
const (
	// Actions
	Release = 0
	Press   = 1
	Repeat  = 2

	// Error codes
	NotInitialized     = 0x00010001
	NoCurrentContext   = 0x00010002
	InvalidEnum        = 0x00010003
	InvalidValue       = 0x00010004
	OutOfMemory        = 0x00010005
	APIUnavailable     = 0x00010006
	VersionUnavailable = 0x00010007
	PlatformError      = 0x00010008
	FormatUnavailable  = 0x00010009

	// Window attributes and hints
	Focused     = 0x00020001
	Iconified   = 0x00020002
	Resizable   = 0x00020003
	Visible     = 0x00020004
	Decorated   = 0x00020005
	AutoIconify = 0x00020006
	Floating    = 0x00020007
	Maximized   = 0x00020008

	RedBits      = 0x00021001
	GreenBits    = 0x00021002
	BlueBits     = 0x00021003
	AlphaBits    = 0x00021004
	DepthBits    = 0x00021005
	StencilBits  = 0x00021006
	Samples      = 0x0002100D
	SRGBCapable  = 0x0002100E
	RefreshRate  = 0x0002100F
	DoubleBuffer = 0x00021010

	ClientAPI           = 0x00022001
	ContextVersionMajor = 0x00022002
	ContextVersionMinor = 0x00022003
	ContextRevision     = 0x00022004
	ContextRobustness   = 0x00022005
	OpenGLForwardCompat = 0x00022006
	OpenGLDebugContext  = 0x00022007
	OpenGLProfile       = 0x00022008

	OpenGLAPI           = 0x00030001
	OpenGLESAPI         = 0x00030002
	NoAPI               = 0
	OpenGLAnyProfile    = 0
	OpenGLCoreProfile   = 0x00032001
	OpenGLCompatProfile = 0x00032002

	// Input modes and values
	InputModeCursor             = 0x00033001
	InputModeStickyKeys         = 0x00033002
	InputModeStickyMouseButtons = 0x00033003

	CursorNormal   = 0x00034001
	CursorHidden   = 0x00034002
	CursorDisabled = 0x00034003

	// Standard cursor shapes
	ArrowCursor     = 0x00036001
	IBeamCursor     = 0x00036002
	CrosshairCursor = 0x00036003
	HandCursor      = 0x00036004
	HResizeCursor   = 0x00036005
	VResizeCursor   = 0x00036006

	// Joysticks
	Joystick1    = 0
	JoystickLast = 15
)
