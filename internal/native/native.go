//go:build !ios && !android && (amd64 || arm64)

// Package native describes the boundary between glfwgo and the GLFW library.
//
// Library is implemented twice: by internal/bindings on top of the real shared
// library (through purego), and by package glfwtest as an in-memory simulation.
// Everything above this package only talks to the interface.
package native

// Handle is an opaque GLFW object pointer (GLFWwindow*, GLFWmonitor*,
// GLFWcursor*). Zero is NULL. A Handle is meaningless once the object it
// names has been destroyed, and the library is free to hand the same value
// out again for a new object.
type Handle uintptr

// GLFW boolean sentinels.
const (
	True  = 1
	False = 0
)

// VidMode mirrors GLFWvidmode.
type VidMode struct {
	Width       int32
	Height      int32
	RedBits     int32
	GreenBits   int32
	BlueBits    int32
	RefreshRate int32
}

// GammaRamp mirrors GLFWgammaramp. The three channels have the same length.
type GammaRamp struct {
	Red   []uint16
	Green []uint16
	Blue  []uint16
}

// ImageData mirrors GLFWimage: RGBA8, row-major, len(Pixels) == 4*Width*Height.
type ImageData struct {
	Width  int32
	Height int32
	Pixels []byte
}

// Library is the set of GLFW primitives glfwgo needs. Methods map one to one
// onto glfw* functions; none of them interprets or retries failures, which
// are reported through an EventError delivered to the event handler.
type Library interface {
	Init() bool
	Terminate()
	Version() (major, minor, rev int)
	VersionString() string

	// SetEventHandler installs the single sink every native callback is
	// routed to. It is called once, before Init.
	SetEventHandler(fn func(Event))
	EnableWindowEvent(win Handle, kind EventKind, on bool)
	EnableMonitorEvents(on bool)
	EnableJoystickEvents(on bool)

	PollEvents()
	WaitEvents()
	WaitEventsTimeout(seconds float64)
	PostEmptyEvent()

	Time() float64
	SetTime(t float64)
	SwapInterval(interval int)
	ExtensionSupported(name string) bool
	ProcAddress(name string) uintptr

	DefaultWindowHints()
	WindowHint(hint, value int)
	CreateWindow(width, height int, title string, monitor, share Handle) Handle
	DestroyWindow(win Handle)
	MakeContextCurrent(win Handle)
	CurrentContext() Handle
	SwapBuffers(win Handle)
	WindowShouldClose(win Handle) int
	SetWindowShouldClose(win Handle, value int)
	SetWindowTitle(win Handle, title string)
	WindowSize(win Handle) (width, height int)
	SetWindowSize(win Handle, width, height int)
	WindowPos(win Handle) (x, y int)
	SetWindowPos(win Handle, x, y int)
	FramebufferSize(win Handle) (width, height int)
	WindowFrameSize(win Handle) (left, top, right, bottom int)
	CursorPos(win Handle) (x, y float64)
	SetCursorPos(win Handle, x, y float64)
	IconifyWindow(win Handle)
	RestoreWindow(win Handle)
	ShowWindow(win Handle)
	HideWindow(win Handle)
	WindowMonitor(win Handle) Handle
	WindowAttrib(win Handle, attrib int) int
	InputMode(win Handle, mode int) int
	SetInputMode(win Handle, mode, value int)
	Key(win Handle, key int) int
	MouseButton(win Handle, button int) int
	ClipboardString(win Handle) string
	SetClipboardString(win Handle, s string)
	SetWindowIcon(win Handle, images []ImageData)
	SetCursor(win, cursor Handle)

	CreateCursor(image ImageData, xhot, yhot int) Handle
	CreateStandardCursor(shape int) Handle
	DestroyCursor(cursor Handle)

	Monitors() []Handle
	PrimaryMonitor() Handle
	MonitorPos(mon Handle) (x, y int)
	MonitorPhysicalSize(mon Handle) (widthMM, heightMM int)
	MonitorName(mon Handle) string
	VideoModes(mon Handle) []VidMode
	VideoMode(mon Handle) (VidMode, bool)
	SetGamma(mon Handle, gamma float32)
	GammaRamp(mon Handle) (GammaRamp, bool)
	SetGammaRamp(mon Handle, ramp GammaRamp)

	JoystickPresent(jid int) bool
	JoystickAxes(jid int) []float32
	JoystickButtons(jid int) []byte
	JoystickName(jid int) string
}
