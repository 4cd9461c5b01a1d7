//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import "github.com/obinnaokechukwu/glfwgo/internal/native"

// GLFW boolean values, for APIs that take raw integers.
const (
	True  = native.True
	False = native.False
)

// Hint is a window creation hint or window attribute.
type Hint int

// Window hints and attributes
const (
	Focused     Hint = native.Focused
	Iconified   Hint = native.Iconified
	Resizable   Hint = native.Resizable
	Visible     Hint = native.Visible
	Decorated   Hint = native.Decorated
	AutoIconify Hint = native.AutoIconify
	Floating    Hint = native.Floating
	Maximized   Hint = native.Maximized

	RedBits      Hint = native.RedBits
	GreenBits    Hint = native.GreenBits
	BlueBits     Hint = native.BlueBits
	AlphaBits    Hint = native.AlphaBits
	DepthBits    Hint = native.DepthBits
	StencilBits  Hint = native.StencilBits
	Samples      Hint = native.Samples
	SRGBCapable  Hint = native.SRGBCapable
	RefreshRate  Hint = native.RefreshRate
	DoubleBuffer Hint = native.DoubleBuffer

	ClientAPI           Hint = native.ClientAPI
	ContextVersionMajor Hint = native.ContextVersionMajor
	ContextVersionMinor Hint = native.ContextVersionMinor
	ContextRevision     Hint = native.ContextRevision
	ContextRobustness   Hint = native.ContextRobustness
	OpenGLForwardCompat Hint = native.OpenGLForwardCompat
	OpenGLDebugContext  Hint = native.OpenGLDebugContext
	OpenGLProfile       Hint = native.OpenGLProfile
)

// Values for the ClientAPI and OpenGLProfile hints
const (
	OpenGLAPI           = native.OpenGLAPI
	OpenGLESAPI         = native.OpenGLESAPI
	NoAPI               = native.NoAPI
	OpenGLAnyProfile    = native.OpenGLAnyProfile
	OpenGLCoreProfile   = native.OpenGLCoreProfile
	OpenGLCompatProfile = native.OpenGLCompatProfile
)

// Action is the state of a key or mouse button.
type Action int

const (
	Release Action = native.Release
	Press   Action = native.Press
	Repeat  Action = native.Repeat
)

func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	}
	return "unknown"
}

// ModifierKey is a bit set of modifier keys held during an input event.
type ModifierKey int

const (
	ModShift   ModifierKey = 0x0001
	ModControl ModifierKey = 0x0002
	ModAlt     ModifierKey = 0x0004
	ModSuper   ModifierKey = 0x0008
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButton1      MouseButton = 0
	MouseButton2      MouseButton = 1
	MouseButton3      MouseButton = 2
	MouseButton4      MouseButton = 3
	MouseButton5      MouseButton = 4
	MouseButton6      MouseButton = 5
	MouseButton7      MouseButton = 6
	MouseButton8      MouseButton = 7
	MouseButtonLast               = MouseButton8
	MouseButtonLeft               = MouseButton1
	MouseButtonRight              = MouseButton2
	MouseButtonMiddle             = MouseButton3
)

// Key is a physical keyboard key, named after the US layout.
type Key int

// Printable keys
const (
	KeyUnknown      Key = -1
	KeySpace        Key = 32
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key1            Key = 49
	Key2            Key = 50
	Key3            Key = 51
	Key4            Key = 52
	Key5            Key = 53
	Key6            Key = 54
	Key7            Key = 55
	Key8            Key = 56
	Key9            Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGraveAccent  Key = 96
)

// Function keys
const (
	KeyEscape       Key = 256
	KeyEnter        Key = 257
	KeyTab          Key = 258
	KeyBackspace    Key = 259
	KeyInsert       Key = 260
	KeyDelete       Key = 261
	KeyRight        Key = 262
	KeyLeft         Key = 263
	KeyDown         Key = 264
	KeyUp           Key = 265
	KeyPageUp       Key = 266
	KeyPageDown     Key = 267
	KeyHome         Key = 268
	KeyEnd          Key = 269
	KeyCapsLock     Key = 280
	KeyScrollLock   Key = 281
	KeyNumLock      Key = 282
	KeyPrintScreen  Key = 283
	KeyPause        Key = 284
	KeyF1           Key = 290
	KeyF2           Key = 291
	KeyF3           Key = 292
	KeyF4           Key = 293
	KeyF5           Key = 294
	KeyF6           Key = 295
	KeyF7           Key = 296
	KeyF8           Key = 297
	KeyF9           Key = 298
	KeyF10          Key = 299
	KeyF11          Key = 300
	KeyF12          Key = 301
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
	KeyMenu         Key = 348
	KeyLast             = KeyMenu
)

// InputMode selects a per-window input setting.
type InputMode int

const (
	CursorMode             InputMode = native.InputModeCursor
	StickyKeysMode         InputMode = native.InputModeStickyKeys
	StickyMouseButtonsMode InputMode = native.InputModeStickyMouseButtons
)

// Values for CursorMode
const (
	CursorNormal   = native.CursorNormal
	CursorHidden   = native.CursorHidden
	CursorDisabled = native.CursorDisabled
)

// StandardCursor is a cursor shape provided by the platform.
type StandardCursor int

const (
	ArrowCursor     StandardCursor = native.ArrowCursor
	IBeamCursor     StandardCursor = native.IBeamCursor
	CrosshairCursor StandardCursor = native.CrosshairCursor
	HandCursor      StandardCursor = native.HandCursor
	HResizeCursor   StandardCursor = native.HResizeCursor
	VResizeCursor   StandardCursor = native.VResizeCursor
)
