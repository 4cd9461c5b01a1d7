//go:build !ios && !android && (amd64 || arm64)

package bindings

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

// Library is GLFW loaded through purego. Create it with Load.
type Library struct {
	handle uintptr

	glfwInit              func() int32
	glfwTerminate         func()
	glfwGetVersion        func(major, minor, rev *int32)
	glfwGetVersionString  func() string
	glfwSetErrorCallback  func(cb uintptr) uintptr
	glfwPollEvents        func()
	glfwWaitEvents        func()
	glfwWaitEventsTimeout func(timeout float64)
	glfwPostEmptyEvent    func()
	glfwGetTime           func() float64
	glfwSetTime           func(t float64)

	glfwSwapInterval         func(interval int32)
	glfwExtensionSupported   func(name string) int32
	glfwGetProcAddress       func(name string) uintptr
	glfwMakeContextCurrent   func(win uintptr)
	glfwGetCurrentContext    func() uintptr
	glfwSwapBuffers          func(win uintptr)
	glfwDefaultWindowHints   func()
	glfwWindowHint           func(hint, value int32)
	glfwCreateWindow         func(width, height int32, title string, monitor, share uintptr) uintptr
	glfwDestroyWindow        func(win uintptr)
	glfwWindowShouldClose    func(win uintptr) int32
	glfwSetWindowShouldClose func(win uintptr, value int32)
	glfwSetWindowTitle       func(win uintptr, title string)
	glfwGetWindowSize        func(win uintptr, width, height *int32)
	glfwSetWindowSize        func(win uintptr, width, height int32)
	glfwGetWindowPos         func(win uintptr, x, y *int32)
	glfwSetWindowPos         func(win uintptr, x, y int32)
	glfwGetFramebufferSize   func(win uintptr, width, height *int32)
	glfwGetWindowFrameSize   func(win uintptr, left, top, right, bottom *int32)
	glfwGetCursorPos         func(win uintptr, x, y *float64)
	glfwSetCursorPos         func(win uintptr, x, y float64)
	glfwIconifyWindow        func(win uintptr)
	glfwRestoreWindow        func(win uintptr)
	glfwShowWindow           func(win uintptr)
	glfwHideWindow           func(win uintptr)
	glfwGetWindowMonitor     func(win uintptr) uintptr
	glfwGetWindowAttrib      func(win uintptr, attrib int32) int32
	glfwGetInputMode         func(win uintptr, mode int32) int32
	glfwSetInputMode         func(win uintptr, mode, value int32)
	glfwGetKey               func(win uintptr, key int32) int32
	glfwGetMouseButton       func(win uintptr, button int32) int32
	glfwGetClipboardString   func(win uintptr) string
	glfwSetClipboardString   func(win uintptr, s string)
	glfwSetWindowIcon        func(win uintptr, count int32, images unsafe.Pointer)
	glfwSetCursor            func(win, cursor uintptr)

	glfwCreateCursor         func(image unsafe.Pointer, xhot, yhot int32) uintptr
	glfwCreateStandardCursor func(shape int32) uintptr
	glfwDestroyCursor        func(cursor uintptr)

	glfwGetMonitors                func(count *int32) unsafe.Pointer
	glfwGetPrimaryMonitor          func() uintptr
	glfwGetMonitorPos              func(mon uintptr, x, y *int32)
	glfwGetMonitorPhysicalSize     func(mon uintptr, widthMM, heightMM *int32)
	glfwGetMonitorName             func(mon uintptr) string
	glfwGetVideoModes              func(mon uintptr, count *int32) unsafe.Pointer
	glfwGetVideoMode               func(mon uintptr) unsafe.Pointer
	glfwSetGamma                   func(mon uintptr, gamma float32)
	glfwGetGammaRamp               func(mon uintptr) unsafe.Pointer
	glfwSetGammaRamp               func(mon uintptr, ramp unsafe.Pointer)
	glfwSetMonitorCallback         func(cb uintptr) uintptr
	glfwJoystickPresent            func(jid int32) int32
	glfwGetJoystickAxes            func(jid int32, count *int32) unsafe.Pointer
	glfwGetJoystickButtons         func(jid int32, count *int32) unsafe.Pointer
	glfwGetJoystickName            func(jid int32) string
	glfwSetJoystickCallback        func(cb uintptr) uintptr
	glfwSetWindowPosCallback       func(win, cb uintptr) uintptr
	glfwSetWindowSizeCallback      func(win, cb uintptr) uintptr
	glfwSetWindowCloseCallback     func(win, cb uintptr) uintptr
	glfwSetWindowRefreshCallback   func(win, cb uintptr) uintptr
	glfwSetWindowFocusCallback     func(win, cb uintptr) uintptr
	glfwSetWindowIconifyCallback   func(win, cb uintptr) uintptr
	glfwSetFramebufferSizeCallback func(win, cb uintptr) uintptr
	glfwSetKeyCallback             func(win, cb uintptr) uintptr
	glfwSetCharCallback            func(win, cb uintptr) uintptr
	glfwSetCharModsCallback        func(win, cb uintptr) uintptr
	glfwSetMouseButtonCallback     func(win, cb uintptr) uintptr
	glfwSetCursorPosCallback       func(win, cb uintptr) uintptr
	glfwSetCursorEnterCallback     func(win, cb uintptr) uintptr
	glfwSetScrollCallback          func(win, cb uintptr) uintptr
	glfwSetDropCallback            func(win, cb uintptr) uintptr
}

var _ native.Library = (*Library)(nil)

func (l *Library) register() error {
	required := []struct {
		fptr any
		name string
	}{
		{&l.glfwInit, "glfwInit"},
		{&l.glfwTerminate, "glfwTerminate"},
		{&l.glfwGetVersion, "glfwGetVersion"},
		{&l.glfwGetVersionString, "glfwGetVersionString"},
		{&l.glfwSetErrorCallback, "glfwSetErrorCallback"},
		{&l.glfwPollEvents, "glfwPollEvents"},
		{&l.glfwWaitEvents, "glfwWaitEvents"},
		{&l.glfwGetTime, "glfwGetTime"},
		{&l.glfwSetTime, "glfwSetTime"},
		{&l.glfwSwapInterval, "glfwSwapInterval"},
		{&l.glfwExtensionSupported, "glfwExtensionSupported"},
		{&l.glfwGetProcAddress, "glfwGetProcAddress"},
		{&l.glfwMakeContextCurrent, "glfwMakeContextCurrent"},
		{&l.glfwGetCurrentContext, "glfwGetCurrentContext"},
		{&l.glfwSwapBuffers, "glfwSwapBuffers"},
		{&l.glfwDefaultWindowHints, "glfwDefaultWindowHints"},
		{&l.glfwWindowHint, "glfwWindowHint"},
		{&l.glfwCreateWindow, "glfwCreateWindow"},
		{&l.glfwDestroyWindow, "glfwDestroyWindow"},
		{&l.glfwWindowShouldClose, "glfwWindowShouldClose"},
		{&l.glfwSetWindowShouldClose, "glfwSetWindowShouldClose"},
		{&l.glfwSetWindowTitle, "glfwSetWindowTitle"},
		{&l.glfwGetWindowSize, "glfwGetWindowSize"},
		{&l.glfwSetWindowSize, "glfwSetWindowSize"},
		{&l.glfwGetWindowPos, "glfwGetWindowPos"},
		{&l.glfwSetWindowPos, "glfwSetWindowPos"},
		{&l.glfwGetFramebufferSize, "glfwGetFramebufferSize"},
		{&l.glfwGetCursorPos, "glfwGetCursorPos"},
		{&l.glfwSetCursorPos, "glfwSetCursorPos"},
		{&l.glfwIconifyWindow, "glfwIconifyWindow"},
		{&l.glfwRestoreWindow, "glfwRestoreWindow"},
		{&l.glfwShowWindow, "glfwShowWindow"},
		{&l.glfwHideWindow, "glfwHideWindow"},
		{&l.glfwGetWindowMonitor, "glfwGetWindowMonitor"},
		{&l.glfwGetWindowAttrib, "glfwGetWindowAttrib"},
		{&l.glfwGetInputMode, "glfwGetInputMode"},
		{&l.glfwSetInputMode, "glfwSetInputMode"},
		{&l.glfwGetKey, "glfwGetKey"},
		{&l.glfwGetMouseButton, "glfwGetMouseButton"},
		{&l.glfwGetClipboardString, "glfwGetClipboardString"},
		{&l.glfwSetClipboardString, "glfwSetClipboardString"},
		{&l.glfwGetMonitors, "glfwGetMonitors"},
		{&l.glfwGetPrimaryMonitor, "glfwGetPrimaryMonitor"},
		{&l.glfwGetMonitorPos, "glfwGetMonitorPos"},
		{&l.glfwGetMonitorPhysicalSize, "glfwGetMonitorPhysicalSize"},
		{&l.glfwGetMonitorName, "glfwGetMonitorName"},
		{&l.glfwGetVideoModes, "glfwGetVideoModes"},
		{&l.glfwGetVideoMode, "glfwGetVideoMode"},
		{&l.glfwSetGamma, "glfwSetGamma"},
		{&l.glfwGetGammaRamp, "glfwGetGammaRamp"},
		{&l.glfwSetGammaRamp, "glfwSetGammaRamp"},
		{&l.glfwSetMonitorCallback, "glfwSetMonitorCallback"},
		{&l.glfwJoystickPresent, "glfwJoystickPresent"},
		{&l.glfwGetJoystickAxes, "glfwGetJoystickAxes"},
		{&l.glfwGetJoystickButtons, "glfwGetJoystickButtons"},
		{&l.glfwGetJoystickName, "glfwGetJoystickName"},
		{&l.glfwSetWindowPosCallback, "glfwSetWindowPosCallback"},
		{&l.glfwSetWindowSizeCallback, "glfwSetWindowSizeCallback"},
		{&l.glfwSetWindowCloseCallback, "glfwSetWindowCloseCallback"},
		{&l.glfwSetWindowRefreshCallback, "glfwSetWindowRefreshCallback"},
		{&l.glfwSetWindowFocusCallback, "glfwSetWindowFocusCallback"},
		{&l.glfwSetWindowIconifyCallback, "glfwSetWindowIconifyCallback"},
		{&l.glfwSetFramebufferSizeCallback, "glfwSetFramebufferSizeCallback"},
		{&l.glfwSetKeyCallback, "glfwSetKeyCallback"},
		{&l.glfwSetCharCallback, "glfwSetCharCallback"},
		{&l.glfwSetMouseButtonCallback, "glfwSetMouseButtonCallback"},
		{&l.glfwSetCursorPosCallback, "glfwSetCursorPosCallback"},
		{&l.glfwSetCursorEnterCallback, "glfwSetCursorEnterCallback"},
		{&l.glfwSetScrollCallback, "glfwSetScrollCallback"},
	}
	for _, f := range required {
		if _, err := purego.Dlsym(l.handle, f.name); err != nil {
			return fmt.Errorf("%w: %s", ErrSymbolMissing, f.name)
		}
		purego.RegisterLibFunc(f.fptr, l.handle, f.name)
	}

	// Added in GLFW 3.1 / 3.2; older builds work without them.
	registerOptionalLibFunc(&l.glfwWaitEventsTimeout, l.handle, "glfwWaitEventsTimeout")
	registerOptionalLibFunc(&l.glfwPostEmptyEvent, l.handle, "glfwPostEmptyEvent")
	registerOptionalLibFunc(&l.glfwGetWindowFrameSize, l.handle, "glfwGetWindowFrameSize")
	registerOptionalLibFunc(&l.glfwSetWindowIcon, l.handle, "glfwSetWindowIcon")
	registerOptionalLibFunc(&l.glfwCreateCursor, l.handle, "glfwCreateCursor")
	registerOptionalLibFunc(&l.glfwCreateStandardCursor, l.handle, "glfwCreateStandardCursor")
	registerOptionalLibFunc(&l.glfwDestroyCursor, l.handle, "glfwDestroyCursor")
	registerOptionalLibFunc(&l.glfwSetCursor, l.handle, "glfwSetCursor")
	registerOptionalLibFunc(&l.glfwSetJoystickCallback, l.handle, "glfwSetJoystickCallback")
	registerOptionalLibFunc(&l.glfwSetCharModsCallback, l.handle, "glfwSetCharModsCallback")
	registerOptionalLibFunc(&l.glfwSetDropCallback, l.handle, "glfwSetDropCallback")
	return nil
}

func registerOptionalLibFunc(fptr any, handle uintptr, name string) {
	defer func() {
		_ = recover() // purego.RegisterLibFunc panics if symbol is missing
	}()
	purego.RegisterLibFunc(fptr, handle, name)
}

func (l *Library) Init() bool {
	// The error callback may be installed before glfwInit and must be, to
	// see initialization failures.
	l.glfwSetErrorCallback(trampoline(native.EventError))
	return l.glfwInit() == native.True
}

func (l *Library) Terminate() {
	l.glfwTerminate()
}

func (l *Library) Version() (major, minor, rev int) {
	var a, b, c int32
	l.glfwGetVersion(&a, &b, &c)
	return int(a), int(b), int(c)
}

func (l *Library) VersionString() string {
	return l.glfwGetVersionString()
}

func (l *Library) PollEvents() {
	l.glfwPollEvents()
}

func (l *Library) WaitEvents() {
	l.glfwWaitEvents()
}

func (l *Library) WaitEventsTimeout(seconds float64) {
	if l.glfwWaitEventsTimeout == nil {
		// Pre-3.2 fallback: block until any event.
		l.glfwWaitEvents()
		return
	}
	l.glfwWaitEventsTimeout(seconds)
}

func (l *Library) PostEmptyEvent() {
	if l.glfwPostEmptyEvent != nil {
		l.glfwPostEmptyEvent()
	}
}

func (l *Library) Time() float64 {
	return l.glfwGetTime()
}

func (l *Library) SetTime(t float64) {
	l.glfwSetTime(t)
}

func (l *Library) SwapInterval(interval int) {
	l.glfwSwapInterval(int32(interval))
}

func (l *Library) ExtensionSupported(name string) bool {
	return l.glfwExtensionSupported(name) != native.False
}

func (l *Library) ProcAddress(name string) uintptr {
	return l.glfwGetProcAddress(name)
}

func (l *Library) DefaultWindowHints() {
	l.glfwDefaultWindowHints()
}

func (l *Library) WindowHint(hint, value int) {
	l.glfwWindowHint(int32(hint), int32(value))
}

func (l *Library) CreateWindow(width, height int, title string, monitor, share native.Handle) native.Handle {
	return native.Handle(l.glfwCreateWindow(int32(width), int32(height), title, uintptr(monitor), uintptr(share)))
}

func (l *Library) DestroyWindow(win native.Handle) {
	l.glfwDestroyWindow(uintptr(win))
}

func (l *Library) MakeContextCurrent(win native.Handle) {
	l.glfwMakeContextCurrent(uintptr(win))
}

func (l *Library) CurrentContext() native.Handle {
	return native.Handle(l.glfwGetCurrentContext())
}

func (l *Library) SwapBuffers(win native.Handle) {
	l.glfwSwapBuffers(uintptr(win))
}

func (l *Library) WindowShouldClose(win native.Handle) int {
	return int(l.glfwWindowShouldClose(uintptr(win)))
}

func (l *Library) SetWindowShouldClose(win native.Handle, value int) {
	l.glfwSetWindowShouldClose(uintptr(win), int32(value))
}

func (l *Library) SetWindowTitle(win native.Handle, title string) {
	l.glfwSetWindowTitle(uintptr(win), title)
}

func (l *Library) WindowSize(win native.Handle) (width, height int) {
	var w, h int32
	l.glfwGetWindowSize(uintptr(win), &w, &h)
	return int(w), int(h)
}

func (l *Library) SetWindowSize(win native.Handle, width, height int) {
	l.glfwSetWindowSize(uintptr(win), int32(width), int32(height))
}

func (l *Library) WindowPos(win native.Handle) (x, y int) {
	var px, py int32
	l.glfwGetWindowPos(uintptr(win), &px, &py)
	return int(px), int(py)
}

func (l *Library) SetWindowPos(win native.Handle, x, y int) {
	l.glfwSetWindowPos(uintptr(win), int32(x), int32(y))
}

func (l *Library) FramebufferSize(win native.Handle) (width, height int) {
	var w, h int32
	l.glfwGetFramebufferSize(uintptr(win), &w, &h)
	return int(w), int(h)
}

func (l *Library) WindowFrameSize(win native.Handle) (left, top, right, bottom int) {
	if l.glfwGetWindowFrameSize == nil {
		return 0, 0, 0, 0
	}
	var a, b, c, d int32
	l.glfwGetWindowFrameSize(uintptr(win), &a, &b, &c, &d)
	return int(a), int(b), int(c), int(d)
}

func (l *Library) CursorPos(win native.Handle) (x, y float64) {
	l.glfwGetCursorPos(uintptr(win), &x, &y)
	return x, y
}

func (l *Library) SetCursorPos(win native.Handle, x, y float64) {
	l.glfwSetCursorPos(uintptr(win), x, y)
}

func (l *Library) IconifyWindow(win native.Handle) {
	l.glfwIconifyWindow(uintptr(win))
}

func (l *Library) RestoreWindow(win native.Handle) {
	l.glfwRestoreWindow(uintptr(win))
}

func (l *Library) ShowWindow(win native.Handle) {
	l.glfwShowWindow(uintptr(win))
}

func (l *Library) HideWindow(win native.Handle) {
	l.glfwHideWindow(uintptr(win))
}

func (l *Library) WindowMonitor(win native.Handle) native.Handle {
	return native.Handle(l.glfwGetWindowMonitor(uintptr(win)))
}

func (l *Library) WindowAttrib(win native.Handle, attrib int) int {
	return int(l.glfwGetWindowAttrib(uintptr(win), int32(attrib)))
}

func (l *Library) InputMode(win native.Handle, mode int) int {
	return int(l.glfwGetInputMode(uintptr(win), int32(mode)))
}

func (l *Library) SetInputMode(win native.Handle, mode, value int) {
	l.glfwSetInputMode(uintptr(win), int32(mode), int32(value))
}

func (l *Library) Key(win native.Handle, key int) int {
	return int(l.glfwGetKey(uintptr(win), int32(key)))
}

func (l *Library) MouseButton(win native.Handle, button int) int {
	return int(l.glfwGetMouseButton(uintptr(win), int32(button)))
}

func (l *Library) ClipboardString(win native.Handle) string {
	return l.glfwGetClipboardString(uintptr(win))
}

func (l *Library) SetClipboardString(win native.Handle, s string) {
	l.glfwSetClipboardString(uintptr(win), s)
}

// glfwImage matches GLFWimage on 64-bit platforms.
type glfwImage struct {
	Width  int32
	Height int32
	Pixels *byte
}

// glfwGammaRamp matches GLFWgammaramp on 64-bit platforms.
type glfwGammaRamp struct {
	Red   *uint16
	Green *uint16
	Blue  *uint16
	Size  uint32
}

func (l *Library) SetWindowIcon(win native.Handle, images []native.ImageData) {
	if l.glfwSetWindowIcon == nil {
		return
	}
	if len(images) == 0 {
		l.glfwSetWindowIcon(uintptr(win), 0, nil)
		return
	}

	var pin runtime.Pinner
	defer pin.Unpin()

	cImages := make([]glfwImage, len(images))
	for i, img := range images {
		cImages[i] = glfwImage{Width: img.Width, Height: img.Height}
		if len(img.Pixels) > 0 {
			pin.Pin(&img.Pixels[0])
			cImages[i].Pixels = &img.Pixels[0]
		}
	}
	pin.Pin(&cImages[0])
	l.glfwSetWindowIcon(uintptr(win), int32(len(cImages)), unsafe.Pointer(&cImages[0]))
}

func (l *Library) SetCursor(win, cursor native.Handle) {
	if l.glfwSetCursor != nil {
		l.glfwSetCursor(uintptr(win), uintptr(cursor))
	}
}

func (l *Library) CreateCursor(image native.ImageData, xhot, yhot int) native.Handle {
	if l.glfwCreateCursor == nil || len(image.Pixels) == 0 {
		return 0
	}

	var pin runtime.Pinner
	defer pin.Unpin()

	pin.Pin(&image.Pixels[0])
	cImage := &glfwImage{Width: image.Width, Height: image.Height, Pixels: &image.Pixels[0]}
	pin.Pin(cImage)
	return native.Handle(l.glfwCreateCursor(unsafe.Pointer(cImage), int32(xhot), int32(yhot)))
}

func (l *Library) CreateStandardCursor(shape int) native.Handle {
	if l.glfwCreateStandardCursor == nil {
		return 0
	}
	return native.Handle(l.glfwCreateStandardCursor(int32(shape)))
}

func (l *Library) DestroyCursor(cursor native.Handle) {
	if l.glfwDestroyCursor != nil {
		l.glfwDestroyCursor(uintptr(cursor))
	}
}

func (l *Library) Monitors() []native.Handle {
	var count int32
	ptr := l.glfwGetMonitors(&count)
	if ptr == nil || count <= 0 {
		return nil
	}
	raw := unsafe.Slice((*uintptr)(ptr), count)
	out := make([]native.Handle, count)
	for i, m := range raw {
		out[i] = native.Handle(m)
	}
	return out
}

func (l *Library) PrimaryMonitor() native.Handle {
	return native.Handle(l.glfwGetPrimaryMonitor())
}

func (l *Library) MonitorPos(mon native.Handle) (x, y int) {
	var px, py int32
	l.glfwGetMonitorPos(uintptr(mon), &px, &py)
	return int(px), int(py)
}

func (l *Library) MonitorPhysicalSize(mon native.Handle) (widthMM, heightMM int) {
	var w, h int32
	l.glfwGetMonitorPhysicalSize(uintptr(mon), &w, &h)
	return int(w), int(h)
}

func (l *Library) MonitorName(mon native.Handle) string {
	return l.glfwGetMonitorName(uintptr(mon))
}

func (l *Library) VideoModes(mon native.Handle) []native.VidMode {
	var count int32
	ptr := l.glfwGetVideoModes(uintptr(mon), &count)
	if ptr == nil || count <= 0 {
		return nil
	}
	// GLFWvidmode is six C ints, identical to native.VidMode.
	return append([]native.VidMode(nil), unsafe.Slice((*native.VidMode)(ptr), count)...)
}

func (l *Library) VideoMode(mon native.Handle) (native.VidMode, bool) {
	ptr := l.glfwGetVideoMode(uintptr(mon))
	if ptr == nil {
		return native.VidMode{}, false
	}
	return *(*native.VidMode)(ptr), true
}

func (l *Library) SetGamma(mon native.Handle, gamma float32) {
	l.glfwSetGamma(uintptr(mon), gamma)
}

func (l *Library) GammaRamp(mon native.Handle) (native.GammaRamp, bool) {
	ptr := l.glfwGetGammaRamp(uintptr(mon))
	if ptr == nil {
		return native.GammaRamp{}, false
	}
	c := (*glfwGammaRamp)(ptr)
	n := int(c.Size)
	ramp := native.GammaRamp{
		Red:   make([]uint16, n),
		Green: make([]uint16, n),
		Blue:  make([]uint16, n),
	}
	if n > 0 {
		copy(ramp.Red, unsafe.Slice(c.Red, n))
		copy(ramp.Green, unsafe.Slice(c.Green, n))
		copy(ramp.Blue, unsafe.Slice(c.Blue, n))
	}
	return ramp, true
}

func (l *Library) SetGammaRamp(mon native.Handle, ramp native.GammaRamp) {
	n := len(ramp.Red)
	if n == 0 || len(ramp.Green) != n || len(ramp.Blue) != n {
		return
	}

	var pin runtime.Pinner
	defer pin.Unpin()

	pin.Pin(&ramp.Red[0])
	pin.Pin(&ramp.Green[0])
	pin.Pin(&ramp.Blue[0])
	c := &glfwGammaRamp{Red: &ramp.Red[0], Green: &ramp.Green[0], Blue: &ramp.Blue[0], Size: uint32(n)}
	pin.Pin(c)
	l.glfwSetGammaRamp(uintptr(mon), unsafe.Pointer(c))
}

func (l *Library) JoystickPresent(jid int) bool {
	return l.glfwJoystickPresent(int32(jid)) == native.True
}

func (l *Library) JoystickAxes(jid int) []float32 {
	var count int32
	ptr := l.glfwGetJoystickAxes(int32(jid), &count)
	if ptr == nil || count <= 0 {
		return nil
	}
	return append([]float32(nil), unsafe.Slice((*float32)(ptr), count)...)
}

func (l *Library) JoystickButtons(jid int) []byte {
	var count int32
	ptr := l.glfwGetJoystickButtons(int32(jid), &count)
	if ptr == nil || count <= 0 {
		return nil
	}
	return append([]byte(nil), unsafe.Slice((*byte)(ptr), count)...)
}

func (l *Library) JoystickName(jid int) string {
	return l.glfwGetJoystickName(int32(jid))
}
