//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"errors"
	"fmt"
	"sync"

	"github.com/obinnaokechukwu/glfwgo/internal/bindings"
	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

// Common errors
var (
	// ErrNotInitialized indicates Init has not been called, or Terminate
	// has been called since.
	ErrNotInitialized = errors.New("glfwgo: GLFW not initialized")

	// ErrLibraryNotFound indicates the GLFW shared library could not be found.
	ErrLibraryNotFound = bindings.ErrLibraryNotFound

	// ErrDestroyed indicates the object has already been destroyed.
	ErrDestroyed = errors.New("glfwgo: object already destroyed")

	// ErrBorrowed indicates an attempt to destroy an object owned by GLFW,
	// such as a monitor or joystick.
	ErrBorrowed = errors.New("glfwgo: object is owned by GLFW")

	// ErrInvalidArgument indicates a malformed argument list or value.
	ErrInvalidArgument = errors.New("glfwgo: invalid argument")

	// ErrIndexOutOfRange indicates an index outside the valid range.
	ErrIndexOutOfRange = errors.New("glfwgo: index out of range")

	// ErrCreateFailed indicates GLFW returned NULL without reporting an error.
	ErrCreateFailed = errors.New("glfwgo: creation failed")
)

// Error codes reported by GLFW.
const (
	CodeNotInitialized     = native.NotInitialized
	CodeNoCurrentContext   = native.NoCurrentContext
	CodeInvalidEnum        = native.InvalidEnum
	CodeInvalidValue       = native.InvalidValue
	CodeOutOfMemory        = native.OutOfMemory
	CodeAPIUnavailable     = native.APIUnavailable
	CodeVersionUnavailable = native.VersionUnavailable
	CodePlatformError      = native.PlatformError
	CodeFormatUnavailable  = native.FormatUnavailable
)

// Error is an error reported by GLFW through its error callback.
type Error struct {
	Code        int    // Raw GLFW error code
	Description string // Human-readable description from GLFW
	Op          string // Operation that was running, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("glfw: %s (code %#x)", e.Description, e.Code)
	}
	return fmt.Sprintf("glfw %s: %s (code %#x)", e.Op, e.Description, e.Code)
}

// Code returns the GLFW error code from an error, or 0 if err is not a GLFW
// error.
func Code(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

// call tracks one binding operation while it runs. GLFW reports failures
// through a callback fired from inside the failing function, so errors and
// callback panics are parked on the innermost call and picked up when it
// returns.
type call struct {
	op       string
	err      *Error
	panicked any
	dropped  int
	parent   *call
}

var (
	callMu  sync.Mutex
	callTop *call
)

func topCall() *call {
	callMu.Lock()
	defer callMu.Unlock()
	return callTop
}

// guard runs fn as the operation op. It returns the first GLFW error fn
// caused and re-panics with the value of any callback that panicked.
func guard(op string, fn func()) error {
	c := &call{op: op}
	callMu.Lock()
	c.parent = callTop
	callTop = c
	callMu.Unlock()

	defer func() {
		callMu.Lock()
		callTop = c.parent
		callMu.Unlock()
	}()

	fn()

	if c.panicked != nil {
		if c.dropped > 0 {
			logf(LogWarning, "%s: dropped %d events after a callback panicked", op, c.dropped)
		}
		panic(c.panicked)
	}
	if c.err != nil {
		return c.err
	}
	return nil
}
