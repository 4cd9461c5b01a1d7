//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"fmt"
	"sync"
)

// LogLevel represents the severity of a glfwgo diagnostic message.
type LogLevel int32

// Log level constants. Lower values are more severe.
const (
	LogQuiet   LogLevel = -8 // Print no output
	LogError   LogLevel = 16 // A GLFW error nobody handled
	LogWarning LogLevel = 24 // Something unexpected but recovery possible
	LogInfo    LogLevel = 32 // Library loading and termination
	LogDebug   LogLevel = 48 // Object lifetime events
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch {
	case l <= LogQuiet:
		return "quiet"
	case l <= LogError:
		return "error"
	case l <= LogWarning:
		return "warning"
	case l <= LogInfo:
		return "info"
	default:
		return "debug"
	}
}

// LogCallback is called for each glfwgo diagnostic message.
type LogCallback func(level LogLevel, message string)

var (
	logMu       sync.Mutex
	logCallback LogCallback
	logLevel    = LogInfo
)

// SetLogLevel sets the most verbose level passed to the log callback.
func SetLogLevel(level LogLevel) {
	logMu.Lock()
	defer logMu.Unlock()
	logLevel = level
}

// SetLogCallback sets the handler for glfwgo diagnostics.
// Pass nil to discard them, which is the default.
func SetLogCallback(cb LogCallback) {
	logMu.Lock()
	defer logMu.Unlock()
	logCallback = cb
}

func logf(level LogLevel, format string, args ...any) {
	logMu.Lock()
	cb := logCallback
	enabled := level <= logLevel && logLevel > LogQuiet
	logMu.Unlock()

	if cb == nil || !enabled {
		return
	}
	cb(level, fmt.Sprintf(format, args...))
}
