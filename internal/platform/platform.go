//go:build !ios && !android && (amd64 || arm64)

// Package platform knows how GLFW's shared library is named on each
// operating system.
package platform

import (
	"runtime"
	"strconv"
)

// FormatLibraryName returns the file name of library name at the given
// major version on this platform. Version 0 means unversioned.
//
// Examples:
//   - Linux:   FormatLibraryName("glfw", 3) -> "libglfw.so.3"
//   - macOS:   FormatLibraryName("glfw", 3) -> "libglfw.3.dylib"
//   - Windows: FormatLibraryName("glfw", 3) -> "glfw3.dll"
func FormatLibraryName(name string, version int) string {
	return libraryName(runtime.GOOS, name, version)
}

func libraryName(goos, name string, version int) string {
	v := ""
	if version > 0 {
		v = strconv.Itoa(version)
	}
	switch goos {
	case "darwin":
		if v != "" {
			v = "." + v
		}
		return "lib" + name + v + ".dylib"
	case "windows":
		// The official GLFW builds ship glfw3.dll.
		return name + v + ".dll"
	default: // linux, freebsd
		if v != "" {
			v = "." + v
		}
		return "lib" + name + ".so" + v
	}
}
