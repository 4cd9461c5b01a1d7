//go:build !ios && !android && (amd64 || arm64)

// Package bindings loads the GLFW shared library and registers its functions
// using purego. The resulting *Library implements native.Library.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/glfwgo/internal/platform"
)

// ErrLibraryNotFound is returned when the GLFW shared library cannot be found.
var ErrLibraryNotFound = errors.New("glfwgo: GLFW library not found")

// ErrSymbolMissing is returned when a required GLFW entry point is absent,
// which means the library predates GLFW 3.2.
var ErrSymbolMissing = errors.New("glfwgo: GLFW symbol missing")

// Environment variables consulted by the library search.
const (
	// EnvLibrary names the GLFW shared library file to load, skipping the search.
	EnvLibrary = "GLFWGO_LIBRARY"
	// EnvLibDir is searched before any other directory.
	EnvLibDir = "GLFWGO_LIB_DIR"
)

// versions are the GLFW ABI versions tried, most specific first.
var versions = []int{3}

var (
	loadOnce sync.Once
	loadErr  error
	loaded   *Library
	libPath  string
)

// Load finds and opens GLFW and registers every function binding.
// It is safe to call multiple times; subsequent calls return the same Library.
func Load() (*Library, error) {
	loadOnce.Do(func() {
		loaded, loadErr = doLoad()
	})
	return loaded, loadErr
}

// IsLoaded returns true if GLFW has been successfully loaded.
func IsLoaded() bool {
	return loaded != nil
}

// Path returns the file GLFW was loaded from, or "" before a successful Load.
func Path() string {
	return libPath
}

func doLoad() (*Library, error) {
	lib, path, err := openGLFW()
	if err != nil {
		return nil, err
	}
	l := &Library{handle: lib}
	if err := l.register(); err != nil {
		return nil, fmt.Errorf("registering GLFW functions from %s: %w", path, err)
	}
	libPath = path
	return l, nil
}

func openGLFW() (uintptr, string, error) {
	if explicit := os.Getenv(EnvLibrary); explicit != "" {
		lib, err := tryOpen(explicit)
		if err != nil {
			return 0, "", fmt.Errorf("loading %s=%s: %w", EnvLibrary, explicit, err)
		}
		return lib, explicit, nil
	}

	for _, searchPath := range LibrarySearchPaths() {
		for _, ver := range versions {
			fullPath := filepath.Join(searchPath, platform.FormatLibraryName("glfw", ver))
			if lib, err := tryOpen(fullPath); err == nil {
				return lib, fullPath, nil
			}
		}
		fullPath := filepath.Join(searchPath, platform.FormatLibraryName("glfw", 0))
		if lib, err := tryOpen(fullPath); err == nil {
			return lib, fullPath, nil
		}
	}

	// Let the dynamic loader search on its own.
	for _, ver := range versions {
		name := platform.FormatLibraryName("glfw", ver)
		if lib, err := tryOpen(name); err == nil {
			return lib, name, nil
		}
	}
	name := platform.FormatLibraryName("glfw", 0)
	if lib, err := tryOpen(name); err == nil {
		return lib, name, nil
	}

	return 0, "", fmt.Errorf("%w: tried %s and the system loader", ErrLibraryNotFound, name)
}

// tryOpen opens a library with RTLD_NOW so that missing symbols surface here
// rather than at the first call.
func tryOpen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

// FindLibrary searches for GLFW and returns its full path without loading it.
// This is useful for diagnostics.
func FindLibrary() (string, error) {
	if explicit := os.Getenv(EnvLibrary); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("%w: %s", ErrLibraryNotFound, explicit)
		}
		return explicit, nil
	}
	for _, searchPath := range LibrarySearchPaths() {
		for _, ver := range versions {
			fullPath := filepath.Join(searchPath, platform.FormatLibraryName("glfw", ver))
			if _, err := os.Stat(fullPath); err == nil {
				return fullPath, nil
			}
		}
		fullPath := filepath.Join(searchPath, platform.FormatLibraryName("glfw", 0))
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath, nil
		}
	}
	return "", fmt.Errorf("%w: glfw", ErrLibraryNotFound)
}

// LibrarySearchPaths returns platform-specific library search paths.
func LibrarySearchPaths() []string {
	var paths []string

	if dir := os.Getenv(EnvLibDir); dir != "" {
		paths = append(paths, dir)
	}

	switch runtime.GOOS {
	case "linux":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/local/lib",
			"/usr/lib64",
			"/usr/lib",
			"/lib/x86_64-linux-gnu",
			"/lib",
		)

	case "darwin":
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		paths = append(paths,
			"/opt/homebrew/lib",          // Apple Silicon
			"/usr/local/lib",             // Intel
			"/opt/homebrew/opt/glfw/lib", // Homebrew GLFW
			"/usr/local/opt/glfw/lib",    // Homebrew GLFW (Intel)
			"/opt/local/lib",             // MacPorts
		)

	case "windows":
		if exe, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Dir(exe))
		}
		if winPath := os.Getenv("PATH"); winPath != "" {
			paths = append(paths, filepath.SplitList(winPath)...)
		}

	case "freebsd":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/local/lib",
			"/usr/lib",
		)
	}

	return paths
}
