//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"runtime"
	"sync"

	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

type ownership uint8

const (
	// owned objects are created by glfwgo and must be destroyed by it
	// exactly once.
	owned ownership = iota
	// borrowed objects belong to GLFW; glfwgo only observes them.
	borrowed
)

// handleBox ties a wrapper to one native handle.
type handleBox struct {
	mu        sync.Mutex
	handle    native.Handle
	ownership ownership
	valid     bool
	tracked   bool
	cleanup   runtime.Cleanup
}

func (b *handleBox) init(h native.Handle, o ownership) {
	b.handle = h
	b.ownership = o
	b.valid = true
}

// get returns the handle while the box is valid.
func (b *handleBox) get() (native.Handle, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.handle, b.valid
}

// release marks an owned box invalid and returns the handle to destroy.
// A borrowed or already released box is left untouched.
func (b *handleBox) release() (native.Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ownership != owned {
		return 0, ErrBorrowed
	}
	if !b.valid {
		return 0, ErrDestroyed
	}
	b.valid = false
	if b.tracked {
		b.cleanup.Stop()
		b.tracked = false
	}
	return b.handle, nil
}

// invalidate marks the box invalid without destroying anything. It is used
// when GLFW itself has destroyed the object.
func (b *handleBox) invalidate() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.valid = false
	if b.tracked {
		b.cleanup.Stop()
		b.tracked = false
	}
}

type reapKind uint8

const (
	reapWindow reapKind = iota
	reapCursor
)

func (k reapKind) String() string {
	if k == reapCursor {
		return "cursor"
	}
	return "window"
}

// reapItem identifies a native object whose wrapper was garbage collected.
// It must not reference the wrapper.
type reapItem struct {
	kind   reapKind
	handle native.Handle
	gen    uint64
}

// Cleanups run on a runtime goroutine while GLFW may only be called from
// the main thread, so abandoned objects are queued here and destroyed at
// the next event pump or Terminate.
var (
	reapMu    sync.Mutex
	reapQueue []reapItem
)

func enqueueReap(item reapItem) {
	reapMu.Lock()
	reapQueue = append(reapQueue, item)
	reapMu.Unlock()
}

// track arranges for the native object behind an owned wrapper to be
// destroyed if the wrapper becomes unreachable without being destroyed.
func track[T any](wrapper *T, box *handleBox, kind reapKind, gen uint64) {
	box.mu.Lock()
	box.cleanup = runtime.AddCleanup(wrapper, enqueueReap, reapItem{kind: kind, handle: box.handle, gen: gen})
	box.tracked = true
	box.mu.Unlock()
}

// reap destroys every queued object that belongs to the current GLFW
// session. Objects from an earlier session were already destroyed by
// Terminate and their handle values may have been reused since.
func reap(lib native.Library, gen uint64) {
	reapMu.Lock()
	items := reapQueue
	reapQueue = nil
	reapMu.Unlock()

	for _, item := range items {
		if item.gen != gen {
			continue
		}
		logf(LogDebug, "destroying unreachable %s %#x", item.kind, item.handle)
		switch item.kind {
		case reapWindow:
			windows.Invalidate(uintptr(item.handle))
			lib.DestroyWindow(item.handle)
		case reapCursor:
			cursors.Invalidate(uintptr(item.handle))
			lib.DestroyCursor(item.handle)
		}
	}
}

// Pending returns the number of garbage collected windows and cursors that
// are waiting to be destroyed by the next event pump.
func Pending() int {
	reapMu.Lock()
	defer reapMu.Unlock()
	return len(reapQueue)
}
