// Package handles maps native GLFW pointers back to the Go wrapper that owns
// them.
//
// GLFW hands the same GLFWwindow* or GLFWmonitor* out through many entry
// points: the constructor, glfwGetCurrentContext, glfwGetMonitors, and the
// first argument of every callback. A Registry makes sure all of them resolve
// to one *T for as long as that *T is reachable.
//
// Entries are weak. The registry never keeps a wrapper alive; once the
// wrapper has been collected its entry reads as missing and is dropped the
// next time it is touched.
package handles

import (
	"sync"
	"weak"
)

// Registry is a handle -> *T identity map. The zero value is ready to use.
//
// Thread-safe. The lock is never held while a factory runs, so a factory (or
// a callback fired from inside one) may call back into the same registry.
type Registry[T any] struct {
	mu      sync.Mutex
	entries map[uintptr]weak.Pointer[T]
}

// Lookup returns the live wrapper for h, or nil if there is none.
func (r *Registry[T]) Lookup(h uintptr) *T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked(h)
}

// Register binds h to v, replacing any previous binding. Constructors use it
// so that a freshly created object shadows a stale entry left behind under a
// reused pointer value.
func (r *Registry[T]) Register(h uintptr, v *T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[uintptr]weak.Pointer[T])
	}
	r.entries[h] = weak.Make(v)
}

// LookupOrCreate returns the live wrapper for h, calling create to build one
// if none exists. If create races with another insertion for h, the first
// inserted wrapper wins and is returned.
func (r *Registry[T]) LookupOrCreate(h uintptr, create func() *T) *T {
	if v := r.Lookup(h); v != nil {
		return v
	}

	fresh := create()

	r.mu.Lock()
	defer r.mu.Unlock()
	if v := r.loadLocked(h); v != nil {
		return v
	}
	if r.entries == nil {
		r.entries = make(map[uintptr]weak.Pointer[T])
	}
	r.entries[h] = weak.Make(fresh)
	return fresh
}

// Invalidate removes h. Future lookups of h miss until it is registered
// again.
func (r *Registry[T]) Invalidate(h uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, h)
}

// Live returns the currently reachable wrappers, in no particular order.
func (r *Registry[T]) Live() []*T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*T, 0, len(r.entries))
	for h, wp := range r.entries {
		if v := wp.Value(); v != nil {
			out = append(out, v)
		} else {
			delete(r.entries, h)
		}
	}
	return out
}

// Count returns the number of entries, including ones whose wrapper has been
// collected but not yet swept. Useful for tests.
func (r *Registry[T]) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry[T]) loadLocked(h uintptr) *T {
	wp, ok := r.entries[h]
	if !ok {
		return nil
	}
	v := wp.Value()
	if v == nil {
		delete(r.entries, h)
	}
	return v
}
