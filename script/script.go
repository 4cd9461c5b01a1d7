//go:build !ios && !android && (amd64 || arm64)

// Package script exposes glfwgo to embedded interpreters through a
// name-based method table.
//
// An interpreter holds glfwgo objects (*glfwgo.Window, *glfwgo.Monitor,
// *glfwgo.Joystick, *glfwgo.Cursor, *glfwgo.Image, *glfwgo.GammaRamp and
// glfwgo.VidMode values) as opaque references and invokes methods on them
// by name with dynamically typed arguments:
//
//	w, err := script.CallStatic("Window", "new", 640, 480, "demo")
//	_, err = script.Call(w, "input_mode", glfwgo.CursorMode, glfwgo.CursorDisabled)
//	closing, err := script.Call(w, "should_close?")
//
// Method names follow the conventions of dynamic languages: a trailing "="
// marks a setter, a trailing "?" a predicate, and "[]" / "[]=" index access.
// Several methods are overloaded on argument count; each count maps to one
// fixed glfwgo call.
//
// Arguments may be any Go integer or float type, bool, string, []Value for
// tuples, a glfwgo object, or a Func for callbacks. Results use int, float64,
// bool, string, []Value and glfwgo objects.
package script

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/obinnaokechukwu/glfwgo"
)

// Value is a dynamically typed script value.
type Value any

// Func is a script callable used as a callback. A non-nil error aborts the
// event pump that delivered the callback and is returned from it.
type Func func(args ...Value) (Value, error)

// ErrNoMethod is returned when a class has no method of the requested name.
var ErrNoMethod = errors.New("script: undefined method")

// ArgumentError reports a call with an unsupported number of arguments. It
// matches glfwgo.ErrInvalidArgument with errors.Is.
type ArgumentError struct {
	Method string
	Given  int
	Want   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("script: %s: wrong number of arguments (given %d, expected %s)", e.Method, e.Given, e.Want)
}

func (e *ArgumentError) Unwrap() error {
	return glfwgo.ErrInvalidArgument
}

type method func(recv Value, args []Value) (Value, error)

type class struct {
	name     string
	borrowed bool
	methods  map[string]method
	statics  map[string]method
}

var classes = map[string]*class{}

func define(name string) *class {
	c := &class{
		name:    name,
		methods: make(map[string]method),
		statics: make(map[string]method),
	}
	classes[name] = c
	return c
}

func (c *class) def(name string, m method) {
	c.methods[name] = m
}

func (c *class) defStatic(name string, m method) {
	c.statics[name] = m
}

// alias makes name another spelling of the existing method target.
func (c *class) alias(name, target string) {
	c.methods[name] = c.methods[target]
}

func (c *class) lookup(name string, static bool) (method, error) {
	table := c.methods
	if static {
		table = c.statics
	}
	if m, ok := table[name]; ok {
		return m, nil
	}
	sep := "#"
	if static {
		sep = "."
	}
	if !static && name == "destroy" && c.borrowed {
		return nil, fmt.Errorf("%w %s%s%s: %w", ErrNoMethod, c.name, sep, name, glfwgo.ErrBorrowed)
	}
	return nil, fmt.Errorf("%w %s%s%s", ErrNoMethod, c.name, sep, name)
}

// classOf returns the class name of a glfwgo object.
func classOf(v Value) (string, bool) {
	switch v.(type) {
	case *glfwgo.Window:
		return "Window", true
	case *glfwgo.Monitor:
		return "Monitor", true
	case *glfwgo.Joystick:
		return "Joystick", true
	case *glfwgo.Cursor:
		return "Cursor", true
	case *glfwgo.Image:
		return "Image", true
	case *glfwgo.GammaRamp:
		return "GammaRamp", true
	case glfwgo.VidMode:
		return "VidMode", true
	}
	return "", false
}

// Call invokes an instance method on recv. If a callback fired during the
// call returns an error, Call returns that error.
func Call(recv Value, name string, args ...Value) (v Value, err error) {
	cls, ok := classOf(recv)
	if !ok {
		return nil, fmt.Errorf("%w %q for %T", ErrNoMethod, name, recv)
	}
	m, err := classes[cls].lookup(name, false)
	if err != nil {
		return nil, err
	}
	defer rescue(&err)
	return m(recv, args)
}

// CallStatic invokes a class-level method. The module functions live on
// class "GLFW".
func CallStatic(class, name string, args ...Value) (v Value, err error) {
	c, ok := classes[class]
	if !ok {
		return nil, fmt.Errorf("%w: unknown class %q", ErrNoMethod, class)
	}
	m, err := c.lookup(name, true)
	if err != nil {
		return nil, err
	}
	defer rescue(&err)
	return m(nil, args)
}

// Classes returns the names of all classes, sorted.
func Classes() []string {
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Methods returns the instance method names of class, sorted, with class
// methods prefixed by "self.".
func Methods(class string) []string {
	c, ok := classes[class]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(c.methods)+len(c.statics))
	for name := range c.methods {
		names = append(names, name)
	}
	for name := range c.statics {
		names = append(names, "self."+name)
	}
	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(strings.TrimPrefix(a, "self."), strings.TrimPrefix(b, "self."))
	})
	return names
}

// Inspect returns a one-line description of a glfwgo object.
func Inspect(v Value) string {
	cls, ok := classOf(v)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	if s, ok := v.(fmt.Stringer); ok {
		return fmt.Sprintf("#<GLFW::%s %s>", cls, s)
	}
	return fmt.Sprintf("#<GLFW::%s>", cls)
}
