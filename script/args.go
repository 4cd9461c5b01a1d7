//go:build !ios && !android && (amd64 || arm64)

package script

import (
	"fmt"
	"math"

	"github.com/obinnaokechukwu/glfwgo"
)

// args is the argument list of one method call.
type args struct {
	method string
	list   []Value
}

func argsOf(method string, list []Value) args {
	return args{method: method, list: list}
}

// want fails unless the call has exactly n arguments.
func (a args) want(n int) error {
	if len(a.list) != n {
		return &ArgumentError{Method: a.method, Given: len(a.list), Want: fmt.Sprint(n)}
	}
	return nil
}

// between fails unless the call has lo to hi arguments.
func (a args) between(lo, hi int) error {
	if len(a.list) < lo || len(a.list) > hi {
		return &ArgumentError{Method: a.method, Given: len(a.list), Want: fmt.Sprintf("%d..%d", lo, hi)}
	}
	return nil
}

func (a args) typeError(i int, want string) error {
	return fmt.Errorf("%w: %s: argument %d: want %s, got %T", glfwgo.ErrInvalidArgument, a.method, i+1, want, a.list[i])
}

func (a args) integer(i int) (int, error) {
	if n, ok := toInt(a.list[i]); ok {
		return n, nil
	}
	return 0, a.typeError(i, "Integer")
}

func (a args) number(i int) (float64, error) {
	if f, ok := toFloat(a.list[i]); ok {
		return f, nil
	}
	return 0, a.typeError(i, "Float")
}

func (a args) str(i int) (string, error) {
	if s, ok := a.list[i].(string); ok {
		return s, nil
	}
	return "", a.typeError(i, "String")
}

func (a args) tuple(i, n int) ([]Value, error) {
	t, ok := a.list[i].([]Value)
	if !ok || len(t) < n {
		return nil, a.typeError(i, fmt.Sprintf("Array of %d", n))
	}
	return t, nil
}

// ints reads an n-element integer tuple.
func (a args) ints(i, n int) ([]int, error) {
	t, err := a.tuple(i, n)
	if err != nil {
		return nil, err
	}
	out := make([]int, n)
	for j := range n {
		v, ok := toInt(t[j])
		if !ok {
			return nil, a.typeError(i, fmt.Sprintf("Array of %d Integers", n))
		}
		out[j] = v
	}
	return out, nil
}

// floats reads an n-element numeric tuple.
func (a args) floats(i, n int) ([]float64, error) {
	t, err := a.tuple(i, n)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for j := range n {
		v, ok := toFloat(t[j])
		if !ok {
			return nil, a.typeError(i, fmt.Sprintf("Array of %d Numbers", n))
		}
		out[j] = v
	}
	return out, nil
}

// pixel reads an [r, g, b, a] tuple. Each component keeps its low byte.
func (a args) pixel(i int) ([4]uint8, error) {
	var px [4]uint8
	c, err := a.ints(i, 4)
	if err != nil {
		return px, err
	}
	for j := range px {
		px[j] = uint8(c[j] & 0xFF)
	}
	return px, nil
}

// object reads a glfwgo object of type T. nil is accepted when optional is
// set and yields a nil pointer.
func object[T any](a args, i int, optional bool, name string) (*T, error) {
	v := a.list[i]
	if v == nil && optional {
		return nil, nil
	}
	if p, ok := v.(*T); ok && p != nil {
		return p, nil
	}
	return nil, a.typeError(i, name)
}

// callable reads a callback argument. nil removes the callback.
func (a args) callable(i int) (Func, error) {
	switch fn := a.list[i].(type) {
	case nil:
		return nil, nil
	case Func:
		return fn, nil
	case func(...Value) (Value, error):
		return fn, nil
	}
	return nil, a.typeError(i, "Func")
}

func toInt(v Value) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint:
		return int(n), true
	case glfwgo.Hint:
		return int(n), true
	case glfwgo.InputMode:
		return int(n), true
	case glfwgo.StandardCursor:
		return int(n), true
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return int(n), true
		}
	}
	return 0, false
}

func toFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	if i, ok := toInt(v); ok {
		return float64(i), true
	}
	return 0, false
}

// ref converts a possibly nil object pointer to a Value, so that a missing
// object is a plain nil rather than a typed nil pointer.
func ref[T any](p *T) Value {
	if p == nil {
		return nil
	}
	return p
}

func boolValue(b bool) int {
	if b {
		return glfwgo.True
	}
	return glfwgo.False
}
