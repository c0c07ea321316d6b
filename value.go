// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lamb

import (
	"errors"
	"fmt"
)

// Value is anything that flows through the algebra.
// Encodings are [Fn] values; host-native values (ints in tests,
// conversion seeds) pass through untouched until something invokes them.
type Value = any

// Fn is the single shape shared by every encoding: a function of one
// argument. Multi-argument operations are curried chains of Fn.
type Fn func(Value) Value

// ErrMismatch is matched by every [*MismatchError].
var ErrMismatch = errors.New("lamb: value is not a function")

// MismatchError reports that a non-function value was invoked as a
// selector or step function. Encodings are opaque, so the mismatch
// surfaces only at the point of invocation.
type MismatchError struct {
	Got Value
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("lamb: cannot apply %T (%v) as a function", e.Got, e.Got)
}

// Is reports whether target is [ErrMismatch].
func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}

// invoke applies f to a single argument.
// Panics with *MismatchError when f is not callable.
func invoke(f, a Value) Value {
	switch g := f.(type) {
	case Fn:
		if g != nil {
			return g(a)
		}
	case func(Value) Value:
		if g != nil {
			return g(a)
		}
	}
	panic(&MismatchError{Got: f})
}

// Apply applies f to args one at a time: Apply(f, a, b) is f(a)(b).
// With no arguments it returns f unchanged.
func Apply(f Value, args ...Value) Value {
	for _, a := range args {
		f = invoke(f, a)
	}
	return f
}

// Curry2 builds the curried form a => b => body(a, b).
func Curry2(body func(a, b Value) Value) Fn {
	return func(a Value) Value {
		return Fn(func(b Value) Value {
			return body(a, b)
		})
	}
}

// Curry3 builds the curried form a => b => c => body(a, b, c).
func Curry3(body func(a, b, c Value) Value) Fn {
	return func(a Value) Value {
		return Curry2(func(b, c Value) Value {
			return body(a, b, c)
		})
	}
}

// Curry4 builds the curried form a => b => c => d => body(a, b, c, d).
func Curry4(body func(a, b, c, d Value) Value) Fn {
	return func(a Value) Value {
		return Curry3(func(b, c, d Value) Value {
			return body(a, b, c, d)
		})
	}
}

// Try evaluates f and converts a [*MismatchError] panic into an error.
// Any other panic is re-raised. Stack exhaustion is fatal in Go and
// cannot be recovered here.
func Try(f func() Value) (v Value, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if me, ok := r.(*MismatchError); ok {
			v, err = nil, me
			return
		}
		panic(r)
	}()
	return f(), nil
}
