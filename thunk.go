// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lamb

// Thunk is a deferred computation, forced by calling it with no arguments.
//
// Go evaluates call arguments before the call, so If(b)(x)(y) computes both
// x and y before b selects one. Self-referential definitions therefore
// pass Thunks to If and force only the selected one; the recursive call
// happens after the base-case check has already chosen a branch.
type Thunk func() Value

// Force invokes a Thunk once and returns its result.
// Panics with *MismatchError if v is not a Thunk.
func Force(v Value) Value {
	switch t := v.(type) {
	case Thunk:
		if t != nil {
			return t()
		}
	case func() Value:
		if t != nil {
			return t()
		}
	}
	panic(&MismatchError{Got: v})
}

// Trampoline forces v repeatedly until the result is no longer a Thunk.
// A recursive function that returns its next step as an unforced Thunk
// runs in constant Go stack under Trampoline.
// A nil Thunk panics with *MismatchError, as in [Force].
func Trampoline(v Value) Value {
	for {
		switch t := v.(type) {
		case Thunk:
			if t == nil {
				panic(&MismatchError{Got: v})
			}
			v = t()
		case func() Value:
			if t == nil {
				panic(&MismatchError{Got: v})
			}
			v = t()
		default:
			return v
		}
	}
}
