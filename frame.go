// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lamb

// Erased marks a type-erased value in a frame chain. Concrete types are
// recovered by type assertion at frame boundaries.
type Erased = any

// Frame is a defunctionalized continuation frame: the "rest of the
// recursion" as data instead of as a Go stack frame.
// Dispatch uses type switches; Frame is a pure marker interface.
type Frame interface {
	frame() // unexported marker method
}

// ReturnFrame signals completion. The evaluator returns the current value.
type ReturnFrame struct{}

func (ReturnFrame) frame() {}

// BindFrame feeds the current value to F and continues with the
// computation F returns, then with Next.
type BindFrame[A, B any] struct {
	// F produces the next computation from the current value.
	F func(A) Expr[B]

	// Next runs after the computation produced by F completes.
	Next Frame
}

func (*BindFrame[A, B]) frame() {}

// MapFrame transforms the current value with F, then continues with Next.
type MapFrame[A, B any] struct {
	F func(A) B

	Next Frame
}

func (*MapFrame[A, B]) frame() {}

// Expr is a computation carried as data. Value is meaningful only when
// Frame is ReturnFrame.
type Expr[A any] struct {
	Value A
	Frame Frame
}

// ExprReturn creates a completed computation.
func ExprReturn[A any](a A) Expr[A] {
	return Expr[A]{
		Value: a,
		Frame: ReturnFrame{},
	}
}

// Delay suspends the construction of a computation until the evaluator
// reaches it. Recursive definitions wrap their body in Delay so that
// building the outer computation does not build the inner one.
func Delay[A any](f func() Expr[A]) Expr[A] {
	var zero A
	return Expr[A]{
		Value: zero,
		Frame: &BindFrame[Erased, Erased]{
			F: func(Erased) Expr[Erased] {
				e := f()
				return Expr[Erased]{Value: Erased(e.Value), Frame: e.Frame}
			},
			Next: ReturnFrame{},
		},
	}
}
