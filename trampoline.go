// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lamb

// cast recovers a concrete type from an erased value. A nil interface
// becomes the zero value of A instead of failing the assertion.
func cast[A any](v Erased) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}

// evalFrames is the iterative evaluator for Expr frame chains. Each loop
// iteration consumes one frame; nested chains are rotated to the right so
// the loop always sees a single frame at the head. Go stack depth stays
// constant no matter how long the chain grows.
func evalFrames(current Erased, frame Frame) Erased {
	for {
		switch f := frame.(type) {
		case ReturnFrame:
			return current
		case *BindFrame[Erased, Erased]:
			next := f.F(current)
			current = next.Value
			frame = ChainFrames(next.Frame, f.Next)
		case *MapFrame[Erased, Erased]:
			current = f.F(current)
			frame = f.Next
		case *chainedFrame:
			switch first := f.first.(type) {
			case *chainedFrame:
				frame = &chainedFrame{
					first: first.first,
					rest:  ChainFrames(first.rest, f.rest),
				}
			case ReturnFrame:
				frame = f.rest
			case *BindFrame[Erased, Erased]:
				next := first.F(current)
				current = next.Value
				frame = ChainFrames(ChainFrames(next.Frame, first.Next), f.rest)
			case *MapFrame[Erased, Erased]:
				current = first.F(current)
				frame = ChainFrames(first.Next, f.rest)
			default:
				panic("lamb: unknown frame type in chain")
			}
		default:
			panic("lamb: unknown frame type")
		}
	}
}

// ChainFrames links two frame chains. ReturnFrame is the identity on
// either side, so no node is allocated for it.
func ChainFrames(first, second Frame) Frame {
	if _, ok := first.(ReturnFrame); ok {
		return second
	}
	if _, ok := second.(ReturnFrame); ok {
		return first
	}
	return &chainedFrame{first: first, rest: second}
}

// chainedFrame is a frame followed by more frames.
type chainedFrame struct {
	first Frame
	rest  Frame
}

func (*chainedFrame) frame() {}

// RunPure evaluates a computation to completion without growing the stack.
func RunPure[A any](c Expr[A]) A {
	return cast[A](evalFrames(Erased(c.Value), c.Frame))
}

// ExprBind sequences m and the computation f builds from its result.
func ExprBind[A, B any](m Expr[A], f func(A) Expr[B]) Expr[B] {
	if _, ok := m.Frame.(ReturnFrame); ok {
		return f(m.Value)
	}
	bindFrame := &BindFrame[Erased, Erased]{
		F: func(a Erased) Expr[Erased] {
			result := f(cast[A](a))
			return Expr[Erased]{
				Value: Erased(result.Value),
				Frame: result.Frame,
			}
		},
		Next: ReturnFrame{},
	}
	var zero B
	return Expr[B]{
		Value: zero,
		Frame: ChainFrames(m.Frame, bindFrame),
	}
}

// ExprMap transforms the result of m with f.
func ExprMap[A, B any](m Expr[A], f func(A) B) Expr[B] {
	if _, ok := m.Frame.(ReturnFrame); ok {
		return ExprReturn(f(m.Value))
	}
	mapFrame := &MapFrame[Erased, Erased]{
		F: func(a Erased) Erased {
			return f(cast[A](a))
		},
		Next: ReturnFrame{},
	}
	var zero B
	return Expr[B]{
		Value: zero,
		Frame: ChainFrames(m.Frame, mapFrame),
	}
}
