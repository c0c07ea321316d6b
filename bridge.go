// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lamb

// suspension is the rest of a continuation computation, parked by
// [Later] until the frame evaluator resumes it.
type suspension struct {
	resume func() Erased
}

// Later defers building a continuation computation until it runs, and
// parks the computation at that point instead of calling into it. Under
// [Reify] every Later becomes a frame, so a recursion whose recursive
// call sits behind Later descends one frame at a time.
func Later[A any](f func() Cont[Erased, A]) Cont[Erased, A] {
	return func(k func(A) Erased) Erased {
		return suspension{resume: func() Erased { return f()(k) }}
	}
}

// Reify converts a continuation computation into a frame chain for
// [RunPure]. Each parked [Later] step becomes a lazy BindFrame that
// resumes the computation on demand.
//
// Descent is stepped by the evaluator. The continuations themselves are
// still Go calls, so unwinding a recursion n levels deep uses n stack
// frames when the final value flows back out.
//
//	v := lamb.RunPure(lamb.Reify(lamb.FactorialCont(lamb.Five)))
func Reify[A any](m Cont[Erased, A]) Expr[A] {
	return fromErased[A](m(func(a A) Erased { return a }))
}

func fromErased[A any](r Erased) Expr[A] {
	s, ok := r.(suspension)
	if !ok {
		return ExprReturn(cast[A](r))
	}
	var zero A
	return Expr[A]{
		Value: zero,
		Frame: &BindFrame[Erased, Erased]{
			F: func(Erased) Expr[Erased] {
				e := fromErased[A](s.resume())
				return Expr[Erased]{Value: Erased(e.Value), Frame: e.Frame}
			},
			Next: ReturnFrame{},
		},
	}
}
