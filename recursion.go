// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lamb

// Self-referential numeral functions. Every branch handed to If is a Thunk;
// each function returns the Thunk that If selected, and the caller forces it.

// Factorial returns a Thunk that computes n! as a numeral.
//
//	v := lamb.Factorial(lamb.Three)() // behaves as Six
func Factorial(n Value) Thunk {
	return Apply(If, Apply(IsZero, n),
		Thunk(func() Value { return One }),
		Thunk(func() Value {
			return Apply(Multiply, n, Factorial(Apply(Decrement, n))())
		}),
	).(Thunk)
}

// Fibonacci returns a Thunk that computes the n-th Fibonacci numeral,
// with Fibonacci(Zero) = Zero and Fibonacci(One) = One.
func Fibonacci(n Value) Thunk {
	return Apply(If, Apply(IsZero, n),
		Thunk(func() Value { return Zero }),
		Apply(If, Apply(IsOne, n),
			Thunk(func() Value { return One }),
			Thunk(func() Value {
				return Apply(Add,
					Fibonacci(Apply(Subtract, n, One))(),
					Fibonacci(Apply(Subtract, n, Two))(),
				)
			}),
		),
	).(Thunk)
}

// FixFactorial is Factorial without a named self-reference: Y ties the
// knot. FixFactorial(n) yields a Thunk; force it with [Force].
var FixFactorial = Apply(Y, Curry2(func(recurse, n Value) Value {
	return Apply(If, Apply(IsZero, n),
		Thunk(func() Value { return One }),
		Thunk(func() Value {
			return Apply(Multiply, n, Force(Apply(recurse, Apply(Decrement, n))))
		}),
	)
})).(Fn)

// FixFibonacci is Fibonacci expressed through Y.
var FixFibonacci = Apply(Y, Curry2(func(recurse, n Value) Value {
	return Apply(If, Apply(IsZero, n),
		Thunk(func() Value { return Zero }),
		Apply(If, Apply(IsOne, n),
			Thunk(func() Value { return One }),
			Thunk(func() Value {
				return Apply(Add,
					Force(Apply(recurse, Apply(Subtract, n, One))),
					Force(Apply(recurse, Apply(Subtract, n, Two))),
				)
			}),
		),
	)
})).(Fn)

// TailFactorial computes n! with an accumulator. The recursive branch
// returns the next step as an unforced Thunk, so [Trampoline] drives the
// recursion in a loop instead of on the Go stack.
//
//	v := lamb.Trampoline(lamb.TailFactorial(lamb.Five))
func TailFactorial(n Value) Thunk {
	return factorialStep(n, One)
}

func factorialStep(n, acc Value) Thunk {
	return Apply(If, Apply(IsZero, n),
		Thunk(func() Value { return acc }),
		Thunk(func() Value {
			return factorialStep(Apply(Decrement, n), Apply(Multiply, n, acc))
		}),
	).(Thunk)
}

// TailFibonacci computes the n-th Fibonacci numeral by carrying the
// pair (F(k), F(k+1)) forward. Drive it with [Trampoline].
func TailFibonacci(n Value) Thunk {
	return fibonacciStep(n, Zero, One)
}

func fibonacciStep(n, a, b Value) Thunk {
	return Apply(If, Apply(IsZero, n),
		Thunk(func() Value { return a }),
		Thunk(func() Value {
			return fibonacciStep(Apply(Decrement, n), b, Apply(Add, a, b))
		}),
	).(Thunk)
}

// FactorialExpr builds n! as a frame chain for [RunPure]. Each level of
// the recursion is a frame on the heap rather than a call on the Go stack.
func FactorialExpr(n Value) Expr[Value] {
	return Delay(func() Expr[Value] {
		return Force(Apply(If, Apply(IsZero, n),
			Thunk(func() Value { return ExprReturn[Value](One) }),
			Thunk(func() Value {
				return ExprMap(FactorialExpr(Apply(Decrement, n)), func(r Value) Value {
					return Apply(Multiply, n, r)
				})
			}),
		)).(Expr[Value])
	})
}

// FibonacciExpr builds the n-th Fibonacci numeral as a frame chain.
func FibonacciExpr(n Value) Expr[Value] {
	return Delay(func() Expr[Value] {
		return Force(Apply(If, Apply(IsZero, n),
			Thunk(func() Value { return ExprReturn[Value](Zero) }),
			Apply(If, Apply(IsOne, n),
				Thunk(func() Value { return ExprReturn[Value](One) }),
				Thunk(func() Value {
					return ExprBind(FibonacciExpr(Apply(Subtract, n, One)), func(a Value) Expr[Value] {
						return ExprMap(FibonacciExpr(Apply(Subtract, n, Two)), func(b Value) Value {
							return Apply(Add, a, b)
						})
					})
				}),
			),
		)).(Expr[Value])
	})
}

// FactorialCont builds n! in continuation-passing style. The recursive
// call sits behind [Later]; run it with [Reify] and [RunPure].
func FactorialCont(n Value) Cont[Erased, Value] {
	return Later(func() Cont[Erased, Value] {
		return Force(Apply(If, Apply(IsZero, n),
			Thunk(func() Value { return Return[Erased, Value](One) }),
			Thunk(func() Value {
				return Map(FactorialCont(Apply(Decrement, n)), func(r Value) Value {
					return Apply(Multiply, n, r)
				})
			}),
		)).(Cont[Erased, Value])
	})
}

// FibonacciCont builds the n-th Fibonacci numeral in continuation-passing
// style.
func FibonacciCont(n Value) Cont[Erased, Value] {
	return Later(func() Cont[Erased, Value] {
		return Force(Apply(If, Apply(IsZero, n),
			Thunk(func() Value { return Return[Erased, Value](Zero) }),
			Apply(If, Apply(IsOne, n),
				Thunk(func() Value { return Return[Erased, Value](One) }),
				Thunk(func() Value {
					return Bind(FibonacciCont(Apply(Subtract, n, One)), func(a Value) Cont[Erased, Value] {
						return Map(FibonacciCont(Apply(Subtract, n, Two)), func(b Value) Value {
							return Apply(Add, a, b)
						})
					})
				}),
			),
		)).(Cont[Erased, Value])
	})
}
