// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lamb is a function-only algebra: booleans, pairs, natural
// numerals and lists represented purely as higher-order functions
// (Church encodings), together with the evaluation discipline that makes
// self-referential recursion safe in a host that evaluates arguments
// eagerly.
//
// There is no native integer, boolean or slice underneath. A numeral is
// "apply f n times", a boolean is "pick one of two", a pair is "hand two
// values to a selector", and a list is its own right fold. Every
// operation is correct purely from its functional definition.
//
// # Representation
//
// Every encoding is an [Fn], a function of one argument. Multi-argument
// operations are curried; [Apply] applies a value to arguments one at a
// time:
//
//	six := lamb.Apply(lamb.Multiply, lamb.Two, lamb.Three)
//	lamb.Apply(lamb.EQ, six, lamb.Apply(lamb.Add, lamb.Three, lamb.Three)) // True
//
// [Curry2], [Curry3] and [Curry4] build curried functions from plain Go
// funcs. Plain func(any) any values are accepted wherever an Fn is
// invoked.
//
// # Combinators
//
//   - [Id], [K], [M]: identity, constant, self-application
//   - [Y]: applicative-order fixed point; Y(f)(v) behaves as f(Y(f))(v)
//   - [Compose], [Once], [Twice], [Flip]
//
// # Booleans
//
//   - [True], [False]: selectors of the first and second argument
//   - [If], [And], [Or], [Not]
//
// # Pairs
//
//   - [Pair], [First], [Second]
//   - [ReplaceFirst], [ReplaceSecond], [BiMap]
//
// # Numerals
//
//   - [Zero], [One], [Two], [Three], [Four], [Five], [Increment]
//   - [Decrement] via the shift-pair function [Phi]; saturates at Zero
//   - [Add], [Subtract] (saturating), [Multiply], [Power], [Square]
//   - [IsZero], [IsOne], [LEQ], [EQ], [GT] (strict), [GEQ], [LT]
//
// [GEQ] is the point-free composition Not(LEQ). Because [Not] swaps the
// arguments it receives, GEQ(a)(b) computes LEQ(b)(a). [GT] is strict.
//
// # Lists
//
//   - [Nil], [Cons] (alias [Append])
//   - [Head], [Tail], [IsEmpty]
//
// [Tail] reuses the [Decrement] trick over list structure.
//
// # Recursion
//
// Go evaluates both branches handed to If before If runs. Recursive
// functions therefore wrap each branch in a [Thunk] and force only the
// one If selected:
//
//   - [Factorial], [Fibonacci]: return a Thunk; call it to get the numeral
//   - [FixFactorial], [FixFibonacci]: the same through [Y]
//   - [Force]: invoke a Thunk once
//   - [Trampoline]: force until the result is not a Thunk; with
//     [TailFactorial] and [TailFibonacci] the recursion runs in a loop
//
// # Defunctionalized Evaluation
//
// [Expr] carries a recursion as data. [BindFrame] and [MapFrame] hold
// "what to do next"; [RunPure] consumes frames in a loop, so encoded
// recursion depth is independent of Go stack depth.
//
//   - [ExprReturn], [ExprBind], [ExprMap], [Delay], [ChainFrames]
//   - [FactorialExpr], [FibonacciExpr]
//
// # Continuations
//
// [Cont] is the same recursion in continuation-passing style. [Return],
// [Bind], [Map] and [Then] compose continuations; [Later] parks a step,
// and [Reify] lowers a continuation into an [Expr] for [RunPure].
//
//   - [RunCont]: run with the identity continuation
//   - [FactorialCont], [FibonacciCont]
//
// # Errors
//
// Encodings are opaque, so a mis-typed value is only detected when it is
// invoked. [Apply] then panics with a [*MismatchError] that matches
// [ErrMismatch]; [Try] turns such a panic into an error. Deep numerals
// and lists consume Go stack proportional to their size when applied;
// exhausting the stack is fatal. The conv package enforces a practical
// ceiling on the sizes it builds.
package lamb
