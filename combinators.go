// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lamb

// Combinators are variable-free building blocks. Every other part of the
// algebra is expressed in terms of application alone.

// Id is the identity combinator: Id(x) = x.
var Id = Fn(func(x Value) Value { return x })

// K is the constant combinator: K(x)(_) = x.
var K = Curry2(func(x, _ Value) Value { return x })

// M is self-application: M(f) = f(f).
// M(M) never terminates; callers must not pass a function whose
// self-application reproduces itself.
var M = Fn(func(f Value) Value { return Apply(f, f) })

// Y is the applicative-order fixed-point combinator:
//
//	Y = f => (x => f(v => x(x)(v)))(x => f(v => x(x)(v)))
//
// Y(f)(v) behaves as f(Y(f))(v). The eta-expansion v => x(x)(v) delays
// the self-application until an argument arrives; without it x(x) would
// be evaluated eagerly and never return.
var Y = Fn(func(f Value) Value {
	half := Fn(func(x Value) Value {
		return Apply(f, Fn(func(v Value) Value {
			return Apply(x, x, v)
		}))
	})
	return half(half)
})

// Compose is function composition: Compose(f)(g)(x) = f(g(x)).
var Compose = Curry3(func(f, g, x Value) Value {
	return Apply(f, Apply(g, x))
})

// Once applies fn to x exactly once.
var Once = Curry2(func(fn, x Value) Value { return Apply(fn, x) })

// Twice applies fn to x two times.
var Twice = Curry2(func(fn, x Value) Value { return Apply(fn, Apply(fn, x)) })
