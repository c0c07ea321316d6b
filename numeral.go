// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lamb

// A numeral n is "apply f to x exactly n times": n(f)(x).
// Numerals are equal extensionally, never by identity; compare them with [EQ].

// Zero applies f zero times and is the same function as False.
var Zero = False

// Increment applies f once more than n does: Increment(n)(f)(x) = f(n(f)(x)).
var Increment = Curry3(func(n, f, x Value) Value {
	return Apply(f, Apply(n, f, x))
})

var (
	One   = Apply(Increment, Zero).(Fn)
	Two   = Apply(Increment, One).(Fn)
	Three = Apply(Increment, Two).(Fn)
	Four  = Apply(Increment, Three).(Fn)
	Five  = Apply(Increment, Four).(Fn)
)

// IsZero feeds n the step K(False) and the seed True. Zero leaves the
// seed alone; any application collapses it to False.
var IsZero = Fn(func(n Value) Value {
	return Apply(n, Apply(K, False), True)
})

// Phi shifts a numeral pair left and increments the right slot:
// Phi(Pair(a)(b)) = Pair(b)(b+1).
var Phi = Fn(func(p Value) Value {
	b := Apply(Second, p)
	return Apply(Pair, b, Apply(Increment, b))
})

// Decrement applies Phi n times to Pair(Zero)(Zero) and keeps the left
// slot, which then holds n-1. Decrement(Zero) is Zero.
var Decrement = Fn(func(n Value) Value {
	return Apply(First, Apply(n, Phi, Apply(Pair, Zero, Zero)))
})

// Add applies Increment n times starting at m.
var Add = Curry2(func(n, m Value) Value {
	return Apply(n, Increment, m)
})

// Subtract applies Decrement m times to n. It saturates at Zero.
var Subtract = Curry2(func(n, m Value) Value {
	return Apply(m, Decrement, n)
})

// Multiply composes "apply m times" under "apply n times".
var Multiply = Compose

// Power applies base to itself exponent times: Power(base)(exp) = exp(base).
var Power = Curry2(func(base, exp Value) Value {
	return Apply(exp, base)
})

// Square is Flip(Power)(Two).
var Square = Apply(Flip, Power, Two).(Fn)

// LEQ is IsZero(Subtract(a)(b)); correct only because Subtract saturates.
var LEQ = Curry2(func(a, b Value) Value {
	return Apply(IsZero, Apply(Subtract, a, b))
})

// EQ holds when a ≤ b and b ≤ a.
var EQ = Curry2(func(a, b Value) Value {
	return Apply(And, Apply(LEQ, a, b), Apply(LEQ, b, a))
})

// GT is strict greater-than: Not(LEQ(a)(b)).
var GT = Curry2(func(a, b Value) Value {
	return Apply(Not, Apply(LEQ, a, b))
})

// GEQ is the point-free Not(LEQ). Not swaps the arguments of LEQ, so
// GEQ(a)(b) computes LEQ(b)(a), which is a ≥ b.
var GEQ = Apply(Not, LEQ).(Fn)

// LT is strict less-than: Not(LEQ(b)(a)).
var LT = Curry2(func(a, b Value) Value {
	return Apply(Not, Apply(LEQ, b, a))
})

// IsOne is EQ(One).
var IsOne = Apply(EQ, One).(Fn)
