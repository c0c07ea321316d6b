// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lamb

// Booleans are selectors: functions of two arguments that return exactly
// one of them. They are never turned into Go bools inside the algebra.

// True selects its first argument.
var True = Curry2(func(x, _ Value) Value { return x })

// False selects its second argument.
var False = Curry2(func(_, y Value) Value { return y })

// If is b(x)(y). It does not defer evaluation: x and y must already be
// results, or [Thunk] values the caller forces after selection.
var If = Curry3(func(b, x, y Value) Value { return Apply(b, x, y) })

// And is x(y)(x): y is selected only when x is True.
var And = Curry2(func(x, y Value) Value { return Apply(x, y, x) })

// Or is x(x)(y): y is selected only when x is False.
var Or = Curry2(func(x, y Value) Value { return Apply(x, x, y) })

// Not swaps the selection order: Not(b)(x)(y) = b(y)(x).
var Not = Curry3(func(b, x, y Value) Value { return Apply(b, y, x) })

// Flip is Not read as an argument-order combinator.
var Flip = Not
