// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lamb

// A list is its own right fold: list(f)(x) folds f over the elements,
// innermost element first, starting from seed x.

// Nil is the empty fold: it ignores the step function and returns the
// seed. Folding Nil never calls f, so no cons node can be mistaken for it.
var Nil = Curry2(func(_, x Value) Value { return x })

// Cons prepends head to list: Cons(head)(list)(f)(x) = f(head)(list(f)(x)).
var Cons = Curry4(func(head, list, f, x Value) Value {
	return Apply(f, head, Apply(list, f, x))
})

// Append is Cons.
var Append = Cons

// Head folds with a step that keeps the element (True) seeded with Id.
// Head(Nil) is Id.
var Head = Fn(func(list Value) Value {
	return Apply(list, True, Id)
})

// tailStep rebuilds the list one node behind the fold:
// (a, acc) => Pair(Second(acc))(Cons(a)(Second(acc))).
var tailStep = Curry2(func(a, acc Value) Value {
	rest := Apply(Second, acc)
	return Apply(Pair, rest, Apply(Cons, a, rest))
})

// Tail applies the Decrement shift-pair trick to list structure: fold from
// Pair(Nil)(Nil) and keep the left slot. Tail(Nil) is Nil.
var Tail = Fn(func(list Value) Value {
	return Apply(First, Apply(list, tailStep, Apply(Pair, Nil, Nil)))
})

// IsEmpty folds with a step that always yields False, seeded with True.
var IsEmpty = Fn(func(list Value) Value {
	return Apply(list, Apply(K, Apply(K, False)), True)
})
