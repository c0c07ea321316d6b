// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lamb

// Pair captures a and b and hands them to a selector:
// Pair(a)(b)(f) = f(a)(b).
var Pair = Curry3(func(a, b, f Value) Value { return Apply(f, a, b) })

// First is p(True).
var First = Fn(func(p Value) Value { return Apply(p, True) })

// Second is p(False).
var Second = Fn(func(p Value) Value { return Apply(p, False) })

// ReplaceFirst builds Pair(x)(Second(p)).
var ReplaceFirst = Curry2(func(x, p Value) Value {
	return Apply(Pair, x, Apply(Second, p))
})

// ReplaceSecond builds Pair(First(p))(x).
var ReplaceSecond = Curry2(func(x, p Value) Value {
	return Apply(Pair, Apply(First, p), x)
})

// BiMap maps both components: Pair(f(First(p)))(g(Second(p))).
var BiMap = Curry3(func(f, g, p Value) Value {
	return Apply(Pair, Apply(f, Apply(First, p)), Apply(g, Apply(Second, p)))
})
