// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lamb_test

import (
	"testing"

	"code.hybscloud.com/lamb"
)

// succ is the host-side step used to read numerals back as ints.
var succ = lamb.Fn(func(x lamb.Value) lamb.Value { return x.(int) + 1 })

func toInt(t testing.TB, n lamb.Value) int {
	t.Helper()
	v := lamb.Apply(n, succ, 0)
	i, ok := v.(int)
	if !ok {
		t.Fatalf("value is not a numeral: applying it produced %T", v)
	}
	return i
}

func toBool(t testing.TB, b lamb.Value) bool {
	t.Helper()
	v := lamb.Apply(b, true, false)
	r, ok := v.(bool)
	if !ok {
		t.Fatalf("value is not a boolean: selecting produced %T", v)
	}
	return r
}

// church builds the numeral for k by k applications of Increment.
func church(k int) lamb.Value {
	var n lamb.Value = lamb.Zero
	for range k {
		n = lamb.Apply(lamb.Increment, n)
	}
	return n
}

// toInts folds a list of numerals into a slice of ints.
func toInts(t testing.TB, list lamb.Value) []int {
	t.Helper()
	step := lamb.Curry2(func(a, acc lamb.Value) lamb.Value {
		return append([]int{toInt(t, a)}, acc.([]int)...)
	})
	return lamb.Apply(list, step, []int{}).([]int)
}

func listOf(vals ...lamb.Value) lamb.Value {
	var list lamb.Value = lamb.Nil
	for i := len(vals) - 1; i >= 0; i-- {
		list = lamb.Apply(lamb.Cons, vals[i], list)
	}
	return list
}
