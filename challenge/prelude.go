// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package challenge

import "strings"

type preludeEntry struct {
	name string
	src  string
}

// definitions may be withheld when a challenge exports the same name.
// Each one stands alone so that withholding never breaks another.
var definitions = []preludeEntry{
	{"I", `var I = func(x any) any { return x }`},
	{"K", `var K = func(x any) any { return func(_ any) any { return x } }`},
	{"M", `var M = func(f any) any { return ap(f, f) }`},
	{"Y", `var Y = func(f any) any {
	h := func(x any) any {
		return ap(f, func(v any) any { return ap(x, x, v) })
	}
	return h(h)
}`},
	{"TRUE", `var TRUE = func(x any) any { return func(_ any) any { return x } }`},
	{"FALSE", `var FALSE = func(_ any) any { return func(y any) any { return y } }`},
	{"ZERO", `var ZERO = func(_ any) any { return func(x any) any { return x } }`},
	{"ONE", `var ONE = func(f any) any { return func(x any) any { return ap(f, x) } }`},
	{"TWO", `var TWO = func(f any) any { return func(x any) any { return ap(f, ap(f, x)) } }`},
	{"THREE", `var THREE = func(f any) any { return func(x any) any { return ap(f, ap(f, ap(f, x))) } }`},
	{"SUCC", `var SUCC = func(n any) any {
	return func(f any) any {
		return func(x any) any { return ap(f, ap(n, f, x)) }
	}
}`},
	{"PAIR", `var PAIR = func(a any) any {
	return func(b any) any {
		return func(f any) any { return ap(f, a, b) }
	}
}`},
}

// helpers are always present.
const helpers = `func ap(f any, args ...any) any {
	for _, a := range args {
		f = f.(func(any) any)(a)
	}
	return f
}

func toInt(n any) int {
	return ap(n, func(x any) any { return x.(int) + 1 }, 0).(int)
}

func toChurch(k int) any {
	return func(f any) any {
		return func(x any) any {
			for i := 0; i < k; i++ {
				x = ap(f, x)
			}
			return x
		}
	}
}

func toBool(b any) bool {
	return ap(b, true, false).(bool)
}`

// Prelude returns the interpreted prelude without the definition named
// exclude.
func Prelude(exclude string) string {
	parts := []string{helpers}
	for _, d := range definitions {
		if d.name != exclude {
			parts = append(parts, d.src)
		}
	}
	return strings.Join(parts, "\n\n")
}

// PreludeNames lists the withholdable definitions.
func PreludeNames() []string {
	names := make([]string, len(definitions))
	for i, d := range definitions {
		names[i] = d.name
	}
	return names
}
