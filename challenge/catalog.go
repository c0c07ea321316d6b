// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package challenge

import (
	"code.hybscloud.com/lamb"
	"code.hybscloud.com/lamb/conv"
)

var chapters = []Chapter{
	{1, "Lambda Notation"},
	{2, "Combinators"},
	{3, "Church Encodings"},
	{4, "Numerals"},
	{5, "Data Structures"},
	{6, "Recursion"},
	{7, "Turing Completeness"},
}

// applied expects f applied to args.
func applied(f lamb.Value, args ...lamb.Value) func() (any, error) {
	return func() (any, error) {
		return lamb.Try(func() lamb.Value { return lamb.Apply(f, args...) })
	}
}

// numeral expects f applied to args, read back as an int.
func numeral(f lamb.Value, args ...lamb.Value) func() (any, error) {
	return func() (any, error) {
		v, err := lamb.Try(func() lamb.Value { return lamb.Apply(f, args...) })
		if err != nil {
			return nil, err
		}
		return conv.ToInt(v)
	}
}

// boolean expects f applied to args, read back as a bool.
func boolean(f lamb.Value, args ...lamb.Value) func() (any, error) {
	return func() (any, error) {
		v, err := lamb.Try(func() lamb.Value { return lamb.Apply(f, args...) })
		if err != nil {
			return nil, err
		}
		return conv.ToBool(v)
	}
}

// plusOne is the host step the numeral cases count with.
var plusOne = lamb.Fn(func(x lamb.Value) lamb.Value { return x.(int) + 1 })

// factorialStep is the open-recursive host factorial handed to Y.
var factorialStep = lamb.Curry2(func(recurse, n lamb.Value) lamb.Value {
	k := n.(int)
	if k == 0 {
		return 1
	}
	return k * lamb.Apply(recurse, k-1).(int)
})

var catalog = []*Challenge{
	{
		ID:          "identity",
		Chapter:     1,
		Title:       "The Identity Function",
		Difficulty:  Beginner,
		Description: "Create the Identity function. It should return its argument unchanged.",
		Concepts:    []string{"The simplest possible function", "In lambda notation: λx.x"},
		Hint:        "A function that just returns what it receives.",
		Starter:     "var I = func(x any) any {\n\treturn nil\n}",
		Solution:    "var I = func(x any) any { return x }",
		ExportName:  "I",
		Cases: []Case{
			{Description: "I(5) returns 5", Expr: "ap(I, 5)", Want: applied(lamb.Id, 5)},
			{Description: `I("hello") returns "hello"`, Expr: `ap(I, "hello")`, Want: applied(lamb.Id, "hello")},
			{Description: "I(nil) returns nil", Expr: "ap(I, nil)", Want: applied(lamb.Id, nil)},
			{Description: "I(I) behaves as I", Expr: "ap(ap(I, I), 7)", Want: applied(lamb.Id, lamb.Id, 7)},
		},
	},
	{
		ID:          "constant",
		Chapter:     2,
		Title:       "The Constant Combinator (K)",
		Difficulty:  Beginner,
		Description: "Create the K combinator. It takes two arguments and always returns the first.",
		Concepts:    []string{"Curried function (returns a function)", "Ignores the second argument", "In lambda notation: λx.λy.x"},
		Hint:        "Return a function that ignores its argument and returns the original value.",
		Starter:     "var K = func(x any) any {\n\treturn nil\n}",
		Solution:    "var K = func(x any) any { return func(y any) any { return x } }",
		ExportName:  "K",
		Cases: []Case{
			{Description: "K(5)(10) returns 5", Expr: "ap(K, 5, 10)", Want: applied(lamb.K, 5, 10)},
			{Description: `K("first")("second") returns "first"`, Expr: `ap(K, "first", "second")`, Want: applied(lamb.K, "first", "second")},
			{Description: "K(true)(false) returns true", Expr: "ap(K, true, false)", Want: applied(lamb.K, true, false)},
		},
	},
	{
		ID:          "kite",
		Chapter:     2,
		Title:       "The Kite Combinator (KI)",
		Difficulty:  Beginner,
		Description: "Create the Kite combinator. It takes two arguments and always returns the second.",
		Concepts:    []string{"Opposite of K", "Can be derived as K(I)", "In lambda notation: λx.λy.y"},
		Hint:        "The first argument is ignored completely.",
		Starter:     "var KI = func(x any) any {\n\treturn nil\n}",
		Solution:    "var KI = func(x any) any { return func(y any) any { return y } }",
		ExportName:  "KI",
		Cases: []Case{
			{Description: "KI(5)(10) returns 10", Expr: "ap(KI, 5, 10)", Want: applied(lamb.K, lamb.Id, 5, 10)},
			{Description: `KI("first")("second") returns "second"`, Expr: `ap(KI, "first", "second")`, Want: applied(lamb.K, lamb.Id, "first", "second")},
		},
	},
	{
		ID:          "self-apply",
		Chapter:     2,
		Title:       "Self-Application (M)",
		Difficulty:  Intermediate,
		Description: "Create the M combinator (Mockingbird). It applies a function to itself.",
		Concepts:    []string{"Self-application is key to recursion", "In lambda notation: λf.ff", "Warning: M(M) never terminates"},
		Hint:        "Take a function and call it with itself as the argument.",
		Starter:     "var M = func(f any) any {\n\treturn nil\n}",
		Solution:    "var M = func(f any) any { return ap(f, f) }",
		ExportName:  "M",
		Cases: []Case{
			{Description: "M(I) behaves as I", Expr: "ap(ap(M, I), 5)", Want: applied(lamb.M, lamb.Id, 5)},
			{Description: "M(K)(5) behaves as K", Expr: "ap(M, K, 5, 9, 3)", Want: applied(lamb.M, lamb.K, 5, 9, 3)},
		},
	},
	{
		ID:          "true",
		Chapter:     3,
		Title:       "Church TRUE",
		Difficulty:  Beginner,
		Description: "Create the Church encoding of TRUE: a function that selects its first argument.",
		Concepts:    []string{"Booleans are selector functions", "TRUE picks the first option", "In lambda notation: λx.λy.x"},
		Hint:        "TRUE is actually the same as K!",
		Starter:     "var TRUE = func(x any) any {\n\treturn nil\n}",
		Solution:    "var TRUE = func(x any) any { return func(y any) any { return x } }",
		ExportName:  "TRUE",
		Cases: []Case{
			{Description: `TRUE("yes")("no") returns "yes"`, Expr: `ap(TRUE, "yes", "no")`, Want: applied(lamb.True, "yes", "no")},
			{Description: "TRUE(1)(2) returns 1", Expr: "ap(TRUE, 1, 2)", Want: applied(lamb.True, 1, 2)},
		},
	},
	{
		ID:          "false",
		Chapter:     3,
		Title:       "Church FALSE",
		Difficulty:  Beginner,
		Description: "Create the Church encoding of FALSE: a function that selects its second argument.",
		Concepts:    []string{"FALSE picks the second option", "In lambda notation: λx.λy.y"},
		Hint:        "FALSE is actually the same as KI!",
		Starter:     "var FALSE = func(x any) any {\n\treturn nil\n}",
		Solution:    "var FALSE = func(x any) any { return func(y any) any { return y } }",
		ExportName:  "FALSE",
		Cases: []Case{
			{Description: `FALSE("yes")("no") returns "no"`, Expr: `ap(FALSE, "yes", "no")`, Want: applied(lamb.False, "yes", "no")},
			{Description: "FALSE(1)(2) returns 2", Expr: "ap(FALSE, 1, 2)", Want: applied(lamb.False, 1, 2)},
		},
	},
	{
		ID:          "not",
		Chapter:     3,
		Title:       "Logical NOT",
		Difficulty:  Intermediate,
		Description: "Create the NOT function. It flips TRUE to FALSE and FALSE to TRUE.",
		Concepts:    []string{"Swap the arguments to the boolean", "In lambda notation: λb.λx.λy.byx"},
		Hint:        "A Church boolean selects between two options. NOT should swap which one gets selected.",
		Given:       []string{"TRUE = x => y => x", "FALSE = x => y => y"},
		Starter:     "var NOT = func(b any) any {\n\treturn nil\n}",
		Solution: `var NOT = func(b any) any {
	return func(x any) any {
		return func(y any) any { return ap(b, y, x) }
	}
}`,
		ExportName: "NOT",
		Cases: []Case{
			{Description: "NOT(TRUE) returns FALSE", Setup: "result := ap(NOT, TRUE)", Expr: "toBool(result)", Want: boolean(lamb.Not, lamb.True)},
			{Description: "NOT(FALSE) returns TRUE", Setup: "result := ap(NOT, FALSE)", Expr: "toBool(result)", Want: boolean(lamb.Not, lamb.False)},
			{Description: "NOT(NOT(TRUE)) returns TRUE", Setup: "result := ap(NOT, ap(NOT, TRUE))", Expr: "toBool(result)", Want: boolean(lamb.Not, lamb.Apply(lamb.Not, lamb.True))},
		},
	},
	{
		ID:          "and",
		Chapter:     3,
		Title:       "Logical AND",
		Difficulty:  Intermediate,
		Description: "Create the AND function. It returns TRUE only if both arguments are TRUE.",
		Concepts:    []string{"If first is TRUE, result depends on second", "If first is FALSE, result is FALSE", "In lambda notation: λx.λy.xyx"},
		Hint:        "Use the first boolean to choose: if TRUE, return the second; if FALSE, return FALSE (which is the first).",
		Given:       []string{"TRUE = x => y => x", "FALSE = x => y => y"},
		Starter:     "var AND = func(x any) any {\n\treturn nil\n}",
		Solution:    "var AND = func(x any) any { return func(y any) any { return ap(x, y, x) } }",
		ExportName:  "AND",
		Cases:       truthTable("AND", lamb.And),
	},
	{
		ID:          "or",
		Chapter:     3,
		Title:       "Logical OR",
		Difficulty:  Intermediate,
		Description: "Create the OR function. It returns TRUE if either argument is TRUE.",
		Concepts:    []string{"If first is TRUE, result is TRUE", "If first is FALSE, result depends on second", "In lambda notation: λx.λy.xxy"},
		Hint:        "Use the first boolean to choose: if TRUE, return TRUE (which is the first); if FALSE, return the second.",
		Given:       []string{"TRUE = x => y => x", "FALSE = x => y => y"},
		Starter:     "var OR = func(x any) any {\n\treturn nil\n}",
		Solution:    "var OR = func(x any) any { return func(y any) any { return ap(x, x, y) } }",
		ExportName:  "OR",
		Cases:       truthTable("OR", lamb.Or),
	},
	{
		ID:          "zero",
		Chapter:     4,
		Title:       "Church ZERO",
		Difficulty:  Beginner,
		Description: "Create the Church encoding of ZERO: apply a function zero times.",
		Concepts:    []string{`Numbers are "how many times to apply a function"`, "ZERO applies f zero times (just returns x)", "In lambda notation: λf.λx.x"},
		Hint:        "ZERO is the same as FALSE: it ignores f and returns x.",
		Starter:     "var ZERO = func(f any) any {\n\treturn nil\n}",
		Solution:    "var ZERO = func(f any) any { return func(x any) any { return x } }",
		ExportName:  "ZERO",
		Cases: []Case{
			{Description: "ZERO converts to 0", Expr: "toInt(ZERO)", Want: numeral(lamb.Zero)},
			{Description: "ZERO(increment)(0) returns 0", Expr: "ap(ZERO, func(x any) any { return x.(int) + 1 }, 0)", Want: applied(lamb.Zero, plusOne, 0)},
		},
	},
	{
		ID:          "succ",
		Chapter:     4,
		Title:       "Successor Function",
		Difficulty:  Intermediate,
		Description: "Create SUCC: given a Church numeral n, return n+1.",
		Concepts:    []string{"Add one more application of f", "In lambda notation: λn.λf.λx.f(nfx)"},
		Hint:        "Apply f one more time to what n(f)(x) produces.",
		Given:       []string{"ZERO = f => x => x", "ONE = f => x => f(x)"},
		Starter:     "var SUCC = func(n any) any {\n\treturn nil\n}",
		Solution: `var SUCC = func(n any) any {
	return func(f any) any {
		return func(x any) any { return ap(f, ap(n, f, x)) }
	}
}`,
		ExportName: "SUCC",
		Cases: []Case{
			{Description: "SUCC(ZERO) equals ONE", Expr: "toInt(ap(SUCC, ZERO))", Want: numeral(lamb.Increment, lamb.Zero)},
			{Description: "SUCC(ONE) equals TWO", Expr: "toInt(ap(SUCC, ONE))", Want: numeral(lamb.Increment, lamb.One)},
			{Description: "SUCC(SUCC(SUCC(ZERO))) equals THREE", Expr: "toInt(ap(SUCC, ap(SUCC, ap(SUCC, ZERO))))", Want: numeral(lamb.Increment, lamb.Two)},
		},
	},
	{
		ID:          "add",
		Chapter:     4,
		Title:       "Addition",
		Difficulty:  Intermediate,
		Description: "Create ADD: add two Church numerals together.",
		Concepts:    []string{"Apply SUCC n times to m", "In lambda notation: λn.λm.n(SUCC)(m)"},
		Hint:        "Use n to apply SUCC repeatedly to m.",
		Given:       []string{"SUCC = n => f => x => f(n(f)(x))"},
		Starter:     "var ADD = func(n any) any {\n\treturn nil\n}",
		Solution:    "var ADD = func(n any) any { return func(m any) any { return ap(n, SUCC, m) } }",
		ExportName:  "ADD",
		Cases: []Case{
			{Description: "ADD(ONE)(TWO) equals THREE", Expr: "toInt(ap(ADD, ONE, TWO))", Want: numeral(lamb.Add, lamb.One, lamb.Two)},
			{Description: "ADD(ZERO)(THREE) equals THREE", Expr: "toInt(ap(ADD, ZERO, THREE))", Want: numeral(lamb.Add, lamb.Zero, lamb.Three)},
			{Description: "ADD(TWO)(TWO) equals FOUR", Expr: "toInt(ap(ADD, TWO, TWO))", Want: numeral(lamb.Add, lamb.Two, lamb.Two)},
		},
	},
	{
		ID:          "mult",
		Chapter:     4,
		Title:       "Multiplication",
		Difficulty:  Advanced,
		Description: "Create MULT: multiply two Church numerals.",
		Concepts:    []string{"Composition of numerals", "Apply f (n*m) times", "In lambda notation: λn.λm.λf.n(mf)"},
		Hint:        "n(m(f)) applies f m times, n times.",
		Given:       []string{"TWO = f => x => f(f(x))", "THREE = f => x => f(f(f(x)))"},
		Starter:     "var MULT = func(n any) any {\n\treturn nil\n}",
		Solution: `var MULT = func(n any) any {
	return func(m any) any {
		return func(f any) any { return ap(n, ap(m, f)) }
	}
}`,
		ExportName: "MULT",
		Cases: []Case{
			{Description: "MULT(TWO)(THREE) equals SIX", Expr: "toInt(ap(MULT, TWO, THREE))", Want: numeral(lamb.Multiply, lamb.Two, lamb.Three)},
			{Description: "MULT(ONE)(THREE) equals THREE", Expr: "toInt(ap(MULT, ONE, THREE))", Want: numeral(lamb.Multiply, lamb.One, lamb.Three)},
			{Description: "MULT(ZERO)(THREE) equals ZERO", Expr: "toInt(ap(MULT, ZERO, THREE))", Want: numeral(lamb.Multiply, lamb.Zero, lamb.Three)},
		},
	},
	{
		ID:          "pair",
		Chapter:     5,
		Title:       "PAIR Constructor",
		Difficulty:  Intermediate,
		Description: "Create PAIR: a data structure that holds two values.",
		Concepts:    []string{"Pairs store data as a closure", "Takes a selector function to retrieve values", "In lambda notation: λa.λb.λf.fab"},
		Hint:        "Store a and b by returning a function that applies a selector to them.",
		Starter:     "var PAIR = func(a any) any {\n\treturn nil\n}",
		Solution: `var PAIR = func(a any) any {
	return func(b any) any {
		return func(f any) any { return ap(f, a, b) }
	}
}`,
		ExportName: "PAIR",
		Cases: []Case{
			{Description: "PAIR(1)(2)(TRUE) returns 1 (first)", Expr: "ap(PAIR, 1, 2, TRUE)", Want: applied(lamb.Pair, 1, 2, lamb.True)},
			{Description: "PAIR(1)(2)(FALSE) returns 2 (second)", Expr: "ap(PAIR, 1, 2, FALSE)", Want: applied(lamb.Pair, 1, 2, lamb.False)},
			{Description: `PAIR("a")("b")(TRUE) returns "a"`, Expr: `ap(PAIR, "a", "b", TRUE)`, Want: applied(lamb.Pair, "a", "b", lamb.True)},
		},
	},
	{
		ID:          "fst",
		Chapter:     5,
		Title:       "FST (First)",
		Difficulty:  Beginner,
		Description: "Create FST: extract the first element from a pair.",
		Concepts:    []string{"Use TRUE as the selector", "In lambda notation: λp.p(TRUE)"},
		Hint:        "Pass TRUE to the pair. It will select the first element.",
		Given:       []string{"PAIR = a => b => f => f(a)(b)", "TRUE = x => y => x"},
		Starter:     "var FST = func(p any) any {\n\treturn nil\n}",
		Solution:    "var FST = func(p any) any { return ap(p, TRUE) }",
		ExportName:  "FST",
		Cases: []Case{
			{Description: "FST(PAIR(1)(2)) returns 1", Setup: "p := ap(PAIR, 1, 2)", Expr: "ap(FST, p)", Want: applied(lamb.First, lamb.Apply(lamb.Pair, 1, 2))},
			{Description: `FST(PAIR("hello")("world")) returns "hello"`, Setup: `p := ap(PAIR, "hello", "world")`, Expr: "ap(FST, p)", Want: applied(lamb.First, lamb.Apply(lamb.Pair, "hello", "world"))},
		},
	},
	{
		ID:          "snd",
		Chapter:     5,
		Title:       "SND (Second)",
		Difficulty:  Beginner,
		Description: "Create SND: extract the second element from a pair.",
		Concepts:    []string{"Use FALSE as the selector", "In lambda notation: λp.p(FALSE)"},
		Hint:        "Pass FALSE to the pair. It will select the second element.",
		Given:       []string{"PAIR = a => b => f => f(a)(b)", "FALSE = x => y => y"},
		Starter:     "var SND = func(p any) any {\n\treturn nil\n}",
		Solution:    "var SND = func(p any) any { return ap(p, FALSE) }",
		ExportName:  "SND",
		Cases: []Case{
			{Description: "SND(PAIR(1)(2)) returns 2", Setup: "p := ap(PAIR, 1, 2)", Expr: "ap(SND, p)", Want: applied(lamb.Second, lamb.Apply(lamb.Pair, 1, 2))},
			{Description: `SND(PAIR("hello")("world")) returns "world"`, Setup: `p := ap(PAIR, "hello", "world")`, Expr: "ap(SND, p)", Want: applied(lamb.Second, lamb.Apply(lamb.Pair, "hello", "world"))},
		},
	},
	{
		ID:          "iszero",
		Chapter:     6,
		Title:       "ISZERO Predicate",
		Difficulty:  Intermediate,
		Description: "Create ISZERO: return TRUE if the numeral is ZERO, FALSE otherwise.",
		Concepts:    []string{"Key for recursive base cases", "ZERO applies f zero times, so we can detect it", "In lambda notation: λn.n(K(FALSE))(TRUE)"},
		Hint:        "If n is ZERO, f is never applied, so start with TRUE. Any application of f should give FALSE.",
		Given:       []string{"TRUE = x => y => x", "FALSE = x => y => y", "K = x => y => x"},
		Starter:     "var ISZERO = func(n any) any {\n\treturn nil\n}",
		Solution:    "var ISZERO = func(n any) any { return ap(n, ap(K, FALSE), TRUE) }",
		ExportName:  "ISZERO",
		Cases: []Case{
			{Description: "ISZERO(ZERO) returns TRUE", Setup: "result := ap(ISZERO, ZERO)", Expr: "toBool(result)", Want: boolean(lamb.IsZero, lamb.Zero)},
			{Description: "ISZERO(ONE) returns FALSE", Setup: "result := ap(ISZERO, ONE)", Expr: "toBool(result)", Want: boolean(lamb.IsZero, lamb.One)},
			{Description: "ISZERO(THREE) returns FALSE", Setup: "result := ap(ISZERO, THREE)", Expr: "toBool(result)", Want: boolean(lamb.IsZero, lamb.Three)},
		},
	},
	{
		ID:          "factorial-y",
		Chapter:     6,
		Title:       "Factorial with Y-Combinator",
		Difficulty:  Advanced,
		Description: "Create the factorial step function to use with the Y combinator.",
		Concepts: []string{
			"Y enables recursion without self-reference",
			`Write a function that takes "recurse" as first argument`,
			"The Y combinator handles the self-application",
		},
		Hint:    "Write: recurse => n => (base case) ? 1 : n * recurse(n-1). Use Go ints for simplicity.",
		Given:   []string{"Y = f => (x => f(v => x(x)(v)))(x => f(v => x(x)(v)))"},
		Starter: "var factorialStep = func(recurse any) any {\n\treturn nil\n}",
		Solution: `var factorialStep = func(recurse any) any {
	return func(n any) any {
		k := n.(int)
		if k == 0 {
			return 1
		}
		return k * ap(recurse, k-1).(int)
	}
}`,
		ExportName: "factorialStep",
		Cases: []Case{
			{Description: "Y(factorialStep)(0) returns 1", Expr: "ap(Y, factorialStep, 0)", Want: applied(lamb.Y, factorialStep, 0)},
			{Description: "Y(factorialStep)(1) returns 1", Expr: "ap(Y, factorialStep, 1)", Want: applied(lamb.Y, factorialStep, 1)},
			{Description: "Y(factorialStep)(5) returns 120", Expr: "ap(Y, factorialStep, 5)", Want: applied(lamb.Y, factorialStep, 5)},
			{Description: "Y(factorialStep)(6) returns 720", Expr: "ap(Y, factorialStep, 6)", Want: applied(lamb.Y, factorialStep, 6)},
		},
	},
	{
		ID:          "pred",
		Chapter:     7,
		Title:       "Predecessor",
		Difficulty:  Advanced,
		Description: "Create PRED: given a Church numeral n, return n-1, with PRED(ZERO) = ZERO.",
		Concepts: []string{
			"Numerals can only apply f, never undo it",
			"Count up a pair (n-1, n) instead: PHI(PAIR(a)(b)) = PAIR(b)(SUCC(b))",
			"Apply PHI n times to PAIR(ZERO)(ZERO) and keep the first slot",
		},
		Hint:    "Define PHI first. FST and SND are not in the prelude: select with TRUE and FALSE.",
		Given:   []string{"PAIR = a => b => f => f(a)(b)", "SUCC = n => f => x => f(n(f)(x))", "ZERO = f => x => x"},
		Starter: "var PRED = func(n any) any {\n\treturn nil\n}",
		Solution: `var PHI = func(p any) any {
	b := ap(p, FALSE)
	return ap(PAIR, b, ap(SUCC, b))
}

var PRED = func(n any) any { return ap(n, PHI, ap(PAIR, ZERO, ZERO), TRUE) }`,
		ExportName: "PRED",
		Cases: []Case{
			{Description: "PRED(THREE) equals TWO", Expr: "toInt(ap(PRED, THREE))", Want: numeral(lamb.Decrement, lamb.Three)},
			{Description: "PRED(ONE) equals ZERO", Expr: "toInt(ap(PRED, ONE))", Want: numeral(lamb.Decrement, lamb.One)},
			{Description: "PRED(ZERO) equals ZERO", Expr: "toInt(ap(PRED, ZERO))", Want: numeral(lamb.Decrement, lamb.Zero)},
			{Description: "PRED(toChurch(10)) equals 9", Expr: "toInt(ap(PRED, toChurch(10)))", Want: func() (any, error) {
				n, err := conv.FromInt(10)
				if err != nil {
					return nil, err
				}
				return numeral(lamb.Decrement, n)()
			}},
		},
	},
}

// truthTable builds the four cases of a binary boolean operator.
func truthTable(name string, op lamb.Fn) []Case {
	bools := []struct {
		src string
		v   lamb.Fn
	}{{"TRUE", lamb.True}, {"FALSE", lamb.False}}

	var cases []Case
	for _, x := range bools {
		for _, y := range bools {
			want := boolean(op, x.v, y.v)
			call := name + "(" + x.src + ")(" + y.src + ")"
			verdict := "FALSE"
			if v, _ := want(); v == true {
				verdict = "TRUE"
			}
			cases = append(cases, Case{
				Description: call + " returns " + verdict,
				Setup:       "result := ap(" + name + ", " + x.src + ", " + y.src + ")",
				Expr:        "toBool(result)",
				Want:        want,
			})
		}
	}
	return cases
}
