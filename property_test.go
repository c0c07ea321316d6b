// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lamb_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/lamb"
)

const propertyN = 200

// randNat returns a random int in [0, 30].
func randNat(rng *rand.Rand) int {
	return rng.IntN(31)
}

func randBool(rng *rand.Rand) bool {
	return rng.IntN(2) == 1
}

func fromBool(b bool) lamb.Value {
	if b {
		return lamb.True
	}
	return lamb.False
}

// --- Group 1: Arithmetic agrees with host integers ---

// TestPropertyAddCommutes: Add(a)(b) ≡ Add(b)(a) ≡ a+b
func TestPropertyAddCommutes(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b := randNat(rng), randNat(rng)
		left := toInt(t, lamb.Apply(lamb.Add, church(a), church(b)))
		right := toInt(t, lamb.Apply(lamb.Add, church(b), church(a)))
		if left != a+b || right != a+b {
			t.Fatalf("add: %d, %d != %d (a=%d, b=%d)", left, right, a+b, a, b)
		}
	}
}

// TestPropertySubtractTruncates: Subtract(a)(b) ≡ max(a-b, 0)
func TestPropertySubtractTruncates(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b := randNat(rng), randNat(rng)
		got := toInt(t, lamb.Apply(lamb.Subtract, church(a), church(b)))
		if want := max(a-b, 0); got != want {
			t.Fatalf("subtract: %d != %d (a=%d, b=%d)", got, want, a, b)
		}
	}
}

// TestPropertyMultiply: Multiply(a)(b) ≡ a*b
func TestPropertyMultiply(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b := randNat(rng), randNat(rng)
		if got := toInt(t, lamb.Apply(lamb.Multiply, church(a), church(b))); got != a*b {
			t.Fatalf("multiply: %d != %d (a=%d, b=%d)", got, a*b, a, b)
		}
	}
}

// TestPropertyDecrementInvertsIncrement: Decrement(Increment(n)) ≡ n
func TestPropertyDecrementInvertsIncrement(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := randNat(rng)
		got := toInt(t, lamb.Apply(lamb.Decrement, lamb.Apply(lamb.Increment, church(n))))
		if got != n {
			t.Fatalf("decrement: %d != %d", got, n)
		}
	}
}

// --- Group 2: Comparisons form a total order ---

// TestPropertyComparisons: exactly one of LT, EQ, GT holds, and
// LEQ ≡ LT ∨ EQ, GEQ ≡ GT ∨ EQ.
func TestPropertyComparisons(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b := randNat(rng), randNat(rng)
		na, nb := church(a), church(b)
		lt := toBool(t, lamb.Apply(lamb.LT, na, nb))
		eq := toBool(t, lamb.Apply(lamb.EQ, na, nb))
		gt := toBool(t, lamb.Apply(lamb.GT, na, nb))
		leq := toBool(t, lamb.Apply(lamb.LEQ, na, nb))
		geq := toBool(t, lamb.Apply(lamb.GEQ, na, nb))

		if lt != (a < b) || eq != (a == b) || gt != (a > b) {
			t.Fatalf("order: lt=%v eq=%v gt=%v (a=%d, b=%d)", lt, eq, gt, a, b)
		}
		if leq != (lt || eq) || geq != (gt || eq) {
			t.Fatalf("closure: leq=%v geq=%v (a=%d, b=%d)", leq, geq, a, b)
		}
	}
}

// --- Group 3: Boolean algebra ---

// TestPropertyDeMorgan: Not(And(x)(y)) ≡ Or(Not x)(Not y)
func TestPropertyDeMorgan(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		x, y := randBool(rng), randBool(rng)
		left := lamb.Apply(lamb.Not, lamb.Apply(lamb.And, fromBool(x), fromBool(y)))
		right := lamb.Apply(lamb.Or, lamb.Apply(lamb.Not, fromBool(x)), lamb.Apply(lamb.Not, fromBool(y)))
		if toBool(t, left) != toBool(t, right) || toBool(t, left) != !(x && y) {
			t.Fatalf("de morgan: x=%v y=%v", x, y)
		}
	}
}

// TestPropertyNotInvolution: Not(Not b) ≡ b
func TestPropertyNotInvolution(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		b := randBool(rng)
		if got := toBool(t, lamb.Apply(lamb.Not, lamb.Apply(lamb.Not, fromBool(b)))); got != b {
			t.Fatalf("not not %v = %v", b, got)
		}
	}
}

// --- Group 4: Pairs and lists ---

// TestPropertyPairSelectors: First(Pair a b) ≡ a, Second(Pair a b) ≡ b
func TestPropertyPairSelectors(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b := rng.IntN(2001)-1000, rng.IntN(2001)-1000
		p := lamb.Apply(lamb.Pair, a, b)
		if lamb.Apply(lamb.First, p) != a || lamb.Apply(lamb.Second, p) != b {
			t.Fatalf("pair: (%d, %d)", a, b)
		}
	}
}

// TestPropertyConsHeadTail: Head(Cons h l) ≡ h, Tail(Cons h l) ≡ l
func TestPropertyConsHeadTail(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := rng.IntN(6)
		vals := make([]lamb.Value, n)
		want := make([]int, n)
		for i := range vals {
			want[i] = randNat(rng)
			vals[i] = church(want[i])
		}
		h := randNat(rng)
		list := lamb.Apply(lamb.Cons, church(h), listOf(vals...))

		if got := toInt(t, lamb.Apply(lamb.Head, list)); got != h {
			t.Fatalf("head: %d != %d", got, h)
		}
		got := toInts(t, lamb.Apply(lamb.Tail, list))
		if len(got) != len(want) {
			t.Fatalf("tail: %v != %v", got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("tail: %v != %v", got, want)
			}
		}
	}
}

// --- Group 5: Recursion strategies agree ---

// TestPropertyStrategiesAgree: every evaluation of factorial and fibonacci
// yields the same numeral.
func TestPropertyStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range 20 {
		n := rng.IntN(7)
		num := church(n)
		fact := []int{
			toInt(t, lamb.Factorial(num)()),
			toInt(t, lamb.Force(lamb.Apply(lamb.FixFactorial, num))),
			toInt(t, lamb.Trampoline(lamb.TailFactorial(num))),
			toInt(t, lamb.RunPure(lamb.FactorialExpr(num))),
			toInt(t, lamb.RunPure(lamb.Reify(lamb.FactorialCont(num)))),
		}
		fib := []int{
			toInt(t, lamb.Fibonacci(num)()),
			toInt(t, lamb.Force(lamb.Apply(lamb.FixFibonacci, num))),
			toInt(t, lamb.Trampoline(lamb.TailFibonacci(num))),
			toInt(t, lamb.RunPure(lamb.FibonacciExpr(num))),
			toInt(t, lamb.RunPure(lamb.Reify(lamb.FibonacciCont(num)))),
		}
		for i := 1; i < len(fact); i++ {
			if fact[i] != fact[0] || fib[i] != fib[0] {
				t.Fatalf("n=%d: factorial %v, fibonacci %v", n, fact, fib)
			}
		}
	}
}
