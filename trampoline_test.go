// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lamb_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/lamb"
)

func TestRunPureReturn(t *testing.T) {
	if got := lamb.RunPure(lamb.ExprReturn(42)); got != 42 {
		t.Errorf("RunPure(ExprReturn(42)) = %v, want 42", got)
	}
}

func TestRunPureMapBind(t *testing.T) {
	c := lamb.Delay(func() lamb.Expr[int] { return lamb.ExprReturn(10) })
	c = lamb.ExprMap(c, func(x int) int { return x * 2 })
	c = lamb.ExprBind(c, func(x int) lamb.Expr[int] {
		return lamb.ExprReturn(x + 2)
	})
	if got := lamb.RunPure(c); got != 22 {
		t.Errorf("mixed operations = %v, want 22", got)
	}
}

func TestRunPureTypeConversion(t *testing.T) {
	c := lamb.Delay(func() lamb.Expr[int] { return lamb.ExprReturn(42) })
	if got := lamb.RunPure(lamb.ExprMap(c, strconv.Itoa)); got != "42" {
		t.Errorf("type conversion = %q, want \"42\"", got)
	}
}

func TestMapOnReturnIsEager(t *testing.T) {
	c := lamb.ExprMap(lamb.ExprReturn(21), func(x int) int { return x * 2 })
	if _, ok := c.Frame.(lamb.ReturnFrame); !ok {
		t.Fatal("ExprMap on a completed computation should produce ReturnFrame")
	}
	if c.Value != 42 {
		t.Fatalf("ExprMap value = %v, want 42", c.Value)
	}
}

func TestDelayIsLazy(t *testing.T) {
	called := false
	c := lamb.Delay(func() lamb.Expr[int] {
		called = true
		return lamb.ExprReturn(1)
	})
	if called {
		t.Fatal("Delay ran its body at construction")
	}
	if got := lamb.RunPure(c); got != 1 || !called {
		t.Fatalf("RunPure(Delay) = %v (called=%v), want 1 (called=true)", got, called)
	}
}

// countdown recurses n times through Delay; each level is one frame.
func countdown(n int) lamb.Expr[int] {
	return lamb.Delay(func() lamb.Expr[int] {
		if n == 0 {
			return lamb.ExprReturn(0)
		}
		return lamb.ExprMap(countdown(n-1), func(x int) int { return x + 1 })
	})
}

func TestRunPureDeepRecursion(t *testing.T) {
	// every level is a heap frame; the Go stack does not grow
	const depth = 100_000
	if got := lamb.RunPure(countdown(depth)); got != depth {
		t.Fatalf("countdown(%d) = %d", depth, got)
	}
}

func TestRunPureLeftNestedBinds(t *testing.T) {
	c := lamb.Delay(func() lamb.Expr[int] { return lamb.ExprReturn(0) })
	for range 10000 {
		c = lamb.ExprBind(c, func(x int) lamb.Expr[int] {
			return lamb.Delay(func() lamb.Expr[int] { return lamb.ExprReturn(x + 1) })
		})
	}
	if got := lamb.RunPure(c); got != 10000 {
		t.Errorf("left-nested binds = %v, want 10000", got)
	}
}

func TestRunPureMapFrame(t *testing.T) {
	got := lamb.RunPure(lamb.Expr[int]{
		Value: 21,
		Frame: &lamb.MapFrame[any, any]{
			F:    func(x any) any { return x.(int) * 2 },
			Next: lamb.ReturnFrame{},
		},
	})
	if got != 42 {
		t.Errorf("RunPure(MapFrame) = %v, want 42", got)
	}
}

func TestChainFramesIdentity(t *testing.T) {
	f := &lamb.MapFrame[any, any]{F: func(x any) any { return x }, Next: lamb.ReturnFrame{}}
	if got := lamb.ChainFrames(lamb.ReturnFrame{}, f); got != lamb.Frame(f) {
		t.Fatal("ChainFrames(ReturnFrame, f) should return f")
	}
	if got := lamb.ChainFrames(f, lamb.ReturnFrame{}); got != lamb.Frame(f) {
		t.Fatal("ChainFrames(f, ReturnFrame) should return f")
	}
}

func TestTrampolineLoop(t *testing.T) {
	// each step returns the next step as an unforced Thunk
	var step func(n, acc int) lamb.Value
	step = func(n, acc int) lamb.Value {
		if n == 0 {
			return acc
		}
		return lamb.Thunk(func() lamb.Value { return step(n-1, acc+1) })
	}
	const depth = 100_000
	if got := lamb.Trampoline(step(depth, 0)); got != depth {
		t.Fatalf("Trampoline = %v, want %d", got, depth)
	}
	if got := lamb.Trampoline(7); got != 7 {
		t.Fatalf("Trampoline(7) = %v, want 7", got)
	}
}
