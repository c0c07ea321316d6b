// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"code.hybscloud.com/lamb"
	"code.hybscloud.com/lamb/conv"
	"code.hybscloud.com/lamb/internal/config"
)

// recursive bundles the four evaluations of one recursive function.
type recursive struct {
	thunk      func(lamb.Value) lamb.Thunk
	fix        lamb.Fn
	tail       func(lamb.Value) lamb.Thunk
	expression func(lamb.Value) lamb.Expr[lamb.Value]
	cps        func(lamb.Value) lamb.Cont[lamb.Erased, lamb.Value]
}

var (
	factorial = recursive{
		thunk:      lamb.Factorial,
		fix:        lamb.FixFactorial,
		tail:       lamb.TailFactorial,
		expression: lamb.FactorialExpr,
		cps:        lamb.FactorialCont,
	}
	fibonacci = recursive{
		thunk:      lamb.Fibonacci,
		fix:        lamb.FixFibonacci,
		tail:       lamb.TailFibonacci,
		expression: lamb.FibonacciExpr,
		cps:        lamb.FibonacciCont,
	}
)

func (r recursive) eval(strategy string, n lamb.Value) (lamb.Value, error) {
	switch strategy {
	case config.StrategyThunk:
		return lamb.Try(func() lamb.Value { return r.thunk(n)() })
	case config.StrategyFix:
		return lamb.Try(func() lamb.Value { return lamb.Force(lamb.Apply(r.fix, n)) })
	case config.StrategyTrampoline:
		return lamb.Try(func() lamb.Value { return lamb.Trampoline(r.tail(n)) })
	case config.StrategyFrames:
		return lamb.Try(func() lamb.Value { return lamb.RunPure(r.expression(n)) })
	case config.StrategyCPS:
		return lamb.Try(func() lamb.Value { return lamb.RunPure(lamb.Reify(r.cps(n))) })
	default:
		return nil, fmt.Errorf("unknown strategy %q (valid: %v)", strategy, config.ValidStrategies)
	}
}

func (a *app) factorialCmd() *cobra.Command {
	return a.recursiveCmd("factorial N", "Compute N! as a numeral", "!", factorial)
}

func (a *app) fibonacciCmd() *cobra.Command {
	return a.recursiveCmd("fibonacci N", "Compute the N-th Fibonacci number as a numeral", "fib", fibonacci)
}

func (a *app) recursiveCmd(use, short, label string, fn recursive) *cobra.Command {
	var strategy string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.

The strategy selects how the recursion is evaluated:
  thunk       named self-reference, branches deferred behind thunks
  fix         the Y combinator, no named self-reference
  trampoline  accumulator steps forced in a loop
  frames      defunctionalized frames run on the heap
  cps         continuation-passing style reified into frames`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strategy == "" {
				strategy = a.cfg.Recursion.Strategy
			}
			k, err := parseNatural(args[0])
			if err != nil {
				return err
			}
			n, err := a.conv.FromInt(k)
			if err != nil {
				return err
			}

			start := time.Now()
			v, err := fn.eval(strategy, n)
			if err != nil {
				return err
			}
			out, err := a.conv.ToInt(v)
			if err != nil {
				return fmt.Errorf("%s(%d): %w", strings.Fields(use)[0], k, err)
			}
			a.logger.Debug("evaluated",
				zap.String("function", strings.Fields(use)[0]),
				zap.String("strategy", strategy),
				zap.Int("n", k),
				zap.Duration("elapsed", time.Since(start)))

			expr := fmt.Sprintf("%s(%d)", label, k)
			if label == "!" {
				expr = fmt.Sprintf("%d!", k)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s %s\n",
				expr, a.styles.Value.Render(strconv.Itoa(out)), a.styles.Muted.Render("("+strategy+")"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "recursion strategy: thunk, fix, trampoline, frames, cps (default from config)")
	return cmd
}

// operation is one arithmetic command: fn takes arity numerals and yields
// a numeral, or a boolean when predicate is set.
type operation struct {
	fn        lamb.Fn
	arity     int
	predicate bool
}

var operations = map[string]operation{
	"add":    {fn: lamb.Add, arity: 2},
	"sub":    {fn: lamb.Subtract, arity: 2},
	"mul":    {fn: lamb.Multiply, arity: 2},
	"pow":    {fn: lamb.Power, arity: 2},
	"square": {fn: lamb.Square, arity: 1},
	"succ":   {fn: lamb.Increment, arity: 1},
	"pred":   {fn: lamb.Decrement, arity: 1},
	"eq":     {fn: lamb.EQ, arity: 2, predicate: true},
	"leq":    {fn: lamb.LEQ, arity: 2, predicate: true},
	"lt":     {fn: lamb.LT, arity: 2, predicate: true},
	"gt":     {fn: lamb.GT, arity: 2, predicate: true},
	"geq":    {fn: lamb.GEQ, arity: 2, predicate: true},
	"iszero": {fn: lamb.IsZero, arity: 1, predicate: true},
	"isone":  {fn: lamb.IsOne, arity: 1, predicate: true},
}

func operationNames() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (a *app) arithCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arith OP A [B]",
		Short: "Apply a numeral operation to host integers",
		Long: `Convert the operands to numerals, apply OP, and convert the result back.

Operations: ` + strings.Join(operationNames(), ", ") + `

Subtraction truncates at zero. Predicates print true or false.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := operations[args[0]]
			if !ok {
				return fmt.Errorf("unknown operation %q (valid: %s)", args[0], strings.Join(operationNames(), ", "))
			}
			if len(args)-1 != op.arity {
				return fmt.Errorf("%s takes %d operand(s), got %d", args[0], op.arity, len(args)-1)
			}

			operands := make([]lamb.Value, op.arity)
			for i, arg := range args[1:] {
				k, err := parseNatural(arg)
				if err != nil {
					return err
				}
				if operands[i], err = a.conv.FromInt(k); err != nil {
					return err
				}
			}

			v, err := lamb.Try(func() lamb.Value { return lamb.Apply(op.fn, operands...) })
			if err != nil {
				return err
			}

			var out string
			if op.predicate {
				b, err := conv.ToBool(v)
				if err != nil {
					return err
				}
				out = strconv.FormatBool(b)
			} else {
				k, err := a.conv.ToInt(v)
				if err != nil {
					return err
				}
				out = strconv.Itoa(k)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n", args[0], strings.Join(args[1:], " "), a.styles.Value.Render(out))
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list OP N...",
		Short: "Apply a list operation to a list of host integers",
		Long: `Build a list from the integers with Cons and apply OP.

Operations:
  head   first element
  tail   every element after the first
  empty  whether the list is empty`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ks := make([]int, 0, len(args)-1)
			for _, arg := range args[1:] {
				k, err := parseNatural(arg)
				if err != nil {
					return err
				}
				ks = append(ks, k)
			}
			list, err := a.conv.FromInts(ks)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch args[0] {
			case "empty":
				b, err := conv.ToBool(lamb.Apply(lamb.IsEmpty, list))
				if err != nil {
					return err
				}
				fmt.Fprintln(w, a.styles.Value.Render(strconv.FormatBool(b)))
			case "head":
				if len(ks) == 0 {
					return fmt.Errorf("head of an empty list")
				}
				k, err := a.conv.ToInt(lamb.Apply(lamb.Head, list))
				if err != nil {
					return err
				}
				fmt.Fprintln(w, a.styles.Value.Render(strconv.Itoa(k)))
			case "tail":
				rest, err := a.conv.ToInts(lamb.Apply(lamb.Tail, list))
				if err != nil {
					return err
				}
				fmt.Fprintln(w, a.styles.Value.Render(formatInts(rest)))
			default:
				return fmt.Errorf("unknown list operation %q (valid: head, tail, empty)", args[0])
			}
			return nil
		},
	}
}

func parseNatural(s string) (int, error) {
	k, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return k, nil
}

func formatInts(ks []int) string {
	parts := make([]string, len(ks))
	for i, k := range ks {
		parts[i] = strconv.Itoa(k)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
