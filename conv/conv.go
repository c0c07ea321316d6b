// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package conv translates between encoded values and host-native Go
// values. It sits outside the algebra: nothing in package lamb imports it.
//
// Reading a value runs it. A numeral is read by applying it to a counting
// step and the seed 0; a boolean by selecting between true and false; a
// list by folding it into a slice. Malformed encodings surface as errors
// wrapping [ErrNotNumeral], [ErrNotBoolean], [ErrNotList], or
// [lamb.ErrMismatch].
//
// Every conversion is bounded by a [Converter] ceiling so that a runaway
// numeral or list fails with [ErrCeiling] instead of exhausting memory.
package conv

import (
	"errors"
	"fmt"

	"code.hybscloud.com/lamb"
)

// DefaultCeiling bounds numerals and list lengths converted by [Default].
const DefaultCeiling = 100000

var (
	// ErrNegative is returned by FromInt for k < 0.
	ErrNegative = errors.New("conv: negative value has no numeral")
	// ErrCeiling is returned when a numeral or list exceeds the ceiling.
	ErrCeiling = errors.New("conv: value exceeds ceiling")
	// ErrNotNumeral is returned when a value does not read back as a count.
	ErrNotNumeral = errors.New("conv: value is not a numeral")
	// ErrNotBoolean is returned when a value does not select true or false.
	ErrNotBoolean = errors.New("conv: value is not a boolean")
	// ErrNotList is returned when a value does not fold like a list.
	ErrNotList = errors.New("conv: value is not a list")
)

// Converter carries the bound applied to every conversion.
// A zero Ceiling means [DefaultCeiling].
type Converter struct {
	Ceiling int
}

// Default is the converter behind the package-level functions.
var Default = Converter{Ceiling: DefaultCeiling}

func (c Converter) ceiling() int {
	if c.Ceiling <= 0 {
		return DefaultCeiling
	}
	return c.Ceiling
}

// overflow aborts a fold that ran past the ceiling.
type overflow struct{}

// run evaluates f, turning a mismatch or ceiling panic into an error.
func run(f func() lamb.Value) (v lamb.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(overflow); ok {
				v, err = nil, ErrCeiling
				return
			}
			panic(r)
		}
	}()
	return lamb.Try(f)
}

// FromInt builds the numeral for k. The result applies f in a loop
// rather than through k nested Increments, so reading it back never
// grows the Go stack with k.
func (c Converter) FromInt(k int) (lamb.Fn, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegative, k)
	}
	if k > c.ceiling() {
		return nil, fmt.Errorf("%w: %d > %d", ErrCeiling, k, c.ceiling())
	}
	switch k {
	case 0:
		return lamb.Zero, nil
	case 1:
		return lamb.One, nil
	}
	return func(f lamb.Value) lamb.Value {
		return lamb.Fn(func(x lamb.Value) lamb.Value {
			for range k {
				x = lamb.Apply(f, x)
			}
			return x
		})
	}, nil
}

// ToInt reads a numeral by counting how many times it applies its step.
func (c Converter) ToInt(n lamb.Value) (int, error) {
	limit := c.ceiling()
	step := lamb.Fn(func(acc lamb.Value) lamb.Value {
		k, ok := acc.(int)
		if !ok {
			return acc
		}
		if k >= limit {
			panic(overflow{})
		}
		return k + 1
	})
	v, err := run(func() lamb.Value { return lamb.Apply(n, step, 0) })
	if errors.Is(err, ErrCeiling) {
		return 0, fmt.Errorf("%w: numeral > %d", err, limit)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotNumeral, err)
	}
	k, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("%w: read back %T", ErrNotNumeral, v)
	}
	return k, nil
}

// FromBool returns True or False.
func FromBool(b bool) lamb.Fn {
	if b {
		return lamb.True
	}
	return lamb.False
}

// ToBool reads a boolean by letting it select between true and false.
func ToBool(b lamb.Value) (bool, error) {
	v, err := lamb.Try(func() lamb.Value { return lamb.Apply(b, true, false) })
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrNotBoolean, err)
	}
	r, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: selected %T", ErrNotBoolean, v)
	}
	return r, nil
}

// FromSlice conses vals onto Nil, last element first.
func (c Converter) FromSlice(vals []lamb.Value) (lamb.Value, error) {
	if len(vals) > c.ceiling() {
		return nil, fmt.Errorf("%w: length %d > %d", ErrCeiling, len(vals), c.ceiling())
	}
	var list lamb.Value = lamb.Nil
	for i := len(vals) - 1; i >= 0; i-- {
		list = lamb.Apply(lamb.Cons, vals[i], list)
	}
	return list, nil
}

// collected is the fold seed for ToSlice; elements arrive last first.
type collected struct {
	rev []lamb.Value
}

// ToSlice folds a list into its elements, head first.
func (c Converter) ToSlice(list lamb.Value) ([]lamb.Value, error) {
	limit := c.ceiling()
	step := lamb.Curry2(func(head, acc lamb.Value) lamb.Value {
		col, ok := acc.(*collected)
		if !ok {
			return acc
		}
		if len(col.rev) >= limit {
			panic(overflow{})
		}
		col.rev = append(col.rev, head)
		return col
	})
	v, err := run(func() lamb.Value { return lamb.Apply(list, step, &collected{}) })
	if errors.Is(err, ErrCeiling) {
		return nil, fmt.Errorf("%w: length > %d", err, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotList, err)
	}
	col, ok := v.(*collected)
	if !ok {
		return nil, fmt.Errorf("%w: folded to %T", ErrNotList, v)
	}
	out := make([]lamb.Value, len(col.rev))
	for i, e := range col.rev {
		out[len(out)-1-i] = e
	}
	return out, nil
}

// FromInts builds a list of numerals.
func (c Converter) FromInts(ks []int) (lamb.Value, error) {
	vals := make([]lamb.Value, len(ks))
	for i, k := range ks {
		n, err := c.FromInt(k)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		vals[i] = n
	}
	return c.FromSlice(vals)
}

// ToInts reads a list of numerals.
func (c Converter) ToInts(list lamb.Value) ([]int, error) {
	vals, err := c.ToSlice(list)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(vals))
	for i, v := range vals {
		k, err := c.ToInt(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = k
	}
	return out, nil
}

// FromInt calls [Default].FromInt.
func FromInt(k int) (lamb.Fn, error) { return Default.FromInt(k) }

// ToInt calls [Default].ToInt.
func ToInt(n lamb.Value) (int, error) { return Default.ToInt(n) }

// FromSlice calls [Default].FromSlice.
func FromSlice(vals []lamb.Value) (lamb.Value, error) { return Default.FromSlice(vals) }

// ToSlice calls [Default].ToSlice.
func ToSlice(list lamb.Value) ([]lamb.Value, error) { return Default.ToSlice(list) }

// FromInts calls [Default].FromInts.
func FromInts(ks []int) (lamb.Value, error) { return Default.FromInts(ks) }

// ToInts calls [Default].ToInts.
func ToInts(list lamb.Value) ([]int, error) { return Default.ToInts(list) }
