// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conv_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/lamb"
	"code.hybscloud.com/lamb/conv"
)

func TestToIntReadsAlgebraNumerals(t *testing.T) {
	for want, n := range []lamb.Fn{lamb.Zero, lamb.One, lamb.Two, lamb.Three, lamb.Four, lamb.Five} {
		got, err := conv.ToInt(n)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestFromIntAgreesWithIncrement(t *testing.T) {
	for k := range 12 {
		n, err := conv.FromInt(k)
		require.NoError(t, err)

		back, err := conv.ToInt(lamb.Apply(lamb.Increment, n))
		require.NoError(t, err)
		assert.Equal(t, k+1, back, "Increment(FromInt(%d))", k)

		eq, err := conv.ToBool(lamb.Apply(lamb.EQ, lamb.Apply(lamb.Decrement, lamb.Apply(lamb.Increment, n)), n))
		require.NoError(t, err)
		assert.True(t, eq, "Decrement(Increment(%d)) EQ %d", k, k)
	}
}

func TestFromIntLargeIsStackFlat(t *testing.T) {
	n, err := conv.FromInt(conv.DefaultCeiling)
	require.NoError(t, err)
	got, err := conv.ToInt(n)
	require.NoError(t, err)
	assert.Equal(t, conv.DefaultCeiling, got)
}

func TestFromIntBounds(t *testing.T) {
	_, err := conv.FromInt(-1)
	assert.ErrorIs(t, err, conv.ErrNegative)

	_, err = conv.FromInt(conv.DefaultCeiling + 1)
	assert.ErrorIs(t, err, conv.ErrCeiling)

	small := conv.Converter{Ceiling: 3}
	_, err = small.FromInt(4)
	assert.ErrorIs(t, err, conv.ErrCeiling)
}

func TestToIntCeiling(t *testing.T) {
	small := conv.Converter{Ceiling: 3}
	got, err := small.ToInt(lamb.Three)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = small.ToInt(lamb.Four)
	assert.ErrorIs(t, err, conv.ErrCeiling)
	assert.NotErrorIs(t, err, conv.ErrNotNumeral)
}

func TestZeroCeilingMeansDefault(t *testing.T) {
	var c conv.Converter
	got, err := c.ToInt(lamb.Five)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestToIntRejectsNonNumerals(t *testing.T) {
	tests := []struct {
		name string
		v    lamb.Value
	}{
		{"True", lamb.True},
		{"Pair", lamb.Apply(lamb.Pair, lamb.One, lamb.Two)},
		{"int", 7},
		{"string", "three"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := conv.ToInt(tt.v)
			assert.ErrorIs(t, err, conv.ErrNotNumeral)
		})
	}

	_, err := conv.ToInt(7)
	assert.ErrorIs(t, err, lamb.ErrMismatch)
}

func TestBooleans(t *testing.T) {
	for _, b := range []bool{true, false} {
		got, err := conv.ToBool(conv.FromBool(b))
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}

	and, err := conv.ToBool(lamb.Apply(lamb.And, lamb.True, lamb.False))
	require.NoError(t, err)
	assert.False(t, and)

	_, err = conv.ToBool(lamb.Two)
	assert.ErrorIs(t, err, conv.ErrNotBoolean)
	_, err = conv.ToBool(lamb.Id)
	assert.ErrorIs(t, err, conv.ErrNotBoolean)
	_, err = conv.ToBool(nil)
	assert.ErrorIs(t, err, lamb.ErrMismatch)
}

func TestSlices(t *testing.T) {
	in := []lamb.Value{"a", 2, true}
	list, err := conv.FromSlice(in)
	require.NoError(t, err)

	out, err := conv.ToSlice(list)
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("ToSlice(FromSlice) mismatch (-want +got):\n%s", diff)
	}

	head := lamb.Apply(lamb.Head, list)
	assert.Equal(t, "a", head)

	rest, err := conv.ToSlice(lamb.Apply(lamb.Tail, list))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]lamb.Value{2, true}, rest))
}

func TestEmptySlice(t *testing.T) {
	list, err := conv.FromSlice(nil)
	require.NoError(t, err)
	empty, err := conv.ToBool(lamb.Apply(lamb.IsEmpty, list))
	require.NoError(t, err)
	assert.True(t, empty)

	out, err := conv.ToSlice(lamb.Nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestInts(t *testing.T) {
	want := []int{3, 0, 7, 1}
	list, err := conv.FromInts(want)
	require.NoError(t, err)

	got, err := conv.ToInts(list)
	require.NoError(t, err)
	if !cmp.Equal(want, got) {
		t.Fatalf("ToInts(FromInts(%v)) = %v", want, got)
	}

	_, err = conv.FromInts([]int{1, -2})
	assert.ErrorIs(t, err, conv.ErrNegative)
	assert.ErrorContains(t, err, "element 1")
}

func TestToSliceRejectsNonLists(t *testing.T) {
	_, err := conv.ToSlice(lamb.True)
	assert.ErrorIs(t, err, conv.ErrNotList)
	_, err = conv.ToSlice(lamb.Three)
	assert.ErrorIs(t, err, conv.ErrNotList)
	_, err = conv.ToSlice("x")
	assert.ErrorIs(t, err, conv.ErrNotList)
}

func TestSliceCeiling(t *testing.T) {
	small := conv.Converter{Ceiling: 2}
	_, err := small.FromSlice([]lamb.Value{1, 2, 3})
	assert.ErrorIs(t, err, conv.ErrCeiling)

	list, err := conv.FromSlice([]lamb.Value{1, 2, 3})
	require.NoError(t, err)
	_, err = small.ToSlice(list)
	assert.ErrorIs(t, err, conv.ErrCeiling)
}
