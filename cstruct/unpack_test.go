package cstruct

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnpackScalars(t *testing.T) {
	src := []byte{0x78, 0x56, 0x34, 0x12, 0x12, 0x34}
	var le uint32
	var be uint16
	n, err := Unpack(src, "<I>H", &le, &be)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, uint32(0x12345678), le)
	require.Equal(t, uint16(0x1234), be)
}

func TestUnpackStringAppendsTerminator(t *testing.T) {
	src := []byte{'H', 'e', 'l', 'l', 'o'}
	dst := bytes.Repeat([]byte{0xFF}, 6)
	n, err := Unpack(src, "5s", dst)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []byte{'H', 'e', 'l', 'l', 'o', 0x00}, dst)

	// The destination must hold width+1 bytes for the terminator.
	_, err = Unpack(src, "5s", make([]byte, 5))
	require.ErrorIs(t, err, ErrArgument)
}

func TestUnpackPaddingSkips(t *testing.T) {
	src := []byte{1, 0xAA, 0xBB, 0xCC, 0xDD, 2}
	var a, b uint8
	n, err := Unpack(src, "B4xB", &a, &b)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, uint8(1), a)
	require.Equal(t, uint8(2), b)
}

func TestUnpackArrays(t *testing.T) {
	src := []byte{0, 1, 0, 2, 0, 3}
	got := make([]uint16, 3)
	n, err := Unpack(src, ">3H", got)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, []uint16{1, 2, 3}, got)

	_, err = Unpack(src, ">3H", make([]uint16, 2))
	require.ErrorIs(t, err, ErrArgument)
}

func TestUnpackFailureKeepsEarlierDestinations(t *testing.T) {
	src := []byte{0x2A, 0, 0, 0, 0, 0}
	var first uint32
	var second uint64
	n, err := Unpack(src, "IQ", &first, &second)
	require.ErrorIs(t, err, ErrShortBuffer)
	require.Equal(t, 4, n)
	// The first destination was already populated; no rollback.
	require.Equal(t, uint32(42), first)
	require.Zero(t, second)
}

func TestUnpackShortSource(t *testing.T) {
	var v uint32
	n, err := Unpack([]byte{1, 2, 3}, "I", &v)
	require.ErrorIs(t, err, ErrShortBuffer)
	require.Equal(t, 0, n)
	require.Zero(t, v)
}

func TestUnpackArgumentErrors(t *testing.T) {
	src := make([]byte, 16)

	var wrong uint16
	_, err := Unpack(src, "I", &wrong)
	assert.ErrorIs(t, err, ErrArgument)

	_, err = Unpack(src, "I", uint32(0)) // value where a pointer is needed
	assert.ErrorIs(t, err, ErrArgument)

	_, err = Unpack(src, "I")
	assert.ErrorIs(t, err, ErrArgument)
}

func TestRoundTripAllTypes(t *testing.T) {
	type trip struct {
		name   string
		format string
		pack   []any
		check  func(t *testing.T, unpack func(...any))
	}

	i128 := Int128{0xFF, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0x80}
	u128 := Uint128{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	cases := []trip{
		{"int8 bounds", "3b", []any{[]int8{math.MinInt8, -1, math.MaxInt8}},
			func(t *testing.T, unpack func(...any)) {
				got := make([]int8, 3)
				unpack(got)
				require.Equal(t, []int8{math.MinInt8, -1, math.MaxInt8}, got)
			}},
		{"uint64 max", "Q", []any{uint64(math.MaxUint64)},
			func(t *testing.T, unpack func(...any)) {
				var got uint64
				unpack(&got)
				require.Equal(t, uint64(math.MaxUint64), got)
			}},
		{"int64 min", ">q", []any{int64(math.MinInt64)},
			func(t *testing.T, unpack func(...any)) {
				var got int64
				unpack(&got)
				require.Equal(t, int64(math.MinInt64), got)
			}},
		{"int128", ">t", []any{i128},
			func(t *testing.T, unpack func(...any)) {
				var got Int128
				unpack(&got)
				require.Equal(t, i128, got)
			}},
		{"uint128", "T", []any{u128},
			func(t *testing.T, unpack func(...any)) {
				var got Uint128
				unpack(&got)
				require.Equal(t, u128, got)
			}},
		{"float32 specials", ">4f",
			[]any{[]float32{0, float32(math.Inf(1)), math.SmallestNonzeroFloat32, -1.5}},
			func(t *testing.T, unpack func(...any)) {
				got := make([]float32, 4)
				unpack(got)
				require.Equal(t, []float32{0, float32(math.Inf(1)), math.SmallestNonzeroFloat32, -1.5}, got)
			}},
		{"float64 specials", "3d",
			[]any{[]float64{math.Inf(-1), math.MaxFloat64, math.SmallestNonzeroFloat64}},
			func(t *testing.T, unpack func(...any)) {
				got := make([]float64, 3)
				unpack(got)
				require.Equal(t, []float64{math.Inf(-1), math.MaxFloat64, math.SmallestNonzeroFloat64}, got)
			}},
		{"float16 exact", ">3e", []any{[]float32{1.0, 0.0, -2.0}},
			func(t *testing.T, unpack func(...any)) {
				got := make([]float32, 3)
				unpack(got)
				require.Equal(t, []float32{1.0, 0.0, -2.0}, got)
			}},
		{"float16 max normal", "e", []any{float32(65504.0)},
			func(t *testing.T, unpack func(...any)) {
				var got float32
				unpack(&got)
				require.Equal(t, float32(65504.0), got)
			}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			size, err := SizeOf(tc.format)
			require.NoError(t, err)
			b := make([]byte, size)
			n, err := Pack(b, tc.format, tc.pack...)
			require.NoError(t, err)
			require.Equal(t, size, n)
			tc.check(t, func(dsts ...any) {
				n, err := Unpack(b, tc.format, dsts...)
				require.NoError(t, err)
				require.Equal(t, size, n)
			})
		})
	}
}

func TestRoundTripNaN(t *testing.T) {
	b := make([]byte, 14)
	n, err := Pack(b, "fde", float32(math.NaN()), math.NaN(), float32(math.NaN()))
	require.NoError(t, err)
	require.Equal(t, 14, n)

	var f32 float32
	var f64 float64
	var f16 float32
	_, err = Unpack(b, "fde", &f32, &f64, &f16)
	require.NoError(t, err)
	require.True(t, math.IsNaN(float64(f32)))
	require.True(t, math.IsNaN(f64))
	require.True(t, math.IsNaN(float64(f16)))
}
