package sqlkit

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestParamsSetGrowsSlots checks 1-based addressing with on-demand growth.
func TestParamsSetGrowsSlots(t *testing.T) {
	var p Params
	p.Set(3, "third")
	p.Set(1, int64(1))

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []any{int64(1), nil, "third"}, p.Args())
}

// TestParamsSetOverwrites keeps the latest value for a slot.
func TestParamsSetOverwrites(t *testing.T) {
	var p Params
	p.Set(1, "old")
	p.Set(1, "new")

	assert.Equal(t, []any{"new"}, p.Args())
}

func TestParamsSetPanicsBelowOne(t *testing.T) {
	var p Params
	assert.Panics(t, func() { p.Set(0, "x") })
	assert.Panics(t, func() { p.Set(-1, "x") })
}

// TestParamsSnapshotIsIndependent: mutating the buffer after a snapshot
// must not change the snapshot.
func TestParamsSnapshotIsIndependent(t *testing.T) {
	var p Params
	p.Set(1, "a")
	snap := p.snapshot()
	p.Set(1, "b")

	assert.Equal(t, []any{"a"}, snap)
	assert.Equal(t, []any{"b"}, p.Args())
}

// TestSetUnsignedWidening: each unsigned width lands in the next larger
// signed slot and survives reinterpretation back to unsigned.
func TestSetUnsignedWidening(t *testing.T) {
	var p Params
	p.SetUint8(1, math.MaxUint8)
	p.SetUint16(2, math.MaxUint16)
	p.SetUint32(3, math.MaxUint32)

	assert.Equal(t, int16(255), p.Args()[0])
	assert.Equal(t, int32(65535), p.Args()[1])
	assert.Equal(t, int64(4294967295), p.Args()[2])

	assert.Equal(t, uint8(math.MaxUint8), uint8(p.Args()[0].(int16)))
	assert.Equal(t, uint16(math.MaxUint16), uint16(p.Args()[1].(int32)))
	assert.Equal(t, uint32(math.MaxUint32), uint32(p.Args()[2].(int64)))
}

// TestSetUint64 binds the exact unsigned decimal even when the top bit is
// set, where a plain int64 cast would go negative.
func TestSetUint64(t *testing.T) {
	var p Params
	p.SetUint64(1, math.MaxUint64)
	p.SetUint64(2, 1<<63)
	p.SetUint64(3, 42)

	assert.Equal(t, "18446744073709551615", p.Args()[0])
	assert.Equal(t, "9223372036854775808", p.Args()[1])
	assert.Equal(t, "42", p.Args()[2])
}

func TestSetTypedCoercions(t *testing.T) {
	var p Params

	assert.NoError(t, p.SetTyped(1, int32(7), TypeInteger))
	assert.Equal(t, int64(7), p.Args()[0])

	assert.NoError(t, p.SetTyped(1, 3, TypeReal))
	assert.Equal(t, float64(3), p.Args()[0])

	assert.NoError(t, p.SetTyped(1, []byte("abc"), TypeText))
	assert.Equal(t, "abc", p.Args()[0])

	assert.NoError(t, p.SetTyped(1, true, TypeBoolean))
	assert.Equal(t, true, p.Args()[0])

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.NoError(t, p.SetTyped(1, now, TypeTimestamp))
	assert.Equal(t, now, p.Args()[0])

	assert.NoError(t, p.SetTyped(1, "blob", TypeBytes))
	assert.Equal(t, []byte("blob"), p.Args()[0])

	assert.NoError(t, p.SetTyped(1, uint64(math.MaxUint64), TypeDecimal))
	assert.Equal(t, "18446744073709551615", p.Args()[0])

	assert.NoError(t, p.SetTyped(1, big.NewInt(-12), TypeDecimal))
	assert.Equal(t, "-12", p.Args()[0])
}

// TestSetTypedNullBindsNil: nil binds SQL NULL whatever the tag says.
func TestSetTypedNullBindsNil(t *testing.T) {
	var p Params
	assert.NoError(t, p.SetTyped(1, nil, TypeInteger))
	assert.Nil(t, p.Args()[0])
}

func TestSetTypedRejectsMismatch(t *testing.T) {
	var p Params
	assert.Error(t, p.SetTyped(1, "not a bool", TypeBoolean))
	assert.Error(t, p.SetTyped(1, struct{}{}, TypeInteger))
}

func TestSetTypedUnknownTag(t *testing.T) {
	var p Params
	err := p.SetTyped(1, 1, ParamType("GEOMETRY"))
	assert.ErrorIs(t, err, ErrUnknownParamType)
}
