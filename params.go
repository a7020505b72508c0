package sqlkit

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"time"
)

// ParamType is an explicit target SQL type tag for SetTyped. The names
// follow the canonical Postgres type spellings.
type ParamType string

const (
	TypeInteger   ParamType = "INTEGER"
	TypeReal      ParamType = "REAL"
	TypeText      ParamType = "TEXT"
	TypeBoolean   ParamType = "BOOLEAN"
	TypeTimestamp ParamType = "TIMESTAMP"
	TypeBytes     ParamType = "BYTEA"
	TypeDecimal   ParamType = "DECIMAL"
)

// uint64Mask is the all-ones 64-bit pattern used to recover the unsigned
// value from a sign-extended bit pattern. Immutable; written once here.
var uint64Mask = new(big.Int).SetUint64(math.MaxUint64)

// Params holds positional bind parameters, addressed by 1-based index the
// way SQL placeholders are. Slots grow on demand and are never implicitly
// cleared: a binder reusing a Params across rows must set every slot it
// needs on every row, since values from the previous row persist.
type Params struct {
	args []any
}

// Set stores value in the 1-based parameter slot index, growing the slot
// list as needed. It panics if index < 1.
func (p *Params) Set(index int, value any) {
	if index < 1 {
		panic(fmt.Sprintf("sqlkit: parameter index %d out of range", index))
	}
	for len(p.args) < index {
		p.args = append(p.args, nil)
	}
	p.args[index-1] = value
}

// SetTyped stores value in slot index after coercing it to the canonical Go
// binding type for the given SQL type tag. A nil value binds SQL NULL
// regardless of the tag.
func (p *Params) SetTyped(index int, value any, tag ParamType) error {
	if value == nil {
		p.Set(index, nil)
		return nil
	}
	v, err := coerce(value, tag)
	if err != nil {
		return err
	}
	p.Set(index, v)
	return nil
}

// SetUint8 binds an 8-bit unsigned value by widening it into a 16-bit
// signed slot, so the driver never sees a negative bit pattern.
func (p *Params) SetUint8(index int, value uint8) {
	p.Set(index, int16(value))
}

// SetUint16 binds a 16-bit unsigned value into a 32-bit signed slot.
func (p *Params) SetUint16(index int, value uint16) {
	p.Set(index, int32(value))
}

// SetUint32 binds a 32-bit unsigned value into a 64-bit signed slot.
func (p *Params) SetUint32(index int, value uint32) {
	p.Set(index, int64(value))
}

// SetUint64 binds a 64-bit unsigned value. There is no wider signed slot to
// widen into, so the sign-extended bit pattern is masked against the
// all-ones 64-bit constant and bound as an arbitrary-precision decimal
// string; values with the top bit set keep their exact unsigned meaning.
func (p *Params) SetUint64(index int, value uint64) {
	n := new(big.Int).SetInt64(int64(value))
	n.And(n, uint64Mask)
	p.Set(index, n.String())
}

// Args returns the current parameter slots in positional order, ready to
// pass to ExecContext or QueryContext.
func (p *Params) Args() []any {
	return p.args
}

// Len returns the number of parameter slots set so far.
func (p *Params) Len() int {
	return len(p.args)
}

// snapshot copies the current slots so the caller can keep binding new rows
// into the same Params without disturbing rows already accumulated.
func (p *Params) snapshot() []any {
	return append([]any(nil), p.args...)
}

func coerce(value any, tag ParamType) (any, error) {
	switch tag {
	case TypeInteger:
		return coerceKind(value, reflect.Int64)
	case TypeReal:
		return coerceKind(value, reflect.Float64)
	case TypeText:
		switch v := value.(type) {
		case string:
			return v, nil
		case []byte:
			return string(v), nil
		case fmt.Stringer:
			return v.String(), nil
		}
		return nil, fmt.Errorf("sqlkit: cannot bind %T as %s", value, tag)
	case TypeBoolean:
		if v, ok := value.(bool); ok {
			return v, nil
		}
		return nil, fmt.Errorf("sqlkit: cannot bind %T as %s", value, tag)
	case TypeTimestamp:
		if v, ok := value.(time.Time); ok {
			return v, nil
		}
		return nil, fmt.Errorf("sqlkit: cannot bind %T as %s", value, tag)
	case TypeBytes:
		switch v := value.(type) {
		case []byte:
			return v, nil
		case string:
			return []byte(v), nil
		}
		return nil, fmt.Errorf("sqlkit: cannot bind %T as %s", value, tag)
	case TypeDecimal:
		switch v := value.(type) {
		case string:
			return v, nil
		case uint64:
			return strconv.FormatUint(v, 10), nil
		case *big.Int:
			return v.String(), nil
		}
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return strconv.FormatInt(rv.Int(), 10), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
			return strconv.FormatUint(rv.Uint(), 10), nil
		case reflect.Float32, reflect.Float64:
			return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
		}
		return nil, fmt.Errorf("sqlkit: cannot bind %T as %s", value, tag)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownParamType, tag)
}

// coerceKind converts any numeric value to int64 or float64 via
// reflection, so SetTyped accepts the full range of Go numeric types.
func coerceKind(value any, kind reflect.Kind) (any, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		if kind == reflect.Float64 {
			return rv.Convert(reflect.TypeOf(float64(0))).Interface(), nil
		}
		return rv.Convert(reflect.TypeOf(int64(0))).Interface(), nil
	}
	return nil, fmt.Errorf("sqlkit: cannot bind %T as numeric", value)
}
