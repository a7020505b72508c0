package sqlkit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWithArrayInt64 decodes a Postgres array literal into a typed slice
// and runs the scoped action against it.
func TestWithArrayInt64(t *testing.T) {
	row := &Row{
		columns: []string{"id", "scores"},
		values:  []any{int64(1), []byte("{10,20,30}")},
	}

	var got []int64
	err := WithArray(row, 2, func(scores []int64) error {
		got = scores
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, []int64{10, 20, 30}, got)
}

func TestWithArrayString(t *testing.T) {
	row := &Row{
		columns: []string{"tags"},
		values:  []any{[]byte(`{red,"dark blue"}`)},
	}

	var got []string
	err := WithArray(row, 1, func(tags []string) error {
		got = tags
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"red", "dark blue"}, got)
}

func TestWithArrayNamed(t *testing.T) {
	row := &Row{
		columns: []string{"id", "weights"},
		values:  []any{int64(1), []byte("{1.5,2.5}")},
	}

	var got []float64
	err := WithArrayNamed(row, "weights", func(weights []float64) error {
		got = weights
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5}, got)

	err = WithArrayNamed(row, "missing", func([]float64) error { return nil })
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

// TestWithArrayActionError: the action's error passes through unchanged.
func TestWithArrayActionError(t *testing.T) {
	row := &Row{columns: []string{"xs"}, values: []any{[]byte("{1}")}}

	boom := errors.New("bad array")
	err := WithArray(row, 1, func([]int64) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestWithArrayIndexOutOfRange(t *testing.T) {
	row := &Row{columns: []string{"xs"}, values: []any{[]byte("{1}")}}

	err := WithArray(row, 0, func([]int64) error { return nil })
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	err = WithArray(row, 2, func([]int64) error { return nil })
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestWithArrayDecodeError(t *testing.T) {
	row := &Row{columns: []string{"xs"}, values: []any{[]byte("not an array")}}

	err := WithArray(row, 1, func([]int64) error {
		t.Fatal("action must not run when decoding fails")
		return nil
	})
	assert.Error(t, err)
}
