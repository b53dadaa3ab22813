package algosparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGthrFloat32(t *testing.T) {
	h, s := newTestHandle(t)

	vals := []float32{10, 20, 30, 40}
	p := []int32{3, 1, 0, 2}
	sorted := make([]float32, 4)

	require.NoError(t, Gthr(h, 4, vals, sorted, p, s))
	require.NoError(t, s.Synchronize())

	assert.Equal(t, []float32{40, 20, 10, 30}, sorted)
	assert.Equal(t, []float32{10, 20, 30, 40}, vals, "source must be untouched")
}

func TestGthrFloat64(t *testing.T) {
	h, s := newTestHandle(t)

	vals := []float64{10, 20, 30, 40}
	p := []int32{3, 1, 0, 2}
	sorted := make([]float64, 4)

	require.NoError(t, Gthr(h, 4, vals, sorted, p, s))
	require.NoError(t, s.Synchronize())

	assert.Equal(t, []float64{40, 20, 10, 30}, sorted)
}

func TestGthrDefaultStream(t *testing.T) {
	h, _ := newTestHandle(t)

	// A nil stream selects the default stream, which the CPU backend runs
	// inline; no Synchronize is needed before reading the result.
	vals := []float64{1, 2}
	sorted := make([]float64, 2)
	require.NoError(t, Gthr(h, 2, vals, sorted, []int32{1, 0}, nil))
	assert.Equal(t, []float64{2, 1}, sorted)
}

func TestGthrZeroNNZ(t *testing.T) {
	h, s := newTestHandle(t)

	require.NoError(t, Gthr(h, 0, []float32(nil), nil, nil, s))
	require.NoError(t, s.Synchronize())
}

func TestGthrInvalidPermutation(t *testing.T) {
	h, _ := newTestHandle(t)

	// On the default stream content violations surface synchronously.
	vals := []float32{1, 2}
	sorted := make([]float32, 2)
	err := Gthr(h, 2, vals, sorted, []int32{0, 5}, nil)
	require.Error(t, err)

	var libErr *LibraryError
	require.ErrorAs(t, err, &libErr)
	assert.Equal(t, StatusInvalidValue, libErr.Status)
	assert.Contains(t, libErr.Call, "Sgthr")
}

func TestGthrAsyncFailurePoisonsStream(t *testing.T) {
	h, s := newTestHandle(t)

	// On a real stream the kernel is already queued when the bad index is
	// discovered; the failure is reported by Synchronize and sticks.
	vals := []float32{1, 2}
	sorted := make([]float32, 2)
	require.NoError(t, Gthr(h, 2, vals, sorted, []int32{0, 5}, s))

	err := s.Synchronize()
	require.Error(t, err)

	var libErr *LibraryError
	require.ErrorAs(t, err, &libErr)
	assert.Equal(t, StatusInvalidValue, libErr.Status)

	require.Error(t, s.Synchronize())
}
