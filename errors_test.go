package algosparse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSuccess(t *testing.T) {
	require.NoError(t, Check("x", StatusSuccess))
}

func TestCheckFailure(t *testing.T) {
	statuses := []Status{
		StatusNotInitialized,
		StatusAllocFailed,
		StatusInvalidValue,
		StatusArchMismatch,
		StatusExecutionFailed,
		StatusInternalError,
		StatusMatrixTypeNotSupported,
		42, // outside the enumeration
	}
	for _, s := range statuses {
		err := Check("x", s)
		require.Error(t, err)

		var libErr *LibraryError
		require.ErrorAs(t, err, &libErr)
		assert.Equal(t, "x", libErr.Call)
		assert.Equal(t, s, libErr.Status)
		assert.Contains(t, err.Error(), "call='x'")
		assert.Contains(t, err.Error(), s.String())
	}
}

func TestCheckMessageFormat(t *testing.T) {
	err := Check("Sgthr(handle, nnz, vals, valsSorted, p, IndexBaseZero)", StatusInternalError)
	assert.Equal(t,
		"algosparse: error encountered at: call='Sgthr(handle, nnz, vals, valsSorted, p, IndexBaseZero)', reason=7:SPARSE_STATUS_INTERNAL_ERROR",
		err.Error())
}

func TestSentinelErrorsDistinct(t *testing.T) {
	sentinels := []error{ErrNoBackend, ErrBackendUnavailable, ErrNotImplemented, ErrClosedHandle}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.False(t, errors.Is(a, b))
			}
		}
	}
}
