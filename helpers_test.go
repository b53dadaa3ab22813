package algosparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Shared test helpers. The backend registry is process-global, so helpers
// snapshot and restore it; tests touching the registry must not run in
// parallel.

func withCPUBackend(t *testing.T) {
	t.Helper()
	prev := getBackend()
	RegisterCPUBackend()
	t.Cleanup(func() { Register(prev) })
}

func newTestHandle(t *testing.T) (*Handle, Stream) {
	t.Helper()
	withCPUBackend(t)

	h, err := NewHandle()
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	s, err := h.NewStream()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return h, s
}

func identityPerm(n int) []int32 {
	p := make([]int32, n)
	for i := range p {
		p[i] = int32(i)
	}
	return p
}

// refGemmi computes C := alpha*A*B + beta*C the slow, obvious way, with A
// dense row-major m×k (leading dim lda), B sparse k×n CSC, C dense row-major
// m×n (leading dim ldc).
func refGemmi(m, n, k int, alpha float64, a []float64, lda int,
	vals []float64, colPtr, rowInd []int32, beta float64, c []float64, ldc int) []float64 {
	out := make([]float64, len(c))
	copy(out, c)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for t := colPtr[j]; t < colPtr[j+1]; t++ {
				sum += a[i*lda+int(rowInd[t])] * vals[t]
			}
			out[i*ldc+j] = alpha*sum + beta*c[i*ldc+j]
		}
	}
	return out
}
