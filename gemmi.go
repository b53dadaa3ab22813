package algosparse

// Gemmi computes the mixed dense-sparse product C := alpha*A*B + beta*C,
// where A is a dense m×k matrix (row-major, leading dimension lda), B is a
// sparse k×n matrix in CSC form (cscValB, cscColPtrB of length n+1,
// cscRowIndB, all zero-based), and C is a dense m×n matrix (row-major,
// leading dimension ldc).
//
// Unlike the other operations, Gemmi does not rebind the stream: the native
// routine takes no stream argument and issues on whatever stream the handle
// currently has bound (see Handle.BindStream).
func Gemmi[T Float](h *Handle, m, n, k, nnz int, alpha T, a []T, lda int,
	cscValB []T, cscColPtrB, cscRowIndB []int32, beta T, c []T, ldc int) error {
	nh, err := h.native()
	if err != nil {
		return err
	}
	switch av := any(a).(type) {
	case []float32:
		return Check("Sgemmi(handle, m, n, k, nnz, alpha, A, lda, cscValB, cscColPtrB, cscRowIndB, beta, C, ldc)",
			nh.Sgemmi(m, n, k, nnz, float32(alpha), av, lda,
				any(cscValB).([]float32), cscColPtrB, cscRowIndB,
				float32(beta), any(c).([]float32), ldc))
	case []float64:
		return Check("Dgemmi(handle, m, n, k, nnz, alpha, A, lda, cscValB, cscColPtrB, cscRowIndB, beta, C, ldc)",
			nh.Dgemmi(m, n, k, nnz, float64(alpha), av, lda,
				any(cscValB).([]float64), cscColPtrB, cscRowIndB,
				float64(beta), any(c).([]float64), ldc))
	default:
		// Unreachable: Float is a closed constraint.
		return ErrNotImplemented
	}
}
