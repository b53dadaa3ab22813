package algosparse

// Gthr gathers nnz elements from vals into valsSorted according to the
// zero-based permutation p: valsSorted[i] = vals[p[i]]. The handle is bound
// to stream before the kernel is issued; the call returns once the kernel is
// queued, not when it completes.
func Gthr[T Float](h *Handle, nnz int, vals, valsSorted []T, p []int32, stream Stream) error {
	nh, err := h.native()
	if err != nil {
		return err
	}
	if err := Check("SetStream(handle, stream)", nh.SetStream(stream)); err != nil {
		return err
	}
	switch v := any(vals).(type) {
	case []float32:
		return Check("Sgthr(handle, nnz, vals, valsSorted, p, IndexBaseZero)",
			nh.Sgthr(nnz, v, any(valsSorted).([]float32), p, IndexBaseZero))
	case []float64:
		return Check("Dgthr(handle, nnz, vals, valsSorted, p, IndexBaseZero)",
			nh.Dgthr(nnz, v, any(valsSorted).([]float64), p, IndexBaseZero))
	default:
		// Unreachable: Float is a closed constraint.
		return ErrNotImplemented
	}
}
