package algosparse

// Coo2csr converts an unordered COO row-index array of length nnz over m
// rows into a compressed row-pointer array of length m+1, zero-based. The
// handle is bound to stream before the kernel is issued.
func Coo2csr(h *Handle, cooRowInd []int32, nnz, m int, csrRowPtr []int32, stream Stream) error {
	nh, err := h.native()
	if err != nil {
		return err
	}
	if err := Check("SetStream(handle, stream)", nh.SetStream(stream)); err != nil {
		return err
	}
	return Check("Xcoo2csr(handle, cooRowInd, nnz, m, csrRowPtr, IndexBaseZero)",
		nh.Xcoo2csr(cooRowInd, nnz, m, csrRowPtr, IndexBaseZero))
}

// CoosortBufferSize reports how many scratch bytes a subsequent CoosortByRow
// over the same coordinate arrays needs. The handle is bound to stream
// before the query is issued.
func CoosortBufferSize(h *Handle, m, n, nnz int, cooRows, cooCols []int32, stream Stream) (int, error) {
	nh, err := h.native()
	if err != nil {
		return 0, err
	}
	if err := Check("SetStream(handle, stream)", nh.SetStream(stream)); err != nil {
		return 0, err
	}
	size, status := nh.XcoosortBufferSizeExt(m, n, nnz, cooRows, cooCols)
	if err := Check("XcoosortBufferSizeExt(handle, m, n, nnz, cooRows, cooCols)", status); err != nil {
		return 0, err
	}
	return size, nil
}

// CoosortByRow stably reorders the COO entries (cooRows, cooCols) by row
// index in place, recording the applied permutation in p: entry i of the
// sorted arrays came from index p[i] of the originals. p is in/out:
// initialize it to the identity (or a prior permutation) before the call.
// buffer must hold at least the byte count reported by CoosortBufferSize.
// The handle is bound to stream before the kernel is issued.
func CoosortByRow(h *Handle, m, n, nnz int, cooRows, cooCols, p []int32, buffer []byte, stream Stream) error {
	nh, err := h.native()
	if err != nil {
		return err
	}
	if err := Check("SetStream(handle, stream)", nh.SetStream(stream)); err != nil {
		return err
	}
	return Check("XcoosortByRow(handle, m, n, nnz, cooRows, cooCols, p, buffer)",
		nh.XcoosortByRow(m, n, nnz, cooRows, cooCols, p, buffer))
}
