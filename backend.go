package algosparse

import "sync"

// Backend is implemented by native sparse-library bindings (CUDA, ROCm, and
// the CPU reference implementation). It is responsible for device discovery
// and for creating per-device contexts.
type Backend interface {
	Info() BackendInfo
	Available() bool
	Devices() ([]DeviceInfo, error)
	NewContext(deviceIndex int) (Context, error)
}

// Context is a backend-specific session tied to one device. Handles and
// streams created from a context are only valid with that context's backend.
type Context interface {
	Device() DeviceInfo
	// NewHandle creates a native library handle.
	NewHandle() (NativeHandle, error)
	// NewStream creates an execution stream/queue.
	NewStream() (Stream, error)
	Close() error
}

// Stream is an ordered asynchronous execution queue. Operations issued on
// one stream execute in issue order relative to each other only; completion
// is observed by calling Synchronize.
type Stream interface {
	Synchronize() error
	Close() error
}

// NativeHandle is the surface this layer consumes from the native sparse
// library: a stream-binding operation plus one entry point per
// (operation, precision) pair. Every method returns a Status; translation
// into errors happens in the dispatch layer, never here.
//
// Binding a stream is a mutable, handle-global side effect. A handle must
// not be used from multiple goroutines without external serialization.
type NativeHandle interface {
	SetStream(s Stream) Status

	Sgthr(nnz int, vals, valsSorted []float32, p []int32, base IndexBase) Status
	Dgthr(nnz int, vals, valsSorted []float64, p []int32, base IndexBase) Status

	Xcoo2csr(cooRowInd []int32, nnz, m int, csrRowPtr []int32, base IndexBase) Status

	XcoosortBufferSizeExt(m, n, nnz int, cooRows, cooCols []int32) (int, Status)
	XcoosortByRow(m, n, nnz int, cooRows, cooCols, p []int32, buffer []byte) Status

	Sgemmi(m, n, k, nnz int, alpha float32, a []float32, lda int,
		cscValB []float32, cscColPtrB, cscRowIndB []int32,
		beta float32, c []float32, ldc int) Status
	Dgemmi(m, n, k, nnz int, alpha float64, a []float64, lda int,
		cscValB []float64, cscColPtrB, cscRowIndB []int32,
		beta float64, c []float64, ldc int) Status

	Destroy() Status
}

var (
	backendMu sync.RWMutex
	backend   Backend
)

// Register registers a backend for the whole process. Passing nil clears the
// registered backend.
func Register(b Backend) {
	backendMu.Lock()
	backend = b
	backendMu.Unlock()
}

// CurrentBackendInfo reports the currently registered backend, if any.
func CurrentBackendInfo() (BackendInfo, bool) {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	if b == nil {
		return BackendInfo{}, false
	}
	return b.Info(), true
}

func getBackend() Backend {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	return b
}
