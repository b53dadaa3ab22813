package algosparse

// Status is the status code returned by every native sparse routine.
// The values mirror the native library's enumeration; StatusSuccess is the
// single non-error variant.
type Status int32

const (
	StatusSuccess                Status = 0
	StatusNotInitialized         Status = 1
	StatusAllocFailed            Status = 2
	StatusInvalidValue           Status = 3
	StatusArchMismatch           Status = 4
	StatusExecutionFailed        Status = 6
	StatusInternalError          Status = 7
	StatusMatrixTypeNotSupported Status = 8
)

// String returns the canonical name of the status code. It is total: any
// value outside the known enumeration decodes to the unknown sentinel rather
// than failing.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SPARSE_STATUS_SUCCESS"
	case StatusNotInitialized:
		return "SPARSE_STATUS_NOT_INITIALIZED"
	case StatusAllocFailed:
		return "SPARSE_STATUS_ALLOC_FAILED"
	case StatusInvalidValue:
		return "SPARSE_STATUS_INVALID_VALUE"
	case StatusArchMismatch:
		return "SPARSE_STATUS_ARCH_MISMATCH"
	case StatusExecutionFailed:
		return "SPARSE_STATUS_EXECUTION_FAILED"
	case StatusInternalError:
		return "SPARSE_STATUS_INTERNAL_ERROR"
	case StatusMatrixTypeNotSupported:
		return "SPARSE_STATUS_MATRIX_TYPE_NOT_SUPPORTED"
	default:
		return "SPARSE_STATUS_UNKNOWN"
	}
}

// IndexBase selects zero- or one-based indexing for structural arrays.
// The dispatch layer always passes IndexBaseZero; callers holding one-based
// data must convert before calling.
type IndexBase int32

const (
	IndexBaseZero IndexBase = 0
	IndexBaseOne  IndexBase = 1
)
