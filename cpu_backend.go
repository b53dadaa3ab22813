package algosparse

import (
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/cwbudde/algo-sparse/internal/cpuid"
)

// CPUBackend is a host-memory reference implementation of the native sparse
// library, used for development and tests. Kernels execute on the bound
// stream's goroutine, so dispatch returns at enqueue and results become
// observable only after Stream.Synchronize, the same discipline a device
// backend imposes.
//
// Argument shapes (counts, lengths, leading dimensions) are validated
// synchronously and reported in the returned Status. Argument contents
// (permutation entries, row indices, column pointers) are validated during
// execution; a violation poisons the stream and surfaces as the error from
// Synchronize, mirroring an asynchronous device failure.
type CPUBackend struct {
	device DeviceInfo
}

// NewCPUBackend returns a CPU backend with a single host device.
func NewCPUBackend() *CPUBackend {
	f := cpuid.Detect()
	return &CPUBackend{
		device: DeviceInfo{
			Name:       "CPU reference",
			Vendor:     "algosparse",
			Driver:     "host",
			MemoryMB:   0,
			ComputeCap: f.Summary(),
		},
	}
}

func (b *CPUBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "cpu",
		Version:     "0.1",
		Description: "host-memory reference backend",
	}
}

func (b *CPUBackend) Available() bool {
	return true
}

func (b *CPUBackend) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{b.device}, nil
}

func (b *CPUBackend) NewContext(deviceIndex int) (Context, error) {
	if deviceIndex != 0 {
		return nil, fmt.Errorf("algosparse: cpu backend: device index %d out of range", deviceIndex)
	}
	return &cpuContext{device: b.device}, nil
}

// RegisterCPUBackend registers the CPU reference backend as the active backend.
func RegisterCPUBackend() {
	Register(NewCPUBackend())
}

type cpuContext struct {
	device DeviceInfo
}

func (c *cpuContext) Device() DeviceInfo {
	return c.device
}

func (c *cpuContext) NewHandle() (NativeHandle, error) {
	return &cpuHandle{}, nil
}

func (c *cpuContext) NewStream() (Stream, error) {
	return newCPUStream(), nil
}

func (c *cpuContext) Close() error {
	return nil
}

// cpuTask is one unit of enqueued kernel work. The returned Status reports
// content violations found during execution.
type cpuTask struct {
	call string
	run  func() Status
}

// cpuStream is an ordered asynchronous work queue backed by one goroutine.
// The first failing task poisons the stream; the error is sticky and is
// reported by every subsequent Synchronize.
type cpuStream struct {
	mu     sync.Mutex // guards closed and sends on tasks
	closed bool
	tasks  chan cpuTask
	wg     sync.WaitGroup

	errMu sync.Mutex // guards err; the worker takes it, never mu
	err   error
}

func newCPUStream() *cpuStream {
	s := &cpuStream{tasks: make(chan cpuTask, 64)}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for task := range s.tasks {
			if err := Check(task.call, task.run()); err != nil {
				s.setErr(err)
			}
		}
	}()
	return s
}

func (s *cpuStream) enqueue(task cpuTask) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.tasks <- task
	return true
}

func (s *cpuStream) setErr(err error) {
	s.errMu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.errMu.Unlock()
}

func (s *cpuStream) getErr() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

// Synchronize blocks until all previously enqueued work has executed, then
// reports the stream's sticky error, if any.
func (s *cpuStream) Synchronize() error {
	done := make(chan struct{})
	marker := cpuTask{call: "Synchronize(stream)", run: func() Status {
		close(done)
		return StatusSuccess
	}}
	if s.enqueue(marker) {
		<-done
	}
	// Closed streams are already drained.
	return s.getErr()
}

// Close drains the queue and stops the worker. Work dispatched afterwards
// fails with StatusExecutionFailed.
func (s *cpuStream) Close() error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.tasks)
	}
	s.mu.Unlock()
	s.wg.Wait()
	return nil
}

// cpuHandle implements NativeHandle over host slices. It holds the currently
// bound stream; a nil binding means the default stream, which executes
// kernels inline.
type cpuHandle struct {
	stream    *cpuStream
	destroyed bool
}

func (h *cpuHandle) SetStream(s Stream) Status {
	if h.destroyed {
		return StatusNotInitialized
	}
	if s == nil {
		h.stream = nil
		return StatusSuccess
	}
	cs, ok := s.(*cpuStream)
	if !ok {
		// Stream from a different backend.
		return StatusInvalidValue
	}
	h.stream = cs
	return StatusSuccess
}

// submit runs the task on the bound stream, or inline on the default stream.
// Inline execution reports content violations directly in the Status.
func (h *cpuHandle) submit(call string, run func() Status) Status {
	if h.destroyed {
		return StatusNotInitialized
	}
	if h.stream == nil {
		return run()
	}
	if !h.stream.enqueue(cpuTask{call: call, run: run}) {
		return StatusExecutionFailed
	}
	return StatusSuccess
}

func (h *cpuHandle) Sgthr(nnz int, vals, valsSorted []float32, p []int32, base IndexBase) Status {
	return gthrKernel(h, "Sgthr", nnz, vals, valsSorted, p, base)
}

func (h *cpuHandle) Dgthr(nnz int, vals, valsSorted []float64, p []int32, base IndexBase) Status {
	return gthrKernel(h, "Dgthr", nnz, vals, valsSorted, p, base)
}

func gthrKernel[T Float](h *cpuHandle, name string, nnz int, vals, valsSorted []T, p []int32, base IndexBase) Status {
	if h.destroyed {
		return StatusNotInitialized
	}
	off := baseOffset(base)
	if off < 0 || nnz < 0 {
		return StatusInvalidValue
	}
	if len(valsSorted) < nnz || len(p) < nnz {
		return StatusInvalidValue
	}
	if nnz == 0 {
		return StatusSuccess
	}
	return h.submit(name, func() Status {
		for i := 0; i < nnz; i++ {
			idx := int(p[i]) - off
			if idx < 0 || idx >= len(vals) {
				return StatusInvalidValue
			}
			valsSorted[i] = vals[idx]
		}
		return StatusSuccess
	})
}

func (h *cpuHandle) Xcoo2csr(cooRowInd []int32, nnz, m int, csrRowPtr []int32, base IndexBase) Status {
	if h.destroyed {
		return StatusNotInitialized
	}
	off := baseOffset(base)
	if off < 0 || nnz < 0 || m < 0 {
		return StatusInvalidValue
	}
	if len(cooRowInd) < nnz || len(csrRowPtr) < m+1 {
		return StatusInvalidValue
	}
	return h.submit("Xcoo2csr", func() Status {
		ptr := csrRowPtr[:m+1]
		for i := range ptr {
			ptr[i] = 0
		}
		for _, r := range cooRowInd[:nnz] {
			row := int(r) - off
			if row < 0 || row >= m {
				return StatusInvalidValue
			}
			ptr[row+1]++
		}
		for i := 0; i < m; i++ {
			ptr[i+1] += ptr[i]
		}
		if off != 0 {
			for i := range ptr {
				ptr[i] += int32(off)
			}
		}
		return StatusSuccess
	})
}

func (h *cpuHandle) XcoosortBufferSizeExt(m, n, nnz int, cooRows, cooCols []int32) (int, Status) {
	if h.destroyed {
		return 0, StatusNotInitialized
	}
	if m < 0 || n < 0 || nnz < 0 {
		return 0, StatusInvalidValue
	}
	if len(cooRows) < nnz || len(cooCols) < nnz {
		return 0, StatusInvalidValue
	}
	// Scratch for the sort: key and payload arrays of nnz int32 each.
	return 8 * nnz, StatusSuccess
}

func (h *cpuHandle) XcoosortByRow(m, n, nnz int, cooRows, cooCols, p []int32, buffer []byte) Status {
	if h.destroyed {
		return StatusNotInitialized
	}
	if m < 0 || n < 0 || nnz < 0 {
		return StatusInvalidValue
	}
	if len(cooRows) < nnz || len(cooCols) < nnz || len(p) < nnz {
		return StatusInvalidValue
	}
	if len(buffer) < 8*nnz {
		return StatusInvalidValue
	}
	if nnz == 0 {
		return StatusSuccess
	}
	return h.submit("XcoosortByRow", func() Status {
		order := make([]int, nnz)
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			return cooRows[order[i]] < cooRows[order[j]]
		})

		rows := make([]int32, nnz)
		cols := make([]int32, nnz)
		perm := make([]int32, nnz)
		for i, src := range order {
			rows[i] = cooRows[src]
			cols[i] = cooCols[src]
			perm[i] = p[src]
		}
		copy(cooRows[:nnz], rows)
		copy(cooCols[:nnz], cols)
		copy(p[:nnz], perm)
		return StatusSuccess
	})
}

func (h *cpuHandle) Sgemmi(m, n, k, nnz int, alpha float32, a []float32, lda int,
	cscValB []float32, cscColPtrB, cscRowIndB []int32,
	beta float32, c []float32, ldc int) Status {
	if h.destroyed {
		return StatusNotInitialized
	}
	if st := gemmiShape(m, n, k, nnz, lda, ldc, len(a), len(cscValB), len(c), len(cscColPtrB), len(cscRowIndB)); st != StatusSuccess {
		return st
	}
	return h.submit("Sgemmi", func() Status {
		if st := gemmiContent(n, k, nnz, cscColPtrB, cscRowIndB); st != StatusSuccess {
			return st
		}
		if m == 0 {
			return StatusSuccess
		}
		for j := 0; j < n; j++ {
			cj := blas32.Vector{N: m, Inc: ldc, Data: c[j:]}
			if beta != 1 {
				blas32.Scal(beta, cj)
			}
			for t := cscColPtrB[j]; t < cscColPtrB[j+1]; t++ {
				aCol := blas32.Vector{N: m, Inc: lda, Data: a[cscRowIndB[t]:]}
				blas32.Axpy(alpha*cscValB[t], aCol, cj)
			}
		}
		return StatusSuccess
	})
}

func (h *cpuHandle) Dgemmi(m, n, k, nnz int, alpha float64, a []float64, lda int,
	cscValB []float64, cscColPtrB, cscRowIndB []int32,
	beta float64, c []float64, ldc int) Status {
	if h.destroyed {
		return StatusNotInitialized
	}
	if st := gemmiShape(m, n, k, nnz, lda, ldc, len(a), len(cscValB), len(c), len(cscColPtrB), len(cscRowIndB)); st != StatusSuccess {
		return st
	}
	return h.submit("Dgemmi", func() Status {
		if st := gemmiContent(n, k, nnz, cscColPtrB, cscRowIndB); st != StatusSuccess {
			return st
		}
		if m == 0 {
			return StatusSuccess
		}
		for j := 0; j < n; j++ {
			cj := blas64.Vector{N: m, Inc: ldc, Data: c[j:]}
			if beta != 1 {
				blas64.Scal(beta, cj)
			}
			for t := cscColPtrB[j]; t < cscColPtrB[j+1]; t++ {
				aCol := blas64.Vector{N: m, Inc: lda, Data: a[cscRowIndB[t]:]}
				blas64.Axpy(alpha*cscValB[t], aCol, cj)
			}
		}
		return StatusSuccess
	})
}

// gemmiShape validates the synchronous shape contract of Sgemmi/Dgemmi:
// A dense m×k row-major with leading dimension lda, B sparse k×n CSC,
// C dense m×n row-major with leading dimension ldc.
func gemmiShape(m, n, k, nnz, lda, ldc, lenA, lenVal, lenC, lenColPtr, lenRowInd int) Status {
	if m < 0 || n < 0 || k < 0 || nnz < 0 {
		return StatusInvalidValue
	}
	if lda < 1 || lda < k || ldc < 1 || ldc < n {
		return StatusInvalidValue
	}
	if lenColPtr < n+1 || lenVal < nnz || lenRowInd < nnz {
		return StatusInvalidValue
	}
	if m > 0 && k > 0 && lenA < (m-1)*lda+k {
		return StatusInvalidValue
	}
	if m > 0 && n > 0 && lenC < (m-1)*ldc+n {
		return StatusInvalidValue
	}
	return StatusSuccess
}

// gemmiContent validates the CSC structure of B during execution.
func gemmiContent(n, k, nnz int, colPtr, rowInd []int32) Status {
	if colPtr[0] != 0 || int(colPtr[n]) != nnz {
		return StatusInvalidValue
	}
	for j := 0; j < n; j++ {
		if colPtr[j] > colPtr[j+1] {
			return StatusInvalidValue
		}
	}
	for _, r := range rowInd[:nnz] {
		if r < 0 || int(r) >= k {
			return StatusInvalidValue
		}
	}
	return StatusSuccess
}

func (h *cpuHandle) Destroy() Status {
	if h.destroyed {
		return StatusNotInitialized
	}
	h.destroyed = true
	h.stream = nil
	return StatusSuccess
}

func baseOffset(base IndexBase) int {
	switch base {
	case IndexBaseZero:
		return 0
	case IndexBaseOne:
		return 1
	default:
		return -1
	}
}
