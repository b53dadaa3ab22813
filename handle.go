package algosparse

// Handle is a session with the native sparse library, created from the
// registered backend.
//
// Binding a stream rebinds shared handle state: two goroutines dispatching
// through one Handle with different streams can misroute each other's
// kernels. Use one Handle per logical execution context, or serialize calls
// externally. This layer takes no locks of its own.
type Handle struct {
	ctx Context
	nh  NativeHandle
}

type handleOptions struct {
	deviceIndex int
}

// HandleOption configures NewHandle.
type HandleOption func(*handleOptions)

// WithDeviceIndex selects which device to create the handle on (0 = default).
func WithDeviceIndex(i int) HandleOption {
	return func(o *handleOptions) {
		o.deviceIndex = i
	}
}

// NewHandle creates a Handle using the registered backend.
func NewHandle(opts ...HandleOption) (*Handle, error) {
	var o handleOptions
	for _, opt := range opts {
		opt(&o)
	}

	b := getBackend()
	if b == nil {
		return nil, ErrNoBackend
	}
	if !b.Available() {
		return nil, ErrBackendUnavailable
	}

	ctx, err := b.NewContext(o.deviceIndex)
	if err != nil {
		return nil, err
	}

	nh, err := ctx.NewHandle()
	if err != nil {
		_ = ctx.Close()
		return nil, err
	}

	return &Handle{ctx: ctx, nh: nh}, nil
}

// Device reports the device this handle was created on.
func (h *Handle) Device() DeviceInfo {
	if h == nil || h.ctx == nil {
		return DeviceInfo{}
	}
	return h.ctx.Device()
}

// NewStream creates an execution stream on the handle's device.
func (h *Handle) NewStream() (Stream, error) {
	if h == nil || h.ctx == nil {
		return nil, ErrClosedHandle
	}
	return h.ctx.NewStream()
}

// BindStream binds the handle to a stream without dispatching an operation.
// Subsequent calls that do not rebind (Gemmi) issue on this stream. A nil
// stream selects the backend's default stream.
func (h *Handle) BindStream(s Stream) error {
	nh, err := h.native()
	if err != nil {
		return err
	}
	return Check("SetStream(handle, stream)", nh.SetStream(s))
}

func (h *Handle) native() (NativeHandle, error) {
	if h == nil || h.nh == nil {
		return nil, ErrClosedHandle
	}
	return h.nh, nil
}

// Close destroys the native handle and releases the device context. The
// handle must not be used afterwards.
func (h *Handle) Close() error {
	if h == nil {
		return nil
	}
	var firstErr error
	if h.nh != nil {
		if err := Check("Destroy(handle)", h.nh.Destroy()); err != nil {
			firstErr = err
		}
		h.nh = nil
	}
	if h.ctx != nil {
		if err := h.ctx.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		h.ctx = nil
	}
	return firstErr
}
