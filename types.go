package algosparse

// Float is the type constraint for element types with native kernel support.
// The set is closed: using any other type with a generic operation is a
// compile-time error.
type Float interface {
	float32 | float64
}

// DeviceInfo describes a compute device.
type DeviceInfo struct {
	Name       string
	Vendor     string
	Driver     string
	MemoryMB   int
	ComputeCap string
}

// BackendInfo describes a backend implementation.
type BackendInfo struct {
	Name        string
	Version     string
	Description string
}
