package uart

// Memory map of the UART register window.
const (
	BaseAddr uintptr = 0x1000_0000
	Size             = 0x100

	DataOffset = 0 // RHR on load, THR on store
	LSROffset  = 5 // line status register
)

// LineStatus is the content of the line status register.
type LineStatus uint8

const (
	DataReady LineStatus = 1 << 0 // receive holding register holds a byte
	TxEmpty   LineStatus = 1 << 5 // transmit holding register can take a byte
)

// Registers provides access to the data and line status register. Every call
// must result in exactly one access to the device, calls must not be merged
// or reordered.
type Registers interface {
	LoadData() byte
	StoreData(b byte)
	LoadStatus() LineStatus
}
