package uart

// Port is the handle to a single UART. It is shared by the [Receiver] and the
// [Transmitter] of that UART and is not safe for concurrent use.
type Port struct {
	regs Registers
}

// NewPort returns a Port accessing the UART through regs.
func NewPort(regs Registers) *Port {
	return &Port{regs: regs}
}

// Ready reports whether a received byte is waiting in the data register. The
// status register is read on every call.
func (p *Port) Ready() bool {
	return p.regs.LoadStatus()&DataReady != 0
}

// ReadData reads the data register, which consumes the received byte. Only
// call after Ready returned true.
func (p *Port) ReadData() byte {
	return p.regs.LoadData()
}

// WriteData writes b to the data register. The transmitter is assumed to
// always accept the write.
func (p *Port) WriteData(b byte) {
	p.regs.StoreData(b)
}

// WriteSync waits until the transmit holding register is empty and writes b
// to it. It doesn't allocate and is used by the runtime's system writer.
//
//go:nosplit
func (p *Port) WriteSync(b byte) {
	for p.regs.LoadStatus()&TxEmpty == 0 {
		// wait
	}
	p.regs.StoreData(b)
}
