package sim

import "github.com/clktmr/rvuart/uart"

// Address window of the UART on the bus.
const (
	base = uint32(uart.BaseAddr)
	end  = base + uart.Size
)

// Bus maps a [Device] at [uart.BaseAddr]. Accesses outside the window fail.
type Bus struct {
	uart *Device
}

// NewBus returns a Bus with d mapped at its physical address.
func NewBus(d *Device) *Bus {
	return &Bus{uart: d}
}

// Read8 loads the register at addr. It fails outside the UART window.
func (b *Bus) Read8(addr uint32) (uint8, bool) {
	if addr < base || addr >= end {
		return 0, false
	}
	return b.uart.Load(addr - base), true
}

// Write8 stores v to the register at addr. It fails outside the UART window.
func (b *Bus) Write8(addr uint32, v uint8) bool {
	if addr < base || addr >= end {
		return false
	}
	b.uart.Store(addr-base, v)
	return true
}

// Registers returns the UART registers addressed by their physical address.
func (b *Bus) Registers() uart.Registers {
	return busRegisters{b}
}

type busRegisters struct {
	bus *Bus
}

func (r busRegisters) LoadData() byte {
	v, _ := r.bus.Read8(base + uart.DataOffset)
	return v
}

func (r busRegisters) StoreData(v byte) {
	r.bus.Write8(base+uart.DataOffset, v)
}

func (r busRegisters) LoadStatus() uart.LineStatus {
	v, _ := r.bus.Read8(base + uart.LSROffset)
	return uart.LineStatus(v)
}
