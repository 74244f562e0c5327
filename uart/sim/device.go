package sim

import (
	"io"
	"sync"

	"github.com/clktmr/rvuart/uart"
)

// Device models the registers of a 16550 UART. Bytes read from the input
// reader appear in the receive holding register one at a time: the next byte
// is only latched after the previous one was loaded by the driver. Bytes
// stored to the transmit holding register are written to the output.
//
// Device is safe for concurrent use.
type Device struct {
	mu   sync.Mutex
	cond *sync.Cond
	regs [uart.Size]byte
	out  io.Writer
	err  error

	eof     bool
	closed  bool
	drained chan struct{}
}

// NewDevice returns a Device receiving from in and transmitting to out. A
// goroutine reads from in until it returns an error or the device is closed.
func NewDevice(in io.Reader, out io.Writer) *Device {
	d := &Device{
		out:     out,
		drained: make(chan struct{}),
	}
	d.cond = sync.NewCond(&d.mu)
	d.regs[uart.LSROffset] = byte(uart.TxEmpty)
	go d.receive(in)
	return d
}

func (d *Device) receive(in io.Reader) {
	var b [1]byte
	for {
		n, err := in.Read(b[:])
		d.mu.Lock()
		if n > 0 {
			for d.regs[uart.LSROffset]&byte(uart.DataReady) != 0 && !d.closed {
				d.cond.Wait()
			}
			if d.closed {
				d.mu.Unlock()
				return
			}
			d.regs[uart.DataOffset] = b[0]
			d.regs[uart.LSROffset] |= byte(uart.DataReady)
		}
		if err != nil {
			d.eof = true
			d.checkDrained()
			d.mu.Unlock()
			return
		}
		d.mu.Unlock()
	}
}

// checkDrained must be called with d.mu held.
func (d *Device) checkDrained() {
	if !d.eof || d.regs[uart.LSROffset]&byte(uart.DataReady) != 0 {
		return
	}
	select {
	case <-d.drained:
	default:
		close(d.drained)
	}
}

// Drained returns a channel that's closed after the input reached EOF and
// the last received byte was loaded.
func (d *Device) Drained() <-chan struct{} {
	return d.drained
}

// Load reads the register at offset. Loading the data register clears
// DataReady and allows the next byte to be received. The offset wraps at
// [uart.Size].
func (d *Device) Load(offset uint32) byte {
	d.mu.Lock()
	defer d.mu.Unlock()

	offset %= uart.Size
	v := d.regs[offset]
	if offset == uart.DataOffset && d.regs[uart.LSROffset]&byte(uart.DataReady) != 0 {
		d.regs[uart.LSROffset] &^= byte(uart.DataReady)
		d.cond.Broadcast()
		d.checkDrained()
	}
	return v
}

// Store writes the register at offset. Stores to the data register are
// transmitted, stores to the line status register are ignored. The offset
// wraps at [uart.Size].
func (d *Device) Store(offset uint32, v byte) {
	d.mu.Lock()
	defer d.mu.Unlock()

	offset %= uart.Size
	switch offset {
	case uart.DataOffset:
		if d.closed || d.err != nil {
			return
		}
		_, d.err = d.out.Write([]byte{v})
	case uart.LSROffset:
	default:
		d.regs[offset] = v
	}
}

// Err returns the first error returned by the output writer. Transmission
// stops after an error.
func (d *Device) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// Close stops reception and transmission. A goroutine blocked reading the
// input isn't interrupted, but its byte is dropped.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.cond.Broadcast()
	return nil
}

// Latch puts b into the receive holding register and sets DataReady, even
// after the input reached EOF or the device was closed. A byte still waiting
// to be loaded is overwritten. Used to release a driver polling a line that
// went silent.
func (d *Device) Latch(b byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.regs[uart.DataOffset] = b
	d.regs[uart.LSROffset] |= byte(uart.DataReady)
}

func (d *Device) LoadData() byte              { return d.Load(uart.DataOffset) }
func (d *Device) StoreData(b byte)            { d.Store(uart.DataOffset, b) }
func (d *Device) LoadStatus() uart.LineStatus { return uart.LineStatus(d.Load(uart.LSROffset)) }
