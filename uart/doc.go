// Package uart is a polled driver for the 16550 compatible UART found at
// [BaseAddr] on the RISC-V virt machine.
//
// Only the receive holding register, the transmit holding register and the
// line status register are used. There are no interrupts, no FIFO
// configuration and no error handling: the device is assumed to be present and
// eventually ready. All blocking operations are busy waits without timeout.
//
// The hardware registers are available on bare metal builds through [MMIO].
// Any other implementation of [Registers], e.g. the models in the sim
// subpackage, can be wrapped with [NewPort].
package uart
