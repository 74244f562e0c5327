// Package sim provides UART models implementing [uart.Registers] for running
// the driver on the host.
//
// [Wire] replays scripted input and is meant for tests. [Device] behaves like
// a 16550 attached to an io.Reader and io.Writer and is used by the uartsim
// tool. [Bus] maps a Device at its physical address.
package sim
