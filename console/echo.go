// Package console implements the line echo program run on the UART.
package console

import (
	"github.com/clktmr/rvuart/uart"
)

// Echo reads a single line from rx and writes it back to tx, followed by
// suffix and a newline. It returns the line, which is valid until the next
// read from rx.
func Echo(rx *uart.Receiver, tx *uart.Transmitter, suffix string) []byte {
	line := rx.ReadLine()
	tx.Write(string(line))
	tx.WriteLine(suffix)
	return line
}

// Run echoes a single line on port with the default receiver settings.
func Run(port *uart.Port, suffix string) {
	Echo(uart.NewReceiver(port), uart.NewTransmitter(port), suffix)
}
