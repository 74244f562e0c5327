//go:build noos

package machine

import (
	_ "unsafe" // for go:linkname

	"github.com/clktmr/rvuart/uart"
)

// Writes p to the UART, waiting for the transmitter before each byte. Used by
// print() and panic(), so it must work before the console is set up.
//
//go:nowritebarrierrec
//go:nosplit
//go:linkname DefaultWrite runtime.defaultWrite
func DefaultWrite(fd int, p []byte) int {
	port := uart.MMIO()
	for i := 0; i < len(p); i++ {
		port.WriteSync(p[i])
	}
	return len(p)
}

type defaultWriter int

// DefaultWriter is an io.Writer using DefaultWrite.
const DefaultWriter defaultWriter = 0

func (v defaultWriter) Write(p []byte) (int, error) {
	return DefaultWrite(int(v), p), nil
}
