package sim

import (
	"github.com/clktmr/rvuart/uart"
)

// Wire is a scripted UART. Received bytes are queued with [Wire.Feed],
// transmitted bytes are recorded.
type Wire struct {
	rx    []byte
	stall []int // not-ready polls left before rx[i] becomes ready
	tx    []byte

	Polls  int // loads of the status register
	Loads  int // loads of the data register
	TxBusy int // status loads left reporting TxEmpty clear
}

// Feed queues p for reception. The first byte of p becomes ready only after
// stall polls of the status register, the others are ready immediately after
// their predecessor was read.
func (w *Wire) Feed(stall int, p ...byte) {
	for i, b := range p {
		w.rx = append(w.rx, b)
		if i == 0 {
			w.stall = append(w.stall, stall)
		} else {
			w.stall = append(w.stall, 0)
		}
	}
}

// FeedString is like Feed without stalling.
func (w *Wire) FeedString(s string) {
	w.Feed(0, []byte(s)...)
}

// Pending returns the number of queued bytes not yet read.
func (w *Wire) Pending() int { return len(w.rx) }

// Transmitted returns all bytes stored to the data register so far.
func (w *Wire) Transmitted() []byte { return w.tx }

// Reset discards the recorded transmission.
func (w *Wire) Reset() { w.tx = w.tx[:0] }

func (w *Wire) LoadStatus() uart.LineStatus {
	w.Polls++
	status := uart.TxEmpty
	if w.TxBusy > 0 {
		w.TxBusy--
		status = 0
	}
	if len(w.rx) == 0 {
		return status
	}
	if w.stall[0] > 0 {
		w.stall[0]--
		return status
	}
	return status | uart.DataReady
}

// LoadData returns the next queued byte or 0 if nothing is queued, like an
// empty receive holding register.
func (w *Wire) LoadData() byte {
	w.Loads++
	if len(w.rx) == 0 {
		return 0
	}
	b := w.rx[0]
	w.rx, w.stall = w.rx[1:], w.stall[1:]
	return b
}

func (w *Wire) StoreData(b byte) {
	w.tx = append(w.tx, b)
}
