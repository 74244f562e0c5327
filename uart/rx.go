package uart

import (
	"io"

	"github.com/clktmr/rvuart/debug"
)

// LineSize is the capacity of the receive line buffer. Longer lines are
// truncated.
const LineSize = 20

// StopPolicy decides what happens with the terminator ending a line.
type StopPolicy uint8

const (
	StopStrict    StopPolicy = iota // terminator is dropped
	StopInclusive                   // terminator is kept as last byte
)

// Option configures a [Receiver].
type Option func(*Receiver)

// WithPolicy sets the stop policy, default is [StopStrict].
func WithPolicy(p StopPolicy) Option {
	return func(r *Receiver) { r.policy = p }
}

// WithTerminator sets the byte ending a line, default is '\n'.
func WithTerminator(b byte) Option {
	return func(r *Receiver) { r.term = b }
}

// Receiver reads lines from a [Port] by polling its status register.
//
// All lines are stored in the same buffer owned by the Receiver, see
// [Receiver.ReadLine].
type Receiver struct {
	port   *Port
	policy StopPolicy
	term   byte

	buf        [LineSize]byte
	n          int
	terminated bool
}

// NewReceiver returns a Receiver reading from p, by default lines end with
// '\n' which is dropped.
func NewReceiver(p *Port, opts ...Option) *Receiver {
	r := &Receiver{port: p, term: '\n'}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadLine blocks until a terminator was received or the line buffer is full.
// The returned slice points into the receiver's buffer and is overwritten by
// the next call to ReadLine.
//
// If the buffer fills up before the terminator arrives, the rest of the line
// stays unread and is returned by the next call.
func (r *Receiver) ReadLine() []byte {
	r.n, r.terminated = 0, false
	for r.n < len(r.buf) {
		for !r.port.Ready() {
			// wait
		}
		b := r.port.ReadData()
		if b == r.term {
			r.terminated = true
			if r.policy == StopStrict {
				break
			}
		}
		debug.Assert(r.n < len(r.buf), "uart: line buffer overrun")
		r.buf[r.n] = b
		r.n++
		if r.terminated {
			break
		}
	}
	return r.buf[:r.n]
}

// ReadString is like ReadLine, but returns a copy of the line.
func (r *Receiver) ReadString() string {
	return string(r.ReadLine())
}

// Terminated reports whether the last line ended with a terminator, as
// opposed to being truncated.
func (r *Receiver) Terminated() bool {
	return r.terminated
}

// Terminator returns the byte ending a line.
func (r *Receiver) Terminator() byte {
	return r.term
}

// Reader returns an io.Reader delivering the received lines as a byte stream.
// Lines dropping their terminator under [StopStrict] get it appended again,
// truncated lines are continued by the next one.
func (r *Receiver) Reader() io.Reader {
	return &rxReader{r: r}
}

type rxReader struct {
	r       *Receiver
	line    [LineSize + 1]byte
	pending []byte
}

func (rr *rxReader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(rr.pending) == 0 {
		l := copy(rr.line[:], rr.r.ReadLine())
		if rr.r.terminated && rr.r.policy == StopStrict {
			rr.line[l] = rr.r.term
			l++
		}
		rr.pending = rr.line[:l]
	}
	n = copy(p, rr.pending)
	rr.pending = rr.pending[n:]
	return n, nil
}
