package uart

import "io"

// Transmitter writes strings to a [Port] one byte at a time.
type Transmitter struct {
	port *Port
}

// NewTransmitter returns a Transmitter writing to p.
func NewTransmitter(p *Port) *Transmitter {
	return &Transmitter{port: p}
}

// Write transmits s up to, but not including, the first NUL byte.
func (t *Transmitter) Write(s string) {
	for i := 0; i < len(s) && s[i] != 0; i++ {
		t.port.WriteData(s[i])
	}
}

// WriteLine transmits s like Write and appends a single newline.
func (t *Transmitter) WriteLine(s string) {
	t.Write(s)
	t.port.WriteData('\n')
}

// Writer returns an io.Writer transmitting everything written to it, NUL
// bytes included. Write never fails.
func (t *Transmitter) Writer() io.Writer {
	return txWriter{t.port}
}

type txWriter struct {
	port *Port
}

func (w txWriter) Write(p []byte) (n int, err error) {
	for _, b := range p {
		w.port.WriteData(b)
	}
	return len(p), nil
}
