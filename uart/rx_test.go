package uart_test

import (
	"io"
	"strings"
	"testing"

	"github.com/clktmr/rvuart/uart"
	"github.com/clktmr/rvuart/uart/sim"
)

func TestReadLine(t *testing.T) {
	long := "abcdefghijklmnopqrstuvwxyz"
	tests := []struct {
		in       string
		expected string
		term     bool
		pending  int
	}{
		{"\n", "", true, 0},
		{"hi\n", "hi", true, 0},
		{"hi\nthere\n", "hi", true, 6},
		{long[:uart.LineSize-1] + "\n", long[:uart.LineSize-1], true, 0},
		{long[:uart.LineSize] + "\n", long[:uart.LineSize], false, 1},
		{long + "\n", long[:uart.LineSize], false, len(long) - uart.LineSize + 1},
		{"nul\x00ok\n", "nul\x00ok", true, 0},
	}

	for _, tc := range tests {
		w := &sim.Wire{}
		w.FeedString(tc.in)
		rx := uart.NewReceiver(uart.NewPort(w))

		if got := string(rx.ReadLine()); got != tc.expected {
			t.Errorf("%q: got %q, expected %q", tc.in, got, tc.expected)
		}
		if rx.Terminated() != tc.term {
			t.Errorf("%q: terminated %v, expected %v", tc.in, rx.Terminated(), tc.term)
		}
		if w.Pending() != tc.pending {
			t.Errorf("%q: %d bytes left on the wire, expected %d", tc.in, w.Pending(), tc.pending)
		}
	}
}

func TestReadLineWaitsForData(t *testing.T) {
	w := &sim.Wire{}
	w.Feed(3, 'h', 'i', '\n')
	rx := uart.NewReceiver(uart.NewPort(w))

	if got := string(rx.ReadLine()); got != "hi" {
		t.Errorf("got %q, expected \"hi\"", got)
	}
	if w.Polls != 6 {
		t.Errorf("status read %d times, expected 6", w.Polls)
	}
	if w.Loads != 3 {
		t.Errorf("data read %d times, expected 3", w.Loads)
	}
}

func TestReadLineReusesBuffer(t *testing.T) {
	w := &sim.Wire{}
	w.FeedString("first line\nsecond\n")
	rx := uart.NewReceiver(uart.NewPort(w))

	first := rx.ReadLine()
	if string(first) != "first line" {
		t.Fatalf("got %q", first)
	}
	second := rx.ReadLine()
	if string(second) != "second" {
		t.Fatalf("got %q", second)
	}
	if &first[0] != &second[0] {
		t.Error("line buffer was reallocated")
	}
	if string(first[:len(second)]) != "second" {
		t.Errorf("first line not overwritten: %q", first)
	}
}

func TestReadLinePolicy(t *testing.T) {
	tests := []struct {
		opts     []uart.Option
		in       string
		expected []string
	}{
		{nil, "a\nb\n", []string{"a", "b"}},
		{[]uart.Option{uart.WithPolicy(uart.StopInclusive)}, "a\nb\n", []string{"a\n", "b\n"}},
		{[]uart.Option{uart.WithTerminator(0)}, "a\nb\x00c\x00", []string{"a\nb", "c"}},
		{[]uart.Option{uart.WithTerminator('\r')}, "cr\r\r", []string{"cr", ""}},
		{
			[]uart.Option{uart.WithPolicy(uart.StopInclusive), uart.WithTerminator(0)},
			"x\x00", []string{"x\x00"},
		},
		{
			[]uart.Option{uart.WithPolicy(uart.StopInclusive)},
			strings.Repeat("z", uart.LineSize-1) + "\n",
			[]string{strings.Repeat("z", uart.LineSize-1) + "\n"},
		},
		{
			[]uart.Option{uart.WithPolicy(uart.StopInclusive)},
			strings.Repeat("z", uart.LineSize) + "\n",
			[]string{strings.Repeat("z", uart.LineSize), "\n"},
		},
	}

	for i, tc := range tests {
		w := &sim.Wire{}
		w.FeedString(tc.in)
		rx := uart.NewReceiver(uart.NewPort(w), tc.opts...)
		for _, expected := range tc.expected {
			if got := rx.ReadString(); got != expected {
				t.Errorf("%d: got %q, expected %q", i, got, expected)
			}
		}
	}
}

func TestReader(t *testing.T) {
	in := "short\n" + strings.Repeat("0123456789", 3) + "\n\nend\n"

	for _, policy := range []uart.StopPolicy{uart.StopStrict, uart.StopInclusive} {
		w := &sim.Wire{}
		w.FeedString(in)
		rx := uart.NewReceiver(uart.NewPort(w), uart.WithPolicy(policy))

		got, err := io.ReadAll(io.LimitReader(rx.Reader(), int64(len(in))))
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != in {
			t.Errorf("policy %d: got %q, expected %q", policy, got, in)
		}
	}
}

func TestReaderSmallReads(t *testing.T) {
	w := &sim.Wire{}
	w.FeedString("abc\n")
	r := uart.NewReceiver(uart.NewPort(w)).Reader()

	var got []byte
	p := make([]byte, 1)
	for len(got) < 4 {
		n, err := r.Read(p)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, p[:n]...)
	}
	if string(got) != "abc\n" {
		t.Errorf("got %q", got)
	}
	if w.Pending() != 0 {
		t.Errorf("%d bytes left on the wire", w.Pending())
	}
}
