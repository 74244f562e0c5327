package sim_test

import (
	"testing"

	"github.com/clktmr/rvuart/uart"
	"github.com/clktmr/rvuart/uart/sim"
)

func TestWireStall(t *testing.T) {
	w := &sim.Wire{}
	w.Feed(1, 'a', 'b')
	w.Feed(2, 'c')

	var got []byte
	polls := []bool{}
	for w.Pending() > 0 {
		ready := w.LoadStatus()&uart.DataReady != 0
		polls = append(polls, ready)
		if ready {
			got = append(got, w.LoadData())
		}
	}

	expected := []bool{false, true, true, false, false, true}
	if len(polls) != len(expected) {
		t.Fatalf("polls %v, expected %v", polls, expected)
	}
	for i := range polls {
		if polls[i] != expected[i] {
			t.Fatalf("polls %v, expected %v", polls, expected)
		}
	}
	if string(got) != "abc" {
		t.Errorf("got %q", got)
	}
	if w.LoadData() != 0 {
		t.Error("empty wire returned data")
	}
	if w.LoadStatus()&uart.TxEmpty == 0 {
		t.Error("TxEmpty not set")
	}

	w.TxBusy = 1
	if w.LoadStatus()&uart.TxEmpty != 0 {
		t.Error("TxEmpty set while busy")
	}
	if w.LoadStatus()&uart.TxEmpty == 0 {
		t.Error("TxEmpty not set after busy")
	}
}
