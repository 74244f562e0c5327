//go:build noos

// Package testing provides a TestMain for tests running on the target.
//
// The test binary is run in an emulator with its serial console connected to
// the host, see the run command of the rvuart tool.
package testing

import (
	"embedded/rtos"
	"os"
	"syscall"
	"testing"

	"github.com/clktmr/rvuart/machine"
	"github.com/clktmr/rvuart/uart"

	"github.com/embeddedgo/fs/termfs"
)

// TestMain should be used as TestMain for tests running on the target. It
// redirects the standard files to the UART. Input lines end with a carriage
// return, as sent by serial terminals.
func TestMain(m *testing.M) {
	port := uart.MMIO()
	tx := uart.NewTransmitter(port)
	rx := uart.NewReceiver(port, uart.WithTerminator('\r'))

	rtos.SetSystemWriter(machine.DefaultWrite)

	fs := termfs.NewLight("termfs", rx.Reader(), tx.Writer())
	rtos.Mount(fs, "/dev/console")

	var err error
	os.Stdout, err = os.OpenFile("/dev/console", syscall.O_WRONLY, 0)
	if err != nil {
		panic(err)
	}
	os.Stderr = os.Stdout
	os.Stdin, err = os.OpenFile("/dev/console", syscall.O_RDONLY, 0)
	if err != nil {
		panic(err)
	}

	// TODO find a way to pass these from the 'go test' command
	os.Args = append(os.Args, "-test.v")

	os.Exit(m.Run())
}
