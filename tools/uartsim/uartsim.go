// Package uartsim runs the line echo program on the host, with the driver
// polling a simulated 16550.
package uartsim

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/aymanbagabas/go-pty"
	"github.com/kballard/go-shellquote"

	"github.com/clktmr/rvuart/console"
	"github.com/clktmr/rvuart/uart"
	"github.com/clktmr/rvuart/uart/sim"
)

const usageString = `Run the line echo program against a simulated UART.

Usage: %s [flags]

The UART receives from stdin and transmits to stdout, unless -pty is given.

`

var (
	flags = flag.NewFlagSet("uartsim", flag.ExitOnError)

	usePty  = flags.Bool("pty", false, "Connect the UART to a new pseudo terminal")
	attach  = flags.String("attach", "", "Run command on the pseudo terminal, implies -pty")
	suffix  = flags.String("suffix", "", "Append suffix to the echoed line")
	cr      = flags.Bool("cr", false, "Lines end with carriage return instead of newline")
	verbose = flags.Bool("v", false, "Log the received line")
)

// Time to wait for the echo after the input was drained.
const drainTimeout = 100 * time.Millisecond

var errInputClosed = errors.New("input closed before end of line")

type config struct {
	suffix string
	opts   []uart.Option
}

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "uartsim")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 0 {
		flags.Usage()
		os.Exit(1)
	}

	cfg := config{suffix: *suffix}
	if *cr {
		cfg.opts = append(cfg.opts, uart.WithTerminator('\r'))
	}

	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout
	if *usePty || *attach != "" {
		p, err := pty.New()
		if err != nil {
			log.Fatalln("pty:", err)
		}
		defer p.Close()
		log.Println("uart connected to", p.Name())
		in, out = p, p

		if *attach != "" {
			cmd, err := attachCommand(p, *attach)
			if err != nil {
				log.Fatalln("attach:", err)
			}
			defer cmd.Wait()
		}
	}

	line, err := run(in, out, cfg)
	if err != nil {
		log.Fatalln("uartsim:", err)
	}
	if *verbose {
		log.Printf("uartsim: received %q", line)
	}
}

func attachCommand(p pty.Pty, cmdline string) (*pty.Cmd, error) {
	args, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, errors.New("empty command")
	}
	cmd := p.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// run echoes one line from in to out through a simulated UART and returns a
// copy of the line. If the input ends before the line does, the device is
// closed and the terminator latched, so the echo returns without
// transmitting anything.
func run(in io.Reader, out io.Writer, cfg config) (string, error) {
	dev := sim.NewDevice(in, out)
	defer dev.Close()

	port := uart.NewPort(sim.NewBus(dev).Registers())
	rx := uart.NewReceiver(port, cfg.opts...)
	tx := uart.NewTransmitter(port)

	done := make(chan string, 1)
	go func() {
		done <- string(console.Echo(rx, tx, cfg.suffix))
	}()

	select {
	case line := <-done:
		return line, dev.Err()
	case <-dev.Drained():
	}

	// The last byte might have completed the line.
	select {
	case line := <-done:
		return line, dev.Err()
	case <-time.After(drainTimeout):
	}
	dev.Close()
	dev.Latch(rx.Terminator())
	<-done
	return "", errInputClosed
}
