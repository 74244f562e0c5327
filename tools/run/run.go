// Package run executes a bare metal image in an emulator and reports the
// results of the tests it runs.
package run

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
)

const usageString = `Run an image in an emulator and scan its console for test results.

Usage: %s [flags] <command> <image>

The image is appended to the command, e.g.

	%s "qemu-system-riscv64 -machine virt -bios none -nographic -kernel" uart.test

Exits with 0 if the output contains PASS, or 1 on FAIL or a panic.

`

var (
	flags = flag.NewFlagSet("run", flag.ExitOnError)

	timeout = flags.Duration("timeout", 0, "Stop the emulator after this duration, 0 waits forever")
)

// Time to let the emulator print a stack trace after the result was seen.
const grace = 500 * time.Millisecond

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "run", "run")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 2 {
		flags.Usage()
		os.Exit(1)
	}

	os.Exit(runImage(flags.Arg(0), flags.Arg(1)))
}

// result reports whether line ends the test run and with which exit code.
func result(line string) (code int, ok bool) {
	switch {
	case strings.HasPrefix(line, "fatal error:"), strings.HasPrefix(line, "panic:"):
		return 1, true
	case line == "FAIL":
		return 1, true
	case line == "PASS":
		return 0, true
	}
	return 0, false
}

// scan logs every line read from r and returns the exit code of the first
// line ending the test run. The stop function is called once at that point,
// scanning continues until r is exhausted. Without such a line the code is 1.
func scan(r io.Reader, stop func()) int {
	scanner := bufio.NewScanner(r)
	code, exiting := 1, false
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		log.Println(line)
		if exiting {
			continue
		}
		if c, ok := result(line); ok {
			code, exiting = c, true
			stop()
		}
	}
	return code
}

func runImage(cmdline, image string) int {
	args, err := shellquote.Split(cmdline)
	if err != nil {
		log.Fatalln("run:", err)
	}
	if len(args) == 0 {
		log.Fatal("run: empty command")
	}
	args = append(args, image)
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr
	processGroupEnable(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		log.Fatalln("open stdout:", err)
	}

	sigintr := make(chan os.Signal, 1)
	signal.Notify(sigintr, os.Interrupt)

	err = cmd.Start()
	if err != nil {
		log.Fatalln("start command:", err)
	}

	kill := func() {
		stdout.Close()
		if err := processGroupKill(cmd); err != nil {
			log.Println(err)
		}
	}

	go func() {
		<-sigintr
		kill()
	}()

	if *timeout > 0 {
		timer := time.AfterFunc(*timeout, func() {
			log.Println("run: timeout after", *timeout)
			kill()
		})
		defer timer.Stop()
	}

	code := scan(stdout, func() {
		go func() {
			// give panic() time to print the stacktrace
			time.Sleep(grace)
			kill()
		}()
	})
	cmd.Wait()
	return code
}
