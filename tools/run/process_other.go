//go:build !unix

package run

import (
	"errors"
	"os"
	"os/exec"
)

func processGroupEnable(cmd *exec.Cmd) {}

// processGroupKill interrupts cmd only, there are no process groups. A
// process that already exited is not an error.
func processGroupKill(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	err := cmd.Process.Signal(os.Interrupt)
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}
