//go:build unix

package run

import (
	"errors"
	"os/exec"
	"syscall"
)

// Emulators like qemu may fork helpers, so the command is started as leader
// of a new process group and the whole group is interrupted.
func processGroupEnable(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

// processGroupKill interrupts the group led by cmd. A group that already
// exited is not an error.
func processGroupKill(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	err := syscall.Kill(-cmd.Process.Pid, syscall.SIGINT)
	if errors.Is(err, syscall.ESRCH) {
		return nil
	}
	return err
}
