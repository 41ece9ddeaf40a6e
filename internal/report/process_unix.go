//go:build unix

package report

import (
	"os/exec"
	"syscall"
)

// killProcessGroup starts cmd as the leader of a new process group so that
// cancellation reaches the generator's children too.
func killProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
