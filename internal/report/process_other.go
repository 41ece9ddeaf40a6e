//go:build !unix

package report

import "os/exec"

// killProcessGroup keeps the default Cancel; WaitDelay still bounds Wait.
func killProcessGroup(cmd *exec.Cmd) {}
