//go:build !windows

package cookbook

import "syscall"

// killProcessGroup kills a process and all its children by sending SIGKILL
// to the process group (negative PID). Headless Chrome forks helpers that
// can outlive the main process on an unclean shutdown.
func killProcessGroup(pid int) {
	// Best-effort cleanup; error ignored as launcher.Kill() provides fallback
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
