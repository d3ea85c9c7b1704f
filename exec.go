package main

import (
	"fmt"
	"os"
	"os/exec"
)

// spawn hands the submitted command to the user's shell and returns without
// waiting; the launcher exits right after. Invoked at most once per run.
func spawn(command string) error {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell, "-c", command)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn %q: %w", command, err)
	}
	return cmd.Process.Release()
}
