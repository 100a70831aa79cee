package cmd

import (
	"bytes"

	"github.com/spf13/cobra"
)

// createTestRootCmd creates a fresh root command so flag and silence state never leak between tests.
func createTestRootCmd() *cobra.Command {
	return newRootCmd()
}

// captureStdout returns command stdout output as string.
func captureStdout(cmd *cobra.Command) *bytes.Buffer {
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	return &stdout
}

// captureStderr returns command stderr output as string.
func captureStderr(cmd *cobra.Command) *bytes.Buffer {
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	return &stderr
}
