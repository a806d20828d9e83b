// Package cmd contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments and
// capturing command output.
package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// setupTestEnvironment moves the test into a fresh temp directory and
// restores the original working directory afterwards.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "envseal-cmd-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	tmpDir, err = filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get original working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		os.RemoveAll(tmpDir)
		ResetGlobalState()
	})

	return tmpDir
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stdoutReader)
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stderrReader)
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// runCommand executes the root command with the given arguments, returning
// the combined console output and the command error.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()
	rootCmd.SetArgs(args)
	return captureOutput(rootCmd.Execute)
}
