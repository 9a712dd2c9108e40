// Package command runs external programs for adapters that drive CLIs.
package command

import (
	"fmt"
	"os/exec"
	"strings"

	"golang-netreconcile/internal/pkg/logging"
	"golang-netreconcile/internal/port"
)

// ExecutorAdapter implements the CommandExecutor port using os/exec.
type ExecutorAdapter struct{}

var _ port.CommandExecutor = (*ExecutorAdapter)(nil)

// NewExecutorAdapter creates a new command executor.
func NewExecutorAdapter() *ExecutorAdapter {
	return &ExecutorAdapter{}
}

// RunCommand runs a command and returns its combined output with trailing
// whitespace trimmed.
func (e *ExecutorAdapter) RunCommand(name string, args ...string) (string, error) {
	logging.WithComponent("command").Debugf("exec %s %s", name, strings.Join(args, " "))
	output, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("command %s %v failed: %w, output: %s", name, args, err, strings.TrimSpace(string(output)))
	}
	return strings.TrimRight(string(output), "\n "), nil
}

// LookPath resolves name on PATH.
func (e *ExecutorAdapter) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
