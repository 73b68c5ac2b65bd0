package deploy

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// Remote gives access to the target host.
type Remote interface {
	// Run executes the command through the remote shell and returns its
	// standard output. A command exiting with a non-zero status yields a
	// *CommandError.
	Run(ctx context.Context, cmd string) (string, error)
	// Fs exposes the remote host's file system.
	Fs() afero.Fs
}

type CommandError struct {
	Command    string
	ExitStatus int
	Stderr     string
}

func (e *CommandError) Error() string {
	var sb strings.Builder

	sb.WriteString("command '")
	sb.WriteString(e.Command)
	sb.WriteString("' exited with status ")
	sb.WriteString(strconv.Itoa(e.ExitStatus))

	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		sb.WriteString(": ")
		sb.WriteString(stderr)
	}

	return sb.String()
}

func NewCommandError(cmd string, exitStatus int, stderr string) *CommandError {
	return &CommandError{
		Command:    cmd,
		ExitStatus: exitStatus,
		Stderr:     stderr,
	}
}

var _ error = &CommandError{}
