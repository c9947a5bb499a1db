package system

import (
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// CommandRunner defines an interface for running system commands.
type CommandRunner interface {
	Run(name string, args ...string) (string, error)
	RunWithInput(input string, name string, args ...string) (string, error)
}

// ExecCommandRunner executes commands on the local system. When tracing is
// enabled every invocation is logged before it runs, which is the main
// post-mortem aid once destructive operations have started.
type ExecCommandRunner struct {
	log *logrus.Logger
}

// NewCommandRunner returns a default command runner implementation.
func NewCommandRunner() *ExecCommandRunner {
	return &ExecCommandRunner{log: logrus.StandardLogger()}
}

// EnableTracing lowers the log level so every executed command is printed.
func (r *ExecCommandRunner) EnableTracing() {
	r.log.SetLevel(logrus.DebugLevel)
}

// Run executes a command and returns its combined output.
func (r *ExecCommandRunner) Run(name string, args ...string) (string, error) {
	return r.RunWithInput("", name, args...)
}

// RunWithInput executes a command with the given string on stdin and returns
// its combined output.
func (r *ExecCommandRunner) RunWithInput(input string, name string, args ...string) (string, error) {
	r.log.WithFields(logrus.Fields{
		"cmd":   name,
		"args":  strings.Join(args, " "),
		"stdin": input != "",
	}).Debug("exec")

	cmd := exec.Command(name, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}
	output, err := cmd.CombinedOutput()
	return string(output), err
}
