package util

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/benchtab/benchtab/internal/config"
	"github.com/kballard/go-shellquote"
)

// ProgressMsg writes a progress line to stderr. Stderr rather than
// stdout, because stdout carries the report.
func ProgressMsg(msg string) {
	if !config.Quiet {
		fmt.Fprintln(os.Stderr, "-->", msg)
	}
}

func quoteCmd(cmd []string) string {
	return shellquote.Join(cmd...)
}

// RunSilent runs the given command with its stdout and stderr
// discarded, blocking until it exits. The command being run is echoed
// as a progress message.
func RunSilent(cmd []string) error {
	ProgressMsg(quoteCmd(cmd))
	command := exec.Command(cmd[0], cmd[1:]...)
	return command.Run()
}
