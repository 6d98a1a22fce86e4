package table

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/benchtab/benchtab/internal/util"
	"golang.org/x/term"
)

// printOrPage either prints text to stdout or invokes the 'less'
// utility to display it. 'less' is invoked if stdout is connected to
// a tty, the provided width is too wide for the tty, and 'less' is
// actually installed.
func printOrPage(text string, width int) {
	termWidth, _, err := term.GetSize(1)
	if err != nil || width < termWidth {
		fmt.Print(text)
		return
	}

	less, err := exec.LookPath("less")
	if err != nil {
		fmt.Print(text)
		return
	}

	util.ProgressMsg("less -S")

	cmd := exec.Cmd{
		Path:   less,
		Args:   []string{"less", "-S"},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		util.Die("connecting pipe to pager stdin: %s", err)
	}

	if _, err := io.WriteString(stdin, text); err != nil {
		util.Die("writing to pager: %s", err)
	}
	if err := stdin.Close(); err != nil {
		util.Die("closing pipe to pager stdin: %s", err)
	}

	if err := cmd.Run(); err != nil {
		util.Die("running pager: %s", err)
	}
}

// Print writes the table to stdout, aligning columns by inserting
// whitespace. If the table is too wide for the current terminal, and
// the 'less' utility is installed, Print invokes it with the -S
// option to truncate long lines and allow horizontal scrolling.
func (t TSV) Print() {
	lines := []string{}
	widths := make([]int, len(t.Header))
	for j := range t.Header {
		widths[j] = len([]rune(t.Header[j]))
	}
	for i := range t.Rows {
		for j := range t.Rows[i] {
			if len([]rune(t.Rows[i][j])) > widths[j] {
				widths[j] = len([]rune(t.Rows[i][j]))
			}
		}
	}
	fields := make([]string, len(t.Header))
	for j := range t.Header {
		padding := widths[j] - len([]rune(t.Header[j]))
		fields[j] = t.Header[j] + strings.Repeat(" ", padding)
	}
	lines = append(lines, strings.Join(fields, "   "))
	for j := range t.Header {
		fields[j] = strings.Repeat("-", widths[j])
	}
	lines = append(lines, strings.Join(fields, "   "))
	for i := range t.Rows {
		for j := range t.Rows[i] {
			padding := widths[j] - len([]rune(t.Rows[i][j]))
			fields[j] = t.Rows[i][j] + strings.Repeat(" ", padding)
		}
		lines = append(lines, strings.Join(fields, "   "))
	}
	totalWidth := len([]rune(lines[1]))
	printOrPage(strings.Join(lines, "\n")+"\n", totalWidth)
}
