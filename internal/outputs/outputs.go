// Package outputs provides GitHub Actions logging utilities.
//
// Under a runner (GITHUB_ACTIONS=true) messages are printed as workflow
// commands. Elsewhere they are printed as coloured plain text.
package outputs

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Logger prints workflow commands to an io.Writer.
type Logger struct {
	out     io.Writer
	actions bool
	debug   bool
}

// New returns a Logger writing to out.
func New(out io.Writer, actions, debug bool) *Logger {
	return &Logger{out: out, actions: actions, debug: debug}
}

// FromEnv returns a Logger on stdout configured from GITHUB_ACTIONS and RUNNER_DEBUG.
func FromEnv() *Logger {
	return New(os.Stdout, os.Getenv("GITHUB_ACTIONS") == "true", os.Getenv("RUNNER_DEBUG") == "1")
}

// LogInfo prints an info message.
func (l *Logger) LogInfo(msg string) {
	fmt.Fprintln(l.out, msg)
}

// LogDebug prints a debug message when debug logging is enabled.
func (l *Logger) LogDebug(msg string) {
	if !l.debug {
		return
	}
	l.command("debug", msg, color.HiBlackString)
}

// LogNotice prints a notice message.
func (l *Logger) LogNotice(msg string) {
	l.command("notice", msg, color.HiCyanString)
}

// LogWarning prints a warning message.
func (l *Logger) LogWarning(msg string) {
	l.command("warning", msg, color.HiYellowString)
}

// LogError prints an error message.
func (l *Logger) LogError(msg string) {
	l.command("error", msg, color.HiRedString)
}

// LogGroup starts a collapsible group.
func (l *Logger) LogGroup(title string) {
	if l.actions {
		fmt.Fprintf(l.out, "::group::%s\n", EscapeData(title))
		return
	}
	fmt.Fprintln(l.out, color.HiGreenString("%s", title))
}

// LogEndGroup ends a collapsible group.
func (l *Logger) LogEndGroup() {
	if l.actions {
		fmt.Fprintln(l.out, "::endgroup::")
	}
}

func (l *Logger) command(name, msg string, paint func(string, ...any) string) {
	if l.actions {
		fmt.Fprintf(l.out, "::%s::%s\n", name, EscapeData(msg))
		return
	}
	fmt.Fprintln(l.out, paint("%s: %s", name, msg))
}

// EscapeData escapes a workflow command message so it stays on one line.
func EscapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	return strings.ReplaceAll(s, "\n", "%0A")
}
