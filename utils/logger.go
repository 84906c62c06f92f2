package utils

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// ANSI colour codes for terminal output
const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	cyan   = "\033[36m"
)

const timestampLayout = "2006-01-02 15:04:05"

// Logger prints timestamped, levelled lines tagged with a component name,
// e.g. "[2025-06-01 12:00:00] [INFO]  [HomePage] Navigating to ...".
type Logger struct {
	name string

	mu      sync.Mutex
	out     io.Writer
	now     func() time.Time
	noColor bool
}

func NewLogger(name string) *Logger {
	return &Logger{name: name, out: os.Stdout, now: time.Now}
}

// WithOutput redirects the logger, mostly for tests.
func (l *Logger) WithOutput(w io.Writer) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	return l
}

func (l *Logger) WithClock(now func() time.Time) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
	return l
}

func (l *Logger) WithoutColor() *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.noColor = true
	return l
}

func (l *Logger) Name() string {
	return l.name
}

func (l *Logger) log(colour, level, format string, a ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	prefix := fmt.Sprintf("[%s] %-7s", l.now().Format(timestampLayout), "["+level+"]")
	if l.name != "" {
		prefix += " [" + l.name + "]"
	}
	line := prefix + " " + fmt.Sprintf(format, a...)

	if noColor || l.noColor {
		fmt.Fprintln(l.out, line)
		return
	}
	fmt.Fprintf(l.out, "%s%s%s\n", colour, line, reset)
}

func (l *Logger) Info(format string, a ...interface{}) {
	l.log(blue, "INFO", format, a...)
}

func (l *Logger) Success(format string, a ...interface{}) {
	l.log(green, "OK", format, a...)
}

func (l *Logger) Warn(format string, a ...interface{}) {
	l.log(yellow, "WARN", format, a...)
}

func (l *Logger) Error(format string, a ...interface{}) {
	l.log(red, "ERROR", format, a...)
}

func (l *Logger) Section(title string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := fmt.Sprintf("[%s] ══════════ %s ══════════", l.now().Format(timestampLayout), title)
	if noColor || l.noColor {
		fmt.Fprintf(l.out, "\n%s\n\n", line)
		return
	}
	fmt.Fprintf(l.out, "\n%s%s%s\n\n", cyan, line, reset)
}

var (
	noColor bool
	std     = NewLogger("")
)

// DisableColor turns off ANSI colours for every logger, e.g. when output
// goes to a CI log file.
func DisableColor() {
	noColor = true
}

func Info(format string, a ...interface{}) {
	std.Info(format, a...)
}

func Success(format string, a ...interface{}) {
	std.Success(format, a...)
}

func Warn(format string, a ...interface{}) {
	std.Warn(format, a...)
}

func Error(format string, a ...interface{}) {
	std.Error(format, a...)
}

func Section(title string) {
	std.Section(title)
}
