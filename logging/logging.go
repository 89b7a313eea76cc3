package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// DebugEnv names the log file when --debug is not given.
const DebugEnv = "MINI_TEXT_DEBUG"

// SetupLogging points the stdlib logger, which Bubble Tea shares, at
// filename. With no filename and no MINI_TEXT_DEBUG, logs are discarded.
func SetupLogging(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	if filename == "" {
		filename = os.Getenv(DebugEnv)
	}
	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := tea.LogToFile(filename, "mini-text")
	if err != nil {
		return nil, err
	}

	return func() {
		log.SetOutput(io.Discard)
		f.Close()
	}, nil
}

func Debug(msg string) { output("DEBUG", msg) }

func Debugf(format string, args ...any) { output("DEBUG", fmt.Sprintf(format, args...)) }

func Infof(format string, args ...any) { output("INFO", fmt.Sprintf(format, args...)) }

func Warnf(format string, args ...any) { output("WARN", fmt.Sprintf(format, args...)) }

func Errorf(format string, args ...any) { output("ERROR", fmt.Sprintf(format, args...)) }

// calldepth 3 so Lshortfile points at the caller of Debugf & co.
func output(level, msg string) {
	_ = log.Output(3, level+" "+msg)
}
