package output

import (
	"fmt"
	"io"
	"sync"
)

// Reporter receives user-facing status lines.
type Reporter interface {
	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Console writes colored status lines to a writer.
type Console struct {
	w     io.Writer
	plain bool
}

// NewConsole returns a Console writing to w. When plain is true lines are
// written without styling.
func NewConsole(w io.Writer, plain bool) *Console {
	return &Console{w: w, plain: plain}
}

func (c *Console) Info(format string, args ...any)    { c.line(LevelInfo, format, args...) }
func (c *Console) Success(format string, args ...any) { c.line(LevelSuccess, format, args...) }
func (c *Console) Warn(format string, args ...any)    { c.line(LevelWarn, format, args...) }
func (c *Console) Error(format string, args ...any)   { c.line(LevelError, format, args...) }

func (c *Console) line(l Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !c.plain {
		msg = LevelStyle(l).Render(msg)
	}
	fmt.Fprintln(c.w, msg)
}

// Line is a status line captured by a Recorder.
type Line struct {
	Level   Level
	Message string
}

// Recorder keeps status lines in memory. Tests use it in place of a Console.
type Recorder struct {
	mu    sync.Mutex
	Lines []Line
}

func (r *Recorder) Info(format string, args ...any)    { r.add(LevelInfo, format, args...) }
func (r *Recorder) Success(format string, args ...any) { r.add(LevelSuccess, format, args...) }
func (r *Recorder) Warn(format string, args ...any)    { r.add(LevelWarn, format, args...) }
func (r *Recorder) Error(format string, args ...any)   { r.add(LevelError, format, args...) }

func (r *Recorder) add(l Level, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lines = append(r.Lines, Line{Level: l, Message: fmt.Sprintf(format, args...)})
}

// Messages returns the recorded messages at the given level.
func (r *Recorder) Messages(l Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, line := range r.Lines {
		if line.Level == l {
			out = append(out, line.Message)
		}
	}
	return out
}
