package gui

import (
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const maxLogMessages = 500

// LogViewer shows log lines, newest first. It is an io.Writer so a zap
// core can write to it directly, and it can also capture stdout/stderr.
type LogViewer struct {
	widget.BaseWidget

	container  *fyne.Container
	logEntry   *widget.Entry
	scrollView *container.Scroll

	mu       sync.Mutex
	messages []string

	originalStdout *os.File
	originalStderr *os.File
	pipes          []*os.File     // write ends installed by StartCapture
	readers        sync.WaitGroup // one per pipe
}

// NewLogViewer creates a new log viewer widget
func NewLogViewer() *LogViewer {
	v := &LogViewer{}

	v.logEntry = widget.NewMultiLineEntry()
	v.logEntry.Disable()
	v.logEntry.Wrapping = fyne.TextWrapWord

	v.scrollView = container.NewScroll(v.logEntry)
	v.scrollView.SetMinSize(fyne.NewSize(0, 120))

	v.container = container.NewBorder(
		widget.NewLabel("Log messages (newest first):"),
		nil, nil, nil,
		v.scrollView,
	)

	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget
func (v *LogViewer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.container)
}

// Write implements io.Writer, one message per non-empty line
func (v *LogViewer) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if line = strings.TrimRight(line, "\r "); line != "" {
			v.AddMessage(line)
		}
	}
	return len(p), nil
}

// StartCapture mirrors stdout and stderr into the viewer
func (v *LogViewer) StartCapture() {
	v.originalStdout = os.Stdout
	v.originalStderr = os.Stderr

	if w, ok := v.redirect(v.originalStdout); ok {
		os.Stdout = w
	}
	if w, ok := v.redirect(v.originalStderr); ok {
		os.Stderr = w
	}
	log.SetOutput(os.Stderr)
}

// redirect returns the write end of a pipe whose data goes both to the
// viewer and to original. The reader exits once the write end is closed.
func (v *LogViewer) redirect(original *os.File) (*os.File, bool) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, false
	}
	v.pipes = append(v.pipes, w)

	v.readers.Add(1)
	go func() {
		defer v.readers.Done()
		defer r.Close()

		buf := make([]byte, 1024)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				original.Write(buf[:n])
				v.Write(buf[:n])
			}
			if err != nil {
				return
			}
		}
	}()

	return w, true
}

// StopCapture restores stdout and stderr, closes the pipes and waits until
// everything written to them has been copied
func (v *LogViewer) StopCapture() {
	if v.originalStdout != nil {
		os.Stdout = v.originalStdout
		v.originalStdout = nil
	}
	if v.originalStderr != nil {
		os.Stderr = v.originalStderr
		v.originalStderr = nil
	}
	log.SetOutput(os.Stderr)

	for _, w := range v.pipes {
		w.Close()
	}
	v.pipes = nil
	v.readers.Wait()
}

// AddMessage prepends a timestamped message
func (v *LogViewer) AddMessage(message string) {
	v.mu.Lock()
	full := "[" + time.Now().Format("15:04:05") + "] " + message
	v.messages = append([]string{full}, v.messages...)
	if len(v.messages) > maxLogMessages {
		v.messages = v.messages[:maxLogMessages]
	}
	text := strings.Join(v.messages, "\n")
	v.mu.Unlock()

	fyne.Do(func() {
		v.logEntry.SetText(text)
		v.scrollView.Offset = fyne.NewPos(0, 0)
		v.scrollView.Refresh()
	})
}

// Messages returns a copy of the current messages, newest first
func (v *LogViewer) Messages() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.messages...)
}

// Clear removes all messages
func (v *LogViewer) Clear() {
	v.mu.Lock()
	v.messages = nil
	v.mu.Unlock()

	fyne.Do(func() {
		v.logEntry.SetText("")
	})
}
