package gui

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestLogViewer_Write(t *testing.T) {
	test.NewTempApp(t)

	v := NewLogViewer()
	v.Write([]byte("first\n\nsecond\r\n"))

	messages := v.Messages()
	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d: %v", len(messages), messages)
	}
	if !strings.HasSuffix(messages[0], "] second") || !strings.HasSuffix(messages[1], "] first") {
		t.Errorf("Expected newest first, got %v", messages)
	}

	v.Clear()
	if len(v.Messages()) != 0 {
		t.Error("Expected no messages after Clear")
	}
}

func TestLogViewer_CaptureStops(t *testing.T) {
	test.NewTempApp(t)

	stdout, stderr := os.Stdout, os.Stderr
	v := NewLogViewer()

	v.StartCapture()
	if os.Stdout == stdout || os.Stderr == stderr {
		t.Fatal("Expected stdout and stderr to be redirected")
	}
	fmt.Fprintln(os.Stderr, "captured line")
	v.StopCapture()

	if os.Stdout != stdout || os.Stderr != stderr {
		t.Error("Expected stdout and stderr to be restored")
	}
	if len(v.pipes) != 0 {
		t.Errorf("Expected pipes to be released, got %d", len(v.pipes))
	}

	found := false
	for _, m := range v.Messages() {
		if strings.HasSuffix(m, "captured line") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected captured line in %v", v.Messages())
	}

	// Readers have exited, so stopping again is a no-op
	v.StopCapture()
}
