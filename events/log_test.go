package events

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	orig := Logf
	defer func() { Logf = orig }()

	var lines []string
	SetLogger(func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})

	Logf("packet %d", 7)
	if len(lines) != 1 || lines[0] != "packet 7" {
		t.Fatalf("expected one captured line, got %v", lines)
	}

	SetLogger(nil)
	Logf("dropped")
	if len(lines) != 1 {
		t.Errorf("expected nil logger to drop output, got %v", lines)
	}
}
