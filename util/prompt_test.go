package util

import (
	"bytes"
	"strings"
	"testing"
)

func withInput(t *testing.T, input string) *bytes.Buffer {
	t.Helper()
	oldIn, oldOut := Stdin, Stdout
	out := &bytes.Buffer{}
	Stdin, Stdout = strings.NewReader(input), out
	t.Cleanup(func() { Stdin, Stdout = oldIn, oldOut })
	return out
}

func TestPromptYN(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"y\n", false, true},
		{"Y\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"", true, true},
		{"yes\n", false, false},
	}
	for _, tt := range tests {
		out := withInput(t, tt.input)
		if got := PromptYN("Overwrite?", tt.def); got != tt.want {
			t.Errorf("PromptYN(%q, %v) = %v, want %v", tt.input, tt.def, got, tt.want)
		}
		if !strings.Contains(out.String(), "Overwrite?") {
			t.Errorf("prompt not written: %q", out.String())
		}
	}
}

func TestPromptString(t *testing.T) {
	withInput(t, "  calculator  \n")
	if got := PromptString("Project name", "NewProject"); got != "calculator" {
		t.Errorf("got %q", got)
	}
	withInput(t, "")
	if got := PromptString("Project name", "NewProject"); got != "NewProject" {
		t.Errorf("got %q, want default", got)
	}
}
