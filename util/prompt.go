package util

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
)

// PromptString asks for a line of input; an empty answer or a closed stdin
// selects def.
func PromptString(prompt string, def string) string {
	fmt.Fprintf(Stdout, "%s (%s): ", color.CyanString(prompt), def)

	response, ok := readLine()
	if !ok || response == "" {
		return def
	}

	return response
}

func PromptYN(prompt string, def bool) bool {
	if def {
		fmt.Fprintf(Stdout, "%s (Y/n): ", color.CyanString(prompt))
	} else {
		fmt.Fprintf(Stdout, "%s (y/N): ", color.CyanString(prompt))
	}

	response, ok := readLine()
	if !ok || response == "" {
		return def
	}

	return strings.ToLower(response) == "y"
}

// readLine must not read past the newline; prompts share Stdin.
func readLine() (string, bool) {
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := Stdin.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			sb.WriteByte(buf[0])
		}
		if err != nil {
			if sb.Len() == 0 {
				return "", false
			}
			break
		}
	}
	return strings.TrimSpace(sb.String()), true
}
