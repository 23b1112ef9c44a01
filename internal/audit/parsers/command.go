// SPDX-License-Identifier: Apache-2.0

package parsers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CommandLayer is a TextLayer backed by an external program that reads a
// PDF on stdin and writes its text to stdout, with pages separated by form
// feeds (for example "pdftotext -layout - -").
type CommandLayer struct {
	Command []string
}

// NewCommandLayer splits command on whitespace.
func NewCommandLayer(command string) (*CommandLayer, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, errors.New("text layer command is empty")
	}
	return &CommandLayer{Command: fields}, nil
}

func (l *CommandLayer) ExtractText(ctx context.Context, data []byte) ([]Page, error) {
	cmd := exec.CommandContext(ctx, l.Command[0], l.Command[1:]...)
	cmd.Stdin = bytes.NewReader(data)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", l.Command[0], err, strings.TrimSpace(stderr.String()))
	}

	chunks := strings.Split(strings.TrimRight(stdout.String(), "\f\n"), "\f")
	pages := make([]Page, 0, len(chunks))
	for i, chunk := range chunks {
		pages = append(pages, Page{Number: i + 1, Text: chunk})
	}
	return pages, nil
}
