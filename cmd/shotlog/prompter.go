package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"shotlog/internal/annotation"
	"shotlog/internal/collision"
)

// terminalPrompter resolves timestamp collisions interactively. It renders
// the conflicting records and reads one-letter choices until it gets one it
// understands.
type terminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalPrompter(in io.Reader, out io.Writer) *terminalPrompter {
	return &terminalPrompter{in: bufio.NewReader(in), out: out}
}

func (p *terminalPrompter) PresentCollision(_ context.Context, existing, incoming annotation.Record) (collision.Choice, error) {
	fmt.Fprintf(p.out, "An annotation already exists at %s:\n", existing.Timestamp)
	fmt.Fprintf(p.out, "  existing: %s\n", existing.Line())
	fmt.Fprintf(p.out, "  incoming: %s\n", incoming.Line())

	for {
		fmt.Fprint(p.out, "[p]roceed (replace) / [r]efresh timestamp / [c]ancel: ")
		line, err := p.in.ReadString('\n')
		if err != nil {
			return collision.ChoiceCancel, fmt.Errorf("read collision choice: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "p", "proceed":
			return collision.ChoiceProceed, nil
		case "r", "refresh":
			return collision.ChoiceRefresh, nil
		case "c", "cancel", "":
			return collision.ChoiceCancel, nil
		}
		fmt.Fprintln(p.out, "Unrecognized choice")
	}
}
