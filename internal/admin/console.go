package admin

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"business-admin/pkg/collection"
)

// ConsoleNotifier prints notifications, one per line, details indented below.
type ConsoleNotifier struct {
	Out io.Writer
}

func (n ConsoleNotifier) Notify(ctx context.Context, note collection.Notification) {
	prefix := "ok"
	if note.Level == collection.LevelError {
		prefix = "error"
	}
	fmt.Fprintf(n.Out, "%s: %s\n", prefix, note.Message)
	for _, d := range note.Details {
		fmt.Fprintf(n.Out, "  - %s\n", d)
	}
}

// ConsoleConfirmer asks yes/no questions on a terminal. AssumeYes answers every
// prompt without reading input.
type ConsoleConfirmer struct {
	In        io.Reader
	Out       io.Writer
	AssumeYes bool
}

func (c ConsoleConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if c.AssumeYes {
		return true, nil
	}
	fmt.Fprintf(c.Out, "%s [y/N]: ", prompt)

	type answer struct {
		line string
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		line, err := bufio.NewReader(c.In).ReadString('\n')
		ch <- answer{line, err}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a := <-ch:
		if a.err != nil && a.err != io.EOF {
			return false, a.err
		}
		switch strings.ToLower(strings.TrimSpace(a.line)) {
		case "y", "yes":
			return true, nil
		}
		return false, nil
	}
}
