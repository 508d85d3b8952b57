package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"looking-glass/internal/journal"
)

// promptConfirmer asks a y/N question on out and reads the answer from in.
// Anything but y or yes declines, including end of input.
type promptConfirmer struct {
	in  io.Reader
	out io.Writer
}

var _ journal.Confirmer = promptConfirmer{}

func (p promptConfirmer) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(p.out, "%s [y/N] ", message)

	answer, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
