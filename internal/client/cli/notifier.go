package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/drawioconv/internal/client/workflow"
	"github.com/gookit/color"
)

var alertStyle = color.New(color.FgLightWhite, color.BgRed, color.OpBold)

// consoleNotifier is the terminal counterpart of a browser alert.
type consoleNotifier struct {
	out      io.Writer
	colorize bool
}

func newConsoleNotifier(out io.Writer, colorize bool) *consoleNotifier {
	return &consoleNotifier{out: out, colorize: colorize}
}

func (n *consoleNotifier) Notify(_ context.Context, notice workflow.Notice) {
	msg := " ! " + notice.Message + " "
	if n.colorize {
		msg = alertStyle.Sprint(msg)
	}
	fmt.Fprintln(n.out, msg)
}
