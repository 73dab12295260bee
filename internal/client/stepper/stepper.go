// Package stepper renders the three-step progress indicator of the
// conversion workflow. Rendering is a pure function of the current step.
package stepper

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/drawioconv/internal/client/workflow"
	"github.com/gookit/color"
	"github.com/samber/lo"
)

// Labels are the step captions, in order.
var Labels = [workflow.StepCount]string{"Select file", "Convert", "Download"}

type Status int

const (
	Pending Status = iota
	Active
	Completed
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case Active:
		return "active"
	default:
		return "pending"
	}
}

// Item is one step of the indicator.
type Item struct {
	Index  int
	Label  string
	Status Status
	// Highlighted marks the step as reached, which includes completed steps.
	Highlighted bool
	// Connector reports whether a connector follows this item and
	// ConnectorDone whether it is drawn as done.
	Connector     bool
	ConnectorDone bool
}

// Badge is the marker drawn in the step circle: a check mark once completed,
// otherwise the 1-based step number.
func (it Item) Badge() string {
	if it.Status == Completed {
		return "✓"
	}
	return fmt.Sprint(it.Index + 1)
}

// Build computes the visual state of every step for the given current step.
func Build(current workflow.Step) []Item {
	step := int(current)
	return lo.Map(Labels[:], func(label string, i int) Item {
		status := Pending
		switch {
		case i < step:
			status = Completed
		case i == step:
			status = Active
		}
		return Item{
			Index:         i,
			Label:         label,
			Status:        status,
			Highlighted:   i <= step,
			Connector:     i < len(Labels)-1,
			ConnectorDone: i < step,
		}
	})
}

var (
	styleOn  = color.New(color.FgBlue, color.OpBold)
	styleOff = color.New(color.FgGray)
)

// Render writes the indicator as a single line, e.g.
//
//	(✓) Select file ─── (2) Convert ··· (3) Download
func Render(w io.Writer, current workflow.Step, colorize bool) error {
	paint := func(on bool, s string) string {
		if !colorize {
			return s
		}
		if on {
			return styleOn.Sprint(s)
		}
		return styleOff.Sprint(s)
	}

	var b strings.Builder
	for _, it := range Build(current) {
		b.WriteString(paint(it.Highlighted, fmt.Sprintf("(%s) %s", it.Badge(), it.Label)))
		if it.Connector {
			b.WriteString(" ")
			b.WriteString(paint(it.ConnectorDone, lo.Ternary(it.ConnectorDone, "───", "···")))
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
