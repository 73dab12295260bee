package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/drawioconv/internal/client/landing"
	"github.com/dmitrijs2005/drawioconv/internal/client/models"
	"github.com/dmitrijs2005/drawioconv/internal/client/stepper"
	"github.com/dmitrijs2005/drawioconv/internal/client/workflow"
)

// Start brings the workflow section into view.
func (a *App) Start(ctx context.Context) error {
	a.page.ShowWorkflowHeading()
	return a.renderStepper(a.ctl.State().Step)
}

// Select picks the file at path for conversion.
func (a *App) Select(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot read %s: %v\n", path, err)
		return err
	}
	if info.IsDir() {
		fmt.Fprintf(a.out, "%s is a directory\n", path)
		return fmt.Errorf("%s is a directory", path)
	}

	// An invalid type is already reported by the controller's notice.
	return a.ctl.SelectFile(ctx, models.NewLocalFile(path))
}

// Convert starts converting the selected file in the background.
func (a *App) Convert(ctx context.Context) error {
	conv, err := a.ctl.StartConvert(ctx)
	if err != nil {
		a.explain(err)
		return err
	}

	a.mu.Lock()
	a.pending = conv
	a.mu.Unlock()
	return nil
}

// Wait blocks until the latest conversion has been applied or discarded.
func (a *App) Wait(ctx context.Context) error {
	a.mu.Lock()
	conv := a.pending
	a.mu.Unlock()

	if conv == nil {
		fmt.Fprintln(a.out, "No conversion started")
		return nil
	}
	return conv.Wait(ctx)
}

// Download saves the converted archive.
func (a *App) Download(ctx context.Context) error {
	if err := a.ctl.Download(ctx); err != nil {
		a.explain(err)
		return err
	}
	return nil
}

// Status prints the stepper and a summary of the workflow state.
func (a *App) Status(ctx context.Context) error {
	st := a.ctl.State()
	if err := a.renderStepper(st.Step); err != nil {
		return err
	}
	renderStatus(a.out, st)
	return nil
}

func (a *App) explain(err error) {
	switch {
	case errors.Is(err, workflow.ErrNoFileSelected):
		fmt.Fprintf(a.out, "Select a %s file first\n", models.DrawioExt)
	case errors.Is(err, workflow.ErrConversionInFlight):
		fmt.Fprintln(a.out, "A conversion is already running")
	case errors.Is(err, workflow.ErrWrongStep):
		switch a.ctl.State().Step {
		case workflow.StepDownload:
			fmt.Fprintln(a.out, "Already converted. Type \"download\" or select another file")
		default:
			fmt.Fprintln(a.out, "Nothing to download yet. Convert a file first")
		}
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}

func (a *App) renderStepper(step workflow.Step) error {
	return stepper.Render(a.out, step, a.colorize)
}

// onChange reports workflow progress as it happens.
func (a *App) onChange(st workflow.State) {
	a.mu.Lock()
	prev := a.last
	a.last = st
	a.mu.Unlock()

	if st.Phase == workflow.PhaseRequestIssued && prev.Phase != workflow.PhaseRequestIssued {
		fmt.Fprintf(a.out, "Converting %s...\n", st.FileName())
	}
	if st.Step != prev.Step {
		_ = a.renderStepper(st.Step)
	}
	if st.Step == workflow.StepDownload && prev.Step != workflow.StepDownload {
		fmt.Fprintf(a.out, "%s is ready. Type \"download\" to save it.\n", st.Artifact.DisplayName())
	}
}

// getStatus is the short status shown in the prompt.
func (a *App) getStatus() string {
	st := a.ctl.State()
	switch {
	case st.InFlight:
		return fmt.Sprintf("(converting %s)", st.FileName())
	case st.Step == workflow.StepSelect:
		return ""
	default:
		return fmt.Sprintf("(%s: %s)", st.Step, st.FileName())
	}
}

func helpText() string {
	return fmt.Sprintf("Available commands: %s, select <path>, convert, wait, download, status, help, exit", landing.StartCmd)
}
