package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	paths []string
}

func (f *fakeExec) Start(ctx context.Context) error { f.calls = append(f.calls, "start"); return nil }
func (f *fakeExec) Select(ctx context.Context, path string) error {
	f.calls = append(f.calls, "select")
	f.paths = append(f.paths, path)
	return nil
}
func (f *fakeExec) Convert(ctx context.Context) error {
	f.calls = append(f.calls, "convert")
	return nil
}
func (f *fakeExec) Wait(ctx context.Context) error { f.calls = append(f.calls, "wait"); return nil }
func (f *fakeExec) Download(ctx context.Context) error {
	f.calls = append(f.calls, "download")
	return nil
}
func (f *fakeExec) Status(ctx context.Context) error { f.calls = append(f.calls, "status"); return nil }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_WorkflowCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"start",
		"select  diagrams/My Model.drawio ",
		"convert",
		"wait",
		"",
		"status",
		"download",
		"exit",
		"status",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	assert.Equal(t, []string{"start", "select", "convert", "wait", "status", "download"}, exec.calls)
	assert.Equal(t, []string{"diagrams/My Model.drawio"}, exec.paths)
}

func TestRunREPL_UsageUnknownAndQuit(t *testing.T) {
	lines := capturePrintln(t)

	input := strings.NewReader("select\nfoobar\nquit\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Usage: select <path>")
	assert.Contains(t, *lines, "Unknown command: foobar")
	assert.Contains(t, *lines, "Bye!")
	assert.Contains(t, *lines, "drawio s> ")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("status")))

	assert.Equal(t, []string{"status"}, exec.calls)
}

func TestRunREPL_StopsWhenContextEnds(t *testing.T) {
	lines := capturePrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A reader that never yields a line: only ctx can end the loop.
	pr, pw := io.Pipe()
	defer pw.Close()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewScanner(pr))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Bye!")
}
