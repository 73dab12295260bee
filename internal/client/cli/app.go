package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/drawioconv/internal/client/client"
	"github.com/dmitrijs2005/drawioconv/internal/client/config"
	"github.com/dmitrijs2005/drawioconv/internal/client/landing"
	"github.com/dmitrijs2005/drawioconv/internal/client/navigator"
	"github.com/dmitrijs2005/drawioconv/internal/client/workflow"
	"github.com/dmitrijs2005/drawioconv/internal/logging"
	"golang.org/x/term"
)

type App struct {
	config   *config.Config
	ctl      *workflow.Controller
	page     *landing.Page
	log      logging.Logger
	in       io.Reader
	out      io.Writer
	colorize bool

	mu      sync.Mutex
	last    workflow.State
	pending *workflow.Conversion
}

// NewApp builds an App reading commands from stdin, writing to stdout and
// logging to stderr.
func NewApp(c *config.Config) (*App, error) {
	return newApp(c, os.Stdin, os.Stdout, os.Stderr)
}

func newApp(c *config.Config, in io.Reader, out, logOut io.Writer) (*App, error) {
	log := logging.NewFromLevel(c.LogLevel, logOut)

	api, err := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, log)
	if err != nil {
		return nil, err
	}

	colorize := !c.NoColor && isTerminal(out)
	out = &syncWriter{w: out}

	a := &App{
		config:   c,
		page:     landing.New(out, colorize),
		log:      log,
		in:       in,
		out:      out,
		colorize: colorize,
	}

	nav := navigator.NewSaveNavigator(api, c.DownloadDir, out, log)
	nav.Fallback = func() string { return a.ctl.State().Artifact.DisplayName() }

	a.ctl = workflow.NewController(api, nav, newConsoleNotifier(out, colorize),
		workflow.WithMinDelay(c.MinConvertDelay),
		workflow.WithLogger(log),
		workflow.WithObserver(a.onChange),
	)
	return a, nil
}

// Run shows the landing page and serves commands until the user quits or
// ctx ends. A conversion still in flight is canceled on return.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.page.ShowHero()
	a.page.ShowFeatures()
	defer a.page.ShowFooter()

	a.log.Debug(ctx, "starting", "server", a.config.ServerBaseURL, "download_dir", a.config.DownloadDir)
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.in))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// syncWriter serializes writes coming from the REPL and from the conversion
// goroutine.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
