//go:generate go run go.uber.org/mock/mockgen -source=controller.go -destination=../../mocks/mock_workflow_service.go -package=mocks

// Package workflow implements the select → convert → download state machine
// of the converter client.
//
// The Controller owns the selected file, the current step, the converted
// artifact descriptor and the in-flight flag. It performs the upload through
// a Service and the download through a Navigator; user-visible failures go to
// a Notifier.
//
// Invariants kept by every operation:
//   - an artifact is present only at StepDownload;
//   - a file is present exactly at StepConvert and StepDownload;
//   - InFlight implies StepConvert.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/drawioconv/internal/client/client"
	"github.com/dmitrijs2005/drawioconv/internal/client/models"
	"github.com/dmitrijs2005/drawioconv/internal/logging"
)

// DefaultMinDelay is how long a successful conversion stays visibly
// "converting" after the response arrived.
const DefaultMinDelay = time.Second

// Service is the conversion service.
type Service interface {
	Upload(ctx context.Context, file models.FileHandle) (*models.ConvertedArtifact, error)
	DownloadURL() string
}

type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

type Option func(*Controller)

func WithClock(c Clock) Option { return func(ctl *Controller) { ctl.clock = c } }

// WithMinDelay overrides DefaultMinDelay. Zero applies results immediately.
func WithMinDelay(d time.Duration) Option { return func(ctl *Controller) { ctl.minDelay = d } }

func WithLogger(l logging.Logger) Option { return func(ctl *Controller) { ctl.log = l } }

// WithObserver registers fn to be called with a fresh snapshot after every
// state change. It may be called from the conversion goroutine.
func WithObserver(fn func(State)) Option { return func(ctl *Controller) { ctl.onChange = fn } }

type Controller struct {
	mu       sync.Mutex
	step     Step
	file     models.FileHandle
	artifact *models.ConvertedArtifact
	inFlight bool
	phase    Phase

	// selection is bumped on every accepted SelectFile so a conversion can
	// tell whether its file is still the selected one.
	selection uint64

	svc      Service
	nav      Navigator
	notifier Notifier
	clock    Clock
	minDelay time.Duration
	log      logging.Logger
	onChange func(State)
}

func NewController(svc Service, nav Navigator, notifier Notifier, opts ...Option) *Controller {
	c := &Controller{
		svc:      svc,
		nav:      nav,
		notifier: notifier,
		clock:    realClock{},
		minDelay: DefaultMinDelay,
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the workflow.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() State {
	return State{Step: c.step, File: c.file, Artifact: c.artifact, InFlight: c.inFlight, Phase: c.phase}
}

func (c *Controller) changed(st State) {
	if c.onChange != nil {
		c.onChange(st)
	}
}

// SelectFile makes candidate the current file. Only names ending in ".drawio"
// are accepted; anything else leaves the state untouched and notifies the
// user. Selecting a file discards any previous artifact.
func (c *Controller) SelectFile(ctx context.Context, candidate models.FileHandle) error {
	if candidate == nil || !models.IsDrawioName(candidate.Name()) {
		name := ""
		if candidate != nil {
			name = candidate.Name()
		}
		c.log.Debug(ctx, "rejected file", "file", name)
		c.notifier.Notify(ctx, Notice{Kind: NoticeInvalidFile, Message: MsgInvalidFile, Err: ErrInvalidFileType})
		return fmt.Errorf("%w: %q", ErrInvalidFileType, name)
	}

	c.mu.Lock()
	c.file = candidate
	c.artifact = nil
	c.step = StepConvert
	c.selection++
	st := c.snapshotLocked()
	c.mu.Unlock()

	c.log.Info(ctx, "file selected", "file", candidate.Name())
	c.changed(st)
	return nil
}

// Convert runs a conversion and waits for its result to be applied.
func (c *Controller) Convert(ctx context.Context) error {
	conv, err := c.StartConvert(ctx)
	if err != nil {
		return err
	}
	<-conv.Done()
	return conv.Err()
}

// StartConvert issues the upload of the selected file and returns at once.
// The request honours ctx; no retry is attempted.
func (c *Controller) StartConvert(ctx context.Context) (*Conversion, error) {
	c.mu.Lock()
	switch {
	case c.file == nil:
		c.mu.Unlock()
		return nil, ErrNoFileSelected
	case c.inFlight:
		c.mu.Unlock()
		return nil, ErrConversionInFlight
	case c.step != StepConvert:
		step := c.step
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: convert at step %s", ErrWrongStep, step)
	}

	file := c.file
	selection := c.selection
	c.inFlight = true
	c.phase = PhaseRequestIssued
	st := c.snapshotLocked()
	c.mu.Unlock()

	c.log.Info(ctx, "conversion started", "file", file.Name())
	c.changed(st)

	conv := &Conversion{done: make(chan struct{})}
	go c.run(ctx, conv, file, selection)
	return conv, nil
}

func (c *Controller) run(ctx context.Context, conv *Conversion, file models.FileHandle, selection uint64) {
	defer close(conv.done)

	artifact, err := c.svc.Upload(ctx, file)
	if err != nil {
		conv.err = c.fail(ctx, file, selection, err)
		return
	}

	c.mu.Lock()
	if c.selection == selection {
		c.phase = PhaseResponseReceived
	}
	st := c.snapshotLocked()
	c.mu.Unlock()
	c.changed(st)

	if c.minDelay > 0 {
		select {
		case <-c.clock.After(c.minDelay):
		case <-ctx.Done():
		}
	}

	c.mu.Lock()
	c.inFlight = false
	c.phase = PhaseIdle
	stale := c.selection != selection
	if !stale {
		c.artifact = artifact
		c.step = StepDownload
	}
	st = c.snapshotLocked()
	c.mu.Unlock()

	if stale {
		c.log.Warn(ctx, "discarding result of superseded conversion", "file", file.Name(), "artifact", artifact.DisplayName())
		conv.err = ErrSuperseded
	} else {
		c.log.Info(ctx, "conversion finished", "file", file.Name(), "artifact", artifact.DisplayName())
	}
	c.changed(st)
}

// fail returns the controller to the ready-to-convert state and tells the
// user, once. Cancellation and superseded conversions are only logged.
func (c *Controller) fail(ctx context.Context, file models.FileHandle, selection uint64, err error) error {
	c.mu.Lock()
	c.inFlight = false
	c.phase = PhaseIdle
	stale := c.selection != selection
	st := c.snapshotLocked()
	c.mu.Unlock()
	c.changed(st)

	switch {
	case stale:
		c.log.Warn(ctx, "superseded conversion failed", "file", file.Name(), "error", err)
		return errors.Join(ErrSuperseded, err)
	case errors.Is(err, context.Canceled):
		c.log.Info(ctx, "conversion canceled", "file", file.Name())
		return err
	case errors.Is(err, client.ErrConversionFailed):
		c.log.Error(ctx, "conversion rejected by service", "file", file.Name(), "error", err)
		c.notifier.Notify(ctx, Notice{Kind: NoticeConversionFailed, Message: MsgConversionFailed, Err: err})
	default:
		c.log.Error(ctx, "conversion request failed", "file", file.Name(), "error", err)
		c.notifier.Notify(ctx, Notice{Kind: NoticeError, Message: MsgUnexpectedError, Err: err})
	}
	return err
}

// Download navigates to the download endpoint. It is only valid once a
// conversion succeeded. The endpoint takes no identifier: the service is
// trusted to serve the archive of the latest conversion.
func (c *Controller) Download(ctx context.Context) error {
	c.mu.Lock()
	if c.step != StepDownload {
		step := c.step
		c.mu.Unlock()
		return fmt.Errorf("%w: download at step %s", ErrWrongStep, step)
	}
	name := c.artifact.DisplayName()
	c.mu.Unlock()

	url := c.svc.DownloadURL()
	c.log.Info(ctx, "navigating to download", "url", url, "artifact", name)
	c.nav.Navigate(ctx, url)
	return nil
}

// Conversion is a pending conversion started by StartConvert.
type Conversion struct {
	done chan struct{}
	err  error
}

// Done is closed once the result has been applied or discarded.
func (c *Conversion) Done() <-chan struct{} { return c.done }

// Err is nil on success. It must only be read after Done is closed.
func (c *Conversion) Err() error { return c.err }

// Wait blocks until the conversion finishes or ctx ends.
func (c *Conversion) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return c.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
