// Package bridge holds the controller that moves text between the editor,
// the system clipboard and the active-window capture backend.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/andareed/mini-text/logging"
	"golang.org/x/sync/semaphore"
)

// Clipboard is the system clipboard as seen by the controller.
// ReadText reports ok=false when the clipboard holds no text.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
	ReadText(ctx context.Context) (text string, ok bool, err error)
}

// WindowCapturer grabs the text of whichever window has focus. The delay
// before the grab belongs to the implementation.
type WindowCapturer interface {
	CaptureActiveWindowText(ctx context.Context) (text string, ok bool, err error)
}

// Document is the editable text owned by the UI.
type Document interface {
	Text() string
	SetText(text string)
}

// StatusSink receives every status transition in order.
type StatusSink func(Status)

const DefaultCaptureDelay = 3 * time.Second

type Options struct {
	Strategy CaptureStrategy
	// CaptureDelay is only used to word the pending message.
	CaptureDelay time.Duration
	// Serialize drops triggers that arrive while an action is running.
	// Off by default: overlapping actions race and the last one to resolve
	// owns the status.
	Serialize bool
}

type Controller struct {
	clip     Clipboard
	capturer WindowCapturer
	doc      Document
	sink     StatusSink
	opts     Options
	gate     *semaphore.Weighted

	mu     sync.Mutex
	status Status
	phase  Phase
}

func New(clip Clipboard, capturer WindowCapturer, doc Document, sink StatusSink, opts Options) (*Controller, error) {
	if clip == nil {
		return nil, errors.New("bridge: clipboard service is required")
	}
	if doc == nil {
		return nil, errors.New("bridge: document is required")
	}
	switch opts.Strategy {
	case ClipboardRead:
	case ExternalCapture:
		if capturer == nil {
			return nil, errors.New("bridge: external capture needs a window capturer")
		}
	default:
		return nil, fmt.Errorf("bridge: unknown capture strategy %s", opts.Strategy)
	}
	if opts.CaptureDelay < 0 {
		opts.CaptureDelay = 0
	}
	if sink == nil {
		sink = func(Status) {}
	}

	c := &Controller{
		clip:     clip,
		capturer: capturer,
		doc:      doc,
		sink:     sink,
		opts:     opts,
		status:   IdleStatus(),
		phase:    PhaseIdle,
	}
	if opts.Serialize {
		c.gate = semaphore.NewWeighted(1)
	}
	return c, nil
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Controller) Strategy() CaptureStrategy { return c.opts.Strategy }

// Send copies text to the clipboard. text is the document content read at
// trigger time. The returned error is ErrBusy when the trigger was dropped;
// action failures are reported only through the status.
func (c *Controller) Send(ctx context.Context, text string) (Status, error) {
	if !c.begin() {
		logging.Warnf("bridge: send dropped, action in flight")
		return c.Status(), ErrBusy
	}
	defer c.end()

	if strings.TrimSpace(text) == "" {
		return c.resolve(Status{Message: ErrEmptyText.Error(), Severity: SeverityError, Err: ErrEmptyText}), nil
	}

	logging.Debugf("bridge: writing %d characters to clipboard", charCount(text))
	if err := c.clip.WriteText(ctx, text); err != nil {
		return c.resolve(failure(err)), nil
	}
	return c.resolve(Status{
		Message:  fmt.Sprintf("copied to clipboard (%d characters)", charCount(text)),
		Severity: SeveritySuccess,
	}), nil
}

// Capture fills the document using the configured strategy.
func (c *Controller) Capture(ctx context.Context) (Status, error) {
	if !c.begin() {
		logging.Warnf("bridge: capture dropped, action in flight")
		return c.Status(), ErrBusy
	}
	defer c.end()

	if c.opts.Strategy == ClipboardRead {
		return c.pasteFromClipboard(ctx), nil
	}
	return c.captureFromWindow(ctx), nil
}

func (c *Controller) captureFromWindow(ctx context.Context) Status {
	c.pending(Status{Message: c.pendingMessage(), Severity: SeverityInfo})

	text, ok, err := c.capturer.CaptureActiveWindowText(ctx)
	if err != nil {
		return c.resolve(failure(err))
	}
	if !ok || strings.TrimSpace(text) == "" {
		return c.resolve(Status{Message: ErrEmptyCapture.Error(), Severity: SeverityError, Err: ErrEmptyCapture})
	}

	c.doc.SetText(text)
	return c.resolve(Status{
		Message:  fmt.Sprintf("captured from active window (%d characters)", charCount(text)),
		Severity: SeveritySuccess,
	})
}

func (c *Controller) pasteFromClipboard(ctx context.Context) Status {
	text, ok, err := c.clip.ReadText(ctx)
	if err != nil {
		return c.resolve(failure(err))
	}
	if !ok {
		return c.resolve(Status{Message: ErrNoClipboardText.Error(), Severity: SeverityError, Err: ErrNoClipboardText})
	}

	c.doc.SetText(text)
	return c.resolve(Status{
		Message:  fmt.Sprintf("pasted from clipboard (%d characters)", charCount(text)),
		Severity: SeveritySuccess,
	})
}

func (c *Controller) pendingMessage() string {
	secs := int(math.Round(c.opts.CaptureDelay.Seconds()))
	if secs <= 0 {
		return "capturing from active window..."
	}
	return fmt.Sprintf("capturing from active window in %d seconds...", secs)
}

func failure(err error) Status {
	return Status{Message: "error: " + err.Error(), Severity: SeverityError, Err: err}
}

func (c *Controller) begin() bool {
	if c.gate == nil {
		return true
	}
	return c.gate.TryAcquire(1)
}

func (c *Controller) end() {
	if c.gate != nil {
		c.gate.Release(1)
	}
}

func (c *Controller) pending(st Status) {
	c.emit(st, PhasePending)
}

func (c *Controller) resolve(st Status) Status {
	c.emit(st, PhaseResolved)
	return st
}

func (c *Controller) emit(st Status, phase Phase) {
	c.mu.Lock()
	c.status = st
	c.phase = phase
	c.mu.Unlock()

	if st.IsError() {
		logging.Warnf("bridge: %s [%s] %s", phase, st.Severity, st.Message)
	} else {
		logging.Infof("bridge: %s [%s] %s", phase, st.Severity, st.Message)
	}
	c.sink(st)
}
