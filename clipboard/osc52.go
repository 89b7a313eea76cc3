package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andareed/mini-text/logging"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"
)

// osc52Clip asks the terminal emulator to set the clipboard. It works over
// SSH but cannot read the clipboard back.
type osc52Clip struct {
	out io.Writer
	env func(string) string
	tty func(io.Writer) bool
}

func newOSC52(opts Options) (Backend, error) {
	return &osc52Clip{out: opts.Out, env: os.Getenv, tty: isTTY}, nil
}

func (c *osc52Clip) Name() string { return "osc52" }

func (c *osc52Clip) WriteText(_ context.Context, text string) error {
	if !c.supported() {
		logging.Warnf("Clipboard: OSC52 unavailable (output not TTY or TERM=dumb)")
		return errors.New("clipboard unavailable (OSC52 unsupported by terminal)")
	}

	seq := osc52.New(text)
	switch {
	case c.env("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(c.env("TERM"), "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(c.out); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

func (c *osc52Clip) ReadText(context.Context) (string, bool, error) {
	return "", false, fmt.Errorf("osc52 cannot read the clipboard: %w", ErrUnsupported)
}

func (c *osc52Clip) supported() bool {
	if term := c.env("TERM"); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return c.tty(c.out)
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
