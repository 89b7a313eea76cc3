package clipboard

import (
	"context"
	"fmt"

	gopassclip "github.com/gopasspw/clipboard"
)

// secure writes with the password-manager hint so clipboard history
// managers skip the entry.
type secure struct{}

func newSecure(Options) (Backend, error) {
	if gopassclip.IsUnsupported() {
		return nil, fmt.Errorf("secure clipboard: %w", ErrUnsupported)
	}
	return secure{}, nil
}

func (secure) Name() string { return "secure" }

func (secure) WriteText(ctx context.Context, text string) error {
	if err := gopassclip.WritePassword(ctx, []byte(text)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

func (secure) ReadText(ctx context.Context) (string, bool, error) {
	text, err := gopassclip.ReadAllString(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to read from clipboard: %w", err)
	}
	return readResult(text, nil)
}
