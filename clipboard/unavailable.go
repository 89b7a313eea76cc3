package clipboard

import (
	"context"
	"fmt"
)

// unavailable stands in for a backend that could not be created so the
// failure shows up as a status instead of stopping the program.
type unavailable struct {
	name string
	err  error
}

// Unavailable returns a backend whose every call fails with err.
func Unavailable(name string, err error) Backend {
	return &unavailable{name: name, err: err}
}

func (u *unavailable) Name() string { return u.name }

func (u *unavailable) WriteText(context.Context, string) error {
	return fmt.Errorf("failed to copy to clipboard: %w", u.err)
}

func (u *unavailable) ReadText(context.Context) (string, bool, error) {
	return "", false, fmt.Errorf("failed to read from clipboard: %w", u.err)
}
