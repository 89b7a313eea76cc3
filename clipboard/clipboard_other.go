//go:build !linux && !darwin && !windows

package clipboard

import (
	"fmt"
	"runtime"
)

func platformHelpers() (helper, helper, error) {
	return helper{}, helper{}, fmt.Errorf("command clipboard on %s: %w", runtime.GOOS, ErrUnsupported)
}
