// Package clipboard provides the clipboard backends the bridge controller
// reads from and writes to.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/andareed/mini-text/shell"
)

const DefaultBackend = "system"

var ErrUnsupported = errors.New("clipboard unsupported")

// Backend is a system clipboard. ReadText reports ok=false when there is no
// text to read.
type Backend interface {
	Name() string
	WriteText(ctx context.Context, text string) error
	ReadText(ctx context.Context) (text string, ok bool, err error)
}

// Options carries what individual backends may need.
type Options struct {
	Runner shell.Runner
	// Out is where the osc52 backend writes its escape sequence.
	Out io.Writer
}

// Factory creates a backend.
type Factory func(opts Options) (Backend, error)

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

var defaultRegistry = &registry{
	factories: make(map[string]Factory),
}

func init() {
	Register("system", newSystem)
	Register("secure", newSecure)
	Register("command", newCommand)
	Register("osc52", newOSC52)
}

// Register adds a backend factory to the registry
func Register(name string, factory Factory) {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	defaultRegistry.factories[name] = factory
}

// New creates a backend by name. An empty name selects DefaultBackend.
func New(name string, opts Options) (Backend, error) {
	if name == "" {
		name = DefaultBackend
	}
	defaultRegistry.mu.RLock()
	factory, exists := defaultRegistry.factories[name]
	defaultRegistry.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("clipboard backend not found: %s", name)
	}
	if opts.Runner == nil {
		opts.Runner = shell.NewExec(shell.DefaultTimeout)
	}
	if opts.Out == nil {
		opts.Out = os.Stderr
	}
	return factory(opts)
}

// Names returns the registered backend names, sorted.
func Names() []string {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()

	names := make([]string, 0, len(defaultRegistry.factories))
	for name := range defaultRegistry.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func IsRegistered(name string) bool {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()
	_, exists := defaultRegistry.factories[name]
	return exists
}

// readResult maps an empty clipboard to "no text".
func readResult(text string, err error) (string, bool, error) {
	if err != nil {
		return "", false, err
	}
	if text == "" {
		return "", false, nil
	}
	return text, true, nil
}
