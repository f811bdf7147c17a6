package msgenv

import (
	"context"
	"os"
	"strings"

	"github.com/Azhovan/readinput"
	"github.com/Azhovan/readinput/internal/normalize"
)

// Options configures environment variable source behavior.
type Options struct {
	// Prefix filters vars starting with prefix (stripped before normalization).
	// Required: without a prefix every variable would be read as a message key.
	// Prefix matching behavior is controlled by CaseSensitive.
	Prefix string

	// CaseSensitive controls prefix matching (default: false).
	// When false, prefix matching is case-insensitive (APP_ matches app_, App_, etc.).
	// When true, prefix must match exactly.
	// Keys are always normalized to lowercase after prefix stripping.
	CaseSensitive bool
}

type envSource struct {
	opts    Options
	environ func() []string
}

// New creates an environment variable source.
func New(opts Options) readinput.MessageSource {
	return &envSource{opts: opts, environ: os.Environ}
}

// Load scans environment variables, filters by prefix, and normalizes keys.
// An empty prefix yields no overrides.
func (e *envSource) Load(ctx context.Context) (map[string]string, error) {
	result := make(map[string]string)
	if e.opts.Prefix == "" {
		return result, nil
	}

	for _, env := range e.environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		var hasPrefix bool
		if e.opts.CaseSensitive {
			hasPrefix = strings.HasPrefix(key, e.opts.Prefix)
		} else {
			hasPrefix = strings.HasPrefix(strings.ToUpper(key), strings.ToUpper(e.opts.Prefix))
		}
		if !hasPrefix {
			continue
		}

		key = key[len(e.opts.Prefix):]
		if key == "" {
			continue
		}

		// Normalize: INT__OVERFLOW → int.overflow
		result[normalize.ToLowerDotPath(key)] = value
	}

	return result, nil
}

// Name returns a human-readable identifier for this source.
func (e *envSource) Name() string {
	return "env:" + e.opts.Prefix
}
