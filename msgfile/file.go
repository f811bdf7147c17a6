package msgfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Azhovan/readinput"
	"github.com/Azhovan/readinput/internal/normalize"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Options configures file source behavior.
type Options struct {
	// Format: "yaml", "json", or "toml". Auto-detected from extension if empty.
	Format string

	// Required: if true, missing files cause an error. Default: false (returns empty map).
	Required bool
}

type fileSource struct {
	path string
	opts Options
}

// New creates a file-based message source.
func New(path string, opts Options) readinput.MessageSource {
	return &fileSource{
		path: path,
		opts: opts,
	}
}

// Load reads and parses the file, returning flattened message overrides.
// Every leaf must be a string.
func (f *fileSource) Load(ctx context.Context) (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			if f.opts.Required {
				return nil, fmt.Errorf("required message file not found: %s: %w", f.path, err)
			}
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("read message file %s: %w", f.path, err)
	}

	format := f.opts.Format
	if format == "" {
		format = inferFormat(f.path)
	}

	var raw map[string]any
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse YAML file %s: %w", f.path, err)
		}
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse JSON file %s: %w", f.path, err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse TOML file %s: %w", f.path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: yaml, json, toml)", format)
	}

	result := make(map[string]string)
	if err := flatten("", raw, result); err != nil {
		return nil, fmt.Errorf("message file %s: %w", f.path, err)
	}
	return result, nil
}

// flatten recursively flattens nested maps to dot-separated keys.
func flatten(prefix string, value any, result map[string]string) error {
	switch v := value.(type) {
	case map[string]any:
		for key, val := range v {
			if err := flatten(normalize.ApplyPrefix(prefix, key), val, result); err != nil {
				return err
			}
		}
	case map[any]any:
		for key, val := range v {
			keyStr, ok := key.(string)
			if !ok {
				continue
			}
			if err := flatten(normalize.ApplyPrefix(prefix, keyStr), val, result); err != nil {
				return err
			}
		}
	case string:
		if prefix != "" {
			result[normalize.ToLowerDotPath(prefix)] = v
		}
	case nil:
		// An empty YAML document or a key without value.
	default:
		return fmt.Errorf("key %q: expected text, got %T", prefix, value)
	}
	return nil
}

// Name returns a human-readable identifier for this source.
func (f *fileSource) Name() string {
	return "file:" + filepath.Base(f.path)
}

func inferFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}
