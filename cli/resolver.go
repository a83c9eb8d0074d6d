package cli

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag values
// from a YAML config file.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx), "/path/to/config.yaml")
//
// Flag names with hyphens (e.g., "log-level") may use either hyphens
// or underscores in the config file (e.g., "log_level"). Command-line
// flags override config file values.
//
// Example config file:
//
//	log-level: debug
//	log-format: json
//	log-pretty: true
func resolve(ctx context.Context) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return config{}, nil
		}

		var values map[string]any

		if err := yaml.UnmarshalContext(ctx, data, &values); err != nil {
			// Malformed config - fall back to defaults
			return config{}, nil
		}

		cfg := make(config, len(values))
		for key, value := range values {
			// Kong requires numbers as strings for parsing
			switch num := value.(type) {
			case int64:
				cfg[key] = strconv.FormatInt(num, 10)
			case uint64:
				cfg[key] = strconv.FormatUint(num, 10)
			case float64:
				cfg[key] = strconv.FormatFloat(num, 'f', -1, 64)
			default:
				cfg[key] = value
			}
		}

		return cfg, nil
	}
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but config keys may use
	// underscores. Try both forms.
	name := flag.Name
	underscoreName := strings.ReplaceAll(name, "-", "_")

	if value, ok := r[name]; ok {
		return value, nil
	}

	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}
