// Package config loads reap's layered configuration: embedded defaults,
// then an optional .reap.toml in the search root, then REAP_* environment
// variables. CLI flags are merged on top by the command layer.
package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/reap-cli/reap/pkg/errors"
	"github.com/reap-cli/reap/pkg/types"
)

//go:embed default.toml
var defaultConfig []byte

// rawBytesProvider feeds the embedded defaults to koanf
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// ConfigFileName is the per-tree override file looked up in the search root
const ConfigFileName = ".reap.toml"

// Config holds the file/environment-configurable settings. Selection
// patterns and safety flags are flag-only and live in the command layer.
type Config struct {
	// Format selects console log rendering: "pretty" or "json".
	Format string `koanf:"format" toml:"format"`

	// Exclude holds protection patterns prepended to any --exclude flags,
	// order preserved.
	Exclude []string `koanf:"exclude" toml:"exclude"`

	// Depth bounds traversal when set in the file; zero means unbounded.
	Depth int `koanf:"depth" toml:"depth,omitempty"`
}

// Load builds the layered configuration for a run rooted at root
func Load(root string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	path := filepath.Join(root, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s", path)
		}
	}

	if err := k.Load(env.Provider("REAP_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "REAP_")), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// Validate rejects an unusable run configuration before any traversal
// begins
func Validate(search types.SearchConfig, format string) error {
	if len(search.ActivePatterns()) == 0 {
		return errors.New(errors.ErrPatternMissing, "no pattern specified, use --files, --dirs, or --all")
	}

	if search.MaxDepth < 0 {
		return errors.Newf(errors.ErrDepthInvalid, "depth must be a positive integer, got %d", search.MaxDepth)
	}

	if format != "pretty" && format != "json" {
		return errors.Newf(errors.ErrFormatInvalid, "unrecognized format %q, expected pretty or json", format)
	}

	return nil
}
