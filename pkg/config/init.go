package config

import (
	"os"
	"path/filepath"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/reap-cli/reap/pkg/errors"
)

const starterHeader = `# reap configuration.
# Settings here apply to every run rooted at this directory and are
# overridden by REAP_* environment variables and command-line flags.

`

// WriteStarterConfig writes a commented .reap.toml with the built-in
// defaults into dir. It refuses to overwrite an existing file.
func WriteStarterConfig(dir string) (string, error) {
	path := filepath.Join(dir, ConfigFileName)

	if _, err := os.Stat(path); err == nil {
		return "", errors.Newf(errors.ErrConfigInvalid, "%s already exists", path)
	}

	starter := Config{
		Format:  "pretty",
		Exclude: []string{".git"},
	}

	body, err := gotoml.Marshal(starter)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal starter config")
	}

	content := append([]byte(starterHeader), body...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrConfigInvalid, "failed to write %s", path)
	}

	return path, nil
}
