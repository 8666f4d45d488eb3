package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	learnererrors "github.com/alexisbeaulieu97/learner/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig reads a configuration file, overlays it on DefaultConfig and
// validates the result.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, learnererrors.NewParseError(path, 0, err)
	}
	return parseBytes(path, data)
}

func parseBytes(path string, data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, learnererrors.NewParseError(path, extractLine(err), err)
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns the per-user configuration location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "learner", "config.yaml"), nil
}

// Load resolves the configuration for a command. An explicit path must exist;
// with an empty path the default location is tried and a missing file yields
// DefaultConfig. The returned string is the file actually read, or "".
func Load(path string) (*Config, string, error) {
	if path != "" {
		cfg, err := ParseConfig(path)
		return cfg, path, err
	}

	defaultPath, err := DefaultPath()
	if err != nil {
		return DefaultConfig(), "", nil
	}
	cfg, err := ParseConfig(defaultPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), "", nil
		}
		return nil, defaultPath, err
	}
	return cfg, defaultPath, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
