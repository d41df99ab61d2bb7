// FILE: lexbool/loader.go
package lexbool

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrTokenFileNotFound is returned when the token-set file does not
	// exist. Callers that treat the file as optional test for it with
	// errors.Is.
	ErrTokenFileNotFound = errors.New("token file not found")

	// ErrValueSize is returned when an environment value exceeds
	// MaxValueSize.
	ErrValueSize = errors.New("environment value exceeds maximum size")
)

const (
	// MaxTokenFileSize caps how much of a token-set file is read.
	MaxTokenFileSize = 1 << 20

	// MaxValueSize caps accepted environment variable values.
	MaxValueSize = 4096
)

// TokenSets is the on-disk shape of a token-set file. Either list may be
// empty, which leaves the corresponding slot untouched.
type TokenSets struct {
	Truthy []string `toml:"truthy" json:"truthy" yaml:"truthy"`
	Falsey []string `toml:"falsey" json:"falsey" yaml:"falsey"`
}

// EnvTransformFunc converts a setting name ("truthy_values") to an
// environment variable name. The default upper-cases the name and prepends
// the prefix: "LB_" yields "LB_TRUTHY_VALUES".
type EnvTransformFunc func(name string) string

// LoadTokenFile reads and parses a token-set file. The format is taken from
// the file extension (.toml/.tml, .json, .yaml/.yml) and detected from the
// content for anything else.
func LoadTokenFile(path string) (TokenSets, error) {
	var sets TokenSets

	fileInfo, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sets, ErrTokenFileNotFound
		}
		return sets, fmt.Errorf("failed to stat token file '%s': %w", path, err)
	}
	if fileInfo.Size() > MaxTokenFileSize {
		return sets, fmt.Errorf("token file '%s' exceeds maximum size %d bytes", path, int64(MaxTokenFileSize))
	}

	file, err := os.Open(path)
	if err != nil {
		return sets, fmt.Errorf("failed to open token file '%s': %w", path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxTokenFileSize))
	if err != nil {
		return sets, fmt.Errorf("failed to read token file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &sets); err != nil {
			return sets, fmt.Errorf("failed to parse TOML token file '%s': %w", path, err)
		}
	case "json":
		if err := json.Unmarshal(data, &sets); err != nil {
			return sets, fmt.Errorf("failed to parse JSON token file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &sets); err != nil {
			return sets, fmt.Errorf("failed to parse YAML token file '%s': %w", path, err)
		}
	default:
		return sets, fmt.Errorf("unable to determine token file format for '%s'", path)
	}

	return sets, nil
}

// LoadFile loads a token-set file and applies both lists through the
// write-once setters. Slots that already have a winner silently keep it;
// only I/O and parse failures are reported.
func (s *Scope) LoadFile(path string) error {
	sets, err := LoadTokenFile(path)
	if err != nil {
		return err
	}

	if len(sets.Truthy) > 0 {
		s.SetTruthyValues(sets.Truthy...)
	}
	if len(sets.Falsey) > 0 {
		s.SetFalseyValues(sets.Falsey...)
	}
	return nil
}

// LoadEnv reads comma-separated token lists from <prefix>TRUTHY_VALUES and
// <prefix>FALSEY_VALUES and applies them through the write-once setters.
// Unset variables leave the slots untouched.
func (s *Scope) LoadEnv(prefix string) error {
	return s.loadEnv(prefix, nil)
}

// LoadEnvTransform is LoadEnv with a custom name-to-variable transform.
func (s *Scope) LoadEnvTransform(prefix string, transform EnvTransformFunc) error {
	return s.loadEnv(prefix, transform)
}

func (s *Scope) loadEnv(prefix string, transform EnvTransformFunc) error {
	if transform == nil {
		transform = defaultEnvTransform(prefix)
	}

	apply := []struct {
		name string
		set  func(...string) bool
	}{
		{"truthy_values", s.SetTruthyValues},
		{"falsey_values", s.SetFalseyValues},
	}

	for _, a := range apply {
		value, exists := os.LookupEnv(transform(a.name))
		if !exists {
			continue
		}
		if len(value) > MaxValueSize {
			return ErrValueSize
		}
		if tokens := splitTokenList(value); len(tokens) > 0 {
			a.set(tokens...)
		}
	}

	return nil
}

// defaultEnvTransform creates the default environment variable transformer
func defaultEnvTransform(prefix string) EnvTransformFunc {
	return func(name string) string {
		return prefix + strings.ToUpper(name)
	}
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// Try YAML (superset of JSON, so check after JSON)
	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	// Try TOML last
	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	return ""
}
