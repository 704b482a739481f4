package casefile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a case file encoding.
type Format string

const (
	// FormatYAML is YAML, files ending in .yaml or .yml.
	FormatYAML Format = "yaml"

	// FormatTOML is TOML, files ending in .toml.
	FormatTOML Format = "toml"
)

// Case is one input and its expected result.
type Case struct {
	// Name labels the case in test output. Defaults to the quoted input.
	Name string `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty" jsonschema:"description=Label shown in test output"`

	// Input is the string passed to the function under test.
	Input string `yaml:"input" toml:"input" json:"input" jsonschema:"description=Argument passed to the function"`

	// Want is the expected result. Ignored when WantErr is set.
	Want int `yaml:"want,omitempty" toml:"want,omitempty" json:"want,omitempty" jsonschema:"minimum=0"`

	// WantErr marks inputs the function must reject.
	WantErr bool `yaml:"want_err,omitempty" toml:"want_err,omitempty" json:"want_err,omitempty"`
}

// Label returns Name, or the quoted input when Name is empty.
func (c Case) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return strconv.Quote(c.Input)
}

// Suite is the contents of one case file.
type Suite struct {
	// Function names the function the cases exercise.
	Function string `yaml:"function" toml:"function" json:"function" jsonschema:"description=Name of the function under test"`

	// Cases are checked in file order.
	Cases []Case `yaml:"cases" toml:"cases" json:"cases"`
}

// Validate checks that the suite is usable.
func (s Suite) Validate() error {
	if s.Function == "" {
		return fmt.Errorf("%w: function is required", ErrInvalidSuite)
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("%s: %w", s.Function, ErrNoCases)
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		label := c.Label()
		if seen[label] {
			return fmt.Errorf("%w: %s: duplicate case %s", ErrInvalidSuite, s.Function, label)
		}
		seen[label] = true

		if c.Want < 0 {
			return fmt.Errorf("%w: %s: case %d (%s): want must be >= 0", ErrInvalidSuite, s.Function, i, label)
		}
	}
	return nil
}

// LoadYAML decodes and validates a suite from YAML.
func LoadYAML(r io.Reader) (*Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoCases
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadTOML decodes and validates a suite from TOML.
func LoadTOML(r io.Reader) (*Suite, error) {
	var s Suite
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidSuite, undecoded)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// FormatOf returns the format for a file path based on its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads the suite at path, choosing the decoder from the extension.
func Load(path string) (*Suite, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open case file: %w", err)
	}
	defer f.Close()

	var s *Suite
	switch format {
	case FormatYAML:
		s, err = LoadYAML(f)
	case FormatTOML:
		s, err = LoadTOML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("loaded case file",
		slog.String("path", path),
		slog.String("format", string(format)),
		slog.Int("cases", len(s.Cases)))
	return s, nil
}
