// Package config loads the optional inv2pdf.yaml configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-inv2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// DefaultFileName is looked up in the working directory when no config
// path is given.
const DefaultFileName = "inv2pdf.yaml"

// Default directory layout, relative to the working directory.
const (
	DefaultDataDir     = "data"
	DefaultTemplateDir = "templates"
	DefaultOutputDir   = "output"
)

// Config holds all configuration for a generation run.
type Config struct {
	Dirs   DirsConfig   `yaml:"dirs"`
	Page   PageConfig   `yaml:"page"`
	PDF    PDFConfig    `yaml:"pdf"`
	Viewer ViewerConfig `yaml:"viewer"`
}

// DirsConfig defines the input/output directory layout.
type DirsConfig struct {
	Data      string `yaml:"data"`      // data files (CSV/JSON/XLSX)
	Templates string `yaml:"templates"` // HTML templates
	Output    string `yaml:"output"`    // generated PDFs
}

// PageConfig defines PDF page layout.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches
}

// PDFConfig defines PDF generation options.
type PDFConfig struct {
	Timeout string `yaml:"timeout"` // Go duration, e.g. "30s", "2m"
}

// ViewerConfig controls opening the generated PDF.
type ViewerConfig struct {
	Open *bool `yaml:"open"` // nil means default (open)
}

// Default returns a config with the stock directory layout and page
// settings left empty (library defaults apply).
func Default() Config {
	return Config{
		Dirs: DirsConfig{
			Data:      DefaultDataDir,
			Templates: DefaultTemplateDir,
			Output:    DefaultOutputDir,
		},
	}
}

// Load reads and parses a config file. Missing fields keep their default
// values; unknown fields are rejected to catch typos early.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from flag or well-known name
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	// An empty config file means "all defaults".
	if len(bytes.TrimSpace(data)) == 0 {
		return Default(), nil
	}

	cfg := Default()
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// Discover loads the default config file from the working directory when
// it exists, and the stock defaults otherwise.
func Discover() (Config, error) {
	cfg, err := Load(DefaultFileName)
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// OpenViewer reports whether the generated PDF should be opened.
func (c Config) OpenViewer() bool {
	if c.Viewer.Open == nil {
		return true
	}
	return *c.Viewer.Open
}
