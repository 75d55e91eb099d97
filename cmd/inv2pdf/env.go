package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string // INV2PDF_CONFIG: config file path
	DataDir     string // INV2PDF_DATA_DIR: data file directory
	TemplateDir string // INV2PDF_TEMPLATE_DIR: template directory
	OutputDir   string // INV2PDF_OUTPUT_DIR: output directory
	Timeout     string // INV2PDF_TIMEOUT: PDF generation timeout
	PageSize    string // INV2PDF_PAGE_SIZE: letter, a4, legal
	NoOpen      bool   // INV2PDF_NO_OPEN: skip opening the viewer
}

// knownEnvVars lists valid INV2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"INV2PDF_CONFIG":       true,
	"INV2PDF_DATA_DIR":     true,
	"INV2PDF_TEMPLATE_DIR": true,
	"INV2PDF_OUTPUT_DIR":   true,
	"INV2PDF_TIMEOUT":      true,
	"INV2PDF_PAGE_SIZE":    true,
	"INV2PDF_NO_OPEN":      true,
}

// loadEnvConfig reads INV2PDF_* variables and warns on unknown ones.
func loadEnvConfig(warnTo io.Writer) envConfig {
	warnUnknownEnvVars(warnTo, os.Environ())

	return envConfig{
		ConfigPath:  os.Getenv("INV2PDF_CONFIG"),
		DataDir:     os.Getenv("INV2PDF_DATA_DIR"),
		TemplateDir: os.Getenv("INV2PDF_TEMPLATE_DIR"),
		OutputDir:   os.Getenv("INV2PDF_OUTPUT_DIR"),
		Timeout:     os.Getenv("INV2PDF_TIMEOUT"),
		PageSize:    os.Getenv("INV2PDF_PAGE_SIZE"),
		NoOpen:      boolEnv(os.Getenv("INV2PDF_NO_OPEN")),
	}
}

// warnUnknownEnvVars reports INV2PDF_* variables that are not recognized.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		name, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, "INV2PDF_") {
			continue
		}
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "Warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// boolEnv interprets common truthy spellings.
func boolEnv(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
