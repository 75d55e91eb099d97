package main

import (
	"errors"
	"fmt"
	"time"

	inv2pdf "github.com/alnah/go-inv2pdf"
	"github.com/alnah/go-inv2pdf/internal/config"
)

// ErrInvalidTimeout reports an unparseable timeout value.
var ErrInvalidTimeout = errors.New("invalid timeout")

// settings is the fully resolved run configuration.
// Merge order: defaults < config file < environment < flags.
type settings struct {
	dataDir     string
	templateDir string
	outputDir   string
	page        *inv2pdf.PageSettings // nil means library defaults
	timeout     time.Duration
	openViewer  bool
	quiet       bool
	verbose     bool
}

// resolveSettings merges the config file, environment overrides, and
// flags into one settings value.
func resolveSettings(flags *cliFlags, env envConfig) (settings, error) {
	cfg, err := loadConfig(flags, env)
	if err != nil {
		return settings{}, err
	}

	s := settings{
		dataDir:     firstNonEmpty(flags.dataDir, env.DataDir, cfg.Dirs.Data),
		templateDir: firstNonEmpty(flags.templateDir, env.TemplateDir, cfg.Dirs.Templates),
		outputDir:   firstNonEmpty(flags.outputDir, env.OutputDir, cfg.Dirs.Output),
		openViewer:  cfg.OpenViewer() && !flags.noOpen && !env.NoOpen,
		quiet:       flags.quiet,
		verbose:     flags.verbose,
	}

	if raw := firstNonEmpty(flags.timeout, env.Timeout, cfg.PDF.Timeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return settings{}, fmt.Errorf("%w: %q", ErrInvalidTimeout, raw)
		}
		s.timeout = d
	}

	page, err := resolvePage(flags, env, cfg)
	if err != nil {
		return settings{}, err
	}
	s.page = page

	return s, nil
}

// loadConfig picks the config source: explicit flag, env var, or the
// well-known file in the working directory.
func loadConfig(flags *cliFlags, env envConfig) (config.Config, error) {
	if path := firstNonEmpty(flags.config, env.ConfigPath); path != "" {
		return config.Load(path)
	}
	return config.Discover()
}

// resolvePage merges page settings and validates the result.
// Returns nil when nothing was configured so the library defaults apply.
func resolvePage(flags *cliFlags, env envConfig, cfg config.Config) (*inv2pdf.PageSettings, error) {
	size := firstNonEmpty(flags.pageSize, env.PageSize, cfg.Page.Size)
	orientation := firstNonEmpty(flags.orientation, cfg.Page.Orientation)
	margin := flags.margin
	if margin == 0 {
		margin = cfg.Page.Margin
	}

	if size == "" && orientation == "" && margin == 0 {
		return nil, nil
	}

	page := inv2pdf.DefaultPageSettings()
	if size != "" {
		page.Size = size
	}
	if orientation != "" {
		page.Orientation = orientation
	}
	if margin != 0 {
		page.Margin = margin
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return page, nil
}

// firstNonEmpty returns the first argument that is not the empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
