package inv2pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-inv2pdf/internal/pipeline"
)

// defaultTimeout bounds PDF generation when the caller's context carries
// no deadline.
const defaultTimeout = 2 * time.Minute

// serviceConfig holds internal service configuration.
type serviceConfig struct {
	timeout  time.Duration
	basePath string
}

// Option customizes a Service.
type Option func(*Service)

// WithTimeout sets the PDF generation timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.cfg.timeout = d
		}
	}
}

// WithBasePath sets the directory against which relative references in
// rendered markup are resolved. Defaults to the current directory.
func WithBasePath(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.cfg.basePath = dir
		}
	}
}

// withPDFConverter injects a converter backend; used by tests to avoid
// launching a browser.
func withPDFConverter(c pdfConverter) Option {
	return func(s *Service) { s.pdfConverter = c }
}

// Service orchestrates the invoice-to-PDF pipeline: template rendering,
// stylesheet injection, and HTML-to-PDF conversion.
type Service struct {
	cfg          serviceConfig
	renderer     templateRenderer
	cssInjector  pipeline.CSSInjector
	pdfConverter pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:         serviceConfig{timeout: defaultTimeout, basePath: "."},
		renderer:    htmlTemplateRenderer{},
		cssInjector: &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout, s.cfg.basePath)
	}

	return s
}

// Convert runs the full pipeline and returns the PDF as bytes.
// Nothing is written to disk; the caller decides where the bytes go,
// which keeps partial output off disk when rendering fails.
func (s *Service) Convert(ctx context.Context, input Input) ([]byte, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	htmlContent, err := s.renderer.Render(ctx, input.TemplatePath, TemplateContext{
		InvoiceID: input.InvoiceID,
		Items:     input.Items,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	// Font fallback always applies; user CSS comes after so it can
	// override the fallback.
	cssContent := buildFontFallbackCSS() + input.CSS
	htmlContent = s.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pdfBytes, err := s.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: input.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	return pdfBytes, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if input.TemplatePath == "" {
		return ErrEmptyTemplatePath
	}
	if input.InvoiceID == "" {
		return ErrEmptyInvoiceID
	}
	return input.Page.Validate()
}
