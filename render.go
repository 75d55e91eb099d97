package inv2pdf

import (
	"context"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
)

// TemplateContext is what every invoice template receives. Templates own
// all layout and markup; the renderer imposes no schema beyond these two
// variables.
type TemplateContext struct {
	InvoiceID string
	Items     []LineItem
}

// templateRenderer abstracts HTML rendering to allow fakes in tests.
type templateRenderer interface {
	Render(ctx context.Context, templatePath string, tc TemplateContext) (string, error)
}

// Compile-time interface check
var _ templateRenderer = (*htmlTemplateRenderer)(nil)

// htmlTemplateRenderer renders invoice templates with html/template.
// Contextual autoescaping applies to every value from the data file, so
// markup inside product names or ids cannot leak into the document.
// Lookup is restricted to the named file; templates cannot pull in
// content from outside their own directory.
type htmlTemplateRenderer struct{}

// templateFuncs are helpers available to every template.
var templateFuncs = template.FuncMap{
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
}

// Render parses the template file and executes it against the context.
func (htmlTemplateRenderer) Render(ctx context.Context, templatePath string, tc TemplateContext) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := filepath.Base(templatePath)
	tmpl, err := template.New(name).Funcs(templateFuncs).ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, name, tc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return b.String(), nil
}
