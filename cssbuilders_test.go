package inv2pdf

import (
	"strings"
	"testing"
)

func TestBuildFontFallbackCSS(t *testing.T) {
	t.Parallel()

	css := buildFontFallbackCSS()

	// Multi-script families must all be present, ending in a generic
	// family so the stack never falls off the end.
	for _, family := range []string{"DejaVu Sans", "Liberation Sans", "Noto Sans", "Arial", "sans-serif"} {
		if !strings.Contains(css, family) {
			t.Errorf("font fallback CSS missing %q:\n%s", family, css)
		}
	}
	if !strings.Contains(css, "body") {
		t.Errorf("font fallback CSS must target body:\n%s", css)
	}
}
