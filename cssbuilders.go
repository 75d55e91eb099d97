package inv2pdf

import "fmt"

// fallbackFontStack lists multi-script-capable sans-serif families so
// glyphs outside basic Latin (Cyrillic in particular) render correctly
// regardless of what the template specifies.
const fallbackFontStack = "'DejaVu Sans', 'Liberation Sans', 'Noto Sans', 'Arial', sans-serif"

// buildFontFallbackCSS generates the stylesheet injected into every
// rendered document. It only sets the body font family, so template
// rules targeting specific elements still win.
func buildFontFallbackCSS() string {
	return fmt.Sprintf(`
/* Font fallback for multi-script text */
body {
  font-family: %s;
}
`, fallbackFontStack)
}
