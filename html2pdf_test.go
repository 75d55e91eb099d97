package inv2pdf

import (
	"testing"
)

// ---------------------------------------------------------------------------
// TestBuildPDFOptions - Chrome print options from page settings
// ---------------------------------------------------------------------------

func TestBuildPDFOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       *pdfOptions
		wantWidth  float64
		wantHeight float64
		wantMargin float64
	}{
		{
			name:       "nil options default to letter",
			opts:       nil,
			wantWidth:  8.5,
			wantHeight: 11,
			wantMargin: 0.5,
		},
		{
			name:       "nil page defaults to letter",
			opts:       &pdfOptions{},
			wantWidth:  8.5,
			wantHeight: 11,
			wantMargin: 0.5,
		},
		{
			name:       "a4 portrait with custom margin",
			opts:       &pdfOptions{Page: &PageSettings{Size: "a4", Orientation: "portrait", Margin: 1}},
			wantWidth:  8.27,
			wantHeight: 11.69,
			wantMargin: 1,
		},
		{
			name:       "letter landscape swaps dimensions",
			opts:       &pdfOptions{Page: &PageSettings{Size: "letter", Orientation: "landscape", Margin: 0.5}},
			wantWidth:  11,
			wantHeight: 8.5,
			wantMargin: 0.5,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := buildPDFOptions(tt.opts)
			if *got.PaperWidth != tt.wantWidth || *got.PaperHeight != tt.wantHeight {
				t.Errorf("paper = %v x %v, want %v x %v", *got.PaperWidth, *got.PaperHeight, tt.wantWidth, tt.wantHeight)
			}
			for label, m := range map[string]*float64{
				"top":    got.MarginTop,
				"bottom": got.MarginBottom,
				"left":   got.MarginLeft,
				"right":  got.MarginRight,
			} {
				if *m != tt.wantMargin {
					t.Errorf("margin %s = %v, want %v", label, *m, tt.wantMargin)
				}
			}
			if !got.PrintBackground {
				t.Error("PrintBackground must be enabled")
			}
		})
	}
}
