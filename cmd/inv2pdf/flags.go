package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the interactive generator.
// Zero-flag invocation uses the stock data/templates/output layout.
type cliFlags struct {
	config      string
	dataDir     string
	templateDir string
	outputDir   string
	timeout     string
	pageSize    string
	orientation string
	margin      float64
	noOpen      bool
	quiet       bool
	verbose     bool
	version     bool
}

// parseFlags parses command line flags.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("inv2pdf", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file path (default: ./inv2pdf.yaml if present)")
	fs.StringVar(&f.dataDir, "data-dir", "", "directory with CSV/JSON/XLSX data files")
	fs.StringVar(&f.templateDir, "template-dir", "", "directory with HTML templates")
	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "directory for generated PDFs")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
	fs.BoolVar(&f.noOpen, "no-open", false, "do not open the generated PDF")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
