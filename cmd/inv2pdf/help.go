package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// printUsage writes CLI usage to w.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "inv2pdf - generate styled invoice PDFs from CSV/JSON/XLSX data and HTML templates")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  inv2pdf [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Running with no flags scans ./data and ./templates, walks you through")
	fmt.Fprintln(w, "numbered menus, and writes the PDF to ./output.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
