package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	inv2pdf "github.com/alnah/go-inv2pdf"
	"github.com/alnah/go-inv2pdf/internal/fileutil"
)

// Sentinel errors for the interactive run.
var (
	ErrNoDataFiles = errors.New("no CSV, JSON, or XLSX files in the data directory")
	ErrNoTemplates = errors.New("no HTML templates in the template directory")
	ErrNoInvoices  = errors.New("no invoices with an id in the selected file")
	ErrWritePDF    = errors.New("failed to write PDF")
)

// converter is the slice of the library the shell needs; narrowed for
// fakes in tests.
type converter interface {
	Convert(ctx context.Context, input inv2pdf.Input) ([]byte, error)
}

// app drives the interactive generation flow: discover, select, load,
// normalize, render, emit, open. Strictly forward, no backtracking.
type app struct {
	cfg     settings
	service converter
	in      *bufio.Reader
	out     io.Writer
	opener  func(path string) error
}

// newApp wires the app to the real terminal and OS viewer.
func newApp(cfg settings, service converter) *app {
	return &app{
		cfg:     cfg,
		service: service,
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		opener:  openViewer,
	}
}

// run executes one full generation pass.
func (a *app) run(ctx context.Context) error {
	if err := a.ensureDirs(); err != nil {
		return err
	}

	dataFiles, err := a.listDataFiles()
	if err != nil {
		return err
	}
	if len(dataFiles) == 0 {
		fmt.Fprintf(a.out, "\n  No data files in %s. Add CSV, JSON, or XLSX files and run again.\n", a.cfg.dataDir)
		return ErrNoDataFiles
	}

	templates, err := fileutil.ListFilesByExt(a.cfg.templateDir, ".html")
	if err != nil {
		return err
	}
	if len(templates) == 0 {
		fmt.Fprintf(a.out, "\n  No HTML templates in %s. Add templates and run again.\n", a.cfg.templateDir)
		return ErrNoTemplates
	}

	if !a.cfg.quiet {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, strings.Repeat("=", 50))
		fmt.Fprintln(a.out, "  INVOICE PDF GENERATOR")
		fmt.Fprintln(a.out, strings.Repeat("=", 50))
	}

	dataPath, err := a.selectFrom("Available data files:", "  Select a data file (number): ", baseNames(dataFiles), dataFiles)
	if err != nil {
		return err
	}

	templatePath, err := a.selectFrom("Available HTML templates:", "  Select a template (number): ", baseNames(templates), templates)
	if err != nil {
		return err
	}

	raw, err := inv2pdf.LoadDataFile(dataPath)
	if err != nil {
		return err
	}

	invoices, err := inv2pdf.Normalize(raw)
	if err != nil {
		return err
	}
	if len(invoices) == 0 {
		fmt.Fprintln(a.out, "\n  The selected file has no rows with an invoice id.")
		return ErrNoInvoices
	}

	ids := invoices.SortedIDs()
	invoiceID, err := a.selectFrom("Available invoices:", "  Select an invoice (number): ", ids, ids)
	if err != nil {
		return err
	}

	if a.cfg.verbose {
		fmt.Fprintf(a.out, "  Rendering invoice %q with %d item(s)...\n", invoiceID, len(invoices[invoiceID]))
	}

	pdfBytes, err := a.service.Convert(ctx, inv2pdf.Input{
		TemplatePath: templatePath,
		InvoiceID:    invoiceID,
		Items:        invoices[invoiceID],
		Page:         a.cfg.page,
	})
	if err != nil {
		return err
	}

	outputPath := filepath.Join(a.cfg.outputDir, inv2pdf.OutputFileName(invoiceID))
	if err := fileutil.WriteFileAtomic(outputPath, pdfBytes); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}

	fmt.Fprintf(a.out, "\n  PDF saved: %s\n", outputPath)

	if a.cfg.openViewer {
		// Best-effort: the PDF is already on disk, so a viewer failure
		// does not fail the run.
		if err := a.opener(outputPath); err != nil {
			fmt.Fprintf(a.out, "  Could not open a viewer: %v\n", err)
		} else {
			fmt.Fprintln(a.out, "  PDF opened in the default viewer.")
		}
	}
	return nil
}

// ensureDirs creates the data, template, and output directories.
func (a *app) ensureDirs() error {
	for _, dir := range []string{a.cfg.dataDir, a.cfg.templateDir, a.cfg.outputDir} {
		if err := fileutil.EnsureDir(dir); err != nil {
			return err
		}
	}
	return nil
}

// listDataFiles returns eligible data files: CSV first, then JSON, then
// XLSX, each group sorted by name.
func (a *app) listDataFiles() ([]string, error) {
	var files []string
	for _, ext := range []string{".csv", ".json", ".xlsx"} {
		group, err := fileutil.ListFilesByExt(a.cfg.dataDir, ext)
		if err != nil {
			return nil, err
		}
		files = append(files, group...)
	}
	return files, nil
}

// selectFrom shows a numbered menu of labels and returns the value at
// the chosen index.
func (a *app) selectFrom(title, prompt string, labels, values []string) (string, error) {
	printMenu(a.out, title, labels)
	idx, err := selectOption(a.in, a.out, prompt, len(values))
	if err != nil {
		return "", err
	}
	return values[idx], nil
}

// printMenu prints a 1-based numbered menu.
func printMenu(w io.Writer, title string, items []string) {
	fmt.Fprintf(w, "\n  %s\n", title)
	fmt.Fprintln(w, "  "+strings.Repeat("-", 40))
	for i, item := range items {
		fmt.Fprintf(w, "    %d. %s\n", i+1, item)
	}
	fmt.Fprintln(w, "  "+strings.Repeat("-", 40))
}

// selectOption prompts until a valid in-range integer is entered and
// returns the zero-based index. Invalid input re-prompts with no attempt
// limit; only a read failure (e.g. closed stdin) aborts.
func selectOption(in *bufio.Reader, out io.Writer, prompt string, max int) (int, error) {
	for {
		fmt.Fprint(out, prompt)
		line, err := in.ReadString('\n')
		s := strings.TrimSpace(line)

		if n, convErr := strconv.Atoi(s); convErr == nil && n >= 1 && n <= max {
			return n - 1, nil
		}

		fmt.Fprintf(out, "  Enter a number between 1 and %d\n", max)
		if err != nil {
			return 0, fmt.Errorf("reading selection: %w", err)
		}
	}
}

// baseNames maps paths to their file names for menu display.
func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}
