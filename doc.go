// Package inv2pdf turns tabular invoice data (CSV, JSON, or XLSX) into
// styled PDF documents rendered from HTML templates via headless Chrome.
//
// # Quick Start
//
// Load a data file, normalize it into invoices, render one of them:
//
//	raw, err := inv2pdf.LoadDataFile("data/invoices.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	invoices, err := inv2pdf.Normalize(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svc := inv2pdf.New()
//	defer svc.Close()
//
//	pdf, err := svc.Convert(ctx, inv2pdf.Input{
//	    TemplatePath: "templates/classic.html",
//	    InvoiceID:    "A1",
//	    Items:        invoices["A1"],
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output/invoice_A1.pdf", pdf, 0o644)
//
// # Pipeline
//
// The conversion process follows these stages:
//
//  1. Data loading (CSV via encoding/csv, JSON via goccy/go-json with
//     exact numbers, XLSX via excelize)
//  2. Normalization into a canonical InvoiceSet (invoice id -> line items)
//  3. HTML template rendering via html/template (autoescaped)
//  4. Font-fallback and page CSS injection
//  5. PDF rendering via headless Chrome (go-rod)
//
// Relative references inside rendered HTML (images, stylesheets) resolve
// against the base path configured with WithBasePath.
package inv2pdf
