package inv2pdf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Normalize transforms the intermediate representation into the canonical
// InvoiceSet. Tabular and JSON sources go through separate pure branches
// that produce the same shape.
func Normalize(raw *RawData) (InvoiceSet, error) {
	if raw == nil {
		return InvoiceSet{}, nil
	}
	switch raw.Format {
	case FormatCSV, FormatXLSX:
		return normalizeRows(raw.Rows)
	case FormatJSON:
		return normalizeDocument(raw.Document)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw.Format)
}

// normalizeRows groups tabular rows by invoice id, in file order.
// Rows with neither a non-empty invoice_id nor id are dropped silently;
// this mirrors the tabular source contract where an unidentifiable row
// cannot be attributed to any invoice.
func normalizeRows(rows []Row) (InvoiceSet, error) {
	set := make(InvoiceSet)
	for i, row := range rows {
		iid := firstNonEmpty(row["invoice_id"], row["id"])
		if iid == "" {
			continue
		}
		item, err := itemFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		set[iid] = append(set[iid], item)
	}
	return set, nil
}

// itemFromRow builds a LineItem from one tabular row.
// Field fallbacks: product <- name, qty <- quantity. A missing price
// means zero; a present but non-numeric price or qty is fatal.
func itemFromRow(row Row) (LineItem, error) {
	product, ok := row["product"]
	if !ok {
		product = row["name"]
	}

	price := decimal.Zero
	if s, ok := row["price"]; ok && strings.TrimSpace(s) != "" {
		p, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return LineItem{}, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
		}
		price = p
	}

	qty := 1
	if s, ok := qtyField(row); ok {
		n, err := coerceQty(s)
		if err != nil {
			return LineItem{}, err
		}
		qty = n
	}

	return LineItem{Product: product, Price: price, Qty: qty}, nil
}

// qtyField returns the qty cell, falling back to quantity.
func qtyField(row Row) (string, bool) {
	if s, ok := row["qty"]; ok {
		return s, true
	}
	s, ok := row["quantity"]
	return s, ok
}

// coerceQty converts a quantity string to an integer. Fractional values
// truncate toward zero; anything else is fatal.
func coerceQty(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidQty, s)
}

// normalizeDocument converts a decoded JSON document into an InvoiceSet.
//
// An array root yields one invoice per element. Elements without a usable
// invoice_id or id get a synthesized positional id (the invoice count at
// that point), so JSON invoices are never dropped. Duplicate explicit ids
// overwrite earlier entries rather than merging.
//
// Any other root shape yields one synthetic "default" invoice with a
// single placeholder item.
func normalizeDocument(doc any) (InvoiceSet, error) {
	list, ok := doc.([]any)
	if !ok {
		return InvoiceSet{
			"default": {{Product: "-", Price: decimal.Zero, Qty: 1}},
		}, nil
	}

	set := make(InvoiceSet)
	for i, elem := range list {
		inv, ok := elem.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrJSONParse, i)
		}

		iid := firstNonEmpty(scalarString(inv["invoice_id"]), scalarString(inv["id"]))
		if iid == "" {
			iid = strconv.Itoa(len(set))
		}

		items, err := itemsOf(inv, iid)
		if err != nil {
			return nil, err
		}
		set[iid] = items
	}
	return set, nil
}

// itemsOf extracts the line items of one JSON invoice object. When the
// invoice has no items list, the object is treated as its own single
// line item.
func itemsOf(inv map[string]any, iid string) ([]LineItem, error) {
	raw, ok := inv["items"]
	if !ok {
		item, err := itemFromObject(inv)
		if err != nil {
			return nil, fmt.Errorf("invoice %q: %w", iid, err)
		}
		return []LineItem{item}, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: invoice %q: items is not an array", ErrJSONParse, iid)
	}

	items := make([]LineItem, 0, len(list))
	for i, elem := range list {
		obj, ok := elem.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: invoice %q: item %d is not an object", ErrJSONParse, iid, i)
		}
		item, err := itemFromObject(obj)
		if err != nil {
			return nil, fmt.Errorf("invoice %q: item %d: %w", iid, i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// itemFromObject builds a LineItem from one item-like JSON object,
// applying the same fallbacks as the tabular branch.
func itemFromObject(obj map[string]any) (LineItem, error) {
	product := scalarString(obj["product"])
	if _, ok := obj["product"]; !ok {
		product = scalarString(obj["name"])
	}

	price := decimal.Zero
	if v, ok := obj["price"]; ok && v != nil {
		p, err := decimalOf(v)
		if err != nil {
			return LineItem{}, err
		}
		price = p
	}

	qty := 1
	if v, ok := qtyValue(obj); ok && v != nil {
		n, err := coerceQty(scalarString(v))
		if err != nil {
			return LineItem{}, err
		}
		qty = n
	}

	return LineItem{Product: product, Price: price, Qty: qty}, nil
}

// qtyValue returns the qty value, falling back to quantity.
func qtyValue(obj map[string]any) (any, bool) {
	if v, ok := obj["qty"]; ok {
		return v, true
	}
	v, ok := obj["quantity"]
	return v, ok
}

// decimalOf converts a JSON scalar to a decimal price.
// json.Number keeps the source representation, so integers stay integral.
func decimalOf(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidPrice, n.String())
		}
		return d, nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidPrice, n)
		}
		return d, nil
	}
	return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrInvalidPrice, v)
}

// scalarString renders a JSON scalar as a string for use as an id or
// product name. Objects and arrays render empty, which callers treat as
// a missing value.
func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case bool:
		if s {
			return "true"
		}
		return ""
	}
	return ""
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
