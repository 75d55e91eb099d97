package inv2pdf

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/alnah/go-inv2pdf/internal/jsonutil"
)

// itemsEqual compares line items by value, using decimal equality for
// prices so representation differences (1 vs 1.0) do not matter.
func itemsEqual(a, b []LineItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Product != b[i].Product || a[i].Qty != b[i].Qty || !a[i].Price.Equal(b[i].Price) {
			return false
		}
	}
	return true
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ---------------------------------------------------------------------------
// TestNormalize_Rows - Tabular branch (CSV/XLSX)
// ---------------------------------------------------------------------------

func TestNormalize_Rows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows []Row
		want InvoiceSet
	}{
		{
			name: "groups by invoice id in file order",
			rows: []Row{
				{"invoice_id": "A1", "product": "Widget", "price": "9.99", "qty": "2"},
				{"invoice_id": "B2", "product": "Gadget", "price": "25", "qty": "1"},
				{"invoice_id": "A1", "product": "Bolt", "price": "0.10", "qty": "100"},
			},
			want: InvoiceSet{
				"A1": {
					{Product: "Widget", Price: dec("9.99"), Qty: 2},
					{Product: "Bolt", Price: dec("0.10"), Qty: 100},
				},
				"B2": {
					{Product: "Gadget", Price: dec("25"), Qty: 1},
				},
			},
		},
		{
			name: "id column as fallback for invoice_id",
			rows: []Row{
				{"id": "C3", "product": "Cog"},
			},
			want: InvoiceSet{
				"C3": {{Product: "Cog", Price: decimal.Zero, Qty: 1}},
			},
		},
		{
			name: "empty invoice_id falls through to id",
			rows: []Row{
				{"invoice_id": "", "id": "C3", "product": "Cog"},
			},
			want: InvoiceSet{
				"C3": {{Product: "Cog", Price: decimal.Zero, Qty: 1}},
			},
		},
		{
			name: "rows without any id are dropped silently",
			rows: []Row{
				{"invoice_id": "", "id": "", "product": "Orphan"},
				{"product": "Nameless"},
				{"invoice_id": "A1", "product": "Kept"},
			},
			want: InvoiceSet{
				"A1": {{Product: "Kept", Price: decimal.Zero, Qty: 1}},
			},
		},
		{
			name: "name falls back for product, quantity for qty",
			rows: []Row{
				{"invoice_id": "A1", "name": "Widget", "quantity": "3"},
			},
			want: InvoiceSet{
				"A1": {{Product: "Widget", Price: decimal.Zero, Qty: 3}},
			},
		},
		{
			name: "missing price and qty default to 0 and 1",
			rows: []Row{
				{"invoice_id": "A1"},
			},
			want: InvoiceSet{
				"A1": {{Product: "", Price: decimal.Zero, Qty: 1}},
			},
		},
		{
			name: "fractional qty truncates",
			rows: []Row{
				{"invoice_id": "A1", "qty": "2.9"},
			},
			want: InvoiceSet{
				"A1": {{Product: "", Price: decimal.Zero, Qty: 2}},
			},
		},
		{
			name: "no rows",
			rows: nil,
			want: InvoiceSet{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Normalize(&RawData{Format: FormatCSV, Rows: tt.rows})
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Normalize() ids = %v, want %v", got.SortedIDs(), tt.want.SortedIDs())
			}
			for id, items := range tt.want {
				if !itemsEqual(got[id], items) {
					t.Errorf("invoice %q = %+v, want %+v", id, got[id], items)
				}
			}
		})
	}
}

func TestNormalize_RowErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    []Row
		wantErr error
	}{
		{
			name:    "non-numeric qty is fatal",
			rows:    []Row{{"invoice_id": "A1", "qty": "many"}},
			wantErr: ErrInvalidQty,
		},
		{
			name:    "empty qty cell is fatal",
			rows:    []Row{{"invoice_id": "A1", "qty": ""}},
			wantErr: ErrInvalidQty,
		},
		{
			name:    "non-numeric price is fatal",
			rows:    []Row{{"invoice_id": "A1", "price": "free"}},
			wantErr: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Normalize(&RawData{Format: FormatXLSX, Rows: tt.rows})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Normalize() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNormalize_Document - JSON branch
// ---------------------------------------------------------------------------

// jsonDoc decodes a literal through the same path LoadDataFile uses, so
// numbers arrive as json.Number.
func jsonDoc(t *testing.T, literal string) any {
	t.Helper()
	v, err := jsonutil.Decode([]byte(literal))
	if err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	return v
}

func TestNormalize_Document(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want InvoiceSet
	}{
		{
			name: "array of invoices with items",
			doc: `[
				{"invoice_id": "A1", "items": [
					{"product": "Widget", "price": 9.99, "qty": 2},
					{"name": "Bolt", "price": 0.10, "quantity": 100}
				]},
				{"id": "B2", "items": []}
			]`,
			want: InvoiceSet{
				"A1": {
					{Product: "Widget", Price: dec("9.99"), Qty: 2},
					{Product: "Bolt", Price: dec("0.10"), Qty: 100},
				},
				"B2": {},
			},
		},
		{
			name: "invoice without items list is its own line item",
			doc:  `[{"invoice_id": "A1", "product": "Widget", "price": 5, "qty": 1}]`,
			want: InvoiceSet{
				"A1": {{Product: "Widget", Price: dec("5"), Qty: 1}},
			},
		},
		{
			name: "missing ids get positional fallbacks, never dropped",
			doc:  `[{"product": "First"}, {"product": "Second"}]`,
			want: InvoiceSet{
				"0": {{Product: "First", Price: decimal.Zero, Qty: 1}},
				"1": {{Product: "Second", Price: decimal.Zero, Qty: 1}},
			},
		},
		{
			name: "numeric id becomes its string form",
			doc:  `[{"invoice_id": 42, "items": []}]`,
			want: InvoiceSet{"42": {}},
		},
		{
			name: "colliding ids overwrite, not merge",
			doc: `[
				{"invoice_id": "A1", "items": [{"product": "Old", "price": 1}]},
				{"invoice_id": "A1", "items": [{"product": "New", "price": 2}]}
			]`,
			want: InvoiceSet{
				"A1": {{Product: "New", Price: dec("2"), Qty: 1}},
			},
		},
		{
			name: "non-array root yields a single placeholder invoice",
			doc:  `{"summary": "not a list"}`,
			want: InvoiceSet{
				"default": {{Product: "-", Price: decimal.Zero, Qty: 1}},
			},
		},
		{
			name: "scalar root yields the placeholder too",
			doc:  `"just a string"`,
			want: InvoiceSet{
				"default": {{Product: "-", Price: decimal.Zero, Qty: 1}},
			},
		},
		{
			name: "string price parses",
			doc:  `[{"invoice_id": "A1", "items": [{"product": "W", "price": "19.90"}]}]`,
			want: InvoiceSet{
				"A1": {{Product: "W", Price: dec("19.90"), Qty: 1}},
			},
		},
		{
			name: "fractional qty truncates",
			doc:  `[{"invoice_id": "A1", "items": [{"qty": 2.5}]}]`,
			want: InvoiceSet{
				"A1": {{Product: "", Price: decimal.Zero, Qty: 2}},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Normalize(&RawData{Format: FormatJSON, Document: jsonDoc(t, tt.doc)})
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Normalize() ids = %v, want %v", got.SortedIDs(), tt.want.SortedIDs())
			}
			for id, items := range tt.want {
				gotItems, ok := got[id]
				if !ok {
					t.Fatalf("invoice %q missing, have %v", id, got.SortedIDs())
				}
				if !itemsEqual(gotItems, items) {
					t.Errorf("invoice %q = %+v, want %+v", id, gotItems, items)
				}
			}
		})
	}
}

func TestNormalize_DocumentErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "array element is not an object",
			doc:     `["just a string"]`,
			wantErr: ErrJSONParse,
		},
		{
			name:    "items is not an array",
			doc:     `[{"invoice_id": "A1", "items": "nope"}]`,
			wantErr: ErrJSONParse,
		},
		{
			name:    "item element is not an object",
			doc:     `[{"invoice_id": "A1", "items": [7]}]`,
			wantErr: ErrJSONParse,
		},
		{
			name:    "non-numeric qty",
			doc:     `[{"invoice_id": "A1", "items": [{"qty": "many"}]}]`,
			wantErr: ErrInvalidQty,
		},
		{
			name:    "non-numeric price",
			doc:     `[{"invoice_id": "A1", "items": [{"price": true}]}]`,
			wantErr: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Normalize(&RawData{Format: FormatJSON, Document: jsonDoc(t, tt.doc)})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Normalize() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalize_Nil(t *testing.T) {
	t.Parallel()

	got, err := Normalize(nil)
	if err != nil {
		t.Fatalf("Normalize(nil) error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Normalize(nil) = %v, want empty set", got)
	}
}
