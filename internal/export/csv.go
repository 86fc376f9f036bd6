// Package export serializes selected admin table rows to CSV. Building the
// bytes is pure; actually handing the file to the user goes through the
// Deliverer port so the formatter stays testable.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"devmarket/internal/models"
)

// utf8BOM prefixes every export so spreadsheet tools pick the right charset.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Deliverer hands a finished file to the user, e.g. as a browser download.
type Deliverer interface {
	Deliver(filename string, data []byte) error
}

// Table is an in-memory CSV document: a fixed header row plus one row per
// exported record.
type Table struct {
	Header []string
	Rows   [][]string
}

// Encode renders the table as UTF-8 CSV with a byte-order mark. Fields
// containing quotes, commas, or newlines are quoted with internal quotes
// doubled.
func (t Table) Encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// OrdersTable builds the export for the selected orders, in the order they
// appear in the source slice rather than selection order.
func OrdersTable(orders []models.Order, selected func(id string) bool) Table {
	t := Table{Header: []string{"Customer Name", "Email", "Project", "Price", "Status", "Date"}}
	for _, o := range orders {
		if !selected(o.ID) {
			continue
		}
		t.Rows = append(t.Rows, []string{
			o.CustomerName,
			o.CustomerEmail,
			o.ProjectTitle,
			formatPrice(o.Price),
			o.Status,
			o.CreatedAt.Format("Jan 2, 2006, 03:04 PM"),
		})
	}
	return t
}

// InquiriesTable builds the export for the selected inquiries, in source
// order.
func InquiriesTable(inquiries []models.Inquiry, selected func(id string) bool) Table {
	t := Table{Header: []string{"Name", "Email", "Project Type", "Budget", "Date", "Message"}}
	for _, in := range inquiries {
		if !selected(in.ID) {
			continue
		}
		t.Rows = append(t.Rows, []string{
			in.Name,
			in.Email,
			in.ProjectType,
			in.Budget,
			in.CreatedAt.Format("1/2/2006"),
			in.Message,
		})
	}
	return t
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
