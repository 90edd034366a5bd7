// Package report renders a payment range as a downloadable document.
// Three formats share the same flat table: CSV for spreadsheets and
// imports, XLSX for the accountant, PDF for printing.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
)

// csvHeaders defines the column names written as the first row of any
// CSV or XLSX export.
var csvHeaders = []string{
	"date", "hour", "user", "amount", "type", "location",
}

// CSV encodes payments as a CSV table, one row per payment, oldest first
// (the order the caller provides).
func CSV(payments []domain.Payment) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, p := range payments {
		//nolint:errcheck
		w.Write(csvRecord(p))
	}
	w.Flush()

	return buf.Bytes()
}

// csvRecord encodes one payment as a flat string slice.
func csvRecord(p domain.Payment) []string {
	return []string{
		p.CreatedAt.Format("2006-01-02"),
		hourLabel(p.Hour),
		p.User,
		formatAmount(p.Amount),
		string(p.Type),
		p.Location,
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func hourLabel(h int) string {
	return fmt.Sprintf("%02d:00", h)
}

func totalOf(payments []domain.Payment) float64 {
	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}
	return sum
}
