package handler

import (
	"fmt"
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/Fxloydd/marti-takip-api/internal/report"
)

// exportContentTypes maps ?format= to the served media type.
var exportContentTypes = map[string]string{
	"csv":  "text/csv",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"pdf":  "application/pdf",
}

// handleExport implements GET /api/export.
// ?from= and ?to= are required dates (YYYY-MM-DD, inclusive); ?user=
// restricts to one driver; ?format= selects the document type.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, err := parseDateParam(q.Get("from"))
	if err != nil {
		writeRequestError(w, "invalid or missing from date")
		return
	}
	to, err := parseDateParam(q.Get("to"))
	if err != nil {
		writeRequestError(w, "invalid or missing to date")
		return
	}

	format := q.Get("format")
	if format != "" {
		if _, ok := exportContentTypes[format]; !ok {
			writeRequestError(w, "unknown export format")
			return
		}
	}

	payments, err := s.reports.Range(r.Context(), from, to, q.Get("user"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if format == "" {
		writeJSON(w, http.StatusOK, payments)
		return
	}

	var body []byte
	switch format {
	case "csv":
		body = report.CSV(payments)
	case "xlsx":
		body, err = report.Excel(payments)
	case "pdf":
		body, err = report.PDF(payments, from, to)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	filename := fmt.Sprintf("rapor_%s_%s.%s", from.Format("2006-01-02"), to.Format("2006-01-02"), format)
	w.Header().Set("Content-Type", exportContentTypes[format])
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// parseDateParam parses a required YYYY-MM-DD query parameter.
func parseDateParam(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	var d openapi_types.Date
	if err := d.UnmarshalText([]byte(s)); err != nil {
		return time.Time{}, err
	}
	return d.Time, nil
}
