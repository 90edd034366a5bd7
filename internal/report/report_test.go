package report_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
	"github.com/Fxloydd/marti-takip-api/internal/report"
)

func samplePayments() []domain.Payment {
	day := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Payment{
		{Amount: 150.5, Type: domain.PaymentCash, User: "Ali", Location: "Kadıköy", Hour: 9, CreatedAt: day.Add(9 * time.Hour)},
		{Amount: 75, Type: domain.PaymentIBAN, User: "Veli", Location: "Üsküdar", Hour: 14, CreatedAt: day.Add(14 * time.Hour)},
	}
}

func TestCSV(t *testing.T) {
	out := report.CSV(samplePayments())

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"date", "hour", "user", "amount", "type", "location"}, records[0])
	assert.Equal(t, []string{"2025-09-01", "09:00", "Ali", "150.50", "cash", "Kadıköy"}, records[1])
	assert.Equal(t, []string{"2025-09-01", "14:00", "Veli", "75.00", "iban", "Üsküdar"}, records[2])
}

func TestCSV_EmptyRangeStillHasHeader(t *testing.T) {
	out := report.CSV(nil)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestExcel(t *testing.T) {
	out, err := report.Excel(samplePayments())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Ödemeler"}, f.GetSheetList())

	rows, err := f.GetRows("Ödemeler")
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + 2 payments + total
	assert.Equal(t, "Ali", rows[1][2])
	assert.Equal(t, "Toplam", rows[3][2])
}

func TestPDF(t *testing.T) {
	from := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC)

	out, err := report.PDF(samplePayments(), from, to)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output is not a PDF document")
}
