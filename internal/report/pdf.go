package report

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
)

var pdfHeaders = []string{"Tarih", "Saat", "Kullanıcı", "Tutar", "Tip", "Konum"}

// pdfGridSizes splits the 12-column grid across the six table columns.
var pdfGridSizes = []uint{2, 1, 3, 2, 1, 3}

// PDF renders payments as a printable A4 table with the requested date
// range in the page header and a grand total under the table.
func PDF(payments []domain.Payment, from, to time.Time) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text("Kazanç Raporu", props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  16,
				})
			})
		})
		m.Row(10, func() {
			m.Col(12, func() {
				dateRange := fmt.Sprintf("%s - %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
				m.Text(dateRange, props.Text{
					Top:   3,
					Align: consts.Center,
					Size:  12,
				})
			})
		})
	})

	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []string{
			p.CreatedAt.Format("2006-01-02"),
			hourLabel(p.Hour),
			p.User,
			formatAmount(p.Amount),
			paymentTypeLabel(p.Type),
			p.Location,
		})
	}

	m.TableList(pdfHeaders, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: pdfGridSizes,
		},
		ContentProp: props.TableListContent{
			Size:      10,
			GridSizes: pdfGridSizes,
		},
		Align:                consts.Center,
		AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
		HeaderContentSpace:   1,
		Line:                 false,
	})

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Toplam: %s TL", formatAmount(totalOf(payments))), props.Text{
				Top:   5,
				Style: consts.Bold,
				Align: consts.Right,
				Size:  12,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("report.PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func paymentTypeLabel(t domain.PaymentType) string {
	if t == domain.PaymentCash {
		return "Nakit"
	}
	return "IBAN"
}
