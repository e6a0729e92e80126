package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/ogerard/immoval/internal/domain"
)

const (
	pdfMarginLeft   = 15.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 15.0
	pdfContentWidth = 210.0 - pdfMarginLeft - pdfMarginRight
)

// ValuationPDF renders a viager valuation as a one-page A4 report.
func ValuationPDF(s domain.ViagerScenario, r domain.ValuationResult) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 12, "Viager Valuation Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(pdfContentWidth, 7, modeLabel(s.Mode), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdfSection(pdf, "Scenario")
	pdfTable(pdf, [][]string{
		{"Market value", Currency(s.MarketValue)},
		{"Occupant", fmt.Sprintf("%.0f years (%s)", s.OccupantAge, s.OccupantSex)},
		{"Estimated monthly rent", Currency(s.EstimatedRent)},
		{"Discount rate", Percent(s.DiscountRatePct)},
		{"Bouquet", Percent(s.UpfrontPct)},
		{"Indexation rate", Percent(s.IndexationRatePct)},
	})
	pdf.Ln(6)

	pdfSection(pdf, "Valuation")
	pdfTable(pdf, [][]string{
		{"Horizon", fmt.Sprintf("%.1f years", r.HorizonYears)},
		{"Occupancy right (DUH)", Currency(r.OccupancyValue)},
		{"Base value", Currency(r.BaseValue)},
		{"Bouquet", Currency(r.UpfrontAmount)},
		{"Monthly payment", Currency(r.MonthlyPayment)},
		{"Notary fees", Currency(r.NotaryFees)},
	})
	pdf.Ln(6)

	pdfSection(pdf, "Buyer Projection")
	pdfTable(pdf, [][]string{
		{"Total outlay (undiscounted)", Currency(r.TotalOutlay)},
		{"Projected resale price", Currency(r.ProjectedPrice)},
		{"Net proceeds", Currency(r.NetProceeds)},
		{"Annualized return", Percent(r.AnnualizedReturnPct)},
	})

	pdf.Ln(12)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.MultiCell(pdfContentWidth, 4,
		"This report is for informational purposes only and does not constitute "+
			"financial or legal advice. Actuarial horizons are statistical averages; "+
			"actual outcomes of a life-annuity sale will differ.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfSection(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 8, title, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(0, 51, 102)
	pdf.Line(pdfMarginLeft, pdf.GetY(), pdfMarginLeft+pdfContentWidth, pdf.GetY())
	pdf.Ln(2)
}

func pdfTable(pdf *fpdf.Fpdf, rows [][]string) {
	pdf.SetFont("Arial", "", 10)
	for i, row := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(245, 247, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetTextColor(50, 50, 50)
		pdf.CellFormat(pdfContentWidth*0.55, 6, row[0], "", 0, "L", true, 0, "")
		pdf.CellFormat(pdfContentWidth*0.45, 6, row[1], "", 1, "R", true, 0, "")
	}
}
