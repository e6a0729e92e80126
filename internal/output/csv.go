package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ogerard/immoval/internal/domain"
	"github.com/ogerard/immoval/internal/parse"
)

// scheduleHeader is the fixed column set of the schedule export.
var scheduleHeader = []string{"Mois", "Mensualite", "Capital", "Interets", "Assurance", "CRD"}

// ExportSchedule serializes an amortization schedule as semicolon-delimited
// text with comma decimals, one row per month, the format French
// spreadsheet locales open directly.
func ExportSchedule(rows []domain.AmortizationRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	w.Comma = ';'

	if err := w.Write(scheduleHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{
			fmt.Sprintf("%d", row.Month),
			frAmount(row.Installment),
			frAmount(row.Principal),
			frAmount(row.Interest),
			frAmount(row.Insurance),
			frAmount(row.Balance),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ParseSchedule reads the export format back into numeric rows. Used by the
// import path and to verify round-trip fidelity.
func ParseSchedule(data []byte) ([]domain.AmortizationRow, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = ';'
	r.FieldsPerRecord = len(scheduleHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	rows := make([]domain.AmortizationRow, 0, len(records)-1)
	for i, record := range records {
		if i == 0 {
			continue // header
		}
		rows = append(rows, domain.AmortizationRow{
			Month:       int(parse.Amount(record[0])),
			Installment: parse.Amount(record[1]),
			Principal:   parse.Amount(record[2]),
			Interest:    parse.Amount(record[3]),
			Insurance:   parse.Amount(record[4]),
			Balance:     parse.Amount(record[5]),
		})
	}
	return rows, nil
}

// frAmount renders a currency amount with two decimals and a comma
// separator. Decimal rounding avoids the float formatting artifacts that
// plain Sprintf produces on cumulative sums.
func frAmount(v float64) string {
	return strings.ReplaceAll(decimal.NewFromFloat(v).StringFixed(2), ".", ",")
}
