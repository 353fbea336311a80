package report

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"membrane-calculator/domain"
)

const (
	seriesSheetName = "Besparelse"
	amountNumFmt    = 3 // #,##0
	decimalNumFmt   = 4 // #,##0.00
)

// XLSX writes the savings series with a native line chart, plus a sheet with
// the headline results and the parameters used.
func XLSX(params domain.ParameterSet, result domain.ComputationResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", seriesSheetName); err != nil {
		return nil, errors.Wrap(err, "renaming series sheet")
	}
	if err := writeSeriesSheet(f, result); err != nil {
		return nil, errors.Wrap(err, "writing series sheet")
	}
	if err := writeResultSheet(f, params, result); err != nil {
		return nil, errors.Wrap(err, "writing result sheet")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "rendering xlsx report")
	}
	return buf.Bytes(), nil
}

func writeSeriesSheet(f *excelize.File, result domain.ComputationResult) error {
	if err := f.SetSheetRow(seriesSheetName, "A1", &[]interface{}{yearLabel, savingsLabel}); err != nil {
		return err
	}

	for i, p := range result.SavingsSeries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(seriesSheetName, cell, &[]interface{}{p.Year, p.CumulativeSavings}); err != nil {
			return err
		}
	}

	style, err := f.NewStyle(&excelize.Style{NumFmt: amountNumFmt})
	if err != nil {
		return err
	}
	last := len(result.SavingsSeries) + 1
	lastCell, err := excelize.CoordinatesToCellName(2, last)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(seriesSheetName, "B2", lastCell, style); err != nil {
		return err
	}
	if err := f.SetColWidth(seriesSheetName, "B", "B", 30); err != nil {
		return err
	}

	if len(result.SavingsSeries) == 0 {
		return nil
	}

	ref := func(col string) string {
		return seriesSheetName + "!$" + col + "$2:$" + col + "$" + strconv.Itoa(last)
	}
	return f.AddChart(seriesSheetName, "D2", &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{
				Name:       seriesSheetName + "!$B$1",
				Categories: ref("A"),
				Values:     ref("B"),
			},
		},
		Title: []excelize.RichTextRun{{Text: savingsLabel}},
	})
}

func writeResultSheet(f *excelize.File, params domain.ParameterSet, result domain.ComputationResult) error {
	if _, err := f.NewSheet(resultSheetName); err != nil {
		return err
	}

	rowIdx := 1
	write := func(values ...interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		rowIdx++
		return f.SetSheetRow(resultSheetName, cell, &values)
	}

	if err := write("Resultat", ""); err != nil {
		return err
	}
	for _, r := range resultRows(result) {
		if err := write(r.label, r.raw); err != nil {
			return err
		}
	}
	if err := write("Break-even markering (år)", result.BreakEvenMarker()); err != nil {
		return err
	}

	rowIdx++
	if err := write("Parametre", params.EnergyType.Label()); err != nil {
		return err
	}
	for _, r := range parameterRows(params) {
		if err := write(r.label, r.raw); err != nil {
			return err
		}
	}

	style, err := f.NewStyle(&excelize.Style{NumFmt: decimalNumFmt})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(resultSheetName, "B2", "B"+strconv.Itoa(rowIdx), style); err != nil {
		return err
	}
	return f.SetColWidth(resultSheetName, "A", "A", 42)
}
