package report

import (
	"bytes"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"membrane-calculator/domain"
	"membrane-calculator/service"
)

// A4 landscape, millimetres.
const (
	pageWidth    = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight

	chartLeft   = marginLeft + 28.0
	chartTop    = 45.0
	chartWidth  = contentWidth - 36.0
	chartHeight = 110.0
	yTicks      = 5
)

type pdfReport struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	params domain.ParameterSet
	result domain.ComputationResult
}

// PDF renders the savings chart with its break-even marker on the first page
// and the result and parameter tables on the second.
func PDF(params domain.ParameterSet, result domain.ComputationResult) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	r := &pdfReport{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		params: params,
		result: result,
	}

	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)

	r.addChartPage()
	r.addTablesPage()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "rendering pdf report")
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) addChartPage() {
	r.pdf.AddPage()
	r.pdf.SetFont("Helvetica", "B", 18)
	r.pdf.SetTextColor(51, 51, 51)
	r.pdf.CellFormat(contentWidth, 10, r.tr(titleText), "", 1, "C", false, 0, "")

	r.pdf.SetFont("Helvetica", "", 11)
	summary := service.Summarize(r.result)
	subtitle := r.params.EnergyType.Label() + "  |  Besparelse pr. år: " + summary.YearlySavings +
		" kr.  |  Break-even: " + summary.BreakEven + " år"
	r.pdf.CellFormat(contentWidth, 8, r.tr(subtitle), "", 1, "C", false, 0, "")

	r.drawChart()
}

// valueRange returns the y axis bounds; zero is always included.
func valueRange(series []domain.SavingsPoint) (float64, float64) {
	lo, hi := 0.0, 0.0
	for _, p := range series {
		lo = math.Min(lo, p.CumulativeSavings)
		hi = math.Max(hi, p.CumulativeSavings)
	}
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi
}

// niceStep rounds a raw tick step up to 1, 2 or 5 times a power of ten.
func niceStep(span float64, ticks int) float64 {
	raw := span / float64(ticks)
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if raw <= m*magnitude {
			return m * magnitude
		}
	}
	return 10 * magnitude
}

// axisScale snaps the value range outward to whole tick steps. When snapping
// would overflow, the raw range is returned with a single tick at lo.
func axisScale(series []domain.SavingsPoint) (lo, hi, step float64, ticks int) {
	lo, hi = valueRange(series)
	step = niceStep(hi-lo, yTicks)
	snappedLo := math.Floor(lo/step) * step
	snappedHi := math.Ceil(hi/step) * step
	span := snappedHi - snappedLo
	if !finite(step, snappedLo, snappedHi, span) || step <= 0 {
		return lo, hi, 0, 0
	}
	ticks = int(math.Round(span / step))
	if ticks > 2*yTicks {
		ticks = 2 * yTicks
	}
	return snappedLo, snappedHi, step, ticks
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (r *pdfReport) drawChart() {
	series := r.result.SavingsSeries
	lo, hi, step, ticks := axisScale(series)

	xPos := func(year float64) float64 {
		return chartLeft + year/float64(service.ProjectionYears)*chartWidth
	}
	// Halved so the differences stay finite near the float64 limit.
	yPos := func(v float64) float64 {
		return chartTop + chartHeight - (v/2-lo/2)/(hi/2-lo/2)*chartHeight
	}

	// Grid and y ticks
	r.pdf.SetFont("Helvetica", "", 8)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.SetLineWidth(0.2)
	r.pdf.SetDrawColor(204, 204, 204)
	r.pdf.SetDashPattern([]float64{1, 1}, 0)
	for i := 0; i <= ticks; i++ {
		v := lo + float64(i)*step
		y := yPos(v)
		r.pdf.Line(chartLeft, y, chartLeft+chartWidth, y)
		label := r.tr(service.FormatAmount(v))
		r.pdf.Text(chartLeft-2-r.pdf.GetStringWidth(label), y+1, label)
	}
	for year := 5; year <= service.ProjectionYears; year += 5 {
		x := xPos(float64(year))
		r.pdf.Line(x, chartTop, x, chartTop+chartHeight)
	}
	r.pdf.SetDashPattern([]float64{}, 0)

	// Axes
	r.pdf.SetDrawColor(51, 51, 51)
	r.pdf.SetLineWidth(0.3)
	r.pdf.Line(chartLeft, chartTop+chartHeight, chartLeft+chartWidth, chartTop+chartHeight)
	r.pdf.Line(chartLeft, chartTop, chartLeft, chartTop+chartHeight)
	for _, p := range series {
		x := xPos(float64(p.Year))
		r.pdf.Line(x, chartTop+chartHeight, x, chartTop+chartHeight+1)
		if p.Year == 1 || p.Year%5 == 0 {
			label := service.FormatAmount(float64(p.Year))
			r.pdf.Text(x-r.pdf.GetStringWidth(label)/2, chartTop+chartHeight+5, label)
		}
	}

	r.pdf.SetFont("Helvetica", "", 10)
	axisLabel := r.tr(yearLabel)
	r.pdf.Text(chartLeft+chartWidth/2-r.pdf.GetStringWidth(axisLabel)/2, chartTop+chartHeight+11, axisLabel)

	yAxisLabel := r.tr(savingsLabel)
	labelX := marginLeft + 2
	labelY := chartTop + chartHeight/2 + r.pdf.GetStringWidth(yAxisLabel)/2
	r.pdf.TransformBegin()
	r.pdf.TransformRotate(90, labelX, labelY)
	r.pdf.Text(labelX, labelY, yAxisLabel)
	r.pdf.TransformEnd()

	// Savings line
	r.pdf.SetDrawColor(0, 123, 255)
	r.pdf.SetFillColor(0, 123, 255)
	r.pdf.SetLineWidth(0.8)
	for i := 1; i < len(series); i++ {
		r.pdf.Line(
			xPos(float64(series[i-1].Year)), yPos(series[i-1].CumulativeSavings),
			xPos(float64(series[i].Year)), yPos(series[i].CumulativeSavings),
		)
	}
	for _, p := range series {
		r.pdf.Circle(xPos(float64(p.Year)), yPos(p.CumulativeSavings), 0.9, "F")
	}

	r.drawBreakEven(xPos)
	r.drawLegend()
}

// breakEvenVisible reports where the break-even marker goes and whether it
// falls inside the projection at all.
func breakEvenVisible(result domain.ComputationResult) (float64, bool) {
	marker := result.BreakEvenMarker()
	if !result.PaysBack() || marker <= 0 || marker > float64(service.ProjectionYears) {
		return 0, false
	}
	return marker, true
}

func (r *pdfReport) drawBreakEven(xPos func(float64) float64) {
	marker, ok := breakEvenVisible(r.result)
	if !ok {
		return
	}

	x := xPos(marker)
	r.pdf.SetDrawColor(255, 0, 0)
	r.pdf.SetLineWidth(0.4)
	r.pdf.SetDashPattern([]float64{3, 3}, 0)
	r.pdf.Line(x, chartTop, x, chartTop+chartHeight)
	r.pdf.SetDashPattern([]float64{}, 0)

	r.pdf.SetFont("Helvetica", "B", 9)
	r.pdf.SetTextColor(255, 0, 0)
	r.pdf.Text(x-r.pdf.GetStringWidth(breakEvenLabel)/2, chartTop-2, breakEvenLabel)
}

func (r *pdfReport) drawLegend() {
	y := chartTop + chartHeight + 18
	x := chartLeft + chartWidth/2 - 15

	r.pdf.SetDrawColor(0, 123, 255)
	r.pdf.SetLineWidth(0.8)
	r.pdf.Line(x, y, x+10, y)
	r.pdf.Circle(x+5, y, 0.9, "F")

	r.pdf.SetFont("Helvetica", "", 10)
	r.pdf.SetTextColor(0, 123, 255)
	r.pdf.Text(x+13, y+1.2, seriesName)
}

func (r *pdfReport) addTablesPage() {
	r.pdf.AddPage()
	r.drawSectionHeader("Resultat")
	r.drawTable(resultRows(r.result))
	r.pdf.Ln(6)
	r.drawSectionHeader("Parametre (" + r.params.EnergyType.Label() + ")")
	r.drawTable(parameterRows(r.params))
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Helvetica", "B", 14)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 9, r.tr(title), "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.SetLineWidth(0.3)
	r.pdf.Line(marginLeft, r.pdf.GetY(), marginLeft+contentWidth, r.pdf.GetY())
	r.pdf.Ln(3)
}

func (r *pdfReport) drawTable(rows []row) {
	widths := []float64{110, 60}
	r.pdf.SetFont("Helvetica", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.SetDrawColor(200, 200, 200)
	for i, rw := range rows {
		if i%2 == 0 {
			r.pdf.SetFillColor(245, 245, 245)
		} else {
			r.pdf.SetFillColor(255, 255, 255)
		}
		r.pdf.CellFormat(widths[0], 6, r.tr(rw.label), "1", 0, "L", true, 0, "")
		r.pdf.CellFormat(widths[1], 6, r.tr(rw.value), "1", 1, "R", true, 0, "")
	}
}
