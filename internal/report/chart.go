package report

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/alexanderramin/courseplan/internal/domain"
)

const (
	ChartWidth  = 900
	ChartHeight = 420

	chartMarginLeft   = 70.0
	chartMarginRight  = 30.0
	chartMarginTop    = 50.0
	chartMarginBottom = 50.0
)

var (
	chartFontOnce sync.Once
	chartFont     *truetype.Font
	chartFontErr  error

	colorBackground = color.White
	colorAxis       = color.RGBA{0x9c, 0xa3, 0xaf, 0xff}
	colorGrid       = color.RGBA{0xe5, 0xe7, 0xeb, 0xff}
	colorLine       = color.RGBA{0x25, 0x63, 0xeb, 0xff}
	colorMilestone  = color.RGBA{0x05, 0x96, 0x69, 0xff}
	colorText       = color.RGBA{0x37, 0x41, 0x51, 0xff}
)

func fontFace(size float64) (font.Face, error) {
	chartFontOnce.Do(func() {
		chartFont, chartFontErr = truetype.Parse(goregular.TTF)
	})
	if chartFontErr != nil {
		return nil, fmt.Errorf("parsing chart font: %w", chartFontErr)
	}
	return truetype.NewFace(chartFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}

// WriteChart draws the cumulative planned study hours per study day with a
// dot for every unit milestone, and encodes it as PNG.
func WriteChart(p *domain.StudyPlan, w io.Writer) error {
	dc := gg.NewContext(ChartWidth, ChartHeight)
	dc.SetColor(colorBackground)
	dc.Clear()

	title, err := fontFace(18)
	if err != nil {
		return err
	}
	label, err := fontFace(11)
	if err != nil {
		return err
	}

	dc.SetFontFace(title)
	dc.SetColor(colorText)
	dc.DrawStringAnchored("Planned study hours", ChartWidth/2, chartMarginTop/2, 0.5, 0.5)

	dc.SetFontFace(label)
	if !p.HasSchedule() {
		dc.DrawStringAnchored(EmptySchedule, ChartWidth/2, ChartHeight/2, 0.5, 0.5)
		return dc.EncodePNG(w)
	}

	cumulative := cumulativeHours(p.DailyBreakdown)
	maxHours := math.Max(p.TotalHoursNeeded, cumulative[len(cumulative)-1])
	if maxHours <= 0 {
		maxHours = 1
	}
	maxHours = math.Ceil(maxHours)

	plotW := ChartWidth - chartMarginLeft - chartMarginRight
	plotH := ChartHeight - chartMarginTop - chartMarginBottom
	days := len(p.DailyBreakdown)
	x := func(i int) float64 {
		if days == 1 {
			return chartMarginLeft + plotW/2
		}
		return chartMarginLeft + plotW*float64(i)/float64(days-1)
	}
	y := func(h float64) float64 {
		return chartMarginTop + plotH*(1-h/maxHours)
	}

	drawGrid(dc, maxHours, y)

	dc.SetColor(colorAxis)
	dc.SetLineWidth(1)
	dc.DrawLine(chartMarginLeft, chartMarginTop, chartMarginLeft, chartMarginTop+plotH)
	dc.DrawLine(chartMarginLeft, chartMarginTop+plotH, chartMarginLeft+plotW, chartMarginTop+plotH)
	dc.Stroke()

	dc.SetColor(colorText)
	dc.DrawStringAnchored(p.DailyBreakdown[0].DateLabel, x(0), chartMarginTop+plotH+16, 0, 0.5)
	if days > 1 {
		dc.DrawStringAnchored(p.DailyBreakdown[days-1].DateLabel, x(days-1), chartMarginTop+plotH+16, 1, 0.5)
	}

	dc.SetColor(colorLine)
	dc.SetLineWidth(2)
	for i, h := range cumulative {
		if i == 0 {
			dc.MoveTo(x(i), y(h))
			continue
		}
		dc.LineTo(x(i), y(h))
	}
	dc.Stroke()

	for _, m := range p.Milestones {
		if m.DayIndex < 0 || m.DayIndex >= days {
			continue
		}
		cx, cy := x(m.DayIndex), y(math.Min(m.HoursCompleted, maxHours))
		dc.SetColor(colorMilestone)
		dc.DrawCircle(cx, cy, 5)
		dc.Fill()
		dc.SetColor(colorText)
		dc.DrawStringAnchored(fmt.Sprintf("U%d", m.UnitNumber), cx, cy-12, 0.5, 0.5)
	}

	return dc.EncodePNG(w)
}

func drawGrid(dc *gg.Context, maxHours float64, y func(float64) float64) {
	step := math.Max(1, math.Ceil(maxHours/5))
	for h := 0.0; h <= maxHours; h += step {
		dc.SetColor(colorGrid)
		dc.SetLineWidth(1)
		dc.DrawLine(chartMarginLeft, y(h), ChartWidth-chartMarginRight, y(h))
		dc.Stroke()
		dc.SetColor(colorText)
		dc.DrawStringAnchored(FormatHours(h), chartMarginLeft-8, y(h), 1, 0.5)
	}
}

func cumulativeHours(days []domain.DailyBreakdown) []float64 {
	out := make([]float64, len(days))
	total := 0.0
	for i, d := range days {
		total += d.ScheduledMinutes / 60
		out[i] = total
	}
	return out
}
