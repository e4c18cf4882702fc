package charts

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aclements/go-moremath/stats"
	chart "github.com/wcharczuk/go-chart/v2"
)

const (
	chartWidth  = 1000
	chartHeight = 600
)

var errNoData = errors.New("no data to plot")

// Bar draws one bar per label.
func Bar(title string, labels []string, values []float64) (*Chart, error) {
	if len(labels) == 0 {
		return nil, errNoData
	}
	bars := make([]chart.Value, len(labels))
	for i, label := range labels {
		bars[i] = chart.Value{Label: label, Value: values[i]}
	}
	graph := chart.BarChart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   60,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Bars:       bars,
	}
	return New(title, graph.Render), nil
}

// TimeLine draws a line through (time, value) points.
func TimeLine(title string, xs []time.Time, ys []float64) (*Chart, error) {
	if len(xs) < 2 {
		return nil, errNoData
	}
	graph := chart.Chart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Series: []chart.Series{
			chart.TimeSeries{Name: title, XValues: xs, YValues: ys},
		},
	}
	return New(title, graph.Render), nil
}

// StepLine draws a steps-post line through (time, value) points: each
// value holds until the next point.
func StepLine(title string, xs []time.Time, ys []float64) (*Chart, error) {
	if len(xs) < 2 {
		return nil, errNoData
	}
	stepX := make([]time.Time, 0, 2*len(xs)-1)
	stepY := make([]float64, 0, 2*len(xs)-1)
	for i := range xs {
		if i > 0 {
			stepX = append(stepX, xs[i])
			stepY = append(stepY, ys[i-1])
		}
		stepX = append(stepX, xs[i])
		stepY = append(stepY, ys[i])
	}
	graph := chart.Chart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Series: []chart.Series{
			chart.TimeSeries{Name: title, XValues: stepX, YValues: stepY},
		},
	}
	return New(title, graph.Render), nil
}

// Scatter draws (x, y) points with no connecting stroke.
func Scatter(title, xLabel, yLabel string, xs, ys []float64) (*Chart, error) {
	if len(xs) < 2 {
		return nil, errNoData
	}
	graph := chart.Chart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		XAxis:      chart.XAxis{Name: xLabel},
		YAxis:      chart.YAxis{Name: yLabel},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    title,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: 0,
					DotWidth:    4,
					DotColor:    chart.GetDefaultColor(0),
				},
			},
		},
	}
	return New(title, graph.Render), nil
}

// Pie draws one slice per label, sized by value.
func Pie(title string, labels []string, values []float64) (*Chart, error) {
	if len(labels) == 0 {
		return nil, errNoData
	}
	slices := make([]chart.Value, len(labels))
	for i, label := range labels {
		slices[i] = chart.Value{Label: label, Value: values[i]}
	}
	graph := chart.PieChart{
		Title:  title,
		Width:  chartHeight,
		Height: chartHeight,
		Values: slices,
	}
	return New(title, graph.Render), nil
}

// Histogram bins the values into the given number of equal-width bins
// and draws them as bars labelled by bin start.
func Histogram(title string, values []float64, bins int) (*Chart, error) {
	clean := dropNaN(values)
	if len(clean) == 0 {
		return nil, errNoData
	}
	if bins < 1 {
		bins = 1
	}
	lo, hi := clean[0], clean[0]
	for _, v := range clean {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	width := (hi - lo) / float64(bins)
	if width == 0 {
		width = 1
	}
	counts := make([]int, bins)
	for _, v := range clean {
		b := int((v - lo) / width)
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}
	bars := make([]chart.Value, bins)
	for i, n := range counts {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%.0f", lo+float64(i)*width),
			Value: float64(n),
		}
	}
	graph := chart.BarChart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   (chartWidth - 100) / bins,
		BarSpacing: 2,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Bars:       bars,
	}
	return New(title, graph.Render), nil
}

// Box draws a five-number box per group: whisker from min to max, a
// thick bar from Q1 to Q3, and a median tick.
func Box(title string, labels []string, groups [][]float64) (*Chart, error) {
	if len(labels) == 0 {
		return nil, errNoData
	}
	var seriesList []chart.Series
	ticks := []chart.Tick{{Value: -0.5, Label: ""}}
	for i, group := range groups {
		s := sampleOf(group)
		if len(s.Xs) == 0 {
			continue
		}
		x := float64(i)
		color := chart.GetDefaultColor(i)
		seriesList = append(seriesList,
			chart.ContinuousSeries{
				XValues: []float64{x, x},
				YValues: []float64{s.Quantile(0), s.Quantile(1)},
				Style:   chart.Style{StrokeWidth: 1.5, StrokeColor: color},
			},
			chart.ContinuousSeries{
				XValues: []float64{x, x},
				YValues: []float64{s.Quantile(0.25), s.Quantile(0.75)},
				Style:   chart.Style{StrokeWidth: 20, StrokeColor: color},
			},
			chart.ContinuousSeries{
				XValues: []float64{x - 0.2, x + 0.2},
				YValues: []float64{s.Quantile(0.5), s.Quantile(0.5)},
				Style:   chart.Style{StrokeWidth: 2, StrokeColor: chart.ColorBlack},
			},
		)
		ticks = append(ticks, chart.Tick{Value: x, Label: labels[i]})
	}
	if len(seriesList) == 0 {
		return nil, errNoData
	}
	ticks = append(ticks, chart.Tick{Value: float64(len(labels)) - 0.5, Label: ""})
	graph := chart.Chart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		XAxis: chart.XAxis{
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(len(labels)) - 0.5},
		},
		Series: seriesList,
	}
	return New(title, graph.Render), nil
}

// Violin draws a mirrored kernel density profile per group, centred on
// the group's x position.
func Violin(title string, labels []string, groups [][]float64) (*Chart, error) {
	if len(labels) == 0 {
		return nil, errNoData
	}
	const profilePoints = 40
	var seriesList []chart.Series
	ticks := []chart.Tick{{Value: -0.5, Label: ""}}
	for i, group := range groups {
		s := sampleOf(group)
		if len(s.Xs) < 2 {
			continue
		}
		kde := &stats.KDE{Sample: *s}
		lo, hi := s.Quantile(0), s.Quantile(1)
		if lo == hi {
			continue
		}
		span := hi - lo
		lo -= span * 0.1
		hi += span * 0.1

		ys := make([]float64, profilePoints)
		density := make([]float64, profilePoints)
		maxDensity := 0.0
		for p := 0; p < profilePoints; p++ {
			y := lo + (hi-lo)*float64(p)/float64(profilePoints-1)
			ys[p] = y
			density[p] = kde.PDF(y)
			maxDensity = math.Max(maxDensity, density[p])
		}
		if maxDensity == 0 {
			continue
		}

		x := float64(i)
		color := chart.GetDefaultColor(i)
		left := make([]float64, profilePoints)
		right := make([]float64, profilePoints)
		for p := range density {
			halfWidth := 0.4 * density[p] / maxDensity
			left[p] = x - halfWidth
			right[p] = x + halfWidth
		}
		style := chart.Style{StrokeWidth: 1.5, StrokeColor: color}
		seriesList = append(seriesList,
			chart.ContinuousSeries{Name: labels[i], XValues: left, YValues: ys, Style: style},
			chart.ContinuousSeries{XValues: right, YValues: ys, Style: style},
		)
		ticks = append(ticks, chart.Tick{Value: x, Label: labels[i]})
	}
	if len(seriesList) == 0 {
		return nil, errNoData
	}
	ticks = append(ticks, chart.Tick{Value: float64(len(labels)) - 0.5, Label: ""})
	graph := chart.Chart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		XAxis: chart.XAxis{
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(len(labels)) - 0.5},
		},
		Series: seriesList,
	}
	return New(title, graph.Render), nil
}

// StackedArea draws one filled band per series name, stacked over the
// shared x values. rows[i] must align with names[i] and hold one value
// per x.
func StackedArea(title string, xs []float64, names []string, rows [][]float64) (*Chart, error) {
	if len(xs) < 2 || len(names) == 0 {
		return nil, errNoData
	}
	// Cumulative totals, painted top-of-stack first so each later
	// (lower) band overdraws the fill beneath it.
	cumulative := make([][]float64, len(names))
	running := make([]float64, len(xs))
	for i := range names {
		for j := range xs {
			running[j] += rows[i][j]
		}
		cumulative[i] = append([]float64(nil), running...)
	}
	var seriesList []chart.Series
	for i := len(names) - 1; i >= 0; i-- {
		color := chart.GetDefaultColor(i)
		seriesList = append(seriesList, chart.ContinuousSeries{
			Name:    names[i],
			XValues: xs,
			YValues: cumulative[i],
			Style: chart.Style{
				StrokeWidth: 1,
				StrokeColor: color,
				FillColor:   color,
			},
		})
	}
	graph := chart.Chart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Series:     seriesList,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return New(title, graph.Render), nil
}

// Line draws a plain line through (x, y) points.
func Line(title string, xs, ys []float64) (*Chart, error) {
	if len(xs) < 2 {
		return nil, errNoData
	}
	graph := chart.Chart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: title, XValues: xs, YValues: ys},
		},
	}
	return New(title, graph.Render), nil
}

func dropNaN(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

func sampleOf(xs []float64) *stats.Sample {
	s := &stats.Sample{Xs: dropNaN(xs)}
	return s.Sort()
}
