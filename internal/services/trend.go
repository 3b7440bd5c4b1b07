package services

// TrendLine is an ordinary least squares fit of a value series against
// its zero-based sequential index. The dashboard overlays it on the
// daily-volume chart; fitted values are Intercept + Slope*i.
type TrendLine struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	R2        float64 `json:"r2"`
}

// FitTrend fits a straight line through the series. It reports false
// when the series is too short (or degenerate) to carry a trend.
func FitTrend(values []float64) (TrendLine, bool) {
	n := len(values)
	if n < 2 {
		return TrendLine{}, false
	}

	meanX := float64(n-1) / 2
	sumY := 0.0
	for _, v := range values {
		sumY += v
	}
	meanY := sumY / float64(n)

	num := 0.0
	den := 0.0
	for i, v := range values {
		dx := float64(i) - meanX
		dy := v - meanY
		num += dx * dy
		den += dx * dx
	}
	if den == 0 {
		return TrendLine{}, false
	}
	slope := num / den

	sst := 0.0
	sse := 0.0
	for i, v := range values {
		pred := meanY + slope*(float64(i)-meanX)
		diff := v - meanY
		sst += diff * diff
		resid := v - pred
		sse += resid * resid
	}
	r2 := 0.0
	if sst > 0 {
		r2 = 1 - (sse / sst)
	}

	return TrendLine{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
		R2:        r2,
	}, true
}
