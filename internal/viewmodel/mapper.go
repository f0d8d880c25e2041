package viewmodel

import (
	"math"

	"github.com/RMahshie/eqplot/pkg/models"
)

// PathMapper turns a magnitude response and plot bounds into the
// polyline the plot view renders. Implementations must be pure
// functions of their inputs: same response and bounds, same path.
type PathMapper interface {
	Map(response models.MagnitudeResponse, bounds models.PlotBounds) models.PlotPath
}

// LogFrequencyMapper maps frequency onto a logarithmic x axis and
// magnitude (dB) onto a linear y axis, clamped to the magnitude range.
type LogFrequencyMapper struct {
	MinFrequencyHz float64
	MaxFrequencyHz float64
	MinMagnitudeDB float64
	MaxMagnitudeDB float64
}

// NewLogFrequencyMapper returns a mapper covering the audible band
// with a display range of -60..+6 dB.
func NewLogFrequencyMapper() LogFrequencyMapper {
	return LogFrequencyMapper{
		MinFrequencyHz: 20,
		MaxFrequencyHz: 20000,
		MinMagnitudeDB: -60,
		MaxMagnitudeDB: 6,
	}
}

// Map converts each response point into pixel coordinates inside
// bounds. Empty responses or degenerate bounds produce an empty path.
// Points with non-finite magnitude are dropped so the path never
// contains NaN or Inf coordinates.
func (m LogFrequencyMapper) Map(response models.MagnitudeResponse, bounds models.PlotBounds) models.PlotPath {
	if len(response) == 0 || bounds.Empty() {
		return nil
	}
	freqSpan := math.Log10(m.MaxFrequencyHz / m.MinFrequencyHz)
	magSpan := m.MaxMagnitudeDB - m.MinMagnitudeDB
	if freqSpan <= 0 || magSpan <= 0 {
		return nil
	}

	path := make(models.PlotPath, 0, len(response))
	for _, pt := range response {
		if pt.Frequency <= 0 || math.IsNaN(pt.Magnitude) || math.IsInf(pt.Magnitude, 0) {
			continue
		}
		fx := math.Log10(pt.Frequency/m.MinFrequencyHz) / freqSpan
		fy := (pt.Magnitude - m.MinMagnitudeDB) / magSpan
		fx = clamp01(fx)
		fy = clamp01(fy)
		path = append(path, models.PlotPoint{
			X: float32(float64(bounds.X) + fx*float64(bounds.Width)),
			Y: float32(float64(bounds.Y) + (1-fy)*float64(bounds.Height)),
		})
	}
	return path
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
