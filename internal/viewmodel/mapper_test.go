package viewmodel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/eqplot/pkg/models"
)

func TestLogFrequencyMapperEmptyInputs(t *testing.T) {
	mapper := NewLogFrequencyMapper()
	bounds := models.PlotBounds{Width: 100, Height: 100}

	assert.Empty(t, mapper.Map(nil, bounds))
	assert.Empty(t, mapper.Map(models.MagnitudeResponse{}, bounds))
	assert.Empty(t, mapper.Map(
		models.MagnitudeResponse{{Frequency: 100, Magnitude: 0}},
		models.PlotBounds{},
	))
}

func TestLogFrequencyMapperEndpoints(t *testing.T) {
	mapper := NewLogFrequencyMapper()
	bounds := models.PlotBounds{Width: 200, Height: 100}

	response := models.MagnitudeResponse{
		{Frequency: mapper.MinFrequencyHz, Magnitude: mapper.MaxMagnitudeDB},
		{Frequency: mapper.MaxFrequencyHz, Magnitude: mapper.MinMagnitudeDB},
	}
	path := mapper.Map(response, bounds)
	require.Len(t, path, 2)

	assert.InDelta(t, 0, float64(path[0].X), 1e-6)
	assert.InDelta(t, 0, float64(path[0].Y), 1e-6)
	assert.InDelta(t, 200, float64(path[1].X), 1e-6)
	assert.InDelta(t, 100, float64(path[1].Y), 1e-6)
}

func TestLogFrequencyMapperXIsMonotonicInFrequency(t *testing.T) {
	mapper := NewLogFrequencyMapper()
	bounds := models.PlotBounds{Width: 300, Height: 150}

	response := models.MagnitudeResponse{
		{Frequency: 50, Magnitude: 0},
		{Frequency: 500, Magnitude: -3},
		{Frequency: 5000, Magnitude: -24},
	}
	path := mapper.Map(response, bounds)
	require.Len(t, path, 3)

	for i := 1; i < len(path); i++ {
		assert.Greater(t, path[i].X, path[i-1].X)
	}
}

func TestLogFrequencyMapperClampsOutOfRangeMagnitude(t *testing.T) {
	mapper := NewLogFrequencyMapper()
	bounds := models.PlotBounds{Width: 100, Height: 100}

	response := models.MagnitudeResponse{
		{Frequency: 1000, Magnitude: 40},   // above display range
		{Frequency: 2000, Magnitude: -120}, // below display range
	}
	path := mapper.Map(response, bounds)
	require.Len(t, path, 2)

	assert.InDelta(t, 0, float64(path[0].Y), 1e-6)
	assert.InDelta(t, 100, float64(path[1].Y), 1e-6)
}

func TestLogFrequencyMapperDropsNonFinitePoints(t *testing.T) {
	mapper := NewLogFrequencyMapper()
	bounds := models.PlotBounds{Width: 100, Height: 100}

	response := models.MagnitudeResponse{
		{Frequency: 100, Magnitude: 0},
		{Frequency: 200, Magnitude: math.Inf(-1)},
		{Frequency: 0, Magnitude: -3},
		{Frequency: 400, Magnitude: math.NaN()},
		{Frequency: 800, Magnitude: -6},
	}
	path := mapper.Map(response, bounds)

	require.Len(t, path, 2)
	for _, pt := range path {
		assert.False(t, math.IsNaN(float64(pt.X)) || math.IsInf(float64(pt.X), 0))
		assert.False(t, math.IsNaN(float64(pt.Y)) || math.IsInf(float64(pt.Y), 0))
	}
}

func TestLogFrequencyMapperIsDeterministic(t *testing.T) {
	mapper := NewLogFrequencyMapper()
	bounds := models.PlotBounds{Width: 123, Height: 77}
	response := models.MagnitudeResponse{
		{Frequency: 31, Magnitude: -0.5},
		{Frequency: 310, Magnitude: -9.5},
	}

	assert.Equal(t, mapper.Map(response, bounds), mapper.Map(response, bounds))
}

func TestLogFrequencyMapperOffsetBounds(t *testing.T) {
	mapper := NewLogFrequencyMapper()
	bounds := models.PlotBounds{X: 10, Y: 20, Width: 100, Height: 50}

	path := mapper.Map(models.MagnitudeResponse{
		{Frequency: mapper.MinFrequencyHz, Magnitude: mapper.MaxMagnitudeDB},
	}, bounds)
	require.Len(t, path, 1)

	assert.InDelta(t, 10, float64(path[0].X), 1e-6)
	assert.InDelta(t, 20, float64(path[0].Y), 1e-6)
}
