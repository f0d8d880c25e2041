// Package dsp provides the magnitude-response calculation behind the
// equalizer filter model. The calculation is pluggable; the default
// evaluates a Butterworth low-pass cascade over a log-spaced grid.
package dsp

import (
	"math"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design/pass"

	"github.com/RMahshie/eqplot/pkg/models"
)

// MagnitudeCalculator computes a filter's magnitude response for a
// given cutoff frequency. Implementations must be deterministic.
type MagnitudeCalculator interface {
	Calculate(cutoffHz float64) models.MagnitudeResponse
}

// ButterworthCalculator evaluates a Butterworth low-pass biquad cascade
// at a fixed set of log-spaced frequencies.
type ButterworthCalculator struct {
	sampleRate float64
	order      int
	grid       []float64
}

// NewButterworthCalculator builds a calculator with a grid of points
// log-spaced frequencies between minHz and maxHz.
func NewButterworthCalculator(sampleRate float64, order, points int, minHz, maxHz float64) *ButterworthCalculator {
	return &ButterworthCalculator{
		sampleRate: sampleRate,
		order:      order,
		grid:       LogSpacedFrequencies(minHz, maxHz, points),
	}
}

// Calculate designs the cascade for cutoffHz and samples its magnitude
// in dB across the grid.
func (c *ButterworthCalculator) Calculate(cutoffHz float64) models.MagnitudeResponse {
	chain := biquad.NewChain(pass.ButterworthLP(cutoffHz, c.order, c.sampleRate))
	response := make(models.MagnitudeResponse, 0, len(c.grid))
	for _, freq := range c.grid {
		response = append(response, models.FrequencyPoint{
			Frequency: freq,
			Magnitude: chain.MagnitudeDB(freq, c.sampleRate),
		})
	}
	return response
}

// FixedCalculator always returns the same response regardless of
// cutoff. It stands in for the real calculation in tests.
type FixedCalculator struct {
	Response models.MagnitudeResponse
}

// Calculate returns the fixed response.
func (c FixedCalculator) Calculate(float64) models.MagnitudeResponse {
	return c.Response
}

// LogSpacedFrequencies returns n frequencies spaced logarithmically
// from minHz to maxHz inclusive.
func LogSpacedFrequencies(minHz, maxHz float64, n int) []float64 {
	if n <= 0 || minHz <= 0 || maxHz < minHz {
		return nil
	}
	if n == 1 {
		return []float64{minHz}
	}
	freqs := make([]float64, n)
	step := math.Log(maxHz/minHz) / float64(n-1)
	for i := range freqs {
		freqs[i] = minHz * math.Exp(float64(i)*step)
	}
	// Pin the endpoint exactly to avoid drift from repeated Exp.
	freqs[n-1] = maxHz
	return freqs
}
