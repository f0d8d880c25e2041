// Package eq holds the equalizer filter model. The model owns the true
// cutoff frequency and publishes a derived magnitude response; views
// never talk to it directly, only through injected use-case callbacks.
package eq

import (
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/eqplot/internal/dsp"
	"github.com/RMahshie/eqplot/internal/observe"
	"github.com/RMahshie/eqplot/pkg/models"
)

// Filter is the equalizer filter model. The magnitude response is a
// pure function of the current cutoff and is recomputed in full and
// force-published on every cutoff change; there is no dirty flag.
type Filter struct {
	cutoffHz   float64
	calculator dsp.MagnitudeCalculator
	response   *observe.Property[models.MagnitudeResponse]
}

// NewFilter creates a filter with the given calculator and initial
// cutoff. The response property starts out already computed for the
// initial cutoff so downstream observers have a snapshot to read.
func NewFilter(calculator dsp.MagnitudeCalculator, initialCutoffHz float64) *Filter {
	return &Filter{
		cutoffHz:   initialCutoffHz,
		calculator: calculator,
		response:   observe.NewProperty(calculator.Calculate(initialCutoffHz)),
	}
}

// CutoffFrequency returns the current cutoff in Hz.
func (f *Filter) CutoffFrequency() float64 {
	return f.cutoffHz
}

// MagnitudeResponse exposes the derived response for observers.
func (f *Filter) MagnitudeResponse() *observe.Property[models.MagnitudeResponse] {
	return f.response
}

// OnCutoffFrequencyChanged stores the new cutoff, recomputes the
// magnitude response, and publishes it to all observers. Publishing is
// unconditional: each call produces exactly one notification even if
// the recomputed response is identical to the previous one.
func (f *Filter) OnCutoffFrequencyChanged(newCutoffHz float64) {
	f.cutoffHz = newCutoffHz
	log.Debug().Float64("cutoff_hz", newCutoffHz).Msg("Recomputing magnitude response")
	f.response.Set(f.calculator.Calculate(newCutoffHz))
}
