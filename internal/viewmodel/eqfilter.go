// Package viewmodel adapts between model state and UI-observable
// state. View-models hold no widget references; views subscribe to
// their properties and push user input into their On* methods.
package viewmodel

import (
	"github.com/RMahshie/eqplot/internal/observe"
)

// CutoffFrequencyChangedUseCase is the model-facing callback a view
// model invokes when the user changes the cutoff frequency.
type CutoffFrequencyChangedUseCase func(newCutoffHz float64)

// EqFilterViewModel mediates between the frequency slider and the
// filter model. User-driven changes go out through the injected
// use case only; they are not written back into the slider property.
type EqFilterViewModel struct {
	frequencySliderValue *observe.Property[float64]
	cutoffChanged        CutoffFrequencyChangedUseCase
}

// NewEqFilterViewModel creates a view model whose slider property
// starts at initialHz.
func NewEqFilterViewModel(onCutoffChanged CutoffFrequencyChangedUseCase, initialHz float64) *EqFilterViewModel {
	return &EqFilterViewModel{
		frequencySliderValue: observe.NewProperty(initialHz),
		cutoffChanged:        onCutoffChanged,
	}
}

// FrequencySliderValue is the observable slider position in Hz.
func (vm *EqFilterViewModel) FrequencySliderValue() *observe.Property[float64] {
	return vm.frequencySliderValue
}

// OnCutoffFrequencyChanged forwards a user-driven value change to the
// model via the injected use case.
func (vm *EqFilterViewModel) OnCutoffFrequencyChanged(newValue float64) {
	vm.cutoffChanged(newValue)
}
