package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/RMahshie/eqplot/internal/config"
	"github.com/RMahshie/eqplot/internal/eq"
	"github.com/RMahshie/eqplot/internal/viewmodel"
)

// Wire performs the manual dependency injection that connects the
// filter model to its views: the slider view model gets the model's
// cutoff-changed use case, and the plot view model observes the
// model's magnitude response. Returns the composed content for the
// window.
//
// Note the slider value deliberately flows one way: model-side cutoff
// changes are not written back into the slider view model's property.
func Wire(cfg *config.Config, filter *eq.Filter) fyne.CanvasObject {
	eqComponent := NewEqFilterComponent(
		viewmodel.NewEqFilterViewModel(filter.OnCutoffFrequencyChanged, cfg.UI.InitialCutoffHz),
		cfg.UI,
	)

	plotComponent := NewPlotComponent(
		viewmodel.NewMagnitudeResponsePlotViewModel(
			filter.MagnitudeResponse(),
			viewmodel.NewLogFrequencyMapper(),
		),
	)

	return container.NewBorder(nil, eqComponent, nil, nil, plotComponent)
}
