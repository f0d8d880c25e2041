package viewmodel

import (
	"github.com/RMahshie/eqplot/internal/observe"
	"github.com/RMahshie/eqplot/pkg/models"
)

// MagnitudeResponsePlotViewModel caches the latest magnitude response
// and plot bounds and recomputes the plot path whenever either input
// changes. The path is always the mapper applied to the current
// cached inputs; every input change triggers a full recomputation and
// one force-published emission.
type MagnitudeResponsePlotViewModel struct {
	response models.MagnitudeResponse
	bounds   models.PlotBounds
	mapper   PathMapper
	plot     *observe.Property[models.PlotPath]
	conns    observe.ConnectionBag
}

// NewMagnitudeResponsePlotViewModel snapshots the current value of the
// externally owned response property and subscribes to its changes.
// The property must outlive the view model; call Close before the view
// model's context goes away.
func NewMagnitudeResponsePlotViewModel(
	response *observe.Property[models.MagnitudeResponse],
	mapper PathMapper,
) *MagnitudeResponsePlotViewModel {
	vm := &MagnitudeResponsePlotViewModel{
		response: response.Value(),
		mapper:   mapper,
		plot:     observe.NewProperty[models.PlotPath](nil),
	}
	vm.conns.Add(response.Observe(func(newResponse models.MagnitudeResponse) {
		vm.response = newResponse
		vm.updatePlot()
	}))
	return vm
}

// Plot is the observable plot path for the view.
func (vm *MagnitudeResponsePlotViewModel) Plot() *observe.Property[models.PlotPath] {
	return vm.plot
}

// OnPlotBoundsChanged caches the new bounds and recomputes the path.
func (vm *MagnitudeResponsePlotViewModel) OnPlotBoundsChanged(newBounds models.PlotBounds) {
	vm.bounds = newBounds
	vm.updatePlot()
}

// Close releases the subscription to the upstream response property.
// After Close the view model no longer reacts to response changes.
func (vm *MagnitudeResponsePlotViewModel) Close() {
	vm.conns.ReleaseAll()
}

func (vm *MagnitudeResponsePlotViewModel) updatePlot() {
	vm.plot.Set(vm.mapper.Map(vm.response, vm.bounds))
}
