// Package ui contains the Fyne views. Each view exclusively owns its
// view model and keeps its subscriptions in a connection bag so they
// can be released when the view is torn down.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/RMahshie/eqplot/internal/config"
	"github.com/RMahshie/eqplot/internal/observe"
	"github.com/RMahshie/eqplot/internal/viewmodel"
)

// EqFilterComponent binds a frequency slider to the filter view model
// in both directions: user interaction pushes the value into the view
// model, and observable changes push the value into the widget. The
// silent flag suppresses the user-change path during programmatic
// sets so a model-driven update cannot loop back into the model.
type EqFilterComponent struct {
	widget.BaseWidget

	vm     *viewmodel.EqFilterViewModel
	slider *widget.Slider
	silent bool
	conns  observe.ConnectionBag
}

// NewEqFilterComponent creates the slider view bound to vm. The
// component takes ownership of vm.
func NewEqFilterComponent(vm *viewmodel.EqFilterViewModel, cfg config.UIConfig) *EqFilterComponent {
	c := &EqFilterComponent{vm: vm}

	c.slider = widget.NewSlider(cfg.SliderMinHz, cfg.SliderMaxHz)
	c.slider.Step = cfg.SliderStepHz

	c.setSilently(vm.FrequencySliderValue().Value())

	c.slider.OnChanged = func(v float64) {
		if c.silent {
			return
		}
		c.vm.OnCutoffFrequencyChanged(v)
	}

	c.conns.Add(vm.FrequencySliderValue().Observe(func(newValue float64) {
		c.setSilently(newValue)
	}))

	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget.
func (c *EqFilterComponent) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.slider)
}

// Close releases the component's subscriptions. The view model's
// properties must not be observed after this.
func (c *EqFilterComponent) Close() {
	c.conns.ReleaseAll()
}

// setSilently writes the slider position without re-triggering the
// user-interaction callback.
func (c *EqFilterComponent) setSilently(v float64) {
	c.silent = true
	c.slider.SetValue(v)
	c.silent = false
}
