package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/RMahshie/eqplot/internal/observe"
	"github.com/RMahshie/eqplot/internal/viewmodel"
	"github.com/RMahshie/eqplot/pkg/models"
)

const plotStrokeWidth = 5

var plotStrokeColor = color.White

// PlotComponent renders the magnitude-response plot path. Any change
// to the view model's plot property triggers a repaint; resizing
// forwards the new bounds to the view model, which recomputes the
// path. The component takes ownership of its view model.
type PlotComponent struct {
	widget.BaseWidget

	vm    *viewmodel.MagnitudeResponsePlotViewModel
	conns observe.ConnectionBag
}

// NewPlotComponent creates the plot view bound to vm.
func NewPlotComponent(vm *viewmodel.MagnitudeResponsePlotViewModel) *PlotComponent {
	p := &PlotComponent{vm: vm}
	p.ExtendBaseWidget(p)
	p.conns.Add(vm.Plot().Observe(func(models.PlotPath) {
		p.Refresh()
	}))
	return p
}

// CreateRenderer implements fyne.Widget.
func (p *PlotComponent) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff})
	return &plotRenderer{component: p, background: background}
}

// Close releases the component's subscriptions and shuts down the
// view model's own upstream subscription.
func (p *PlotComponent) Close() {
	p.conns.ReleaseAll()
	p.vm.Close()
}

type plotRenderer struct {
	component  *PlotComponent
	background *canvas.Rectangle
	segments   []*canvas.Line
}

func (r *plotRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.component.vm.OnPlotBoundsChanged(models.PlotBounds{
		Width:  int(size.Width),
		Height: int(size.Height),
	})
}

func (r *plotRenderer) MinSize() fyne.Size {
	return fyne.NewSize(240, 160)
}

func (r *plotRenderer) Refresh() {
	r.rebuildSegments()
	canvas.Refresh(r.component)
}

func (r *plotRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.segments)+1)
	objects = append(objects, r.background)
	for _, seg := range r.segments {
		objects = append(objects, seg)
	}
	return objects
}

func (r *plotRenderer) Destroy() {
	r.component.Close()
}

// rebuildSegments converts the current plot path into line segments.
// The path is already in widget-local pixel coordinates.
func (r *plotRenderer) rebuildSegments() {
	path := r.component.vm.Plot().Value()
	r.segments = r.segments[:0]
	for i := 1; i < len(path); i++ {
		line := canvas.NewLine(plotStrokeColor)
		line.StrokeWidth = plotStrokeWidth
		line.Position1 = fyne.NewPos(path[i-1].X, path[i-1].Y)
		line.Position2 = fyne.NewPos(path[i].X, path[i].Y)
		r.segments = append(r.segments, line)
	}
}
