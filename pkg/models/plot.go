package models

// PlotBounds is a widget-local rectangle in pixels.
type PlotBounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty reports whether the bounds enclose no drawable area.
func (b PlotBounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// PlotPoint is a single vertex of a plot polyline, in pixel coordinates
// relative to the plot bounds origin.
type PlotPoint struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// PlotPath is the polyline a plot view renders. An empty path draws nothing.
type PlotPath []PlotPoint
