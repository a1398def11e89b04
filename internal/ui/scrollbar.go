package ui

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/profile-header/internal/coordinator"
)

// ScrollBarProxy is a vertical slider that mirrors the active surface.
// The slider runs bottom to top, so its value is the distance from the end.
type ScrollBarProxy struct {
	slider   *widget.Slider
	onDrag   func(offset float64)
	updating bool

	draggable  bool
	scrollable bool
}

// NewScrollBarProxy creates the proxy; onDrag receives the offset the user dragged to
func NewScrollBarProxy(onDrag func(offset float64)) *ScrollBarProxy {
	p := &ScrollBarProxy{onDrag: onDrag, draggable: true, scrollable: true}

	p.slider = widget.NewSlider(0, 1)
	p.slider.Orientation = widget.Vertical
	p.slider.SetValue(p.slider.Max)
	p.slider.OnChanged = func(value float64) {
		if p.updating || p.onDrag == nil {
			return
		}
		p.onDrag(p.slider.Max - value)
	}
	return p
}

// Content returns the slider widget
func (p *ScrollBarProxy) Content() fyne.CanvasObject {
	return p.slider
}

// Update moves the proxy without reporting a drag.
// A zero maximum means the content fits, so the slider parks at offset 0 and stops accepting drags.
func (p *ScrollBarProxy) Update(update coordinator.ScrollBarUpdate) {
	p.updating = true
	defer func() { p.updating = false }()

	maximum := update.Maximum
	p.scrollable = maximum > 0
	if !p.scrollable {
		maximum = 1
	}
	if p.slider.Max != maximum {
		p.slider.Max = maximum
		p.slider.Refresh()
	}
	if p.scrollable {
		p.slider.SetValue(math.Max(p.slider.Max-update.Value, p.slider.Min))
	} else {
		p.slider.SetValue(p.slider.Max)
	}
	p.syncEnabled()
}

// Offset returns the surface offset the proxy currently shows
func (p *ScrollBarProxy) Offset() float64 {
	return p.slider.Max - p.slider.Value
}

// SetIndicatorMode enables dragging for mouse users and leaves a passive indicator for touch
func (p *ScrollBarProxy) SetIndicatorMode(mode coordinator.IndicatorMode) {
	p.draggable = mode == coordinator.IndicatorMouse
	p.syncEnabled()
}

func (p *ScrollBarProxy) syncEnabled() {
	if p.draggable && p.scrollable {
		if p.slider.Disabled() {
			p.slider.Enable()
		}
		return
	}
	if !p.slider.Disabled() {
		p.slider.Disable()
	}
}
