package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/profile-header/internal/config"
	"github.com/ytget/profile-header/internal/model"
)

// surfaceView is one scrollable tab below the header
type surfaceView struct {
	id     model.SurfaceID
	scroll *container.Scroll
	margin *canvas.Rectangle

	// offset is the last offset reported to the coordinator
	offset float32

	// programmatic is set while the page moves the surface itself
	programmatic bool

	// last reported metrics
	viewport float32
	extent   float32
}

// newSurfaceView wraps body in a vertical scroll with a top margin for the header
func newSurfaceView(id model.SurfaceID, body fyne.CanvasObject, headerHeight float32) *surfaceView {
	margin := canvas.NewRectangle(color.Transparent)
	margin.SetMinSize(fyne.NewSize(0, headerHeight))

	return &surfaceView{
		id:     id,
		margin: margin,
		scroll: container.NewVScroll(container.NewVBox(margin, body)),
	}
}

// Offset returns the current vertical offset
func (sv *surfaceView) Offset() float32 {
	return sv.scroll.Offset.Y
}

// ScrollableHeight returns how far the surface can scroll
func (sv *surfaceView) ScrollableHeight() float32 {
	extent := sv.scroll.Content.MinSize().Height
	if extent <= sv.scroll.Size().Height {
		return 0
	}
	return extent - sv.scroll.Size().Height
}

// setMargin updates the space reserved for the expanded header
func (sv *surfaceView) setMargin(height float32) {
	if sv.margin.MinSize().Height == height {
		return
	}
	sv.margin.SetMinSize(fyne.NewSize(0, height))
	sv.scroll.Refresh()
}

// metricsChanged records the current viewport and extent, reporting whether they differ from the last call
func (sv *surfaceView) metricsChanged() bool {
	viewport := sv.scroll.Size().Height
	extent := sv.scroll.Content.MinSize().Height
	if viewport == sv.viewport && extent == sv.extent {
		return false
	}
	sv.viewport, sv.extent = viewport, extent
	return true
}

// newInfoBody builds the about panel
func newInfoBody(profile *config.Profile, loc *Localization) fyne.CanvasObject {
	about := widget.NewLabelWithStyle(loc.GetText(KeyAbout), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	box := container.NewVBox(about)
	for _, line := range profile.Bio {
		label := widget.NewLabel(line)
		label.Wrapping = fyne.TextWrapWord
		box.Add(label)
	}
	box.Add(widget.NewSeparator())
	for i := 1; i <= InfoFillerLines; i++ {
		box.Add(widget.NewLabel(fmt.Sprintf(ItemLabelFormat, loc.GetText(KeyFiller), i)))
	}
	return box
}

// newListBody builds the list surface, one row per item
func newListBody(profile *config.Profile, loc *Localization) fyne.CanvasObject {
	box := container.NewVBox()
	for i := 1; i <= profile.ItemCount; i++ {
		box.Add(widget.NewLabel(fmt.Sprintf(ItemLabelFormat, loc.GetText(KeyItem), i)))
	}
	return box
}

// newGridBody builds the grid surface of square tiles
func newGridBody(profile *config.Profile, tileSize float32) fyne.CanvasObject {
	tiles := make([]fyne.CanvasObject, 0, profile.ItemCount)
	for i := 1; i <= profile.ItemCount; i++ {
		bg := canvas.NewRectangle(headerColor(ColorNameTile))
		bg.CornerRadius = ListRowPadding
		label := canvas.NewText(fmt.Sprintf("%d", i), headerColor(ColorNameHeader))
		label.Alignment = fyne.TextAlignCenter
		tiles = append(tiles, container.NewStack(bg, container.NewCenter(label)))
	}
	return container.NewGridWrap(fyne.NewSize(tileSize, tileSize), tiles...)
}

// surfacesLayout stacks the surfaces and reports their metrics after each pass
type surfacesLayout struct {
	onLayout func()
}

// Layout gives every surface the full area
func (l *surfacesLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, obj := range objects {
		obj.Move(fyne.NewPos(0, 0))
		obj.Resize(size)
	}
	if l.onLayout != nil {
		l.onLayout()
	}
}

// MinSize returns the largest minimum size of the surfaces
func (l *surfacesLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, 0)
	for _, obj := range objects {
		minSize = minSize.Max(obj.MinSize())
	}
	return minSize
}
