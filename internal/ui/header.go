package ui

import (
	"math"
	"strings"
	"unicode"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/profile-header/internal/animation"
	"github.com/ytget/profile-header/internal/config"
	"github.com/ytget/profile-header/internal/model"
)

// HeaderView draws the collapsible profile header.
// It lays out its own objects from the last applied frame.
type HeaderView struct {
	config config.HeaderConfig

	background *canvas.Rectangle
	avatar     *canvas.Circle
	initials   *canvas.Text
	name       *canvas.Text
	status     *canvas.Text
	buttons    []*widget.Button
	tabs       []*widget.Button

	frame   animation.Frame
	content *fyne.Container
}

// NewHeaderView creates the header for a profile.
// onAction and onTab receive the index of the tapped action button or tab.
func NewHeaderView(profile *config.Profile, tabLabels []string, onAction, onTab func(int)) *HeaderView {
	h := &HeaderView{
		config:     profile.Header,
		background: canvas.NewRectangle(headerColor(ColorNameHeader)),
		avatar:     canvas.NewCircle(headerColor(ColorNameAvatar)),
		initials:   canvas.NewText(initialsOf(profile.DisplayName), theme.Color(theme.ColorNameForeground)),
		name:       canvas.NewText(profile.DisplayName, theme.Color(theme.ColorNameForeground)),
		status:     canvas.NewText(profile.Status, theme.Color(theme.ColorNameForeground)),
	}

	h.initials.Alignment = fyne.TextAlignCenter
	h.initials.TextStyle = fyne.TextStyle{Bold: true}
	h.initials.TextSize = float32(h.config.AvatarSize) * InitialsScale
	h.name.TextStyle = fyne.TextStyle{Bold: true}
	h.name.TextSize = float32(h.config.UsernameSize)
	h.status.TextSize = StatusTextSize

	objects := []fyne.CanvasObject{h.background, h.avatar, h.initials, h.name, h.status}

	for i, label := range profile.Actions {
		index := i
		btn := widget.NewButton(label, func() {
			if onAction != nil {
				onAction(index)
			}
		})
		h.buttons = append(h.buttons, btn)
		objects = append(objects, btn)
	}

	for i, label := range tabLabels {
		index := i
		tab := widget.NewButton(label, func() {
			if onTab != nil {
				onTab(index)
			}
		})
		tab.Importance = widget.LowImportance
		h.tabs = append(h.tabs, tab)
		objects = append(objects, tab)
	}

	h.content = container.New(h, objects...)
	return h
}

// Content returns the canvas object holding the header
func (h *HeaderView) Content() fyne.CanvasObject {
	return h.content
}

// ButtonCount returns the number of action buttons
func (h *HeaderView) ButtonCount() int {
	return len(h.buttons)
}

// Height returns the expanded header height, which is also the top margin of every surface
func (h *HeaderView) Height() float32 {
	return h.avatarBand() + h.usernameBand() + h.buttonsBand() + float32(math.Round(h.config.PivotHeight))
}

// Geometry measures the header for the animation engine
func (h *HeaderView) Geometry(divisor float64) model.Geometry {
	g := model.Geometry{
		AvatarHeight:        float64(h.avatarBand()),
		UsernameHeight:      float64(h.usernameBand()),
		ActionButtonsHeight: float64(h.buttonsBand()),
		ScaleDivisor:        divisor,
		HeaderHeight:        float64(h.Height()),
	}
	return g.Rounded()
}

// Apply stores a frame and redraws the header from it
func (h *HeaderView) Apply(frame animation.Frame) {
	h.frame = frame

	opacity := frame.Lookup(model.ElementAvatar, model.PropertyOpacity, 1)
	h.avatar.FillColor = withOpacity(headerColor(ColorNameAvatar), opacity)
	h.initials.Color = withOpacity(theme.Color(theme.ColorNameForeground), opacity)

	scale := float32(frame.Lookup(model.ElementUsername, model.PropertyScaleY, 1))
	h.name.TextSize = float32(h.config.UsernameSize) * scale
	h.status.TextSize = StatusTextSize * scale

	for i, btn := range h.buttons {
		if frame.Button(i, model.PropertyOpacity, 1) < MinVisibleOpacity {
			btn.Hide()
		} else {
			btn.Show()
		}
	}

	h.content.Refresh()
}

// SetButtonsEnabled switches hit testing and focus for the action buttons
func (h *HeaderView) SetButtonsEnabled(enabled bool) {
	for _, btn := range h.buttons {
		if enabled {
			btn.Enable()
		} else {
			btn.Disable()
		}
	}
}

// SetSelectedTab highlights the pivot tab at index
func (h *HeaderView) SetSelectedTab(index int) {
	for i, tab := range h.tabs {
		if i == index {
			tab.Importance = widget.HighImportance
		} else {
			tab.Importance = widget.LowImportance
		}
		tab.Refresh()
	}
}

// SetTabLabels renames the pivot tabs after a language change
func (h *HeaderView) SetTabLabels(labels []string) {
	for i, tab := range h.tabs {
		if i < len(labels) {
			tab.SetText(labels[i])
		}
	}
}

// Layout places every header object for the current frame
func (h *HeaderView) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	f := h.frame
	width := size.Width
	avatarBand := h.avatarBand()
	usernameBand := h.usernameBand()
	buttonsBand := h.buttonsBand()

	offset := float32(f.Lookup(model.ElementHeaderBackground, model.PropertyOffsetY, 0))
	h.background.Move(fyne.NewPos(0, offset))
	h.background.Resize(fyne.NewSize(width, h.Height()))

	// avatar
	diameter := float32(h.config.AvatarSize)
	avatarTop := float32(h.config.AvatarMargin) + float32(f.Lookup(model.ElementAvatar, model.PropertyTranslateY, 0))
	h.avatar.Move(fyne.NewPos((width-diameter)/2, avatarTop))
	h.avatar.Resize(fyne.NewSize(diameter, diameter))
	initialsSize := h.initials.MinSize()
	h.initials.Move(fyne.NewPos((width-diameter)/2, avatarTop+(diameter-initialsSize.Height)/2))
	h.initials.Resize(fyne.NewSize(diameter, initialsSize.Height))

	// username block, scaled around its top centre
	scale := float32(f.Lookup(model.ElementUsername, model.PropertyScaleY, 1))
	nameTop := avatarBand + float32(f.Lookup(model.ElementUsername, model.PropertyTranslateY, 0))
	nameSize := h.name.MinSize()
	h.name.Move(fyne.NewPos((width-nameSize.Width)/2, nameTop))
	h.name.Resize(nameSize)
	statusSize := h.status.MinSize()
	h.status.Move(fyne.NewPos((width-statusSize.Width)/2, nameTop+nameSize.Height+UsernameGap*scale))
	h.status.Resize(statusSize)

	// action buttons, each scaled inside an equal slot
	if n := len(h.buttons); n > 0 {
		rowTop := avatarBand + usernameBand + float32(f.Lookup(model.ElementActionButtons, model.PropertyTranslateY, 0))
		slot := width / float32(n)
		padding := theme.Padding()
		for i, btn := range h.buttons {
			w := slot * ActionSlotFill * float32(f.Button(i, model.PropertyScaleX, 1))
			ht := (buttonsBand - 2*padding) * float32(f.Button(i, model.PropertyScaleY, 1))
			x := slot*float32(i) + (slot-w)/2
			y := rowTop + (buttonsBand-ht)/2
			btn.Move(fyne.NewPos(x, y))
			btn.Resize(fyne.NewSize(w, ht))
		}
	}

	// pivot tabs
	if n := len(h.tabs); n > 0 {
		pivotTop := avatarBand + usernameBand + buttonsBand + float32(f.Lookup(model.ElementPivotTabs, model.PropertyTranslateY, 0))
		tabWidth := width / float32(n)
		for i, tab := range h.tabs {
			tab.Move(fyne.NewPos(tabWidth*float32(i), pivotTop))
			tab.Resize(fyne.NewSize(tabWidth, float32(h.config.PivotHeight)))
		}
	}
}

// MinSize returns the expanded header height; width follows the window
func (h *HeaderView) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, h.Height())
}

func (h *HeaderView) avatarBand() float32 {
	return float32(math.Round(h.config.AvatarSize + 2*h.config.AvatarMargin))
}

// usernameBand is measured at full scale so it does not change while the header animates
func (h *HeaderView) usernameBand() float32 {
	name := fyne.MeasureText(h.name.Text, float32(h.config.UsernameSize), h.name.TextStyle)
	status := fyne.MeasureText(h.status.Text, StatusTextSize, h.status.TextStyle)
	return float32(math.Round(float64(name.Height + UsernameGap + status.Height)))
}

func (h *HeaderView) buttonsBand() float32 {
	if len(h.buttons) == 0 {
		return 0
	}
	return float32(math.Round(h.config.ButtonsHeight))
}

// initialsOf returns up to two upper-case initials of a display name
func initialsOf(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		initials = append(initials, unicode.ToUpper([]rune(word)[0]))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}
