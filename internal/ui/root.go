package ui

import (
	"log"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/profile-header/internal/animation"
	"github.com/ytget/profile-header/internal/config"
	"github.com/ytget/profile-header/internal/coordinator"
	"github.com/ytget/profile-header/internal/model"
)

// ProfilePage is the demo page: a collapsible header over three scroll surfaces.
// It implements coordinator.Sink and applies everything the coordinator computes.
type ProfilePage struct {
	window       fyne.Window
	settings     *config.Settings
	profile      *config.Profile
	localization *Localization
	mobile       *MobileUI

	service   *coordinator.Service
	header    *HeaderView
	scrollBar *ScrollBarProxy
	settle    *SettleDetector
	animator  *SnapAnimator
	debug     *widget.Label

	surfaces map[model.SurfaceID]*surfaceView
	order    []model.SurfaceID
	stack    *fyne.Container
	selected int

	geometry model.Geometry
}

var (
	_ coordinator.Sink          = (*ProfilePage)(nil)
	_ coordinator.IndicatorSink = (*ProfilePage)(nil)
)

// NewProfilePage builds the page and sets it as the window content
func NewProfilePage(window fyne.Window, app fyne.App, settings *config.Settings, profile *config.Profile) *ProfilePage {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	p := &ProfilePage{
		window:       window,
		settings:     settings,
		profile:      profile,
		localization: localization,
		mobile:       NewMobileUI(app),
		surfaces:     make(map[model.SurfaceID]*surfaceView),
		order:        model.DefaultSurfaces(),
	}

	p.header = NewHeaderView(profile, p.tabLabels(), p.onAction, p.selectSurface)
	p.service = coordinator.NewService(
		animation.NewEngine(p.header.ButtonCount()),
		p,
		coordinator.WithScheduler(coordinator.NewTimerScheduler(fyne.Do)),
		coordinator.WithSettleDelay(settings.GetSettleDelay()),
		coordinator.WithSnap(settings.GetSnapEnabled()),
	)
	p.scrollBar = NewScrollBarProxy(p.onScrollBarDrag)
	p.settle = NewSettleDetector(settings.GetSettleQuiet(), coordinator.NewTimerScheduler(fyne.Do), p.onSettle)
	p.animator = NewSnapAnimator(fyne.Do, p.setOffset)

	p.debug = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
	if !settings.GetDebugOverlay() {
		p.debug.Hide()
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	p.setupUI()
	p.createMenu()
	return p
}

// Service returns the coordinator driving the page
func (p *ProfilePage) Service() *coordinator.Service {
	return p.service
}

// setupUI creates the surfaces and assembles the window content
func (p *ProfilePage) setupUI() {
	headerHeight := p.header.Height()
	bodies := map[model.SurfaceID]fyne.CanvasObject{
		model.SurfaceInfo: newInfoBody(p.profile, p.localization),
		model.SurfaceList: newListBody(p.profile, p.localization),
		model.SurfaceGrid: newGridBody(p.profile, p.mobile.TileSize()),
	}

	objects := make([]fyne.CanvasObject, 0, len(p.order))
	for _, id := range p.order {
		sv := newSurfaceView(id, bodies[id], headerHeight)
		sv.scroll.OnScrolled = func(pos fyne.Position) { p.onScrolled(sv, pos.Y) }
		p.surfaces[id] = sv
		p.service.RegisterSurface(id)
		objects = append(objects, sv.scroll)
	}
	p.stack = container.New(&surfacesLayout{onLayout: p.reportMetrics}, objects...)

	swipe := NewSwipeArea(p.stack, p.onGesture, p.service.OnPointerEntered)
	overlay := container.NewStack(
		swipe,
		p.header.Content(),
		container.NewVBox(layout.NewSpacer(), p.debug),
	)

	p.window.SetContent(container.NewBorder(nil, nil, nil, p.scrollBar.Content(), overlay))

	p.pushGeometry()
	p.service.OnPointerEntered(p.mobile.PointerKind())
	p.selectSurface(0)

	log.Printf("Profile page ready: %d surfaces, header height %.0f", len(p.order), headerHeight)
}

// createMenu creates the application menu
func (p *ProfilePage) createMenu() {
	settingsItem := fyne.NewMenuItem(p.localization.GetText(KeySettings), p.onShowSettings)

	languageMenu := fyne.NewMenu(p.localization.GetText(KeyLanguage))
	for code, name := range p.localization.GetAvailableLanguages() {
		langCode := code
		item := fyne.NewMenuItem(name, func() {
			p.onLanguageChange(langCode)
		})
		if p.localization.GetCurrentLanguage() == code {
			item.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, item)
	}

	p.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(p.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange switches the UI language and saves it
func (p *ProfilePage) onLanguageChange(langCode string) {
	p.localization.SetLanguage(langCode)
	p.settings.SetLanguage(langCode)

	p.window.SetTitle(p.localization.GetText(KeyAppTitle))
	p.header.SetTabLabels(p.tabLabels())
	p.createMenu()
}

// onShowSettings shows the settings dialog
func (p *ProfilePage) onShowSettings() {
	NewSettingsDialog(p.settings, p.localization, p.window, p.ApplySettings).Show()
}

// ApplySettings pushes the current settings into the coordinator and the host
func (p *ProfilePage) ApplySettings() {
	p.service.Configure(
		coordinator.WithSettleDelay(p.settings.GetSettleDelay()),
		coordinator.WithSnap(p.settings.GetSnapEnabled()),
	)
	p.settle.SetQuiet(p.settings.GetSettleQuiet())

	if p.settings.GetDebugOverlay() {
		p.debug.Show()
	} else {
		p.debug.Hide()
	}

	p.pushGeometry()
	p.refreshDebug()
}

// pushGeometry measures the header and hands a changed snapshot to the coordinator
func (p *ProfilePage) pushGeometry() {
	g := p.header.Geometry(p.settings.GetScaleDivisor())
	if g == p.geometry {
		return
	}
	p.geometry = g

	for _, sv := range p.surfaces {
		sv.setMargin(float32(g.HeaderHeight))
	}
	if err := p.service.OnGeometryChanged(g); err != nil {
		log.Printf("Header geometry not applied: %v", err)
	}
}

// reportMetrics tells the coordinator about surfaces whose size changed in the last layout pass
func (p *ProfilePage) reportMetrics() {
	for _, id := range p.order {
		sv := p.surfaces[id]
		if !sv.metricsChanged() {
			continue
		}
		if err := p.service.UpdateSurfaceMetrics(id, float64(sv.viewport), float64(sv.extent)); err != nil {
			log.Printf("Surface metrics not applied: %v", err)
		}
	}
	p.refreshDebug()
}

// selectSurface shows the surface at index and makes it drive the header
func (p *ProfilePage) selectSurface(index int) {
	if index < 0 || index >= len(p.order) {
		return
	}
	p.animator.Cancel()
	p.selected = index

	for i, id := range p.order {
		if i == index {
			p.surfaces[id].scroll.Show()
		} else {
			p.surfaces[id].scroll.Hide()
		}
	}
	p.header.SetSelectedTab(index)

	if err := p.service.SetActiveSurface(p.order[index]); err != nil {
		log.Printf("Surface switch failed: %v", err)
	}
	p.refreshDebug()
}

// onGesture flips between surfaces on horizontal swipes
func (p *ProfilePage) onGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeLeft:
		p.selectSurface(p.selected + 1)
	case GestureSwipeRight:
		p.selectSurface(p.selected - 1)
	}
}

// onScrolled handles a user scroll on one surface
func (p *ProfilePage) onScrolled(sv *surfaceView, offset float32) {
	if sv.programmatic || offset == sv.offset {
		return
	}
	p.animator.Cancel()
	p.notify(sv, false)
	p.settle.Touch(sv.id, float64(sv.offset))
}

// onSettle reports the end of scrolling so the coordinator can snap the header
func (p *ProfilePage) onSettle(id model.SurfaceID, offset float64) {
	sv, ok := p.surfaces[id]
	if !ok || float64(sv.Offset()) != offset {
		return
	}
	p.notify(sv, true)
}

// notify reports the surface's current offset to the coordinator
func (p *ProfilePage) notify(sv *surfaceView, inertial bool) {
	sv.offset = sv.Offset()
	offset := float64(sv.offset)

	err := p.service.OnOffsetChanging(coordinator.ScrollNotification{
		Surface:       sv.id,
		CurrentOffset: offset,
		NextOffset:    offset,
		FinalOffset:   offset,
		IsInertial:    inertial,
	})
	if err != nil {
		log.Printf("Scroll notification rejected: %v", err)
	}
	p.refreshDebug()
}

// setOffset moves a surface and reports the new offset
func (p *ProfilePage) setOffset(id model.SurfaceID, offset float64) {
	sv, ok := p.surfaces[id]
	if !ok {
		return
	}

	sv.programmatic = true
	sv.scroll.Offset = fyne.NewPos(sv.scroll.Offset.X, float32(offset))
	sv.scroll.Refresh()
	sv.programmatic = false

	p.notify(sv, false)
}

// onScrollBarDrag relays a drag on the scrollbar proxy
func (p *ProfilePage) onScrollBarDrag(offset float64) {
	if err := p.service.OnScrollBarScroll(offset); err != nil {
		log.Printf("Scrollbar drag rejected: %v", err)
	}
}

// onAction handles the action buttons
func (p *ProfilePage) onAction(index int) {
	if index < len(p.profile.Actions) {
		log.Printf("Action requested: %s", p.profile.Actions[index])
	}
}

// refreshDebug updates the debug overlay when it is shown
func (p *ProfilePage) refreshDebug() {
	if p.debug.Visible() {
		p.debug.SetText(p.service.DebugInfo())
	}
}

func (p *ProfilePage) tabLabels() []string {
	return []string{
		IconInfo + " " + p.localization.GetText(KeyTabInfo),
		IconList + " " + p.localization.GetText(KeyTabList),
		IconGrid + " " + p.localization.GetText(KeyTabGrid),
	}
}

// ApplyFrame draws the header for a frame
func (p *ProfilePage) ApplyFrame(frame animation.Frame) {
	p.header.Apply(frame)
}

// UpdateScrollBar moves the scrollbar proxy
func (p *ProfilePage) UpdateScrollBar(update coordinator.ScrollBarUpdate) {
	p.scrollBar.Update(update)
}

// ScrollTo moves a surface, animating snap commands
func (p *ProfilePage) ScrollTo(cmd coordinator.ScrollCommand) {
	sv, ok := p.surfaces[cmd.Surface]
	if !ok {
		return
	}

	current := float64(sv.Offset())
	target := math.Min(math.Max(cmd.Offset, 0), float64(sv.ScrollableHeight()))
	if target == current {
		return
	}

	if cmd.Animated {
		p.animator.Animate(cmd.Surface, current, target)
		return
	}
	p.animator.Cancel()
	p.setOffset(cmd.Surface, target)
}

// SetActionButtonsEnabled switches the action buttons
func (p *ProfilePage) SetActionButtonsEnabled(enabled bool) {
	p.header.SetButtonsEnabled(enabled)
}

// SetIndicatorMode switches the scrollbar proxy between mouse and touch
func (p *ProfilePage) SetIndicatorMode(mode coordinator.IndicatorMode) {
	p.scrollBar.SetIndicatorMode(mode)
}
