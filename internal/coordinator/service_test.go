package coordinator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/profile-header/internal/animation"
	"github.com/ytget/profile-header/internal/model"
)

var avatarY = model.Target{Element: model.ElementAvatar, Property: model.PropertyTranslateY}

func testGeometry() model.Geometry {
	return model.NewGeometry(80, 60, 40)
}

func newTestService(t *testing.T, opts ...Option) (*Service, *recordingSink, *manualScheduler) {
	t.Helper()
	sink := &recordingSink{}
	scheduler := &manualScheduler{}
	svc := NewService(animation.NewEngine(animation.DefaultButtonCount), sink,
		append([]Option{WithScheduler(scheduler)}, opts...)...)

	for _, id := range model.DefaultSurfaces() {
		svc.RegisterSurface(id)
		require.NoError(t, svc.UpdateSurfaceMetrics(id, 500, 3000))
	}
	require.NoError(t, svc.OnGeometryChanged(testGeometry()))
	return svc, sink, scheduler
}

func scroll(surface model.SurfaceID, offset float64) ScrollNotification {
	return ScrollNotification{Surface: surface, CurrentOffset: offset, NextOffset: offset, FinalOffset: offset}
}

func settle(surface model.SurfaceID, offset float64) ScrollNotification {
	n := scroll(surface, offset)
	n.IsInertial = true
	return n
}

func frameValue(t *testing.T, sink *recordingSink, target model.Target) float64 {
	t.Helper()
	frame, ok := sink.lastFrame()
	require.True(t, ok, "no frame emitted")
	v, ok := frame.Value(target)
	require.True(t, ok)
	return v
}

func TestSetActiveSurface(t *testing.T) {
	svc, sink, scheduler := newTestService(t)

	require.NoError(t, svc.SetActiveSurface(model.SurfaceList))

	active, ok := svc.Active()
	assert.True(t, ok)
	assert.Equal(t, model.SurfaceList, active)
	assert.Equal(t, model.HeaderExpanded, svc.HeaderState())

	assert.InDelta(t, 0, frameValue(t, sink, avatarY), 1e-9)
	enabled, ok := sink.lastEnabled()
	assert.True(t, ok)
	assert.True(t, enabled)

	// range is deferred until the layout pass settles
	assert.Equal(t, ScrollBarUpdate{}, sink.lastScrollBar())
	require.Len(t, scheduler.tasks, 1)
	assert.Equal(t, DefaultSettleDelay, scheduler.tasks[0].delay)

	scheduler.fireAll()
	assert.Equal(t, ScrollBarUpdate{Value: 0, Maximum: 2500, ViewportSize: 500}, sink.lastScrollBar())
}

func TestSetActiveSurface_Unknown(t *testing.T) {
	svc, sink, _ := newTestService(t)

	err := svc.SetActiveSurface("profile")
	assert.ErrorIs(t, err, model.ErrUnknownSurface)

	_, ok := svc.Active()
	assert.False(t, ok)
	assert.Empty(t, sink.frames)
}

func TestSetActiveSurface_DeferredUntilMeasured(t *testing.T) {
	sink := &recordingSink{}
	scheduler := &manualScheduler{}
	svc := NewService(animation.NewEngine(2), sink, WithScheduler(scheduler))
	svc.RegisterSurface(model.SurfaceGrid)
	require.NoError(t, svc.OnGeometryChanged(testGeometry()))

	require.NoError(t, svc.SetActiveSurface(model.SurfaceGrid))
	_, ok := svc.Active()
	assert.False(t, ok, "unmeasured surface must not become active")
	assert.Empty(t, sink.frames)

	require.NoError(t, svc.UpdateSurfaceMetrics(model.SurfaceGrid, 400, 900))
	active, ok := svc.Active()
	assert.True(t, ok)
	assert.Equal(t, model.SurfaceGrid, active)
	assert.Len(t, sink.frames, 1)

	scheduler.fireAll()
	assert.Equal(t, ScrollBarUpdate{Maximum: 500, ViewportSize: 400}, sink.lastScrollBar())
}

func TestSetActiveSurface_DeferredUntilGeometry(t *testing.T) {
	sink := &recordingSink{}
	svc := NewService(animation.NewEngine(2), sink, WithScheduler(&manualScheduler{}))
	svc.RegisterSurface(model.SurfaceInfo)
	require.NoError(t, svc.UpdateSurfaceMetrics(model.SurfaceInfo, 400, 900))

	require.NoError(t, svc.SetActiveSurface(model.SurfaceInfo))
	_, ok := svc.Active()
	assert.False(t, ok)

	require.NoError(t, svc.OnGeometryChanged(testGeometry()))
	active, ok := svc.Active()
	assert.True(t, ok)
	assert.Equal(t, model.SurfaceInfo, active)
	assert.NotEmpty(t, sink.frames)
}

func TestSnapTarget(t *testing.T) {
	const hh = 135.0
	tests := []struct {
		name       string
		n          ScrollNotification
		wantOffset float64
		wantSnap   bool
	}{
		{"settle at 0.3 hh", settle(model.SurfaceList, 0.3*hh), 0, true},
		{"settle at 0.7 hh", settle(model.SurfaceList, 0.7*hh), hh, true},
		{"tie goes compact", settle(model.SurfaceList, 0.5*hh), hh, true},
		{"at rest expanded", settle(model.SurfaceList, 0), 0, false},
		{"at rest compact", settle(model.SurfaceList, hh), 0, false},
		{"beyond header", settle(model.SurfaceList, 2*hh), 0, false},
		{"direct manipulation", scroll(model.SurfaceList, 0.3*hh), 0, false},
		{"still decelerating", ScrollNotification{
			Surface: model.SurfaceList, CurrentOffset: 30, NextOffset: 35, FinalOffset: 40, IsInertial: true,
		}, 0, false},
	}

	for _, test := range tests {
		offset, ok := SnapTarget(test.n, hh)
		assert.Equal(t, test.wantSnap, ok, test.name)
		if ok {
			assert.InDelta(t, test.wantOffset, offset, 1e-9, test.name)
		}
	}
}

func TestOnOffsetChanging_Snap(t *testing.T) {
	svc, sink, _ := newTestService(t)
	require.NoError(t, svc.SetActiveSurface(model.SurfaceList))
	hh := testGeometry().CollapseDistance()

	for _, tc := range []struct {
		fraction float64
		expected float64
	}{
		{0.3, 0},
		{0.7, hh},
		{0.5, hh},
	} {
		sink.reset()
		require.NoError(t, svc.OnOffsetChanging(settle(model.SurfaceList, tc.fraction*hh)))
		require.Len(t, sink.commands, 1, "fraction %v", tc.fraction)
		cmd := sink.commands[0]
		assert.Equal(t, model.SurfaceList, cmd.Surface)
		assert.Equal(t, ReasonSnap, cmd.Reason)
		assert.True(t, cmd.Animated)
		assert.InDelta(t, tc.expected, cmd.Offset, 1e-9)
	}

	sink.reset()
	require.NoError(t, svc.OnOffsetChanging(scroll(model.SurfaceList, 0.3*hh)))
	assert.Empty(t, sink.commands, "direct scrolling must not snap")
}

func TestOnOffsetChanging_SnapDisabled(t *testing.T) {
	svc, sink, _ := newTestService(t, WithSnap(false))
	require.NoError(t, svc.SetActiveSurface(model.SurfaceList))

	require.NoError(t, svc.OnOffsetChanging(settle(model.SurfaceList, 40)))
	assert.Empty(t, sink.commands)
}

func TestConfigure(t *testing.T) {
	svc, sink, scheduler := newTestService(t)
	require.NoError(t, svc.SetActiveSurface(model.SurfaceList))

	svc.Configure(WithSnap(false), WithSettleDelay(200*time.Millisecond))

	sink.reset()
	require.NoError(t, svc.OnOffsetChanging(settle(model.SurfaceList, 40)))
	assert.Empty(t, sink.commands)

	require.NoError(t, svc.SetActiveSurface(model.SurfaceGrid))
	last := scheduler.tasks[len(scheduler.tasks)-1]
	assert.Equal(t, 200*time.Millisecond, last.delay)
}

func TestOnOffsetChanging_ActionButtons(t *testing.T) {
	svc, sink, _ := newTestService(t)
	require.NoError(t, svc.SetActiveSurface(model.SurfaceInfo))
	sink.reset()

	offsets := []float64{0, 0.5, 10, 0, 200, 0}
	for _, offset := range offsets {
		require.NoError(t, svc.OnOffsetChanging(scroll(model.SurfaceInfo, offset)))
	}

	assert.Equal(t, []bool{true, false, false, true, false, true}, sink.enabled)
}

func TestOnOffsetChanging_ScrollBarValue(t *testing.T) {
	svc, sink, scheduler := newTestService(t)
	require.NoError(t, svc.SetActiveSurface(model.SurfaceList))
	scheduler.fireAll()

	require.NoError(t, svc.OnOffsetChanging(ScrollNotification{
		Surface: model.SurfaceList, CurrentOffset: 100, NextOffset: 110, FinalOffset: 300,
	}))
	assert.Equal(t, ScrollBarUpdate{Value: 100, Maximum: 2500, ViewportSize: 500}, sink.lastScrollBar())

	state, ok := svc.State(model.SurfaceList)
	require.True(t, ok)
	assert.Equal(t, 110.0, state.Offset)
}

func TestOnOffsetChanging_InactiveSurface(t *testing.T) {
	svc, sink, _ := newTestService(t)
	require.NoError(t, svc.SetActiveSurface(model.SurfaceList))
	sink.reset()

	require.NoError(t, svc.OnOffsetChanging(scroll(model.SurfaceGrid, 70)))
	assert.Empty(t, sink.frames)
	assert.Empty(t, sink.enabled)
	assert.Empty(t, sink.scrollBars)

	state, _ := svc.State(model.SurfaceGrid)
	assert.Equal(t, 70.0, state.Offset)
}

func TestOnOffsetChanging_UnknownSurface(t *testing.T) {
	svc, sink, _ := newTestService(t)
	require.NoError(t, svc.SetActiveSurface(model.SurfaceList))
	sink.reset()

	err := svc.OnOffsetChanging(scroll("comments", 20))
	assert.ErrorIs(t, err, model.ErrUnknownSurface)
	assert.Empty(t, sink.frames)
}

func TestOnOffsetChanging_InvalidOffset(t *testing.T) {
	svc, _, _ := newTestService(t)
	n := scroll(model.SurfaceList, 0)
	n.FinalOffset = posInf()

	assert.ErrorIs(t, svc.OnOffsetChanging(n), model.ErrInvalidOffset)
}

func TestSwitchingSurfaceUsesStoredOffset(t *testing.T) {
	svc, sink, _ := newTestService(t)
	require.NoError(t, svc.SetActiveSurface(model.SurfaceList))

	require.NoError(t, svc.OnOffsetChanging(scroll(model.SurfaceList, 60)))
	assert.InDelta(t, -40, frameValue(t, sink, avatarY), 1e-9)

	require.NoError(t, svc.SetActiveSurface(model.SurfaceGrid))
	assert.InDelta(t, 0, frameValue(t, sink, avatarY), 1e-9)
	enabled, _ := sink.lastEnabled()
	assert.True(t, enabled)

	require.NoError(t, svc.SetActiveSurface(model.SurfaceList))
	assert.InDelta(t, -40, frameValue(t, sink, avatarY), 1e-9)
	enabled, _ = sink.lastEnabled()
	assert.False(t, enabled)
	assert.Equal(t, 60.0, sink.lastScrollBar().Value)
}

func TestStaleRangeUpdateIsDiscarded(t *testing.T) {
	svc, sink, scheduler := newTestService(t)
	require.NoError(t, svc.UpdateSurfaceMetrics(model.SurfaceGrid, 600, 1000))

	require.NoError(t, svc.SetActiveSurface(model.SurfaceList))
	require.NoError(t, svc.SetActiveSurface(model.SurfaceGrid))
	require.Len(t, scheduler.tasks, 2)
	assert.True(t, scheduler.tasks[0].stopped, "superseded update should be stopped")

	// newer update first, then the stale timer that lost the race with Stop
	scheduler.fire(1)
	scheduler.fire(0)
	assert.Equal(t, ScrollBarUpdate{Maximum: 400, ViewportSize: 600}, sink.lastScrollBar())

	// stale timer firing before the newer one must not apply either
	require.NoError(t, svc.SetActiveSurface(model.SurfaceList))
	require.NoError(t, svc.SetActiveSurface(model.SurfaceGrid))
	sink.reset()
	scheduler.fire(2)
	assert.Empty(t, sink.scrollBars)
	scheduler.fire(3)
	assert.Equal(t, ScrollBarUpdate{Maximum: 400, ViewportSize: 600}, sink.lastScrollBar())
}

func TestUpdateSurfaceMetrics_ActiveReschedulesRange(t *testing.T) {
	svc, sink, scheduler := newTestService(t)
	require.NoError(t, svc.SetActiveSurface(model.SurfaceList))
	require.NoError(t, svc.UpdateSurfaceMetrics(model.SurfaceList, 700, 3000))

	require.Len(t, scheduler.tasks, 2)
	scheduler.fireAll()
	assert.Equal(t, ScrollBarUpdate{Maximum: 2300, ViewportSize: 700}, sink.lastScrollBar())

	assert.ErrorIs(t, svc.UpdateSurfaceMetrics("nope", 1, 1), model.ErrUnknownSurface)
}

func TestOnOffsetChanging_ResizeReschedulesRange(t *testing.T) {
	svc, sink, scheduler := newTestService(t)
	require.NoError(t, svc.SetActiveSurface(model.SurfaceList))
	scheduler.fireAll()
	require.Equal(t, ScrollBarUpdate{Maximum: 2500, ViewportSize: 500}, sink.lastScrollBar())

	n := scroll(model.SurfaceList, 100)
	n.ViewportHeight = 500
	n.ContentHeight = 6000
	require.NoError(t, svc.OnOffsetChanging(n))

	state, _ := svc.State(model.SurfaceList)
	assert.Equal(t, 5500.0, state.ScrollableHeight())

	scheduler.fireAll()
	assert.Equal(t, ScrollBarUpdate{Value: 100, Maximum: 5500, ViewportSize: 500}, sink.lastScrollBar())

	// unchanged sizes do not reschedule
	tasks := len(scheduler.tasks)
	n = scroll(model.SurfaceList, 120)
	n.ViewportHeight = 500
	n.ContentHeight = 6000
	require.NoError(t, svc.OnOffsetChanging(n))
	assert.Len(t, scheduler.tasks, tasks)

	// a resized inactive surface keeps the active range
	sink.reset()
	n = scroll(model.SurfaceGrid, 0)
	n.ViewportHeight = 500
	n.ContentHeight = 9000
	require.NoError(t, svc.OnOffsetChanging(n))
	scheduler.fireAll()
	assert.Empty(t, sink.scrollBars)
}

func TestOnGeometryChanged_Degenerate(t *testing.T) {
	svc, sink, _ := newTestService(t)
	require.NoError(t, svc.SetActiveSurface(model.SurfaceList))

	err := svc.OnGeometryChanged(model.NewGeometry(0, 60, 40))
	assert.ErrorIs(t, err, model.ErrDegenerateGeometry)

	sink.reset()
	require.NoError(t, svc.OnOffsetChanging(scroll(model.SurfaceList, 30)))
	assert.Empty(t, sink.frames, "no frame without valid geometry")
	assert.NotEmpty(t, sink.enabled)

	require.NoError(t, svc.OnGeometryChanged(testGeometry()))
	assert.InDelta(t, -20, frameValue(t, sink, avatarY), 1e-9)
}

func TestOnGeometryChanged_UpdatesHeaderState(t *testing.T) {
	svc, _, _ := newTestService(t)
	require.NoError(t, svc.SetActiveSurface(model.SurfaceList))
	require.NoError(t, svc.OnOffsetChanging(scroll(model.SurfaceList, 60)))
	assert.Equal(t, model.HeaderExpanded, svc.HeaderState())

	// hh shrinks to 100, 60 is past half
	require.NoError(t, svc.OnGeometryChanged(model.NewGeometry(60, 40, 30)))
	assert.Equal(t, model.HeaderCompact, svc.HeaderState())
}

func TestOnScrollBarScroll(t *testing.T) {
	svc, sink, _ := newTestService(t)

	require.NoError(t, svc.OnScrollBarScroll(100))
	assert.Empty(t, sink.commands, "no command without an active surface")

	require.NoError(t, svc.SetActiveSurface(model.SurfaceGrid))
	require.NoError(t, svc.OnScrollBarScroll(300))
	require.NoError(t, svc.OnScrollBarScroll(9000))
	require.NoError(t, svc.OnScrollBarScroll(-5))

	require.Len(t, sink.commands, 3)
	assert.Equal(t, ScrollCommand{Surface: model.SurfaceGrid, Offset: 300, Reason: ReasonScrollBar}, sink.commands[0])
	assert.Equal(t, 2500.0, sink.commands[1].Offset)
	assert.Equal(t, 0.0, sink.commands[2].Offset)

	assert.ErrorIs(t, svc.OnScrollBarScroll(posInf()), model.ErrInvalidOffset)
}

func TestOnPointerEntered(t *testing.T) {
	svc, sink, _ := newTestService(t)

	svc.OnPointerEntered(PointerMouse)
	svc.OnPointerEntered(PointerTouch)
	svc.OnPointerEntered(PointerPen)

	assert.Equal(t, []IndicatorMode{IndicatorMouse, IndicatorTouch, IndicatorTouch}, sink.indicators)
}

func TestDebugInfo(t *testing.T) {
	svc, _, scheduler := newTestService(t)
	assert.Equal(t, "no active surface", svc.DebugInfo())

	require.NoError(t, svc.SetActiveSurface(model.SurfaceList))
	scheduler.fireAll()

	info := svc.DebugInfo()
	assert.True(t, strings.HasPrefix(info, "SURF: list (Expanded)"))
	assert.Contains(t, info, "SVSH: 2500.0")
	assert.Contains(t, info, "SBVP: 500.0")
}

func TestEndToEnd_ListScroll(t *testing.T) {
	svc, sink, scheduler := newTestService(t)
	require.NoError(t, svc.SetActiveSurface(model.SurfaceList))
	scheduler.fireAll()
	sink.reset()

	for d := 0.0; d <= 150; d += 10 {
		require.NoError(t, svc.OnOffsetChanging(scroll(model.SurfaceList, d)))

		enabled, _ := sink.lastEnabled()
		assert.Equal(t, d == 0, enabled, "buttons at d=%v", d)
	}

	frame, ok := sink.lastFrame()
	require.True(t, ok)
	assert.Equal(t, 150.0, frame.Distance)
	assert.Equal(t, -80.0, frameValue(t, sink, avatarY))
	for i := 0; i < animation.DefaultButtonCount; i++ {
		assert.Equal(t, 0.0, frame.Button(i, model.PropertyOpacity, -1))
	}
	assert.Equal(t, model.HeaderCompact, svc.HeaderState())
	assert.Empty(t, sink.commands)
	assert.Equal(t, 150.0, sink.lastScrollBar().Value)
}
