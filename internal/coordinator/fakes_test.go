package coordinator

import (
	"sync"
	"time"

	"github.com/ytget/profile-header/internal/animation"
)

// recordingSink stores everything the service emits
type recordingSink struct {
	mu         sync.Mutex
	frames     []animation.Frame
	scrollBars []ScrollBarUpdate
	commands   []ScrollCommand
	enabled    []bool
	indicators []IndicatorMode
}

func (r *recordingSink) ApplyFrame(frame animation.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, frame)
}

func (r *recordingSink) UpdateScrollBar(update ScrollBarUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scrollBars = append(r.scrollBars, update)
}

func (r *recordingSink) ScrollTo(cmd ScrollCommand) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmd)
}

func (r *recordingSink) SetActionButtonsEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = append(r.enabled, enabled)
}

func (r *recordingSink) SetIndicatorMode(mode IndicatorMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indicators = append(r.indicators, mode)
}

func (r *recordingSink) lastFrame() (animation.Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return animation.Frame{}, false
	}
	return r.frames[len(r.frames)-1], true
}

func (r *recordingSink) lastScrollBar() ScrollBarUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.scrollBars) == 0 {
		return ScrollBarUpdate{}
	}
	return r.scrollBars[len(r.scrollBars)-1]
}

func (r *recordingSink) lastEnabled() (bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.enabled) == 0 {
		return false, false
	}
	return r.enabled[len(r.enabled)-1], true
}

func (r *recordingSink) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = nil
	r.scrollBars = nil
	r.commands = nil
	r.enabled = nil
	r.indicators = nil
}

// manualScheduler holds deferred work until the test fires it
type manualScheduler struct {
	tasks []*manualTask
}

type manualTask struct {
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (m *manualScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	task := &manualTask{delay: d, f: f}
	m.tasks = append(m.tasks, task)
	return func() bool {
		if task.fired || task.stopped {
			return false
		}
		task.stopped = true
		return true
	}
}

// fire runs task i even if it was stopped, as a timer racing its Stop would
func (m *manualScheduler) fire(i int) {
	task := m.tasks[i]
	task.fired = true
	task.f()
}

// fireAll runs every task that was not stopped
func (m *manualScheduler) fireAll() {
	for _, task := range m.tasks {
		if !task.stopped && !task.fired {
			task.fired = true
			task.f()
		}
	}
}
