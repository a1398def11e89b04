package coordinator

import (
	"fmt"
	"strings"
)

// DebugInfo renders the active surface and scrollbar proxy state for an on-screen overlay
func (s *Service) DebugInfo() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasActive {
		return "no active surface"
	}
	state := s.surfaces[s.active]

	var b strings.Builder
	fmt.Fprintf(&b, "SURF: %s (%s)\n", s.active, s.header)
	fmt.Fprintf(&b, "SVEH: %.1f\n", state.ContentHeight)
	fmt.Fprintf(&b, "SVSH: %.1f\n", state.ScrollableHeight())
	fmt.Fprintf(&b, "SVVO: %.1f\n", state.Offset)
	fmt.Fprintf(&b, "SVVH: %.1f\n", state.ViewportHeight)
	fmt.Fprintf(&b, "SBM:  %.1f\n", s.scrollBar.Maximum)
	fmt.Fprintf(&b, "SBV:  %.1f\n", s.scrollBar.Value)
	fmt.Fprintf(&b, "SBVP: %.1f", s.scrollBar.ViewportSize)
	return b.String()
}
