package coordinator

import "github.com/ytget/profile-header/internal/model"

// SnapTarget decides whether a settling inertial scroll must be corrected so
// the header never rests partially collapsed. It returns the offset to jump
// to and true when a correction is needed.
func SnapTarget(n ScrollNotification, hh float64) (float64, bool) {
	if !n.IsInertial || n.NextOffset != n.FinalOffset {
		return 0, false
	}
	offset := n.FinalOffset
	if offset <= 0 || offset >= hh {
		return 0, false
	}
	return model.HeaderStateAt(offset, hh).RestOffset(hh), true
}
