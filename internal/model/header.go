package model

// HeaderState is one of the two rest states of the collapsible header
type HeaderState string

const (
	// HeaderExpanded means the avatar and action buttons are fully visible
	HeaderExpanded HeaderState = "Expanded"

	// HeaderCompact means the header is fully collapsed
	HeaderCompact HeaderState = "Compact"
)

// String returns the string representation of HeaderState
func (hs HeaderState) String() string {
	return string(hs)
}

// HeaderStateAt returns the state the header resolves to at offset for collapse distance hh.
// Ties go to Compact.
func HeaderStateAt(offset, hh float64) HeaderState {
	if offset >= hh/2 {
		return HeaderCompact
	}
	return HeaderExpanded
}

// RestOffset returns the scroll offset at which the header rests in this state
func (hs HeaderState) RestOffset(hh float64) float64 {
	if hs == HeaderCompact {
		return hh
	}
	return 0
}
