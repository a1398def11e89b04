package model

// Package model defines the data shared by the animation engine, the scroll
// coordinator and the host page: geometry snapshots, per-surface scroll
// state, header states and the (element, property) animation targets.
