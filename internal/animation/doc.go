package animation

// Package animation maps a scroll distance and a geometry snapshot to the
// values of every animated header property. Evaluation is a pure function
// re-run on each scroll or layout notification; every value is clamped to
// its declared range.
