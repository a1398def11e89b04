package ui

// Package ui contains the Fyne-based profile page that hosts the scroll
// coordinator. It measures the header, forwards scroll and layout events
// from the info, list and grid surfaces, and applies the computed header
// values, scrollbar state and snap commands to its widgets.
