package coordinator

// Package coordinator tracks which scroll surface drives the profile header,
// re-evaluates the animation engine on every scroll and layout notification,
// keeps the scrollbar proxy in sync with the active surface, and snaps the
// header to its expanded or compact state once inertial scrolling settles.
