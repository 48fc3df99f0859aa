// Package worldmap keeps the shared map markers. Anyone can read the
// map; placing and removing markers is admin-only, and every mutation
// is broadcast so clients can redraw.
package worldmap
