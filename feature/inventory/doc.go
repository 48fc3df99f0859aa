// Package inventory exposes a player's personal item lines.
//
// All operations act on the authenticated caller's own account; there is
// no way to mutate another player's inventory. Moving items to or from
// the shared party stash is a pair of independent calls (remove here,
// add there), not an atomic transfer. Mutations here broadcast nothing.
package inventory
