// Package party implements the shared storage pool every account can
// draw from and contribute to. Lines are keyed by item only; each
// successful mutation broadcasts STORAGE_UPDATED to connected viewers.
package party
