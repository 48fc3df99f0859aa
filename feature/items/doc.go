// Package items implements the shared item catalog.
//
// Catalog keys are slugs derived from display names; creation conflicts
// when two names collapse to the same key. Deleting an item cascades to
// every inventory and party-storage line referencing it, and both
// operations broadcast a typed event to connected viewers. Item images
// live in object storage behind the core/storage client.
package items
