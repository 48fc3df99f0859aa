// Package quests keeps the shared quest log. Quests are created active,
// can be toggled active or inactive by admins, and every mutation is
// broadcast to connected clients.
package quests
