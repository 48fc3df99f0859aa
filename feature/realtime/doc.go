// Package realtime exposes the change feed over a websocket. Every
// event published on the bus is pushed to every connected client as
// JSON; clients that fall behind miss events rather than stall the
// writers.
package realtime
