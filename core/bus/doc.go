// Package bus implements the in-process notification fan-out.
//
// Every successful catalog, quest, party-storage and map mutation
// publishes exactly one typed event here; the realtime feature forwards
// them to connected websocket clients. Delivery is best-effort: there is
// no persistence, no replay, and a subscriber that cannot keep up loses
// events rather than slowing down the publisher.
package bus
