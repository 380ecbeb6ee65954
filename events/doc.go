// Package events defines the in-memory data model for event-camera
// output: an immutable, zero-copy packet of sensor events plus the
// structural contracts (EventArray, EventPacket) that any conforming
// batch representation satisfies.
//
// Responsibilities: read-only struct-of-arrays views over caller-owned
// buffers, single-factory construction with fail-fast validation
// (FromArrays), and diagnostic summaries. Producers (decoders, sensor
// drivers) and consumers (filters, accumulators, visualisers) exchange
// Packet values in-process; file ingestion and event processing live
// outside this package.
//
// Dependency rule: this package depends only on the standard library
// and gonum; it must not import transport, storage, or UI packages.
package events
