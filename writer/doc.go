// Package writer drives an image transfer to a Gicisky e-ink tag.
//
// # Overview
//
// A Writer owns one transfer at a time and walks the tag's four-phase
// handshake:
//
//	Start -> SizeNegotiated -> ImageStarted -> TransferringData -> done
//
// Every phase is one write-with-acknowledgement round trip: the packet is
// written, then the Writer blocks until the tag's notification arrives or
// the acknowledgement timeout elapses. Transport faults and timeouts are
// retried with a fixed backoff; a malformed or out-of-sequence
// acknowledgement fails the transfer immediately.
//
// # Basic Usage
//
//	transport := ble.New("AA:BB:CC:DD:EE:FF")
//	w := writer.New(transport, encode.DefaultProfile())
//
//	err := w.Update(ctx, img, 128, 128)
//
// Update connects, transfers, and always disconnects on the way out,
// whatever the outcome. Callers that manage the connection themselves can
// use WriteImage instead.
//
// # Transport Independence
//
// This package does NOT implement the radio link. It consumes the Transport
// interface: connect/disconnect, fire-and-forget writes to the command and
// image-data channels, and notification delivery into a channel the Writer
// supplies. The ble package provides the BLE implementation; tests and the
// examples use in-memory transports.
//
// The acknowledgement channel has capacity 1. The protocol permits a single
// outstanding acknowledgement per write, and the channel capacity enforces
// that structurally rather than by convention.
//
// # Configuration Options
//
//	w := writer.New(transport, profile,
//	    writer.WithLogger(myLogger),
//	    writer.WithProgress(progressFunc),
//	    writer.WithAckTimeout(30*time.Second),
//	    writer.WithRetries(3),
//	    writer.WithBackoff(500*time.Millisecond),
//	)
//
// # Concurrency
//
// A transfer is strictly sequential; no two packets are ever in flight at
// once. A Writer must not be shared by concurrent transfers, and transfers
// to the same tag must be serialized by the caller.
package writer
