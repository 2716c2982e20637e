// Package ble implements the writer.Transport boundary over Bluetooth Low
// Energy using tinygo.org/x/bluetooth.
//
// Gicisky tags expose their two protocol endpoints as GATT characteristics
// under services of the 0000fxxx short-ID family. The characteristic with
// the lowest 16-bit short ID is the command channel (write + notify), the
// next one is the image-data channel (write only). Fewer than two such
// characteristics means the connected device cannot speak the protocol and
// Connect fails with a writer.CapabilityError.
//
// Usage:
//
//	transport := ble.New("AA:BB:CC:DD:EE:FF")
//	w := writer.New(transport, encode.DefaultProfile())
//	err := w.Update(ctx, img, 128, 128)
//
// Pairing and bonding are out of scope; the tags use plain unauthenticated
// GATT writes.
package ble
