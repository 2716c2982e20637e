package ble

import (
	"encoding/binary"
	"sort"

	"github.com/google/uuid"

	"github.com/gicisky/go-gicisky/writer"
)

// requiredEndpoints is the number of protocol endpoints a tag must expose:
// command channel and image-data channel.
const requiredEndpoints = 2

// serviceFamilyPrefix selects the vendor service family the tags use.
// Canonical UUID strings of the 0xFxxx short-ID range start with this.
const serviceFamilyPrefix = "0000f"

// shortID extracts the 16-bit identifier embedded in a canonical 128-bit
// Bluetooth UUID string (bytes 2 and 3 of the UUID). Unparseable UUIDs sort
// last.
func shortID(s string) uint16 {
	u, err := uuid.Parse(s)
	if err != nil {
		return 0xFFFF
	}
	return binary.BigEndian.Uint16(u[2:4])
}

// selectEndpoints orders candidate characteristic UUIDs by short ID and
// maps the lowest to the command channel and the next to the image-data
// channel. Fewer than two candidates is a missing-capability failure.
func selectEndpoints(uuids []string) (cmd, img string, err error) {
	if len(uuids) < requiredEndpoints {
		return "", "", &writer.CapabilityError{Need: requiredEndpoints, Have: len(uuids)}
	}

	sorted := make([]string, len(uuids))
	copy(sorted, uuids)
	sort.SliceStable(sorted, func(i, j int) bool {
		return shortID(sorted[i]) < shortID(sorted[j])
	})

	return sorted[0], sorted[1], nil
}
