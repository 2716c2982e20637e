package ble

import (
	"testing"

	"github.com/gicisky/go-gicisky/writer"
)

func TestShortID(t *testing.T) {
	tests := []struct {
		name string
		uuid string
		want uint16
	}{
		{
			name: "f001",
			uuid: "0000f001-0000-1000-8000-00805f9b34fb",
			want: 0xF001,
		},
		{
			name: "f002",
			uuid: "0000f002-0000-1000-8000-00805f9b34fb",
			want: 0xF002,
		},
		{
			name: "uppercase",
			uuid: "0000F1A0-0000-1000-8000-00805F9B34FB",
			want: 0xF1A0,
		},
		{
			name: "unparseable sorts last",
			uuid: "not-a-uuid",
			want: 0xFFFF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shortID(tt.uuid); got != tt.want {
				t.Errorf("shortID(%q) = 0x%04X, want 0x%04X", tt.uuid, got, tt.want)
			}
		})
	}
}

func TestSelectEndpoints(t *testing.T) {
	tests := []struct {
		name    string
		uuids   []string
		wantCmd string
		wantImg string
		wantErr bool
	}{
		{
			name: "in order",
			uuids: []string{
				"0000f001-0000-1000-8000-00805f9b34fb",
				"0000f002-0000-1000-8000-00805f9b34fb",
			},
			wantCmd: "0000f001-0000-1000-8000-00805f9b34fb",
			wantImg: "0000f002-0000-1000-8000-00805f9b34fb",
		},
		{
			name: "out of order",
			uuids: []string{
				"0000f010-0000-1000-8000-00805f9b34fb",
				"0000f002-0000-1000-8000-00805f9b34fb",
				"0000f001-0000-1000-8000-00805f9b34fb",
			},
			wantCmd: "0000f001-0000-1000-8000-00805f9b34fb",
			wantImg: "0000f002-0000-1000-8000-00805f9b34fb",
		},
		{
			name:    "one endpoint",
			uuids:   []string{"0000f001-0000-1000-8000-00805f9b34fb"},
			wantErr: true,
		},
		{
			name:    "no endpoints",
			uuids:   nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, img, err := selectEndpoints(tt.uuids)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !writer.IsCapabilityError(err) {
					t.Errorf("error = %T, want *writer.CapabilityError", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd != tt.wantCmd {
				t.Errorf("cmd = %s, want %s", cmd, tt.wantCmd)
			}
			if img != tt.wantImg {
				t.Errorf("img = %s, want %s", img, tt.wantImg)
			}
		})
	}
}

func TestSelectEndpointsCapabilityCounts(t *testing.T) {
	_, _, err := selectEndpoints([]string{"0000f001-0000-1000-8000-00805f9b34fb"})

	capErr, ok := err.(*writer.CapabilityError)
	if !ok {
		t.Fatalf("error = %T, want *writer.CapabilityError", err)
	}
	if capErr.Need != 2 || capErr.Have != 1 {
		t.Errorf("CapabilityError = need %d have %d, want need 2 have 1", capErr.Need, capErr.Have)
	}
}
