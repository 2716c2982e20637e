package ble

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"tinygo.org/x/bluetooth"
)

// Transport is a BLE implementation of writer.Transport for one tag,
// addressed by its MAC. The zero value is not usable; construct with New.
type Transport struct {
	adapter *bluetooth.Adapter
	address string

	mu        sync.Mutex
	device    bluetooth.Device
	cmdChar   bluetooth.DeviceCharacteristic
	imgChar   bluetooth.DeviceCharacteristic
	connected bool
}

// New creates a Transport for the tag at the given MAC address, using the
// platform default Bluetooth adapter.
func New(address string) *Transport {
	return &Transport{
		adapter: bluetooth.DefaultAdapter,
		address: address,
	}
}

// Connect establishes the BLE link, discovers the vendor service family and
// resolves the command and image-data characteristics. A context deadline is
// applied to the connection attempt.
func (t *Transport) Connect(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.connected {
		return nil
	}

	if err := t.adapter.Enable(); err != nil {
		return fmt.Errorf("enable adapter: %w", err)
	}

	mac, err := bluetooth.ParseMAC(t.address)
	if err != nil {
		return fmt.Errorf("parse address %q: %w", t.address, err)
	}

	var params bluetooth.ConnectionParams
	if deadline, ok := ctx.Deadline(); ok {
		params.ConnectionTimeout = bluetooth.NewDuration(time.Until(deadline))
	}

	device, err := t.adapter.Connect(bluetooth.Address{MACAddress: bluetooth.MACAddress{MAC: mac}}, params)
	if err != nil {
		return fmt.Errorf("connect %s: %w", t.address, err)
	}

	cmdChar, imgChar, err := discoverEndpoints(device)
	if err != nil {
		// The link is up but useless; drop it before reporting.
		_ = device.Disconnect()
		return err
	}

	t.device = device
	t.cmdChar = cmdChar
	t.imgChar = imgChar
	t.connected = true
	return nil
}

// Disconnect drops the BLE link. Safe to call when not connected.
func (t *Transport) Disconnect() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.connected {
		return nil
	}
	t.connected = false
	return t.device.Disconnect()
}

// Subscribe starts forwarding command-channel notifications into acks.
// The protocol has one acknowledgement in flight at a time; a notification
// arriving while the slot is still full violates that contract and is
// dropped rather than blocking the BLE event loop.
func (t *Transport) Subscribe(acks chan<- []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.connected {
		return fmt.Errorf("not connected")
	}

	return t.cmdChar.EnableNotifications(func(buf []byte) {
		data := make([]byte, len(buf))
		copy(data, buf)
		select {
		case acks <- data:
		default:
		}
	})
}

// Unsubscribe stops command-channel notification delivery.
func (t *Transport) Unsubscribe() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.connected {
		return nil
	}
	return t.cmdChar.EnableNotifications(nil)
}

// WriteCommand writes a packet to the command channel.
func (t *Transport) WriteCommand(ctx context.Context, pkt []byte) error {
	return t.write(ctx, &t.cmdChar, pkt)
}

// WriteImage writes a packet to the image-data channel.
func (t *Transport) WriteImage(ctx context.Context, pkt []byte) error {
	return t.write(ctx, &t.imgChar, pkt)
}

func (t *Transport) write(ctx context.Context, char *bluetooth.DeviceCharacteristic, pkt []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	connected := t.connected
	t.mu.Unlock()
	if !connected {
		return fmt.Errorf("not connected")
	}

	_, err := char.WriteWithoutResponse(pkt)
	return err
}

// discoverEndpoints walks the tag's GATT table and resolves the two
// protocol characteristics from the vendor service family.
func discoverEndpoints(device bluetooth.Device) (cmdChar, imgChar bluetooth.DeviceCharacteristic, err error) {
	services, err := device.DiscoverServices(nil)
	if err != nil {
		return cmdChar, imgChar, fmt.Errorf("discover services: %w", err)
	}

	byUUID := make(map[string]bluetooth.DeviceCharacteristic)
	var candidates []string

	for _, svc := range services {
		if !strings.HasPrefix(strings.ToLower(svc.UUID().String()), serviceFamilyPrefix) {
			continue
		}
		chars, err := svc.DiscoverCharacteristics(nil)
		if err != nil {
			return cmdChar, imgChar, fmt.Errorf("discover characteristics: %w", err)
		}
		for _, c := range chars {
			u := strings.ToLower(c.UUID().String())
			byUUID[u] = c
			candidates = append(candidates, u)
		}
	}

	cmdUUID, imgUUID, err := selectEndpoints(candidates)
	if err != nil {
		return cmdChar, imgChar, err
	}

	return byUUID[cmdUUID], byUUID[imgUUID], nil
}
