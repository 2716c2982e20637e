package writer

import "context"

// Transport is the wireless-link boundary the Writer drives. Implementations
// expose two addressable channels on the device: the command channel, which
// also delivers acknowledgement notifications, and the image-data channel.
//
// Writes are fire-and-forget: a nil error means the bytes were handed to the
// link, not that the tag processed them. Acknowledgements arrive
// asynchronously through the channel passed to Subscribe; the Writer
// supplies a channel with capacity 1 and consumes every acknowledgement
// before issuing the next write, so implementations may assume at most one
// undelivered acknowledgement at a time.
type Transport interface {
	// Connect establishes the link to the tag.
	Connect(ctx context.Context) error

	// Disconnect drops the link. It must be safe to call on an already
	// disconnected transport.
	Disconnect() error

	// Subscribe starts notification delivery from the command channel into
	// acks. The channel must not be closed by the implementation.
	Subscribe(acks chan<- []byte) error

	// Unsubscribe stops notification delivery.
	Unsubscribe() error

	// WriteCommand writes a packet to the command channel.
	WriteCommand(ctx context.Context, pkt []byte) error

	// WriteImage writes a packet to the image-data channel.
	WriteImage(ctx context.Context, pkt []byte) error
}
