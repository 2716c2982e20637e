package writer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gicisky/go-gicisky/encode"
	"github.com/gicisky/go-gicisky/protocol"
)

// phase is the transfer state machine state. Complete and Failed are
// terminal and expressed as function returns rather than stored states.
type phase int

const (
	phaseStart phase = iota
	phaseSizeNegotiated
	phaseImageStarted
	phaseTransferringData
)

// Writer transfers images to one Gicisky tag over a Transport.
// A Writer runs one transfer at a time; concurrent transfers to the same
// tag must be serialized by the caller.
type Writer struct {
	transport Transport
	profile   encode.Profile
	config    Config
	acks      chan []byte
}

// New creates a Writer for the given transport and device profile.
//
// Example:
//
//	transport := ble.New("AA:BB:CC:DD:EE:FF")
//	w := writer.New(transport, encode.DefaultProfile(),
//	    writer.WithAckTimeout(30*time.Second),
//	)
func New(transport Transport, profile encode.Profile, opts ...Option) *Writer {
	if transport == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Writer{
		transport: transport,
		profile:   profile,
		config:    cfg,
	}
}

// Update performs a complete image update: connect, transfer, disconnect.
// The disconnect is attempted on every exit path; its failure is logged and
// never overrides the transfer outcome.
//
// The context bounds the whole operation and is the only external way to
// abort a transfer in flight; cleanup still runs when it fires.
func (w *Writer) Update(ctx context.Context, img image.Image, threshold, redThreshold uint8) error {
	if err := w.transport.Connect(ctx); err != nil {
		return &TransportError{Op: "connect", Err: err}
	}

	err := w.transfer(ctx, img, threshold, redThreshold)

	if derr := w.transport.Disconnect(); derr != nil {
		w.logError("disconnect failed", "error", derr)
	}

	return err
}

// WriteImage transfers an image over an already connected transport.
//
// On a capability or framing failure the tag's endpoint table is suspect,
// so the link is dropped before returning; the next attempt then starts
// from a fresh service discovery. All other outcomes leave the connection
// to the caller.
func (w *Writer) WriteImage(ctx context.Context, img image.Image, threshold, redThreshold uint8) error {
	err := w.transfer(ctx, img, threshold, redThreshold)

	if err != nil && (protocol.IsFramingError(err) || IsCapabilityError(err)) {
		if derr := w.transport.Disconnect(); derr != nil {
			w.logError("disconnect after protocol failure", "error", derr)
		}
	}

	return err
}

// transfer encodes the image and drives the four-phase handshake.
// Notification delivery is subscribed before the Start phase and
// unsubscribed on every exit path.
func (w *Writer) transfer(ctx context.Context, img image.Image, threshold, redThreshold uint8) error {
	payload, err := encode.Encode(img, w.profile, threshold, redThreshold)
	if err != nil {
		return err
	}

	total := len(payload)
	totalChunks := protocol.ChunkCount(total)
	startTime := time.Now()

	w.logInfo("starting transfer",
		"payload_bytes", total,
		"chunks", totalChunks,
	)

	w.acks = make(chan []byte, 1)
	if err := w.transport.Subscribe(w.acks); err != nil {
		return &TransportError{Op: "subscribe", Err: err}
	}
	defer func() {
		if err := w.transport.Unsubscribe(); err != nil {
			w.logError("unsubscribe failed", "error", err)
		}
	}()

	if w.config.SettleDelay > 0 {
		if err := w.sleep(ctx, w.config.SettleDelay); err != nil {
			return err
		}
	}

	state := phaseStart
	index, count := 0, 0
	bytesWritten := 0

	for {
		switch state {
		case phaseStart:
			ack, err := w.writeWithAck(ctx, w.transport.WriteCommand, protocol.BuildStartCmd())
			if err != nil {
				return err
			}
			if err := protocol.ParseStartAck(ack); err != nil {
				return err
			}
			w.report(Progress{
				Phase:       PhaseStart,
				TotalChunks: totalChunks,
				Elapsed:     time.Since(startTime),
			})
			state = phaseSizeNegotiated

		case phaseSizeNegotiated:
			ack, err := w.writeWithAck(ctx, w.transport.WriteCommand, protocol.BuildSizeCmd(uint32(total)))
			if err != nil {
				return err
			}
			if err := protocol.ParseSizeAck(ack); err != nil {
				return err
			}
			w.report(Progress{
				Phase:       PhaseSize,
				TotalChunks: totalChunks,
				Elapsed:     time.Since(startTime),
			})
			state = phaseImageStarted

		case phaseImageStarted:
			ack, err := w.writeWithAck(ctx, w.transport.WriteCommand, protocol.BuildImageStartCmd())
			if err != nil {
				return err
			}
			if err := protocol.ParseImageStartAck(ack); err != nil {
				return err
			}
			index, count = 0, 0
			w.report(Progress{
				Phase:       PhaseImageStart,
				TotalChunks: totalChunks,
				Elapsed:     time.Since(startTime),
			})
			state = phaseTransferringData

		case phaseTransferringData:
			pkt := protocol.BuildChunkPacket(payload, index)
			ack, err := w.writeWithAck(ctx, w.transport.WriteImage, pkt)
			if err != nil {
				return err
			}

			done, seq := protocol.ParseChunkAck(ack)
			if done {
				w.report(Progress{
					Phase:        PhaseComplete,
					CurrentChunk: count,
					TotalChunks:  totalChunks,
					Percentage:   100,
					BytesWritten: bytesWritten,
					Elapsed:      time.Since(startTime),
				})
				w.logInfo("transfer complete",
					"chunks", count,
					"bytes", bytesWritten,
					"elapsed", time.Since(startTime).String(),
				)
				return nil
			}

			if seq != uint32(count+1) {
				return &protocol.SequenceError{Want: uint32(count + 1), Got: seq}
			}

			bytesWritten += len(pkt) - protocol.ChunkHeaderSize
			count++

			if int(seq) >= totalChunks {
				// A conforming tag ends with a short ack instead of
				// requesting past the last chunk.
				return fmt.Errorf("tag requested chunk %d of %d", seq, totalChunks)
			}
			index = int(seq)

			w.report(Progress{
				Phase:        PhaseTransfer,
				CurrentChunk: count,
				TotalChunks:  totalChunks,
				Percentage:   float64(count) / float64(totalChunks) * 100,
				BytesWritten: bytesWritten,
				Elapsed:      time.Since(startTime),
			})

		default:
			return fmt.Errorf("invalid transfer state %d", state)
		}
	}
}

// writeWithAck performs one write-with-acknowledgement round trip on the
// given channel. Transport faults and acknowledgement timeouts are retried
// up to Config.Retries attempts total with a fixed backoff; context
// cancellation is never retried.
func (w *Writer) writeWithAck(ctx context.Context, write func(context.Context, []byte) error, pkt []byte) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= w.config.Retries; attempt++ {
		if attempt > 1 {
			w.logDebug("retrying write",
				"attempt", attempt,
				"retries", w.config.Retries,
			)
			if err := w.sleep(ctx, w.config.Backoff); err != nil {
				return nil, err
			}
		}

		// Discard a stale acknowledgement left over from a failed attempt.
		select {
		case <-w.acks:
		default:
		}

		if err := write(ctx, pkt); err != nil {
			lastErr = &TransportError{Op: "write", Err: err}
			continue
		}

		ack, err := w.waitAck(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			lastErr = err
			continue
		}
		return ack, nil
	}

	return nil, lastErr
}

// waitAck blocks until an acknowledgement arrives, the acknowledgement
// timeout elapses, or the context is cancelled.
func (w *Writer) waitAck(ctx context.Context) ([]byte, error) {
	t := time.NewTimer(w.config.AckTimeout)
	defer t.Stop()

	select {
	case ack := <-w.acks:
		w.logDebug("acknowledgement", "data", fmt.Sprintf("% X", ack))
		return ack, nil
	case <-t.C:
		return nil, ErrAckTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// sleep waits for the given duration unless the context fires first.
func (w *Writer) sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// report calls the progress callback if configured.
func (w *Writer) report(progress Progress) {
	if w.config.Progress != nil {
		w.config.Progress(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (w *Writer) logDebug(msg string, keysAndValues ...interface{}) {
	if w.config.Logger != nil {
		w.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (w *Writer) logInfo(msg string, keysAndValues ...interface{}) {
	if w.config.Logger != nil {
		w.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (w *Writer) logError(msg string, keysAndValues ...interface{}) {
	if w.config.Logger != nil {
		w.config.Logger.Error(msg, keysAndValues...)
	}
}
