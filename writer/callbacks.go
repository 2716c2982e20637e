package writer

import "time"

// Transfer phase names passed to ProgressCallback.
const (
	// PhaseStart is the handshake opening
	PhaseStart = "start"

	// PhaseSize is the payload size negotiation
	PhaseSize = "size"

	// PhaseImageStart is the image data phase opening
	PhaseImageStart = "image start"

	// PhaseTransfer is the sequenced chunk delivery
	PhaseTransfer = "transfer"

	// PhaseComplete is reported once after the tag signals end of transfer
	PhaseComplete = "complete"
)

// Progress contains information about a transfer in flight.
// Passed to ProgressCallback after each acknowledged step.
type Progress struct {
	// Phase is the current transfer phase, one of the Phase* constants
	Phase string

	// CurrentChunk is the number of chunks the tag has acknowledged
	CurrentChunk int

	// TotalChunks is the total number of chunks in this transfer
	TotalChunks int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// BytesWritten is the number of payload bytes delivered so far
	BytesWritten int

	// Elapsed is the time since the transfer started
	Elapsed time.Duration
}

// ProgressCallback is called during a transfer to report progress.
// Implementations should return quickly; the callback runs on the transfer
// path between round trips.
type ProgressCallback func(Progress)

// Logger is an optional logging interface. It matches the shape of most
// structured loggers so any framework can be adapted in a few lines:
//
//	type zapLogger struct{ s *zap.SugaredLogger }
//
//	func (l zapLogger) Debug(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
//	func (l zapLogger) Info(msg string, kv ...interface{})  { l.s.Infow(msg, kv...) }
//	func (l zapLogger) Error(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
