package ports

import (
	"github.com/user/framefx/pkg/frame"
)

// VideoEncoder abstracts the sink that turns processed frames into an
// exportable byte stream. Start must be called before AddFrame; Finish
// returns the finished container. After Finish or Cancel the encoder must
// not be reused.
type VideoEncoder interface {
	// Start initializes the encoder for the given geometry and frame rate.
	Start(width, height int, fps float64) error

	// AddFrame encodes one processed frame. Frames must arrive in
	// presentation order.
	AddFrame(f *frame.Frame) error

	// Finish finalizes the stream and returns the container bytes.
	Finish() ([]byte, error)

	// Cancel discards buffered state. Safe to call at any point.
	Cancel()
}
