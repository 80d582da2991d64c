package ports

import (
	"image"
)

// SourceFrame is one decoded input frame with its position in the clip.
type SourceFrame struct {
	Image image.Image
	Index int
}

// FrameSource abstracts reading a clip as a sequence of still frames, for
// example a directory of numbered PNG or JPEG files.
type FrameSource interface {
	// ReadFrames decodes every frame under path in presentation order.
	ReadFrames(path string) ([]SourceFrame, error)
}
