// Package transitions implements pure two-frame blend operators used when
// two clips overlap in time. Each operator reads two already-processed
// frames and writes into a caller-supplied output frame of the same
// dimensions; progress 0 is fully the first frame, progress 1 fully the
// second.
package transitions

import (
	"fmt"

	"github.com/user/framefx/pkg/frame"
)

// Kind identifies a transition operator.
type Kind int

const (
	KindFade Kind = iota
	KindDissolve
	KindWipeLeft
	KindWipeRight
	KindWipeUp
	KindWipeDown
)

// String returns the transition name as used in configuration files.
func (k Kind) String() string {
	switch k {
	case KindFade:
		return "fade"
	case KindDissolve:
		return "dissolve"
	case KindWipeLeft:
		return "wipe_left"
	case KindWipeRight:
		return "wipe_right"
	case KindWipeUp:
		return "wipe_up"
	case KindWipeDown:
		return "wipe_down"
	default:
		return "unknown"
	}
}

// ParseKind maps a configuration name to a Kind.
func ParseKind(s string) (Kind, bool) {
	for k := KindFade; k <= KindWipeDown; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Apply dispatches a transition by kind.
func Apply(kind Kind, a, b, out *frame.Frame, progress float64) error {
	switch kind {
	case KindFade:
		return Fade(a, b, out, progress)
	case KindDissolve:
		return Dissolve(a, b, out, progress)
	case KindWipeLeft:
		return WipeLeft(a, b, out, progress)
	case KindWipeRight:
		return WipeRight(a, b, out, progress)
	case KindWipeUp:
		return WipeUp(a, b, out, progress)
	case KindWipeDown:
		return WipeDown(a, b, out, progress)
	default:
		return fmt.Errorf("transitions: unknown kind %d", kind)
	}
}

// validate checks that all three frames are usable RGBA frames with
// identical dimensions.
func validate(a, b, out *frame.Frame) error {
	for _, f := range []*frame.Frame{a, b, out} {
		if !f.Valid() || f.Format != frame.FormatRGBA {
			return fmt.Errorf("transitions: invalid frame")
		}
	}
	if a.Width != out.Width || a.Height != out.Height ||
		b.Width != out.Width || b.Height != out.Height {
		return fmt.Errorf("transitions: dimension mismatch %dx%d / %dx%d / %dx%d",
			a.Width, a.Height, b.Width, b.Height, out.Width, out.Height)
	}
	return nil
}

func clampProgress(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Fade linearly interpolates every channel between the two frames.
// Fade(a, b, 0) is exactly a and Fade(a, b, 1) exactly b.
func Fade(a, b, out *frame.Frame, progress float64) error {
	if err := validate(a, b, out); err != nil {
		return err
	}
	progress = clampProgress(progress)
	w1 := 1 - progress
	w2 := progress

	for i := 0; i < len(out.Data); i++ {
		out.Data[i] = uint8(float64(a.Data[i])*w1 + float64(b.Data[i])*w2)
	}
	return nil
}

// Dissolve switches pixels to the second frame once progress exceeds a
// deterministic per-position threshold ((x*31 + y*17) mod 100) / 100. Using
// a positional hash instead of an RNG keeps the output reproducible across
// the preview and export paths.
func Dissolve(a, b, out *frame.Frame, progress float64) error {
	if err := validate(a, b, out); err != nil {
		return err
	}
	progress = clampProgress(progress)

	width, height := out.Width, out.Height
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			threshold := float64((x*31+y*17)%100) / 100
			idx := (y*width + x) * 4
			src := a
			if progress > threshold {
				src = b
			}
			copy(out.Data[idx:idx+4], src.Data[idx:idx+4])
		}
	}
	return nil
}

// WipeLeft reveals the second frame from the left edge; the boundary column
// is floor(progress * width).
func WipeLeft(a, b, out *frame.Frame, progress float64) error {
	if err := validate(a, b, out); err != nil {
		return err
	}
	boundary := int(clampProgress(progress) * float64(out.Width))
	return wipeCols(a, b, out, func(x int) bool { return x < boundary })
}

// WipeRight reveals the second frame from the right edge; columns at or past
// width - floor(progress * width) show the second frame.
func WipeRight(a, b, out *frame.Frame, progress float64) error {
	if err := validate(a, b, out); err != nil {
		return err
	}
	boundary := out.Width - int(clampProgress(progress)*float64(out.Width))
	return wipeCols(a, b, out, func(x int) bool { return x >= boundary })
}

// WipeUp reveals the second frame from the bottom edge upward.
func WipeUp(a, b, out *frame.Frame, progress float64) error {
	if err := validate(a, b, out); err != nil {
		return err
	}
	boundary := out.Height - int(clampProgress(progress)*float64(out.Height))
	return wipeRows(a, b, out, func(y int) bool { return y >= boundary })
}

// WipeDown reveals the second frame from the top edge downward.
func WipeDown(a, b, out *frame.Frame, progress float64) error {
	if err := validate(a, b, out); err != nil {
		return err
	}
	boundary := int(clampProgress(progress) * float64(out.Height))
	return wipeRows(a, b, out, func(y int) bool { return y < boundary })
}

func wipeCols(a, b, out *frame.Frame, showSecond func(x int) bool) error {
	width, height := out.Width, out.Height
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := (y*width + x) * 4
			src := a
			if showSecond(x) {
				src = b
			}
			copy(out.Data[idx:idx+4], src.Data[idx:idx+4])
		}
	}
	return nil
}

func wipeRows(a, b, out *frame.Frame, showSecond func(y int) bool) error {
	width, height := out.Width, out.Height
	for y := 0; y < height; y++ {
		src := a
		if showSecond(y) {
			src = b
		}
		copy(out.Data[y*width*4:(y+1)*width*4], src.Data[y*width*4:(y+1)*width*4])
	}
	return nil
}
