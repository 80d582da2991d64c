// Package filters implements pure per-frame pixel transforms: color
// correction, blur, sharpen, noise reduction, stylistic looks, edge
// detection, and the geometric transform.
//
// Every filter is a total function over an RGBA frame: nil frames, missing
// buffers, non-positive dimensions, or non-RGBA formats are a silent no-op.
// The alpha channel is preserved unless a filter documents otherwise.
package filters

import "github.com/user/framefx/pkg/frame"

// Kind identifies an intensity-parameterized filter.
type Kind int

const (
	KindBrightness Kind = iota
	KindContrast
	KindSaturation
	KindHue
	KindBlur
	KindSharpen
	KindNoiseReduction
	KindEdgeDetection
	KindSepia
	KindBlackWhite
	KindVintage
	KindVignette
)

// String returns the filter name as used in configuration files.
func (k Kind) String() string {
	switch k {
	case KindBrightness:
		return "brightness"
	case KindContrast:
		return "contrast"
	case KindSaturation:
		return "saturation"
	case KindHue:
		return "hue"
	case KindBlur:
		return "blur"
	case KindSharpen:
		return "sharpen"
	case KindNoiseReduction:
		return "noise_reduction"
	case KindEdgeDetection:
		return "edge_detection"
	case KindSepia:
		return "sepia"
	case KindBlackWhite:
		return "black_white"
	case KindVintage:
		return "vintage"
	case KindVignette:
		return "vignette"
	default:
		return "unknown"
	}
}

// ParseKind maps a configuration name to a Kind. The second result is false
// for unknown names.
func ParseKind(s string) (Kind, bool) {
	for k := KindBrightness; k <= KindVignette; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Apply dispatches an intensity-parameterized filter. The brightness,
// contrast, saturation, and hue kinds route through ColorCorrection with
// the single corresponding parameter set; hue maps intensity to degrees.
// Unknown kinds and unprocessable frames return false so the caller can
// log and continue.
func Apply(f *frame.Frame, kind Kind, intensity float64) bool {
	if !rgbaFrame(f) {
		return false
	}
	switch kind {
	case KindBrightness:
		p := NeutralColorCorrection()
		p.Brightness = intensity
		ColorCorrection(f, p)
	case KindContrast:
		p := NeutralColorCorrection()
		p.Contrast = intensity
		ColorCorrection(f, p)
	case KindSaturation:
		p := NeutralColorCorrection()
		p.Saturation = intensity
		ColorCorrection(f, p)
	case KindHue:
		p := NeutralColorCorrection()
		p.Hue = intensity * 180
		ColorCorrection(f, p)
	case KindBlur:
		Blur(f, BlurParams{Radius: intensity * 20, Iterations: 1})
	case KindSharpen:
		Sharpen(f, intensity)
	case KindNoiseReduction:
		NoiseReduction(f, intensity)
	case KindEdgeDetection:
		EdgeDetection(f, intensity)
	case KindSepia:
		Sepia(f, intensity)
	case KindBlackWhite:
		BlackWhite(f, intensity)
	case KindVintage:
		Vintage(f, intensity)
	case KindVignette:
		Vignette(f, intensity)
	default:
		return false
	}
	return true
}

// rgbaFrame reports whether f is a processable RGBA frame.
func rgbaFrame(f *frame.Frame) bool {
	return f.Valid() && f.Format == frame.FormatRGBA
}

// clampByte truncates a float to the 0-255 byte range.
func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// roundByte maps a clamped [0,1] value to a byte with round-half-up.
func roundByte(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
