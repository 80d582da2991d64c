package filters

import (
	"math"

	"github.com/user/framefx/pkg/frame"
)

// ColorCorrectionParams holds the per-channel adjustment parameters.
type ColorCorrectionParams struct {
	Brightness float64 // -1 to 1
	Contrast   float64 // -1 to 1
	Saturation float64 // -1 to 1
	Hue        float64 // -180 to 180 degrees
	Gamma      float64 // 0.1 to 3
	Exposure   float64 // -5 to 5 stops
}

// NeutralColorCorrection returns parameters that leave the frame unchanged
// up to rounding.
func NeutralColorCorrection() ColorCorrectionParams {
	return ColorCorrectionParams{Gamma: 1}
}

// ColorCorrection applies brightness, contrast, gamma, exposure, and
// (through HSV) saturation and hue adjustments per pixel. The HSV round
// trip only runs when saturation or hue are non-zero, so the common
// brightness/contrast path stays cheap. Returns false when the frame is
// not processable.
func ColorCorrection(f *frame.Frame, p ColorCorrectionParams) bool {
	if !rgbaFrame(f) {
		return false
	}

	exposureMul := math.Pow(2, p.Exposure)
	adjustHSV := p.Saturation != 0 || p.Hue != 0

	data := f.Data
	n := f.Width * f.Height
	for i := 0; i < n; i++ {
		idx := i * 4
		rf := float64(data[idx]) / 255
		gf := float64(data[idx+1]) / 255
		bf := float64(data[idx+2]) / 255

		rf += p.Brightness
		gf += p.Brightness
		bf += p.Brightness

		rf = (rf-0.5)*(1+p.Contrast) + 0.5
		gf = (gf-0.5)*(1+p.Contrast) + 0.5
		bf = (bf-0.5)*(1+p.Contrast) + 0.5

		if p.Gamma != 1 && p.Gamma != 0 {
			inv := 1 / p.Gamma
			rf = math.Pow(math.Max(rf, 0), inv)
			gf = math.Pow(math.Max(gf, 0), inv)
			bf = math.Pow(math.Max(bf, 0), inv)
		}

		rf *= exposureMul
		gf *= exposureMul
		bf *= exposureMul

		var r, g, b uint8
		if adjustHSV {
			h, s, v := rgbToHSV(clampByte(rf*255), clampByte(gf*255), clampByte(bf*255))
			h += p.Hue
			s = clamp01(s * (1 + p.Saturation))
			r, g, b = hsvToRGB(h, s, v)
		} else {
			r = clampByte(rf * 255)
			g = clampByte(gf * 255)
			b = clampByte(bf * 255)
		}

		data[idx] = r
		data[idx+1] = g
		data[idx+2] = b
		// data[idx+3] untouched
	}
	return true
}
