package filters

import "github.com/user/framefx/pkg/frame"

// Stylistic color-mix filters. Each computes a fully styled color, then
// linearly interpolates with the original by intensity, so intensity 0 is
// the identity and intensity 1 the full effect.

// Sepia applies the classic sepia tone matrix.
func Sepia(f *frame.Frame, intensity float64) {
	if !rgbaFrame(f) || intensity < 0 {
		return
	}
	if intensity > 1 {
		intensity = 1
	}

	data := f.Data
	n := f.Width * f.Height
	for i := 0; i < n; i++ {
		idx := i * 4
		rf := float64(data[idx]) / 255
		gf := float64(data[idx+1]) / 255
		bf := float64(data[idx+2]) / 255

		sr := rf*0.393 + gf*0.769 + bf*0.189
		sg := rf*0.349 + gf*0.686 + bf*0.168
		sb := rf*0.272 + gf*0.534 + bf*0.131
		if sr > 1 {
			sr = 1
		}
		if sg > 1 {
			sg = 1
		}
		if sb > 1 {
			sb = 1
		}

		data[idx] = roundByte(rf + (sr-rf)*intensity)
		data[idx+1] = roundByte(gf + (sg-gf)*intensity)
		data[idx+2] = roundByte(bf + (sb-bf)*intensity)
	}
}

// BlackWhite converts toward the BT.709 luminance of each pixel.
func BlackWhite(f *frame.Frame, intensity float64) {
	if !rgbaFrame(f) || intensity < 0 {
		return
	}
	if intensity > 1 {
		intensity = 1
	}

	data := f.Data
	n := f.Width * f.Height
	for i := 0; i < n; i++ {
		idx := i * 4
		rf := float64(data[idx]) / 255
		gf := float64(data[idx+1]) / 255
		bf := float64(data[idx+2]) / 255

		lum := 0.2126*rf + 0.7152*gf + 0.0722*bf

		data[idx] = roundByte(rf + (lum-rf)*intensity)
		data[idx+1] = roundByte(gf + (lum-gf)*intensity)
		data[idx+2] = roundByte(bf + (lum-bf)*intensity)
	}
}

// Vintage combines a warm color mix with a soft contrast lift.
func Vintage(f *frame.Frame, intensity float64) {
	if !rgbaFrame(f) || intensity < 0 {
		return
	}
	if intensity > 1 {
		intensity = 1
	}

	data := f.Data
	n := f.Width * f.Height
	for i := 0; i < n; i++ {
		idx := i * 4
		rf := float64(data[idx]) / 255
		gf := float64(data[idx+1]) / 255
		bf := float64(data[idx+2]) / 255

		vr := rf*0.9 + gf*0.5 + bf*0.3
		vg := rf*0.3 + gf*0.8 + bf*0.3
		vb := rf*0.2 + gf*0.3 + bf*0.7

		// Soft contrast: compress toward the highlights.
		vr = clamp01(0.3 + vr*0.7)
		vg = clamp01(0.3 + vg*0.7)
		vb = clamp01(0.3 + vb*0.7)

		data[idx] = roundByte(rf + (vr-rf)*intensity)
		data[idx+1] = roundByte(gf + (vg-gf)*intensity)
		data[idx+2] = roundByte(bf + (vb-bf)*intensity)
	}
}
