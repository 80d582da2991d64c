package filters

import (
	"math"

	"github.com/user/framefx/pkg/frame"
)

// Vignette darkens pixels by their distance from the frame center. The
// falloff is (distance/maxDistance)^1.5 where maxDistance reaches a corner,
// so the center pixel is unchanged at any intensity.
func Vignette(f *frame.Frame, intensity float64) {
	if !rgbaFrame(f) || intensity < 0 {
		return
	}
	if intensity > 1 {
		intensity = 1
	}

	width, height := f.Width, f.Height
	centerX := float64(width) * 0.5
	centerY := float64(height) * 0.5
	maxDistance := math.Sqrt(centerX*centerX + centerY*centerY)

	data := f.Data
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := float64(x) - centerX
			dy := float64(y) - centerY
			ratio := math.Sqrt(dx*dx+dy*dy) / maxDistance

			factor := clamp01(1 - math.Pow(ratio, 1.5))
			finalFactor := 1 - (1-factor)*intensity

			idx := (y*width + x) * 4
			data[idx] = roundByte(float64(data[idx]) / 255 * finalFactor)
			data[idx+1] = roundByte(float64(data[idx+1]) / 255 * finalFactor)
			data[idx+2] = roundByte(float64(data[idx+2]) / 255 * finalFactor)
		}
	}
}
