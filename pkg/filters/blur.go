package filters

import "github.com/user/framefx/pkg/frame"

// BlurParams configures the box blur.
type BlurParams struct {
	Radius     float64 // pixels; truncated to an integer radius
	Iterations int     // repeat count, minimum 1
	// Gaussian is accepted but ignored; only the separable box blur is
	// implemented.
	Gaussian bool
}

// Blur applies a two-pass separable box blur. Each pass averages over
// [-radius, +radius] samples, dividing by the number of in-bounds samples;
// edge pixels use a smaller divisor rather than clamping or wrapping. All
// four channels including alpha are averaged. Returns false when the frame
// is not processable; a zero radius is a valid no-op.
func Blur(f *frame.Frame, p BlurParams) bool {
	if !rgbaFrame(f) {
		return false
	}
	radius := int(p.Radius)
	if radius <= 0 {
		return true
	}
	iterations := p.Iterations
	if iterations < 1 {
		iterations = 1
	}

	width, height := f.Width, f.Height
	temp := make([]byte, len(f.Data))

	for it := 0; it < iterations; it++ {
		// Horizontal pass: read temp, write the frame.
		copy(temp, f.Data)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				var sumR, sumG, sumB, sumA, count int
				for dx := -radius; dx <= radius; dx++ {
					nx := x + dx
					if nx < 0 || nx >= width {
						continue
					}
					idx := (y*width + nx) * 4
					sumR += int(temp[idx])
					sumG += int(temp[idx+1])
					sumB += int(temp[idx+2])
					sumA += int(temp[idx+3])
					count++
				}
				idx := (y*width + x) * 4
				f.Data[idx] = uint8(sumR / count)
				f.Data[idx+1] = uint8(sumG / count)
				f.Data[idx+2] = uint8(sumB / count)
				f.Data[idx+3] = uint8(sumA / count)
			}
		}

		// Vertical pass on the horizontal result.
		copy(temp, f.Data)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				var sumR, sumG, sumB, sumA, count int
				for dy := -radius; dy <= radius; dy++ {
					ny := y + dy
					if ny < 0 || ny >= height {
						continue
					}
					idx := (ny*width + x) * 4
					sumR += int(temp[idx])
					sumG += int(temp[idx+1])
					sumB += int(temp[idx+2])
					sumA += int(temp[idx+3])
					count++
				}
				idx := (y*width + x) * 4
				f.Data[idx] = uint8(sumR / count)
				f.Data[idx+1] = uint8(sumG / count)
				f.Data[idx+2] = uint8(sumB / count)
				f.Data[idx+3] = uint8(sumA / count)
			}
		}
	}
	return true
}
