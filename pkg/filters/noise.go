package filters

import "github.com/user/framefx/pkg/frame"

// NoiseReduction smooths interior pixels with a weighted 3x3 average: the
// center pixel keeps weight 1 - strength*0.3 and each of the eight
// neighbors contributes strength*0.05. Alpha is not touched.
func NoiseReduction(f *frame.Frame, strength float64) {
	if !rgbaFrame(f) || strength <= 0 {
		return
	}

	width, height := f.Width, f.Height
	centerWeight := 1 - strength*0.3
	neighborWeight := strength * 0.05

	temp := make([]byte, len(f.Data))
	copy(temp, f.Data)

	at := func(x, y, c int) float64 {
		return float64(temp[(y*width+x)*4+c])
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			for c := 0; c < 3; c++ {
				sum := at(x, y, c) * centerWeight
				sum += at(x-1, y-1, c) * neighborWeight
				sum += at(x, y-1, c) * neighborWeight
				sum += at(x+1, y-1, c) * neighborWeight
				sum += at(x-1, y, c) * neighborWeight
				sum += at(x+1, y, c) * neighborWeight
				sum += at(x-1, y+1, c) * neighborWeight
				sum += at(x, y+1, c) * neighborWeight
				sum += at(x+1, y+1, c) * neighborWeight
				f.Data[(y*width+x)*4+c] = clampByte(sum + 0.5)
			}
		}
	}
}
