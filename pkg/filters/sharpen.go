package filters

import "github.com/user/framefx/pkg/frame"

// Sharpen applies the 3x3 kernel
//
//	[  0  -i   0 ]
//	[ -i 1+4i -i ]
//	[  0  -i   0 ]
//
// to the RGB channels, reading from a snapshot of the frame so neighbors
// are never observed mid-mutation. Border pixels are left unmodified.
func Sharpen(f *frame.Frame, intensity float64) {
	if !rgbaFrame(f) {
		return
	}

	width, height := f.Width, f.Height
	temp := make([]byte, len(f.Data))
	copy(temp, f.Data)

	kernel := [9]float64{
		0, -intensity, 0,
		-intensity, 1 + 4*intensity, -intensity,
		0, -intensity, 0,
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			var sumR, sumG, sumB float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					idx := ((y+ky)*width + (x + kx)) * 4
					w := kernel[(ky+1)*3+(kx+1)]
					sumR += float64(temp[idx]) * w
					sumG += float64(temp[idx+1]) * w
					sumB += float64(temp[idx+2]) * w
				}
			}
			idx := (y*width + x) * 4
			f.Data[idx] = clampByte(sumR)
			f.Data[idx+1] = clampByte(sumG)
			f.Data[idx+2] = clampByte(sumB)
		}
	}
}
