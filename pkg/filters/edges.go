package filters

import (
	"math"

	"github.com/user/framefx/pkg/frame"
)

var sobelX = [3][3]float64{
	{-1, 0, 1},
	{-2, 0, 2},
	{-1, 0, 1},
}

var sobelY = [3][3]float64{
	{-1, -2, -1},
	{0, 0, 0},
	{1, 2, 1},
}

// EdgeDetection runs the Sobel operator per channel on interior pixels,
// averages the three gradient magnitudes, amplifies by 3, and blends the
// edge strength with the original pixel by intensity. Border pixels are
// left untouched.
func EdgeDetection(f *frame.Frame, intensity float64) {
	if !rgbaFrame(f) || intensity < 0 {
		return
	}
	if intensity > 1 {
		intensity = 1
	}

	width, height := f.Width, f.Height
	temp := make([]byte, len(f.Data))
	copy(temp, f.Data)

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			var gxR, gxG, gxB, gyR, gyG, gyB float64

			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					idx := ((y+ky)*width + (x + kx)) * 4
					r := float64(temp[idx]) / 255
					g := float64(temp[idx+1]) / 255
					b := float64(temp[idx+2]) / 255

					wx := sobelX[ky+1][kx+1]
					wy := sobelY[ky+1][kx+1]

					gxR += r * wx
					gxG += g * wx
					gxB += b * wx
					gyR += r * wy
					gyG += g * wy
					gyB += b * wy
				}
			}

			magR := math.Sqrt(gxR*gxR + gyR*gyR)
			magG := math.Sqrt(gxG*gxG + gyG*gyG)
			magB := math.Sqrt(gxB*gxB + gyB*gyB)

			edge := clamp01((magR + magG + magB) / 3 * 3)

			idx := (y*width + x) * 4
			rf := float64(temp[idx]) / 255
			gf := float64(temp[idx+1]) / 255
			bf := float64(temp[idx+2]) / 255

			f.Data[idx] = roundByte(rf + (edge-rf)*intensity)
			f.Data[idx+1] = roundByte(gf + (edge-gf)*intensity)
			f.Data[idx+2] = roundByte(bf + (edge-bf)*intensity)
		}
	}
}
