package filters

import (
	"math"

	"github.com/user/framefx/pkg/frame"
)

// TransformParams configures the geometric transform. The crop rectangle is
// expressed in percentages of the source dimensions.
type TransformParams struct {
	Scale          float64 // percent; 100 is unscaled
	Rotation       float64 // degrees, counter-clockwise
	FlipHorizontal bool
	FlipVertical   bool
	CropX          float64 // percent
	CropY          float64 // percent
	CropWidth      float64 // percent
	CropHeight     float64 // percent
}

// DefaultTransform returns the identity transform with a full crop.
func DefaultTransform() TransformParams {
	return TransformParams{Scale: 100, CropWidth: 100, CropHeight: 100}
}

// Transform applies crop, scale, rotation, and flips by inverse mapping:
// every destination pixel is mapped back to a source coordinate and sampled
// with bilinear interpolation. Destinations outside the crop rectangle or
// whose source lies outside the frame become transparent black. Scale <= 0
// is invalid input and returns false with the frame untouched.
func Transform(f *frame.Frame, p TransformParams) bool {
	if !rgbaFrame(f) || p.Scale <= 0 {
		return false
	}

	width, height := f.Width, f.Height
	src := make([]byte, len(f.Data))
	copy(src, f.Data)
	for i := range f.Data {
		f.Data[i] = 0
	}

	scale := p.Scale / 100
	theta := p.Rotation * math.Pi / 180
	cos, sin := math.Cos(theta), math.Sin(theta)

	cropLeft := clampInt(int(p.CropX*float64(width)/100), 0, width)
	cropTop := clampInt(int(p.CropY*float64(height)/100), 0, height)
	cropRight := clampInt(cropLeft+int(p.CropWidth*float64(width)/100), 0, width)
	cropBottom := clampInt(cropTop+int(p.CropHeight*float64(height)/100), 0, height)

	centerX := float64(width) * 0.5
	centerY := float64(height) * 0.5

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < cropLeft || x >= cropRight || y < cropTop || y >= cropBottom {
				continue // transparent black
			}

			// Un-scale, un-rotate around the center.
			tx := (float64(x) - centerX) / scale
			ty := (float64(y) - centerY) / scale
			rx := tx*cos - ty*sin
			ry := tx*sin + ty*cos

			sx := rx + centerX
			sy := ry + centerY

			if p.FlipHorizontal {
				sx = float64(width-1) - sx
			}
			if p.FlipVertical {
				sy = float64(height-1) - sy
			}

			if sx < 0 || sx >= float64(width) || sy < 0 || sy >= float64(height) {
				continue // outside the source, stays transparent black
			}

			r, g, b, a := samplePixel(src, width, height, sx, sy)
			idx := (y*width + x) * 4
			f.Data[idx] = r
			f.Data[idx+1] = g
			f.Data[idx+2] = b
			f.Data[idx+3] = a
		}
	}
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// samplePixel bilinearly samples RGBA data at a fractional coordinate,
// clamping to the image bounds and rounding each channel half-up.
func samplePixel(data []byte, width, height int, x, y float64) (r, g, b, a uint8) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x >= float64(width-1) {
		x = float64(width - 1)
	}
	if y >= float64(height-1) {
		y = float64(height - 1)
	}

	x1, y1 := int(x), int(y)
	x2, y2 := x1+1, y1+1
	if x2 >= width {
		x2 = width - 1
	}
	if y2 >= height {
		y2 = height - 1
	}

	fx := x - float64(x1)
	fy := y - float64(y1)

	i11 := (y1*width + x1) * 4
	i12 := (y1*width + x2) * 4
	i21 := (y2*width + x1) * 4
	i22 := (y2*width + x2) * 4

	mix := func(c int) uint8 {
		v := float64(data[i11+c])*(1-fx)*(1-fy) +
			float64(data[i12+c])*fx*(1-fy) +
			float64(data[i21+c])*(1-fx)*fy +
			float64(data[i22+c])*fx*fy
		return uint8(v + 0.5)
	}
	return mix(0), mix(1), mix(2), mix(3)
}
