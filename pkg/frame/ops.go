package frame

// Whole-frame geometric operations used by the decode and export paths.
// The per-effect geometric transform lives in the filters package.

// bilinearRGBA samples the RGBA buffer at a fractional coordinate, clamping
// to the image bounds.
func bilinearRGBA(data []byte, width, height int, x, y float64) (r, g, b, a uint8) {
	x1 := int(x)
	y1 := int(y)
	x2 := x1 + 1
	y2 := y1 + 1

	x1 = clampInt(x1, 0, width-1)
	y1 = clampInt(y1, 0, height-1)
	x2 = clampInt(x2, 0, width-1)
	y2 = clampInt(y2, 0, height-1)

	fx := x - float64(int(x))
	fy := y - float64(int(y))

	i11 := (y1*width + x1) * 4
	i12 := (y1*width + x2) * 4
	i21 := (y2*width + x1) * 4
	i22 := (y2*width + x2) * 4

	lerp := func(c int) uint8 {
		v := float64(data[i11+c])*(1-fx)*(1-fy) +
			float64(data[i12+c])*fx*(1-fy) +
			float64(data[i21+c])*(1-fx)*fy +
			float64(data[i22+c])*fx*fy
		return uint8(v)
	}
	return lerp(0), lerp(1), lerp(2), lerp(3)
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

// Resize scales src into a newly allocated RGBA frame using bilinear
// sampling. Invalid inputs return nil.
func Resize(src *Frame, newWidth, newHeight int) *Frame {
	if !src.Valid() || src.Format != FormatRGBA || newWidth <= 0 || newHeight <= 0 {
		return nil
	}

	dst := &Frame{
		Data:        make([]byte, newWidth*newHeight*4),
		Width:       newWidth,
		Height:      newHeight,
		Stride:      newWidth * 4,
		Format:      FormatRGBA,
		Timestamp:   src.Timestamp,
		FrameNumber: src.FrameNumber,
	}

	xScale := float64(src.Width) / float64(newWidth)
	yScale := float64(src.Height) / float64(newHeight)

	for y := 0; y < newHeight; y++ {
		for x := 0; x < newWidth; x++ {
			r, g, b, a := bilinearRGBA(src.Data, src.Width, src.Height, float64(x)*xScale, float64(y)*yScale)
			idx := (y*newWidth + x) * 4
			dst.Data[idx] = r
			dst.Data[idx+1] = g
			dst.Data[idx+2] = b
			dst.Data[idx+3] = a
		}
	}
	return dst
}

// Crop copies the rectangle (x, y, width, height) of src into a new RGBA
// frame. Rectangles that fall outside src return nil.
func Crop(src *Frame, x, y, width, height int) *Frame {
	if !src.Valid() || src.Format != FormatRGBA {
		return nil
	}
	if x < 0 || y < 0 || width <= 0 || height <= 0 || x+width > src.Width || y+height > src.Height {
		return nil
	}

	dst := &Frame{
		Data:        make([]byte, width*height*4),
		Width:       width,
		Height:      height,
		Stride:      width * 4,
		Format:      FormatRGBA,
		Timestamp:   src.Timestamp,
		FrameNumber: src.FrameNumber,
	}

	for row := 0; row < height; row++ {
		srcOff := ((y+row)*src.Width + x) * 4
		dstOff := row * width * 4
		copy(dst.Data[dstOff:dstOff+width*4], src.Data[srcOff:srcOff+width*4])
	}
	return dst
}
