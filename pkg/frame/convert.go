package frame

// Color space conversions between packed RGB/RGBA and planar YUV 4:2:0
// using the ITU-R BT.709 coefficients.

// BT.709 YUV -> RGB coefficients, row-major (Y, U, V per output channel).
var yuvToRGB = [9]float64{
	1.0, 0.0, 1.5748,
	1.0, -0.1873, -0.4681,
	1.0, 1.8556, 0.0,
}

// BT.709 RGB -> YUV coefficients, row-major (R, G, B per output channel).
var rgbToYUV = [9]float64{
	0.2126, 0.7152, 0.0722,
	-0.1146, -0.3854, 0.5,
	0.5, -0.4542, -0.0458,
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// RGBToYUV420 converts packed RGB into planar YUV 4:2:0. The yuv buffer must
// hold BufferSize(FormatYUV420, width, height) bytes. Chroma is sampled at
// even pixel positions. Invalid inputs are a no-op.
func RGBToYUV420(rgb, yuv []byte, width, height int) {
	if rgb == nil || yuv == nil || width <= 0 || height <= 0 {
		return
	}
	if len(rgb) < width*height*3 || len(yuv) < BufferSize(FormatYUV420, width, height) {
		return
	}

	ySize := width * height
	uvSize := (width / 2) * (height / 2)
	yPlane := yuv[:ySize]
	uPlane := yuv[ySize : ySize+uvSize]
	vPlane := yuv[ySize+uvSize:]

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := (y*width + x) * 3
			r := float64(rgb[idx])
			g := float64(rgb[idx+1])
			b := float64(rgb[idx+2])

			yPlane[y*width+x] = clampByte(rgbToYUV[0]*r + rgbToYUV[1]*g + rgbToYUV[2]*b)

			if y%2 == 0 && x%2 == 0 {
				uvIdx := (y/2)*(width/2) + x/2
				uPlane[uvIdx] = clampByte(rgbToYUV[3]*r + rgbToYUV[4]*g + rgbToYUV[5]*b + 128)
				vPlane[uvIdx] = clampByte(rgbToYUV[6]*r + rgbToYUV[7]*g + rgbToYUV[8]*b + 128)
			}
		}
	}
}

// YUV420ToRGB converts planar YUV 4:2:0 into packed RGB. Invalid inputs are
// a no-op.
func YUV420ToRGB(yuv, rgb []byte, width, height int) {
	if yuv == nil || rgb == nil || width <= 0 || height <= 0 {
		return
	}
	if len(rgb) < width*height*3 || len(yuv) < BufferSize(FormatYUV420, width, height) {
		return
	}

	ySize := width * height
	uvSize := (width / 2) * (height / 2)
	yPlane := yuv[:ySize]
	uPlane := yuv[ySize : ySize+uvSize]
	vPlane := yuv[ySize+uvSize:]

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			yv := float64(yPlane[y*width+x])
			uvIdx := (y/2)*(width/2) + x/2
			uv := float64(uPlane[uvIdx]) - 128
			vv := float64(vPlane[uvIdx]) - 128

			idx := (y*width + x) * 3
			rgb[idx] = clampByte(yuvToRGB[0]*yv + yuvToRGB[1]*uv + yuvToRGB[2]*vv)
			rgb[idx+1] = clampByte(yuvToRGB[3]*yv + yuvToRGB[4]*uv + yuvToRGB[5]*vv)
			rgb[idx+2] = clampByte(yuvToRGB[6]*yv + yuvToRGB[7]*uv + yuvToRGB[8]*vv)
		}
	}
}

// RGBAToRGB drops the alpha channel. Invalid inputs are a no-op.
func RGBAToRGB(rgba, rgb []byte, width, height int) {
	if rgba == nil || rgb == nil || width <= 0 || height <= 0 {
		return
	}
	n := width * height
	if len(rgba) < n*4 || len(rgb) < n*3 {
		return
	}
	for i := 0; i < n; i++ {
		rgb[i*3] = rgba[i*4]
		rgb[i*3+1] = rgba[i*4+1]
		rgb[i*3+2] = rgba[i*4+2]
	}
}

// RGBToRGBA expands packed RGB with a constant alpha. Invalid inputs are a
// no-op.
func RGBToRGBA(rgb, rgba []byte, width, height int, alpha uint8) {
	if rgb == nil || rgba == nil || width <= 0 || height <= 0 {
		return
	}
	n := width * height
	if len(rgba) < n*4 || len(rgb) < n*3 {
		return
	}
	for i := 0; i < n; i++ {
		rgba[i*4] = rgb[i*3]
		rgba[i*4+1] = rgb[i*3+1]
		rgba[i*4+2] = rgb[i*3+2]
		rgba[i*4+3] = alpha
	}
}
