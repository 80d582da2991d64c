package frame

import (
	"image"
	"image/draw"
)

// Bridging between Frame and the standard image types used by the
// decode/encode adapters.

// ToImage returns the frame as an image.RGBA sharing no memory with the
// frame. Only RGBA frames convert; other formats return nil.
func (f *Frame) ToImage() *image.RGBA {
	if !f.Valid() || f.Format != FormatRGBA {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	copy(img.Pix, f.Data)
	return img
}

// FromImage converts any image.Image into an RGBA frame.
func FromImage(img image.Image) *Frame {
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != w*4 || !bounds.Min.Eq(image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	f := &Frame{
		Data:   make([]byte, w*h*4),
		Width:  w,
		Height: h,
		Stride: w * 4,
		Format: FormatRGBA,
	}
	copy(f.Data, rgba.Pix)
	return f
}
