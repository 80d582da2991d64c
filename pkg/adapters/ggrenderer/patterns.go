package ggrenderer

import (
	"image"
	"image/color"
	"math"

	"github.com/user/framefx/pkg/ports"
)

// TestPattern synthesizes a deterministic frame for demos and encoder
// checks. The pattern combines color bars with a moving marker so that both
// static color fidelity and temporal continuity are visible in the output;
// frameIndex selects the marker position.
func TestPattern(r ports.Renderer, width, height, frameIndex, frameCount int) image.Image {
	canvas := r.CreateCanvas(width, height, color.Black)

	// SMPTE-style color bars across the top two thirds.
	bars := []color.RGBA{
		{R: 192, G: 192, B: 192, A: 255},
		{R: 192, G: 192, B: 0, A: 255},
		{R: 0, G: 192, B: 192, A: 255},
		{R: 0, G: 192, B: 0, A: 255},
		{R: 192, G: 0, B: 192, A: 255},
		{R: 192, G: 0, B: 0, A: 255},
		{R: 0, G: 0, B: 192, A: 255},
	}
	barWidth := width / len(bars)
	barHeight := height * 2 / 3
	for i, c := range bars {
		x := i * barWidth
		w := barWidth
		if i == len(bars)-1 {
			w = width - x
		}
		canvas.DrawRect(x, 0, w, barHeight, c)
	}

	// Grayscale ramp strip under the bars.
	rampHeight := height / 6
	steps := 16
	stepWidth := width / steps
	for i := 0; i < steps; i++ {
		v := uint8(i * 255 / (steps - 1))
		canvas.DrawRect(i*stepWidth, barHeight, stepWidth+1, rampHeight, color.RGBA{R: v, G: v, B: v, A: 255})
	}

	// Moving marker along the bottom strip, plus a sweep line, so adjacent
	// frames are never identical.
	progress := 0.0
	if frameCount > 1 {
		progress = float64(frameIndex) / float64(frameCount-1)
	}
	markerY := barHeight + rampHeight + (height-barHeight-rampHeight)/2
	markerX := int(progress * float64(width-1))
	radius := (height - barHeight - rampHeight) / 3
	if radius < 2 {
		radius = 2
	}
	canvas.DrawCircle(markerX, markerY, radius, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	angle := progress * 2 * math.Pi
	cx, cy := width/2, barHeight/2
	sweep := float64(barHeight) / 2
	canvas.DrawLine(cx, cy,
		cx+int(sweep*math.Cos(angle)), cy+int(sweep*math.Sin(angle)),
		color.RGBA{R: 255, G: 255, B: 255, A: 255}, 2)

	return canvas.ToImage()
}
