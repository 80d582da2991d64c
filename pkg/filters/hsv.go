package filters

import "math"

// rgbToHSV converts byte RGB to hue (degrees 0-360), saturation, and value
// (both 0-1) using the max/min/delta construction. Hue is 0 for gray.
func rgbToHSV(r, g, b uint8) (h, s, v float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	maxVal := math.Max(rf, math.Max(gf, bf))
	minVal := math.Min(rf, math.Min(gf, bf))
	delta := maxVal - minVal

	v = maxVal
	if maxVal != 0 {
		s = delta / maxVal
	}

	switch {
	case delta == 0:
		h = 0
	case maxVal == rf:
		h = 60 * ((gf - bf) / delta)
		if h < 0 {
			h += 360
		}
	case maxVal == gf:
		h = 60*((bf-rf)/delta) + 120
	default:
		h = 60*((rf-gf)/delta) + 240
	}
	return h, s, v
}

// hsvToRGB converts HSV back to byte RGB using the standard sector and
// fractional-part reconstruction. Hue wraps modulo 360; s == 0 yields gray.
func hsvToRGB(h, s, v float64) (r, g, b uint8) {
	if s == 0 {
		gray := clampByte(v * 255)
		return gray, gray, gray
	}

	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	sector := int(h / 60)
	f := h/60 - float64(sector)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch sector {
	case 0:
		return clampByte(v * 255), clampByte(t * 255), clampByte(p * 255)
	case 1:
		return clampByte(q * 255), clampByte(v * 255), clampByte(p * 255)
	case 2:
		return clampByte(p * 255), clampByte(v * 255), clampByte(t * 255)
	case 3:
		return clampByte(p * 255), clampByte(q * 255), clampByte(v * 255)
	case 4:
		return clampByte(t * 255), clampByte(p * 255), clampByte(v * 255)
	default:
		return clampByte(v * 255), clampByte(p * 255), clampByte(q * 255)
	}
}
