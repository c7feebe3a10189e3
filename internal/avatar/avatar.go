// Package avatar renders the default profile picture assigned at user
// registration: a random-hue background with a simple smiley, returned as a
// PNG data URI so it can be stored inline on the user record.
package avatar

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"math"
	"math/rand"
)

const size = 600

// Generate returns a data URI for a freshly drawn profile picture.
func Generate() (string, error) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	bg := hslToRGB(float64(rand.Intn(361)), 0.70, 0.35)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, bg)
		}
	}

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// Eyes.
	fillCircle(img, size/5, size/3, 28, white)
	fillCircle(img, size-size/5, size/3, 28, white)

	// Smile: the lower half of a circle, stroked by stamping discs along
	// the path.
	cx, cy, r := size/2+80, size/2+40, 100.0
	for a := 0.0; a <= math.Pi; a += 0.01 {
		x := float64(cx) + r*math.Cos(a)
		y := float64(cy) + r*math.Sin(a)
		fillCircle(img, int(x), int(y), 14, white)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				img.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

func hslToRGB(h, s, l float64) color.RGBA {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: 255,
	}
}
