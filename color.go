package soft3d

import (
	"image/color"

	"github.com/solarlune/soft3d/math32"
)

// A Color is a packed 32-bit color in 0xAARRGGBB order, the same layout a Framebuffer stores per pixel.
type Color uint32

// NewColorRGB returns a fully opaque Color from the 0 - 255 R, G, and B components provided.
func NewColorRGB(r, g, b uint8) Color {
	return NewColorRGBA(r, g, b, 0xFF)
}

// NewColorRGBA returns a Color from the 0 - 255 R, G, B, and A components provided.
func NewColorRGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// NewColorFromImageColor converts any image/color Color to a packed Color.
func NewColorFromImageColor(c color.Color) Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewColorRGBA(nrgba.R, nrgba.G, nrgba.B, nrgba.A)
}

// Components returns the R, G, B, and A components of the Color, each ranging from 0 to 255.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// Lerp interpolates between the calling Color and the other Color by t (clamped to 0 - 1). The result is always opaque.
func (c Color) Lerp(other Color, t float32) Color {

	t = math32.Clamp(t, 0, 1)

	r1, g1, b1, _ := c.Components()
	r2, g2, b2, _ := other.Components()

	r := math32.Lerp(float32(r1), float32(r2), t)
	g := math32.Lerp(float32(g1), float32(g2), t)
	b := math32.Lerp(float32(b1), float32(b2), t)

	return NewColorRGB(uint8(r), uint8(g), uint8(b))

}

// ToNRGBA converts the Color to a non-premultiplied image/color value.
func (c Color) ToNRGBA() color.NRGBA {
	r, g, b, a := c.Components()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.ToNRGBA().RGBA()
}
