package soft3d

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// debugFace is the font used for debug text; each line is 13 pixels tall and each glyph 7 pixels wide.
var debugFace = basicfont.Face7x13

// MeasureDebugText returns the size in pixels DrawDebugText would cover for the text given, excluding the outline.
func MeasureDebugText(txt string) (width, height int) {

	lines := strings.Split(txt, "\n")

	for _, line := range lines {
		if w := font.MeasureString(debugFace, line).Ceil(); w > width {
			width = w
		}
	}

	return width, len(lines) * debugFace.Height

}

// DrawDebugText draws the (possibly multi-line) text given into the Framebuffer's color buffer, with the top-left corner
// of the first line at x, y. The text is outlined in black by a pixel so it's readable over any scene. Nothing is depth-tested.
func DrawDebugText(fb *Framebuffer, txt string, x, y int, c Color) {

	outline := image.NewUniform(NewColorRGB(0, 0, 0).ToNRGBA())
	fill := image.NewUniform(c.ToNRGBA())

	drawer := &font.Drawer{
		Dst:  fb,
		Face: debugFace,
	}

	for lineIndex, line := range strings.Split(txt, "\n") {

		if line == "" {
			continue
		}

		baseline := y + lineIndex*debugFace.Height + debugFace.Ascent

		drawer.Src = outline

		for oy := -1; oy < 2; oy++ {
			for ox := -1; ox < 2; ox++ {
				drawer.Dot = fixed.P(x+ox, baseline+oy)
				drawer.DrawString(line)
			}
		}

		drawer.Src = fill
		drawer.Dot = fixed.P(x, baseline)
		drawer.DrawString(line)

	}

}
