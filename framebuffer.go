package soft3d

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/solarlune/soft3d/math32"
)

// Framebuffer is the render target: a color buffer of packed 0xAARRGGBB pixels and a depth buffer of float32 values,
// both width * height long, row-major, with the origin at the top-left. The two buffers are only ever allocated together.
// A Framebuffer isn't safe for concurrent use; the depth test in SetPixelWithDepth is a plain compare-then-write.
type Framebuffer struct {
	width  int
	height int
	color  []uint32
	depth  []float32
}

// NewFramebuffer creates a new Framebuffer of the given size, cleared to transparent black with every depth value at +Inf.
// NewFramebuffer panics if either dimension isn't positive.
func NewFramebuffer(width, height int) *Framebuffer {

	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("Error: NewFramebuffer() needs a positive size; got %d x %d", width, height))
	}

	size := width * height

	fb := &Framebuffer{
		width:  width,
		height: height,
		color:  make([]uint32, size),
		depth:  make([]float32, size),
	}

	fb.Clear(0)

	Logger().Debug("framebuffer allocated", "width", width, "height", height)

	return fb

}

// Width returns the width of the Framebuffer in pixels.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the height of the Framebuffer in pixels.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// ColorBuffer returns the backing color buffer (0xAARRGGBB, row-major, top-left origin). This is what gets presented.
func (fb *Framebuffer) ColorBuffer() []uint32 {
	return fb.color
}

// DepthBuffer returns the backing depth buffer.
func (fb *Framebuffer) DepthBuffer() []float32 {
	return fb.depth
}

// Clear sets every pixel to the color given and resets every depth value to +Inf.
func (fb *Framebuffer) Clear(clearColor Color) {

	inf := math32.Inf(1)

	for i := range fb.color {
		fb.color[i] = uint32(clearColor)
		fb.depth[i] = inf
	}

}

func (fb *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// SetPixel writes the color given at x, y without any depth test. Coordinates outside of the Framebuffer are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if fb.inBounds(x, y) {
		fb.color[y*fb.width+x] = uint32(c)
	}
}

// SetPixelWithDepth writes the color and depth given at x, y only if z is strictly nearer (less) than the depth already stored there.
// It returns whether the pixel was written. Coordinates outside of the Framebuffer are ignored.
func (fb *Framebuffer) SetPixelWithDepth(x, y int, c Color, z float32) bool {

	if !fb.inBounds(x, y) {
		return false
	}

	index := y*fb.width + x

	if z < fb.depth[index] {
		fb.color[index] = uint32(c)
		fb.depth[index] = z
		return true
	}

	return false

}

// Pixel returns the color at x, y, and false if the coordinates lie outside of the Framebuffer.
func (fb *Framebuffer) Pixel(x, y int) (Color, bool) {
	if !fb.inBounds(x, y) {
		return 0, false
	}
	return Color(fb.color[y*fb.width+x]), true
}

// Depth returns the depth value at x, y, and false if the coordinates lie outside of the Framebuffer.
func (fb *Framebuffer) Depth(x, y int) (float32, bool) {
	if !fb.inBounds(x, y) {
		return 0, false
	}
	return fb.depth[y*fb.width+x], true
}

// DrawLine draws a line from x0, y0 to x1, y1 (inclusive) using Bresenham's algorithm. There's no depth test;
// the parts of the line lying outside of the Framebuffer are skipped.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}

	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}

	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy

	for {

		fb.SetPixel(x0, y0, c)

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := 2 * err

		if e2 >= dy {
			err += dy
			x0 += sx
		}

		if e2 <= dx {
			err += dx
			y0 += sy
		}

	}

}

// DrawCircle draws the outline of a circle centered on cx, cy using the midpoint circle algorithm. There's no depth test;
// the parts of the circle lying outside of the Framebuffer are skipped.
func (fb *Framebuffer) DrawCircle(cx, cy, radius int, c Color) {

	if radius < 0 {
		return
	}

	x := 0
	y := radius
	d := 3 - 2*radius

	for y >= x {

		fb.SetPixel(cx+x, cy+y, c)
		fb.SetPixel(cx-x, cy+y, c)
		fb.SetPixel(cx+x, cy-y, c)
		fb.SetPixel(cx-x, cy-y, c)
		fb.SetPixel(cx+y, cy+x, c)
		fb.SetPixel(cx-y, cy+x, c)
		fb.SetPixel(cx+y, cy-x, c)
		fb.SetPixel(cx-y, cy-x, c)

		x++

		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*x + 6
		}

	}

}

// FillRect fills the rectangle starting at x, y with the color given, without any depth test.
func (fb *Framebuffer) FillRect(x, y, w, h int, c Color) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			fb.SetPixel(px, py, c)
		}
	}
}

// Bounds implements image.Image.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

// ColorModel implements image.Image.
func (fb *Framebuffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// At implements image.Image.
func (fb *Framebuffer) At(x, y int) color.Color {
	c, ok := fb.Pixel(x, y)
	if !ok {
		return color.NRGBA{}
	}
	return c.ToNRGBA()
}

// Set implements draw.Image, so image/draw and x/image/font can draw straight into the color buffer. There's no depth test.
func (fb *Framebuffer) Set(x, y int, c color.Color) {
	fb.SetPixel(x, y, NewColorFromImageColor(c))
}

// RGBABytes packs the color buffer into 4-byte R, G, B, A pixels, reusing dst if it's large enough.
// This is the layout ebiten.Image.WritePixels and image.RGBA expect.
func (fb *Framebuffer) RGBABytes(dst []byte) []byte {

	size := len(fb.color) * 4

	if cap(dst) < size {
		dst = make([]byte, size)
	}
	dst = dst[:size]

	for i, c := range fb.color {
		dst[i*4+0] = uint8(c >> 16)
		dst[i*4+1] = uint8(c >> 8)
		dst[i*4+2] = uint8(c)
		dst[i*4+3] = uint8(c >> 24)
	}

	return dst

}

// ToImage copies the color buffer into a new image.NRGBA.
func (fb *Framebuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(fb.Bounds())
	fb.RGBABytes(img.Pix)
	return img
}

// SavePNG writes the color buffer to a PNG file at the path given.
func (fb *Framebuffer) SavePNG(path string) error {

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("soft3d: create %s: %w", path, err)
	}

	if err := png.Encode(f, fb.ToImage()); err != nil {
		f.Close()
		return fmt.Errorf("soft3d: encode %s: %w", path, err)
	}

	return f.Close()

}
