package colors

// package colors contains functions to quickly and easily generate soft3d.Color values by name (i.e. "White()", "Blue()", "Green()", etc).

import "github.com/solarlune/soft3d"

// Transparent generates a soft3d.Color of the provided name.
func Transparent() soft3d.Color {
	return soft3d.NewColorRGBA(0, 0, 0, 0)
}

// White generates a soft3d.Color of the provided name.
func White() soft3d.Color {
	return soft3d.NewColorRGB(255, 255, 255)
}

// Black generates a soft3d.Color of the provided name.
func Black() soft3d.Color {
	return soft3d.NewColorRGB(0, 0, 0)
}

// Gray generates a soft3d.Color of the provided name.
func Gray() soft3d.Color {
	return soft3d.NewColorRGB(128, 128, 128)
}

// LightGray generates a soft3d.Color of the provided name.
func LightGray() soft3d.Color {
	return soft3d.NewColorRGB(204, 204, 204)
}

// DarkGray generates a soft3d.Color of the provided name.
func DarkGray() soft3d.Color {
	return soft3d.NewColorRGB(51, 51, 51)
}

// Red generates a soft3d.Color of the provided name.
func Red() soft3d.Color {
	return soft3d.NewColorRGB(255, 0, 0)
}

// Orange generates a soft3d.Color of the provided name.
func Orange() soft3d.Color {
	return soft3d.NewColorRGB(255, 136, 68)
}

// Yellow generates a soft3d.Color of the provided name.
func Yellow() soft3d.Color {
	return soft3d.NewColorRGB(255, 255, 0)
}

// Green generates a soft3d.Color of the provided name.
func Green() soft3d.Color {
	return soft3d.NewColorRGB(0, 255, 0)
}

// Blue generates a soft3d.Color of the provided name.
func Blue() soft3d.Color {
	return soft3d.NewColorRGB(0, 0, 255)
}

// SkyBlue generates a soft3d.Color of the provided name.
func SkyBlue() soft3d.Color {
	return soft3d.NewColorRGB(68, 170, 255)
}

// Lime generates a soft3d.Color of the provided name.
func Lime() soft3d.Color {
	return soft3d.NewColorRGB(136, 255, 68)
}

// SunYellow is the warm yellow the solar system example uses for its sun.
func SunYellow() soft3d.Color {
	return soft3d.NewColorRGB(255, 221, 68)
}

// Space is the very dark blue-black the solar system example clears to.
func Space() soft3d.Color {
	return soft3d.NewColorRGB(0, 10, 15)
}
