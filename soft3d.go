// Package soft3d is a small 3D renderer that runs entirely on the CPU. Meshes are transformed by a single
// model-view-projection matrix, projected to the screen, back-face culled, and rasterized into a Framebuffer
// with a depth buffer. The Framebuffer can be saved as a PNG or copied into anything that takes RGBA bytes,
// like an ebiten.Image.
//
// Front faces wind clockwise when seen from outside with +Y up; counter-clockwise triangles are culled.
package soft3d
