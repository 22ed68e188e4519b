// Package render presents traced images: in the terminal using half-block
// characters, or as PNG files.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Framebuffer is a read-only view over an RGBA byte buffer.
// We use double vertical resolution by using half-block characters (▀).
type Framebuffer struct {
	Width  int    // Width in pixels (same as terminal columns)
	Height int    // Height in pixels (2x terminal rows due to half-blocks)
	Pix    []byte // Row-major RGBA, 4 bytes per pixel
}

// NewFramebuffer wraps pix, which must hold 4 × width × height bytes.
func NewFramebuffer(pix []byte, width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}
	if len(pix) != 4*width*height {
		return nil, fmt.Errorf("framebuffer %dx%d needs %d bytes, got %d", width, height, 4*width*height, len(pix))
	}
	return &Framebuffer{Width: width, Height: height, Pix: pix}, nil
}

// SizeForTerminal returns the framebuffer dimensions that fill a terminal
// of cols × rows cells.
func SizeForTerminal(cols, rows int) (width, height int) {
	return max(cols, 1), max(rows*2, 2)
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	i := (y*fb.Width + x) * 4
	return color.RGBA{fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2], fb.Pix[i+3]}
}

// ToImage copies the framebuffer into a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Pix)
	return img
}

// Scaled returns the image enlarged by an integer factor using
// nearest-neighbour sampling, so each traced pixel stays a crisp block.
func (fb *Framebuffer) Scaled(factor int) *image.RGBA {
	src := fb.ToImage()
	if factor <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, fb.Width*factor, fb.Height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG saves the framebuffer as a PNG file, enlarged by scale.
func (fb *Framebuffer) SavePNG(path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, fb.Scaled(scale)); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
