package scene

import (
	"fmt"

	"github.com/gocanvas/sketch"
)

// ErrNegativeImageSize is returned when a blank image is constructed
// with a negative dimension.
var ErrNegativeImageSize = fmt.Errorf("scene: negative image dimensions")

// loadPixmap decodes an image file. Indirected for tests.
var loadPixmap = sketch.LoadPixmap

// Image is a fixed-size pixel buffer positioned in the scene. The
// buffer is either decoded from a file at construction or created
// blank; its dimensions fix the object's extent.
type Image struct {
	Base
	pixmap   *sketch.Pixmap
	filename string
}

// NewImage creates a blank image of the given size at (x, y).
func NewImage(x, y float64, width, height int) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNegativeImageSize, width, height)
	}
	img := &Image{
		Base:   newBase(x, y, float64(width), float64(height)),
		pixmap: sketch.NewPixmap(width, height),
	}
	img.self = img
	return img, nil
}

// NewImageFromFile decodes the named image file and positions it at
// (x, y). A missing or undecodable file fails construction.
func NewImageFromFile(path string, x, y float64) (*Image, error) {
	pm, err := loadPixmap(path)
	if err != nil {
		return nil, err
	}
	img := NewImageFromPixmap(pm, x, y)
	img.filename = path
	return img, nil
}

// NewImageFromPixmap wraps an existing pixel buffer.
func NewImageFromPixmap(pm *sketch.Pixmap, x, y float64) *Image {
	img := &Image{
		Base:   newBase(x, y, float64(pm.Width()), float64(pm.Height())),
		pixmap: pm,
	}
	img.self = img
	return img
}

// TypeName implements Object.
func (i *Image) TypeName() string { return "Image" }

// Filename returns the source path, or "" for a constructed image.
func (i *Image) Filename() string { return i.filename }

// Pixmap returns the underlying pixel buffer.
func (i *Image) Pixmap() *sketch.Pixmap { return i.pixmap }

// Pixel returns the packed 0xAARRGGBB value at (x, y). Coordinates
// outside [0,width-1]x[0,height-1] are an error.
func (i *Image) Pixel(x, y int) (int, error) {
	return i.pixmap.Packed(x, y)
}

// SetPixel writes a packed 0xAARRGGBB value at (x, y), with the same
// coordinate validation as Pixel.
func (i *Image) SetPixel(x, y, argb int) error {
	if err := i.pixmap.SetPacked(x, y, argb); err != nil {
		return err
	}
	i.repaint()
	return nil
}

// Bounds returns the image frame.
func (i *Image) Bounds() sketch.Rect {
	return sketch.R(i.x, i.y, i.width, i.height)
}

// Contains reports whether the point lies inside the frame.
func (i *Image) Contains(x, y float64) bool {
	return i.Bounds().Contains(x, y)
}

// Draw implements Object.
func (i *Image) Draw(s sketch.Surface) {
	i.applyState(s)
	s.DrawImage(i.x, i.y, i.pixmap)
}

// String returns a diagnostic description of the image.
func (i *Image) String() string {
	return describe(i, fmt.Sprintf("filename=%q", i.filename))
}
