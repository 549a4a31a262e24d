package sketch

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	p := NewPixmap(4, 4)
	p.SetPixel(1, 2, Red)
	got := p.GetPixel(1, 2)
	if got != Red {
		t.Errorf("GetPixel(1, 2) = %v, want %v", got, Red)
	}
}

func TestPixmapOutOfRangeSilent(t *testing.T) {
	p := NewPixmap(2, 2)
	// SetPixel ignores out-of-range coordinates.
	p.SetPixel(-1, 0, Red)
	p.SetPixel(5, 5, Red)
	if got := p.GetPixel(-1, 0); got != (RGBA{}) {
		t.Errorf("GetPixel(-1, 0) = %v, want zero", got)
	}
}

func TestPixmapPackedErrors(t *testing.T) {
	p := NewPixmap(2, 2)
	if _, err := p.Packed(2, 0); !errors.Is(err, ErrPixelOutOfRange) {
		t.Errorf("Packed(2, 0) error = %v, want ErrPixelOutOfRange", err)
	}
	if err := p.SetPacked(0, -1, 0); !errors.Is(err, ErrPixelOutOfRange) {
		t.Errorf("SetPacked(0, -1) error = %v, want ErrPixelOutOfRange", err)
	}
}

func TestPixmapPackedRoundTrip(t *testing.T) {
	p := NewPixmap(3, 3)
	argb := int(uint32(0xFF336699))
	if err := p.SetPacked(1, 1, argb); err != nil {
		t.Fatalf("SetPacked error: %v", err)
	}
	got, err := p.Packed(1, 1)
	if err != nil {
		t.Fatalf("Packed error: %v", err)
	}
	if got != argb {
		t.Errorf("Packed(1, 1) = %#x, want %#x", got, argb)
	}
}

func TestPixmapClear(t *testing.T) {
	p := NewPixmap(2, 2)
	p.Clear(Blue)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := p.GetPixel(x, y); got != Blue {
				t.Errorf("GetPixel(%d, %d) = %v, want %v", x, y, got, Blue)
			}
		}
	}
}

func TestDecodePixmapPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, Red.Color())

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode error: %v", err)
	}

	p, err := DecodePixmap(&buf)
	if err != nil {
		t.Fatalf("DecodePixmap error: %v", err)
	}
	if p.Width() != 3 || p.Height() != 2 {
		t.Errorf("decoded size = %dx%d, want 3x2", p.Width(), p.Height())
	}
}

func TestDecodePixmapInvalid(t *testing.T) {
	if _, err := DecodePixmap(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("DecodePixmap(garbage) = nil error, want non-nil")
	}
}

func TestPixmapBlit(t *testing.T) {
	dst := NewPixmap(4, 4)
	src := NewPixmap(2, 2)
	src.Clear(Green)

	dst.Blit(src, 1, 1)

	if got := dst.GetPixel(1, 1); got != Green {
		t.Errorf("GetPixel(1, 1) = %v, want %v", got, Green)
	}
	if got := dst.GetPixel(0, 0); got == Green {
		t.Error("GetPixel(0, 0) was overwritten outside the blit region")
	}
}

func TestPixmapScaled(t *testing.T) {
	src := NewPixmap(2, 2)
	src.Clear(Red)

	got := src.Scaled(4, 6)
	if got.Width() != 4 || got.Height() != 6 {
		t.Fatalf("Scaled size = %dx%d, want 4x6", got.Width(), got.Height())
	}
	c := got.GetPixel(2, 3)
	if c.R < 0.9 || c.A < 0.9 {
		t.Errorf("scaled interior pixel = %v, want red", c)
	}
}

func TestFromImageRoundTrip(t *testing.T) {
	p := NewPixmap(2, 2)
	p.SetPixel(0, 1, Blue)

	q := FromImage(p.ToImage())
	if got := q.GetPixel(0, 1); got != Blue {
		t.Errorf("round trip GetPixel(0, 1) = %v, want %v", got, Blue)
	}
}
