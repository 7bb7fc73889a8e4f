package fbdev

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"lcdgfx/gfx"
)

var red = color.RGBA{R: 255, A: 255}

func TestWriteThroughHonoursOrigin(t *testing.T) {
	dev := image.NewRGBA(image.Rect(10, 10, 14, 13))
	c, _, err := NewContext(dev, Config{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := c.Size(); w != 4 || h != 3 {
		t.Fatalf("size %dx%d", w, h)
	}
	c.SetPixel(0, 0, 0xF800)
	if dev.RGBAAt(10, 10) != red {
		t.Fatalf("pixel %v", dev.RGBAAt(10, 10))
	}
	if c.GetPixel(0, 0) != 0xF800 {
		t.Fatalf("GetPixel %#x", c.GetPixel(0, 0))
	}
	c.SetColor(0x07E0)
	c.FillRect(1, 1, 3, 2)
	if dev.RGBAAt(13, 12) != (color.RGBA{G: 255, A: 255}) || dev.RGBAAt(10, 11) != (color.RGBA{}) {
		t.Fatalf("fill landed wrong")
	}
}

func TestBufferedWaitsForPresent(t *testing.T) {
	dev := image.NewRGBA(image.Rect(0, 0, 8, 8))
	c, _, err := NewContext(dev, Config{Buffered: true}, 0)
	if err != nil {
		t.Fatal(err)
	}
	c.SetColor(0xF800)
	c.FillRect(0, 0, 7, 7)
	if dev.RGBAAt(4, 4) == red {
		t.Fatalf("visible before Present")
	}
	if c.GetPixel(4, 4) != 0xF800 {
		t.Fatalf("GetPixel %#x", c.GetPixel(4, 4))
	}
	c.Present()
	if dev.RGBAAt(4, 4) != red {
		t.Fatalf("not visible after Present")
	}
}

func TestRejectsEmptyDevice(t *testing.T) {
	if _, err := New(image.NewRGBA(image.Rectangle{}), Config{}); !errors.Is(err, gfx.ErrConfig) {
		t.Fatalf("err = %v", err)
	}
}
