package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"lcdgfx/console"
	"lcdgfx/font"
	"lcdgfx/font/bitmap"
	"lcdgfx/font/pbf"
	"lcdgfx/font/vector"
	"lcdgfx/font/xface"
	"lcdgfx/gfx"
	"lcdgfx/palette"
	"lcdgfx/qr"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"tinygo.org/x/tinyfont"
)

func rgb(r, g, b uint8) uint32 { return uint32(palette.RGB565(r, g, b)) }

// loadFace returns the named text face. "pbf" converts the 6x8 font into an
// in-memory container and reads it back at double size.
func loadFace(name string) (font.Face, error) {
	switch name {
	case "4x6":
		return bitmap.Font4x6, nil
	case "6x8":
		return bitmap.Font6x8, nil
	case "vector":
		return vector.Default.Face(16), nil
	case "7x13":
		return xface.New(basicfont.Face7x13), nil
	case "mono":
		f, err := xface.Parse(gomono.TTF, 14)
		if err != nil {
			return nil, err
		}
		return f, nil
	case "pbf":
		rs := make([]rune, 0, 95)
		for r := rune(' '); r <= '~'; r++ {
			rs = append(rs, r)
		}
		src, err := pbf.FromFace(bitmap.Font6x8, rs)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		opt := pbf.Options{Version: 2, LineHeight: 8, Wildcard: '?', HashTableSize: 31, CodepointBytes: 2}
		if err := pbf.Build(&buf, opt, src); err != nil {
			return nil, err
		}
		f, err := pbf.Open(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		if err != nil {
			return nil, err
		}
		return f.Face(2, 2), nil
	}
	return nil, fmt.Errorf("unknown font %q", name)
}

// scene draws one animated frame per step.
type scene struct {
	ctx   *gfx.Context
	label string
	tiny  *tinyfont.Font
	code  *qr.Code
	frame int
}

func newScene(ctx *gfx.Context, face font.Face, label string) *scene {
	ctx.SetFont(face)
	s := &scene{ctx: ctx, label: label, tiny: bitmap.Font6x8.TinyFont()}
	if code, err := qr.Encode(label, true); err == nil {
		s.code = code
	}
	return s
}

func (s *scene) step() error {
	c := s.ctx
	w, h := c.Size()
	n := s.frame
	s.frame++

	c.SetBgColor(rgb(0, 0, 32))
	c.Clear()

	c.SetColor(rgb(255, 255, 255))
	c.DrawRect(0, 0, w-1, h-1)

	// Line fan from the bottom left corner.
	for i := 0; i <= 8; i++ {
		c.SetColor(rgb(uint8(i*30), 128, 255-uint8(i*30)))
		c.DrawLine(1, h-2, w/3, h/3+i*(h/2)/8)
	}

	// Spinning triangle.
	cx, cy, r := w/2, h/2, min(w, h)/5
	a := float64(n) * math.Pi / 60
	pts := make([]image.Point, 3)
	for i := range pts {
		t := a + float64(i)*2*math.Pi/3
		pts[i] = image.Pt(cx+int(float64(r)*math.Cos(t)), cy+int(float64(r)*math.Sin(t)))
	}
	c.SetColor(rgb(255, 160, 0))
	c.FillPolygon(pts)
	c.SetColor(rgb(255, 255, 255))
	c.DrawPolygon(pts)

	// Circles and a pie segment that grows each frame.
	c.SetColor(rgb(0, 200, 80))
	c.FillCircle(w-w/6, h/4, r/2)
	c.SetColor(rgb(255, 255, 0))
	c.DrawCircle(w-w/6, h/4, r/2+3)
	sweep := float64(n%120) / 120 * 2 * math.Pi
	c.SetColor(rgb(220, 40, 40))
	c.FillSegment(w-w/6, h-h/4, r/2, 0, sweep)

	c.SetColor(rgb(255, 255, 255))
	c.DrawString(s.label, 4, 4)
	c.DrawString(fmt.Sprintf("frame %d", n), 4, 4+c.FontHeight()+2)

	// Label as a QR code in the middle of the right edge, when it fits.
	if s.code != nil {
		if k := s.code.Fit(h / 3); k > 0 {
			side := s.code.Modules() * k
			c.SetColor(rgb(0, 0, 0))
			c.SetBgColor(rgb(255, 255, 255))
			s.code.Draw(c, w-side-2, (h-side)/2, k)
		}
	}

	tinyfont.WriteLine(c.Displayer(), s.tiny, 4, int16(h-4), "tinyfont", color.RGBA{R: 120, G: 200, B: 255, A: 255})

	c.Present()
	return nil
}

// termScene feeds a tinyterm console one line per step.
type termScene struct {
	con   *console.Console
	frame int
}

func newTermScene(ctx *gfx.Context) *termScene {
	return &termScene{con: console.New(ctx, console.Config{})}
}

func (s *termScene) step() error {
	if s.frame == 0 {
		fmt.Fprintf(s.con, "lcdgfx console %dx%d\n", s.con.Columns(), s.con.Rows())
	}
	fmt.Fprintf(s.con, "line %d\n", s.frame)
	s.frame++
	s.con.Flush()
	return nil
}
