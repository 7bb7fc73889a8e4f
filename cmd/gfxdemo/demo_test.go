package main

import (
	"testing"

	"lcdgfx/backend/canvas"
)

func TestScenesRenderEveryFont(t *testing.T) {
	for _, name := range []string{"4x6", "6x8", "7x13", "mono", "vector", "pbf"} {
		face, err := loadFace(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		ctx, cv, err := canvas.NewContext(canvas.Config{Width: 160, Height: 120, BPP: 16}, 0)
		if err != nil {
			t.Fatal(err)
		}
		s := newScene(ctx, face, name)
		for i := 0; i < 3; i++ {
			if err := s.step(); err != nil {
				t.Fatal(err)
			}
		}
		if cv.Flips() != 3 {
			t.Fatalf("%s: %d flips", name, cv.Flips())
		}
		if ctx.GetPixel(0, 0) != rgb(255, 255, 255) {
			t.Fatalf("%s: border pixel %#x", name, ctx.GetPixel(0, 0))
		}
	}
	if _, err := loadFace("nope"); err == nil {
		t.Fatalf("unknown font accepted")
	}
}

func TestTermScene(t *testing.T) {
	ctx, cv, err := canvas.NewContext(canvas.Config{Width: 120, Height: 48, BPP: 16}, 0)
	if err != nil {
		t.Fatal(err)
	}
	s := newTermScene(ctx)
	for i := 0; i < 12; i++ {
		if err := s.step(); err != nil {
			t.Fatal(err)
		}
	}
	if cv.Flips() == 0 {
		t.Fatalf("console never presented")
	}
}
