//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"lcdgfx/backend/canvas"
	"lcdgfx/backend/hostfb"
	"lcdgfx/gfx"
	"lcdgfx/hal"
	"lcdgfx/internal/buildinfo"
)

func main() {
	var (
		headless hal.HeadlessConfig
		scale    int
		pngPath  string
		fontName string
		term     bool
		noWindow bool
		showVer  bool
	)
	flag.BoolVar(&showVer, "v", false, "Print the version and exit.")
	flag.BoolVar(&term, "term", false, "Run the tinyterm console demo.")
	flag.BoolVar(&noWindow, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Width, "width", 320, "Screen width.")
	flag.IntVar(&headless.Height, "height", 240, "Screen height.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&pngPath, "png", "", "Render -ticks frames (at least one) offscreen and write the last as PNG.")
	flag.StringVar(&fontName, "font", "6x8", "Text font: 4x6|6x8|7x13|mono|vector|pbf.")
	flag.IntVar(&scale, "scale", 2, "Window zoom, or PNG scale.")
	flag.Parse()

	if showVer {
		fmt.Println(buildinfo.Line("gfxdemo"))
		return
	}

	face, err := loadFace(fontName)
	if err != nil {
		fatalf("%v", err)
	}
	newStep := func(ctx *gfx.Context) func() error {
		if term {
			return newTermScene(ctx).step
		}
		return newScene(ctx, face, "lcdgfx "+fontName).step
	}

	if pngPath != "" {
		if err := writePNG(pngPath, headless, scale, newStep); err != nil {
			fatalf("png: %v", err)
		}
		return
	}

	newApp := func(h hal.HAL) func() error {
		ctx, _, err := hostfb.NewContext(h.Display().Framebuffer(), h.Logger(), 0)
		if err != nil {
			return func() error { return err }
		}
		return newStep(ctx)
	}

	if noWindow {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if _, err := hal.RunHeadless(ctx, headless, newApp); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatalf("%v", err)
		}
		return
	}

	if err := hal.RunWindow(hal.WindowConfig{HostConfig: headless.HostConfig, Scale: scale}, newApp); err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// writePNG runs the scene on a canvas without any window.
func writePNG(path string, cfg hal.HeadlessConfig, scale int, newStep func(*gfx.Context) func() error) error {
	ctx, cv, err := canvas.NewContext(canvas.Config{Width: cfg.Width, Height: cfg.Height, BPP: 16}, 0)
	if err != nil {
		return err
	}
	step := newStep(ctx)
	for i := uint64(0); i < max(cfg.Ticks, 1); i++ {
		if err := step(); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cv.WritePNG(f, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
