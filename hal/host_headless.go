//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	HostConfig
	Hz    int
	Ticks uint64
}

// RunHeadless calls the step function returned by newApp Hz times per
// second without opening a window. It stops after Ticks steps (0 = until ctx
// is done) or when step fails. The returned HAL gives access to the last
// published frame.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp func(HAL) func() error) (HAL, error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(cfg.HostConfig)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return h, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return h, ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return h, err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				Logf(h.logger, "headless: %d ticks, %d frames", tick, h.fb.frames())
				return h, nil
			}
		}
	}
}

// Snapshot returns the last published frame of a host framebuffer as
// little-endian RGB565 bytes, or nil for other framebuffers.
func Snapshot(fb Framebuffer) []byte {
	hf, ok := fb.(*hostFramebuffer)
	if !ok {
		return nil
	}
	out := make([]byte, len(hf.front))
	hf.snapshot(out, ^uint64(0))
	return out
}
