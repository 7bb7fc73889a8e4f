//go:build !tinygo

package hal

import "os"

// HostConfig sizes the host display.
type HostConfig struct {
	Width  int
	Height int
}

func (c *HostConfig) defaults() {
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 240
	}
}

type hostHAL struct {
	logger Logger
	fb     *hostFramebuffer
}

func newHost(cfg HostConfig) *hostHAL {
	cfg.defaults()
	return &hostHAL{
		logger: NewLogger(os.Stdout),
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }
