//go:build cgo

package fbdev

import (
	"fmt"

	"github.com/gonutz/framebuffer"
)

// Open maps the framebuffer device at path, /dev/fb0 if empty.
func Open(path string, cfg Config) (*Display, error) {
	if path == "" {
		path = "/dev/fb0"
	}
	dev, err := framebuffer.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fbdev: open %s: %w", path, err)
	}
	d, err := New(dev, cfg)
	if err != nil {
		dev.Close()
		return nil, err
	}
	d.close = func() error {
		dev.Close()
		return nil
	}
	return d, nil
}
