// Package console runs a tinyterm text terminal on a graphics context.
// Output scrolls through the context's Displayer adapter, so any backend
// can host a console.
package console

import (
	"fmt"

	"lcdgfx/font/bitmap"
	"lcdgfx/gfx"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyterm"
)

// Config selects the terminal font.
type Config struct {
	// Font defaults to the built-in 6x8 font.
	Font *tinyfont.Font
	// FontHeight is the line pitch; FontOffset the baseline below the top
	// of a line.
	FontHeight int16
	FontOffset int16
}

// Console is a terminal bound to a context.
type Console struct {
	ctx   *gfx.Context
	d     *gfx.Displayer
	cfg   Config
	t     *tinyterm.Terminal
	dirty bool
}

// New clears ctx and starts a terminal on it.
func New(ctx *gfx.Context, cfg Config) *Console {
	if cfg.Font == nil {
		cfg.Font = bitmap.Font6x8.TinyFont()
		if cfg.FontHeight == 0 {
			cfg.FontHeight = int16(bitmap.Font6x8.Height())
		}
		if cfg.FontOffset == 0 {
			cfg.FontOffset = cfg.FontHeight - 1
		}
	}
	if cfg.FontHeight == 0 {
		cfg.FontHeight = int16(cfg.Font.YAdvance)
	}
	c := &Console{ctx: ctx, d: ctx.Displayer(), cfg: cfg}
	c.Reset()
	return c
}

// Reset clears the screen and starts over at the top line.
func (c *Console) Reset() {
	c.d.SetScroll(0)
	c.ctx.Clear()
	c.t = tinyterm.NewTerminal(c.d)
	c.t.Configure(&tinyterm.Config{
		Font:       c.cfg.Font,
		FontHeight: c.cfg.FontHeight,
		FontOffset: c.cfg.FontOffset,
	})
	c.dirty = true
}

// Write sends p to the terminal. Nothing is presented until Flush.
func (c *Console) Write(p []byte) (int, error) {
	n, err := c.t.Write(p)
	if n > 0 {
		c.dirty = true
	}
	return n, err
}

// Printf formats to the terminal.
func (c *Console) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(c, format, args...)
}

// Flush presents the context if anything was written since the last call.
func (c *Console) Flush() {
	if !c.dirty {
		return
	}
	c.dirty = false
	c.t.Display()
}

// Columns and Rows give the terminal size in characters, measured with the
// advance of 'M'.
func (c *Console) Columns() int {
	w, _ := c.ctx.Size()
	adv := int(c.cfg.Font.BBox[0])
	for _, g := range c.cfg.Font.Glyphs {
		if g.Rune == 'M' {
			adv = int(g.XAdvance)
			break
		}
	}
	if adv <= 0 {
		return 0
	}
	return w / adv
}

func (c *Console) Rows() int {
	_, h := c.ctx.Size()
	return h / int(c.cfg.FontHeight)
}
