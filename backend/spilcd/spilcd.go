// Package spilcd drives SPI colour LCD controllers (ST7735, ST7789, ILI9341,
// ILI9488 and friends). Pixels go straight to panel memory through an
// address window, so the backend has no frame buffer and Present does
// nothing.
package spilcd

import (
	"fmt"
	"time"

	"lcdgfx/gfx"
	"lcdgfx/hal"

	"periph.io/x/conn/v3/gpio"
	"tinygo.org/x/drivers"
)

// BPP is the colour depth sent to the panel: RGB565, most significant byte
// first.
const BPP = 16

// Bus is the SPI transfer the driver needs. Both a periph spi.Conn and a
// TinyGo drivers.SPI satisfy it.
type Bus interface {
	Tx(w, r []byte) error
}

var _ Bus = drivers.SPI(nil)

// Pin is an output line such as DC, CS or RST.
type Pin interface {
	Out(l gpio.Level) error
}

// Config describes the wiring and the panel.
type Config struct {
	Controller Controller
	Bus        Bus
	// DC selects command (low) or data (high). Required.
	DC Pin
	// CS and RST are optional.
	CS  Pin
	RST Pin
	// Width and Height default to the controller's size.
	Width  int
	Height int
	// ColOffset and RowOffset shift the window for panels that do not start
	// at memory address 0.
	ColOffset int
	RowOffset int
	// TxBuffer is the size of the pixel staging buffer. Default 4096.
	TxBuffer int
	// Sleep defaults to time.Sleep.
	Sleep  func(time.Duration)
	Logger hal.Logger
}

// Device is an initialized panel.
type Device struct {
	bus    Bus
	dc     Pin
	cs     Pin
	rst    Pin
	w, h   int
	memH   int
	colOff int
	rowOff int
	tx     []byte
	sleep  func(time.Duration)
	log    hal.Logger
	failed bool
}

// New resets the panel and runs the controller's init table. Transport
// errors during setup are returned.
func New(cfg Config) (*Device, error) {
	if cfg.Bus == nil || cfg.DC == nil {
		return nil, fmt.Errorf("spilcd: bus and DC pin are required: %w", gfx.ErrConfig)
	}
	ctl := cfg.Controller
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = ctl.Width
	}
	if h == 0 {
		h = ctl.Height
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("spilcd: %s: size %dx%d: %w", ctl.Name, w, h, gfx.ErrConfig)
	}
	n := cfg.TxBuffer
	if n == 0 {
		n = 4096
	}
	n &^= 1
	if n < 2 {
		return nil, fmt.Errorf("spilcd: tx buffer of %d bytes: %w", cfg.TxBuffer, gfx.ErrConfig)
	}
	d := &Device{
		bus:    cfg.Bus,
		dc:     cfg.DC,
		cs:     cfg.CS,
		rst:    cfg.RST,
		w:      w,
		h:      h,
		memH:   max(ctl.MemoryHeight, h),
		colOff: cfg.ColOffset,
		rowOff: cfg.RowOffset,
		tx:     make([]byte, n),
		sleep:  cfg.Sleep,
		log:    cfg.Logger,
	}
	if d.sleep == nil {
		d.sleep = time.Sleep
	}
	if err := d.reset(); err != nil {
		return nil, err
	}
	send := func(cmd byte, data []byte) error { return d.Command(cmd, data...) }
	if err := RunInitTable(ctl.Init, send, d.sleep); err != nil {
		return nil, err
	}
	hal.Logf(d.log, "spilcd: %s %dx%d ready", ctl.Name, w, h)
	return d, nil
}

// NewContext initializes the panel and returns a 16 bpp context on it.
func NewContext(cfg Config, flags gfx.Flags) (*gfx.Context, *Device, error) {
	d, err := New(cfg)
	if err != nil {
		return nil, nil, err
	}
	c, err := gfx.New(gfx.Config{Width: d.w, Height: d.h, BPP: BPP, Flags: flags}, d)
	if err != nil {
		return nil, nil, err
	}
	return c, d, nil
}

func (d *Device) reset() error {
	if d.cs != nil {
		if err := d.cs.Out(gpio.High); err != nil {
			return fmt.Errorf("spilcd: cs: %w", err)
		}
	}
	if d.rst == nil {
		return nil
	}
	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("spilcd: reset: %w", err)
	}
	d.sleep(64 * time.Millisecond)
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("spilcd: reset: %w", err)
	}
	d.sleep(140 * time.Millisecond)
	return nil
}

// Size is the panel size in pixels.
func (d *Device) Size() (w, h int) { return d.w, d.h }

// MemoryHeight is the number of rows of panel memory.
func (d *Device) MemoryHeight() int { return d.memH }

func (d *Device) selected(on bool) error {
	if d.cs == nil {
		return nil
	}
	return d.cs.Out(gpio.Level(!on))
}

// Command sends cmd with DC low followed by data with DC high, in one chip
// select.
func (d *Device) Command(cmd byte, data ...byte) error {
	if err := d.selected(true); err != nil {
		return err
	}
	err := d.command(cmd, data)
	if e := d.selected(false); err == nil {
		err = e
	}
	return err
}

func (d *Device) command(cmd byte, data []byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	d.tx[0] = cmd
	if err := d.bus.Tx(d.tx[:1], nil); err != nil {
		return err
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return d.bus.Tx(data, nil)
}

// SetWindow selects the memory rectangle x0..x1, y0..y1 (inclusive, in
// memory rows) and starts a memory write.
func (d *Device) SetWindow(x0, y0, x1, y1 int) error {
	x0, x1 = x0+d.colOff, x1+d.colOff
	y0, y1 = y0+d.rowOff, y1+d.rowOff
	if err := d.Command(CmdCASET, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1)); err != nil {
		return err
	}
	if err := d.Command(CmdRASET, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1)); err != nil {
		return err
	}
	return d.Command(CmdRAMWR)
}

// WriteWindow fills the memory rectangle from fill, which is called with a
// staging buffer of even length and returns how many bytes it wrote; it is
// called until total bytes have been produced.
func (d *Device) WriteWindow(x0, y0, x1, y1 int, total int, fill func(buf []byte) int) error {
	if err := d.SetWindow(x0, y0, x1, y1); err != nil {
		return err
	}
	if err := d.selected(true); err != nil {
		return err
	}
	err := d.dc.Out(gpio.High)
	for sent := 0; err == nil && sent < total; {
		buf := d.tx[:min(len(d.tx), total-sent)]
		n := fill(buf)
		if n <= 0 {
			break
		}
		err = d.bus.Tx(buf[:n], nil)
		sent += n
	}
	if e := d.selected(false); err == nil {
		err = e
	}
	return err
}

// fail records a transport error from a draw call. Drawing has no error
// return, so only the first one is logged.
func (d *Device) fail(err error) {
	if err == nil || d.failed {
		return
	}
	d.failed = true
	hal.Logf(d.log, "spilcd: %v", err)
}

// Failed reports whether a draw call has failed since New.
func (d *Device) Failed() bool { return d.failed }

func (d *Device) SetPixel(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	d.fail(d.FillMemory(x, y, x, y, c))
}

func (d *Device) FillRect(x1, y1, x2, y2 int, c uint32) {
	x1, y1 = max(x1, 0), max(y1, 0)
	x2, y2 = min(x2, d.w-1), min(y2, d.h-1)
	if x1 > x2 || y1 > y2 {
		return
	}
	d.fail(d.FillMemory(x1, y1, x2, y2, c))
}

// FillMemory writes colour c over a memory rectangle. Unlike FillRect it
// may address rows below the visible height.
func (d *Device) FillMemory(x1, y1, x2, y2 int, c uint32) error {
	total := (x2 - x1 + 1) * (y2 - y1 + 1) * 2
	hi, lo := byte(c>>8), byte(c)
	return d.WriteWindow(x1, y1, x2, y2, total, func(buf []byte) int {
		for i := 0; i+1 < len(buf); i += 2 {
			buf[i], buf[i+1] = hi, lo
		}
		return len(buf)
	})
}

func (d *Device) Blit1bpp(x, y, w, h int, data []byte, fg, bg uint32, solid bool) {
	if !solid {
		// Transparent pixels must leave memory alone, which a window write
		// cannot do.
		for j := 0; j < h; j++ {
			for i := 0; i < w; i++ {
				bit := j*w + i
				if data[bit>>3]&(0x80>>(bit&7)) != 0 {
					d.SetPixel(x+i, y+j, fg)
				}
			}
		}
		return
	}
	d.fail(d.BlitMemory1bpp(x, y, w, h, data, fg, bg))
}

// BlitMemory1bpp expands a packed MSB-first bitmap into a memory rectangle.
func (d *Device) BlitMemory1bpp(x, y, w, h int, data []byte, fg, bg uint32) error {
	total := w * h * 2
	bit := 0
	return d.WriteWindow(x, y, x+w-1, y+h-1, total, func(buf []byte) int {
		n := 0
		for ; n+1 < len(buf) && bit < w*h; n += 2 {
			c := bg
			if data[bit>>3]&(0x80>>(bit&7)) != 0 {
				c = fg
			}
			buf[n], buf[n+1] = byte(c>>8), byte(c)
			bit++
		}
		return n
	})
}

// Present is a no-op: every draw already reached the panel.
func (d *Device) Present() {}

var (
	_ gfx.RectFiller = (*Device)(nil)
	_ gfx.Blitter    = (*Device)(nil)
	_ gfx.Presenter  = (*Device)(nil)
)
