// Package panelsim simulates an SPI LCD controller at the byte level, for
// driver tests. It records every command and keeps an RGB565 memory that
// CASET, RASET and RAMWR write into.
package panelsim

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
)

// Command is one command byte and the data that followed it.
type Command struct {
	Cmd  byte
	Data []byte
}

// Panel is the simulated controller. Bus and the DC pin both point at it.
type Panel struct {
	W, H int
	Mem  []uint16

	// Scroll is the last VSCSAD value.
	Scroll int
	// Log holds every command in order.
	Log []Command
	// Scrolls holds every VSCSAD value in order.
	Scrolls []int

	// FailAfter makes Tx fail once this many transfers succeeded; zero
	// disables it.
	FailAfter int
	txs       int

	dc     gpio.Level
	x0, x1 int
	y0, y1 int
	cx, cy int
	half   int
	hi     byte
}

// New returns a panel with w×h words of memory.
func New(w, h int) *Panel {
	return &Panel{W: w, H: h, Mem: make([]uint16, w*h)}
}

// ErrInjected is returned by Tx once FailAfter transfers happened.
var ErrInjected = errors.New("panelsim: injected failure")

// DC returns the data/command pin.
func (p *Panel) DC() *DCPin { return &DCPin{p} }

// DCPin drives the panel's data/command line.
type DCPin struct{ p *Panel }

func (d *DCPin) Out(l gpio.Level) error {
	d.p.dc = l
	return nil
}

// Tx receives bytes in the current DC state.
func (p *Panel) Tx(w, r []byte) error {
	if p.FailAfter > 0 && p.txs >= p.FailAfter {
		return ErrInjected
	}
	p.txs++
	if p.dc == gpio.Low {
		for _, b := range w {
			p.Log = append(p.Log, Command{Cmd: b})
			if b == 0x2C {
				p.cx, p.cy, p.half = p.x0, p.y0, 0
			}
		}
		return nil
	}
	if len(p.Log) == 0 {
		return nil
	}
	last := &p.Log[len(p.Log)-1]
	if last.Cmd == 0x2C {
		p.write(w)
		return nil
	}
	last.Data = append(last.Data, w...)
	switch last.Cmd {
	case 0x2A:
		if len(last.Data) >= 4 {
			p.x0, p.x1 = be(last.Data[0:]), be(last.Data[2:])
		}
	case 0x2B:
		if len(last.Data) >= 4 {
			p.y0, p.y1 = be(last.Data[0:]), be(last.Data[2:])
		}
	case 0x37:
		if len(last.Data) == 2 {
			p.Scroll = be(last.Data)
			p.Scrolls = append(p.Scrolls, p.Scroll)
		}
	}
	return nil
}

func be(b []byte) int { return int(b[0])<<8 | int(b[1]) }

func (p *Panel) write(b []byte) {
	for _, v := range b {
		if p.half == 0 {
			p.hi, p.half = v, 1
			continue
		}
		p.half = 0
		if p.cy > p.y1 {
			continue
		}
		if p.cx < p.W && p.cy < p.H {
			p.Mem[p.cy*p.W+p.cx] = uint16(p.hi)<<8 | uint16(v)
		}
		p.cx++
		if p.cx > p.x1 {
			p.cx = p.x0
			p.cy++
		}
	}
}

// At reads panel memory.
func (p *Panel) At(x, y int) uint16 { return p.Mem[y*p.W+x] }

// Visible returns the rows the panel shows for a scroll area of the whole
// memory: rows start at Scroll and wrap.
func (p *Panel) Visible(rows int) [][]uint16 {
	out := make([][]uint16, rows)
	for i := range out {
		y := (p.Scroll + i) % p.H
		out[i] = p.Mem[y*p.W : (y+1)*p.W]
	}
	return out
}

// Commands returns the command bytes in order.
func (p *Panel) Commands() []byte {
	out := make([]byte, len(p.Log))
	for i, c := range p.Log {
		out[i] = c.Cmd
	}
	return out
}
