//go:build linux

package spilcd

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// PeriphConfig names the Linux SPI port and GPIO lines of a panel.
type PeriphConfig struct {
	// Port is a spireg name; empty picks the first port.
	Port string
	// Speed defaults to 32 MHz.
	Speed physic.Frequency
	DC    string
	CS    string
	RST   string
}

// OpenPeriph opens the SPI port and pins through periph and initializes the
// panel. The returned close function releases the port.
func OpenPeriph(pc PeriphConfig, cfg Config) (*Device, func() error, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("spilcd: periph init: %w", err)
	}
	port, err := spireg.Open(pc.Port)
	if err != nil {
		return nil, nil, fmt.Errorf("spilcd: open spi %q: %w", pc.Port, err)
	}
	speed := pc.Speed
	if speed == 0 {
		speed = 32 * physic.MegaHertz
	}
	conn, err := port.Connect(speed, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, nil, fmt.Errorf("spilcd: connect spi: %w", err)
	}
	cfg.Bus = conn
	if cfg.DC, err = pin(pc.DC, true); err != nil {
		port.Close()
		return nil, nil, err
	}
	if cfg.CS, err = pin(pc.CS, false); err != nil {
		port.Close()
		return nil, nil, err
	}
	if cfg.RST, err = pin(pc.RST, false); err != nil {
		port.Close()
		return nil, nil, err
	}
	d, err := New(cfg)
	if err != nil {
		port.Close()
		return nil, nil, err
	}
	return d, port.Close, nil
}

func pin(name string, required bool) (Pin, error) {
	if name == "" {
		if required {
			return nil, fmt.Errorf("spilcd: DC pin name is required")
		}
		return nil, nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("spilcd: no gpio %q", name)
	}
	var out gpio.PinOut = p
	return out, nil
}
