//go:build tinygo

package main

import (
	"machine"
	"time"

	"lcdgfx/backend/spilcd"
	"lcdgfx/font/bitmap"

	"periph.io/x/conn/v3/gpio"
)

// pin drives a machine.Pin through the spilcd.Pin interface.
type pin machine.Pin

func (p pin) Out(l gpio.Level) error {
	machine.Pin(p).Set(bool(l))
	return nil
}

func output(p machine.Pin) spilcd.Pin {
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.High()
	return pin(p)
}

// main runs the demo scene on the PicoCalc's ILI9488 (SPI1, GP10-GP15).
func main() {
	err := machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})
	if err != nil {
		halt(err)
	}
	ctx, _, err := spilcd.NewContext(spilcd.Config{
		Controller: spilcd.ILI9488,
		Bus:        machine.SPI1,
		CS:         output(machine.GP13),
		DC:         output(machine.GP14),
		RST:        output(machine.GP15),
	}, 0)
	if err != nil {
		halt(err)
	}
	step := newScene(ctx, bitmap.Font6x8, "lcdgfx ili9488").step
	tick := time.NewTicker(time.Second / 30)
	for range tick.C {
		if err := step(); err != nil {
			halt(err)
		}
	}
}

func halt(err error) {
	for {
		println("gfxdemo:", err.Error())
		time.Sleep(time.Second)
	}
}
