package spilcd

// MIPI DCS and controller-specific commands.
const (
	CmdSWRESET = 0x01
	CmdSLPOUT  = 0x11
	CmdNORON   = 0x13
	CmdINVOFF  = 0x20
	CmdINVON   = 0x21
	CmdDISPON  = 0x29
	CmdCASET   = 0x2A
	CmdRASET   = 0x2B
	CmdRAMWR   = 0x2C
	CmdVSCRDEF = 0x33
	CmdMADCTL  = 0x36
	CmdVSCSAD  = 0x37
	CmdCOLMOD  = 0x3A
)

// Controller describes one panel controller: its native size, memory size
// and init table.
type Controller struct {
	Name   string
	Width  int
	Height int
	// MemoryHeight is the number of rows of panel memory; it is at least
	// Height.
	MemoryHeight int
	Init         []byte
}

var ST7735 = Controller{
	Name:         "st7735",
	Width:        128,
	Height:       160,
	MemoryHeight: 162,
	Init: Table(
		cmdWait(CmdSWRESET, 150),
		cmdWait(CmdSLPOUT, 255),
		cmd(0xB1, 0x01, 0x2C, 0x2D),                   // FRMCTR1
		cmd(0xB2, 0x01, 0x2C, 0x2D),                   // FRMCTR2
		cmd(0xB3, 0x01, 0x2C, 0x2D, 0x01, 0x2C, 0x2D), // FRMCTR3
		cmd(0xB4, 0x07),                               // INVCTR
		cmd(0xC0, 0xA2, 0x02, 0x84),                   // PWCTR1
		cmd(0xC1, 0xC5),                               // PWCTR2
		cmd(0xC2, 0x0A, 0x00),                         // PWCTR3
		cmd(0xC3, 0x8A, 0x2A),                         // PWCTR4
		cmd(0xC4, 0x8A, 0xEE),                         // PWCTR5
		cmd(0xC5, 0x0E),                               // VMCTR1
		cmd(CmdINVOFF),
		cmd(CmdMADCTL, 0xC8),
		cmd(CmdCOLMOD, 0x05),
		cmd(0xE0, 0x02, 0x1C, 0x07, 0x12, 0x37, 0x32, 0x29, 0x2D,
			0x29, 0x25, 0x2B, 0x39, 0x00, 0x01, 0x03, 0x10),
		cmd(0xE1, 0x03, 0x1D, 0x07, 0x06, 0x2E, 0x2C, 0x29, 0x2D,
			0x2E, 0x2E, 0x37, 0x3F, 0x00, 0x00, 0x02, 0x10),
		cmdWait(CmdNORON, 10),
		cmdWait(CmdDISPON, 100),
	),
}

var ST7789 = Controller{
	Name:         "st7789",
	Width:        240,
	Height:       240,
	MemoryHeight: 320,
	Init: Table(
		cmdWait(CmdSWRESET, 150),
		cmdWait(CmdSLPOUT, 120),
		cmdWait(CmdCOLMOD, 10, 0x55),
		cmd(CmdMADCTL, 0x00),
		cmd(0xB2, 0x0C, 0x0C, 0x00, 0x33, 0x33), // PORCTRL
		cmd(0xB7, 0x35),                         // GCTRL
		cmd(0xBB, 0x19),                         // VCOMS
		cmd(0xC0, 0x2C),                         // LCMCTRL
		cmd(0xC2, 0x01),                         // VDVVRHEN
		cmd(0xC3, 0x12),                         // VRHS
		cmd(0xC4, 0x20),                         // VDVS
		cmd(0xC6, 0x0F),                         // FRCTRL2
		cmd(0xD0, 0xA4, 0xA1),                   // PWCTRL1
		cmdWait(CmdINVON, 10),
		cmdWait(CmdNORON, 10),
		cmdWait(CmdDISPON, 120),
	),
}

var ILI9341 = Controller{
	Name:         "ili9341",
	Width:        240,
	Height:       320,
	MemoryHeight: 320,
	Init: Table(
		cmdWait(CmdSWRESET, 150),
		cmd(0xEF, 0x03, 0x80, 0x02),
		cmd(0xCF, 0x00, 0xC1, 0x30),
		cmd(0xED, 0x64, 0x03, 0x12, 0x81),
		cmd(0xE8, 0x85, 0x00, 0x78),
		cmd(0xCB, 0x39, 0x2C, 0x00, 0x34, 0x02),
		cmd(0xF7, 0x20),
		cmd(0xEA, 0x00, 0x00),
		cmd(0xC0, 0x23),       // PWCTR1
		cmd(0xC1, 0x10),       // PWCTR2
		cmd(0xC5, 0x3E, 0x28), // VMCTR1
		cmd(0xC7, 0x86),       // VMCTR2
		cmd(CmdMADCTL, 0x48),
		cmd(CmdCOLMOD, 0x55),
		cmd(0xB1, 0x00, 0x18),       // FRMCTR1
		cmd(0xB6, 0x08, 0x82, 0x27), // DFUNCTR
		cmd(0xF2, 0x00),
		cmd(0x26, 0x01), // GAMMASET
		cmd(0xE0, 0x0F, 0x31, 0x2B, 0x0C, 0x0E, 0x08, 0x4E, 0xF1,
			0x37, 0x07, 0x10, 0x03, 0x0E, 0x09, 0x00),
		cmd(0xE1, 0x00, 0x0E, 0x14, 0x03, 0x11, 0x07, 0x31, 0xC1,
			0x48, 0x08, 0x0F, 0x0C, 0x31, 0x36, 0x0F),
		cmdWait(CmdSLPOUT, 120),
		cmdWait(CmdDISPON, 20),
	),
}

// ILI9488 is wired the way the PicoCalc board wires it: mirrored, BGR
// order, 320 lines.
var ILI9488 = Controller{
	Name:         "ili9488",
	Width:        320,
	Height:       320,
	MemoryHeight: 480,
	Init: Table(
		cmd(0xC0, 0x17, 0x15),             // PWCTRL1
		cmd(0xC1, 0x41),                   // PWCTRL2
		cmd(0xC5, 0x00, 0x12, 0x80, 0x40), // VMCTRL
		cmd(CmdCOLMOD, 0x55),
		cmd(0xB1, 0xA0, 0x11),       // FRMCTRL1
		cmd(0xB6, 0x02, 0x22, 0x27), // DISCTRL
		cmd(CmdINVON),
		cmd(CmdMADCTL, 0x40|0x04|0x08), // MX|MH|BGR
		cmdWait(CmdSLPOUT, 120),
		cmd(CmdDISPON),
	),
}

// Controllers lists the built-in controllers by name.
var Controllers = map[string]Controller{
	ST7735.Name:  ST7735,
	ST7789.Name:  ST7789,
	ILI9341.Name: ILI9341,
	ILI9488.Name: ILI9488,
}
