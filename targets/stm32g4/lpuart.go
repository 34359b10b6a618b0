//go:build stm32g4

package stm32g4

// LPUART1 register offsets and bits
const (
	lpuartCR1 = lpuart1Base + 0x00
	lpuartBRR = lpuart1Base + 0x0C
	lpuartISR = lpuart1Base + 0x1C
	lpuartTDR = lpuart1Base + 0x28

	lpuartCR1UE  = 1 << 0
	lpuartCR1RE  = 1 << 2
	lpuartCR1TE  = 1 << 3
	lpuartISRTC  = 1 << 6
	lpuartISRTXE = 1 << 7

	lpuartAF = 12 // PA2/PA3 alternate function for LPUART1
)

// UART is a transmit-only LPUART1 driver with blocking writes
type UART struct {
	configured bool
}

// Serial is the ST-LINK virtual COM port
var Serial = &UART{}

// Configure sets up LPUART1 on PA2/PA3 at baud, 8N1, clocked from PCLK
func (u *UART) Configure(baud uint32) {
	enableLPUART1Clock()
	LPUART1TX.ConfigureAlt(lpuartAF)
	LPUART1RX.ConfigureAlt(lpuartAF)

	reg(lpuartCR1).Set(0)
	// LPUART divides by BRR/256
	reg(lpuartBRR).Set(uint32(uint64(CoreClockHz) * 256 / uint64(baud)))
	reg(lpuartCR1).Set(lpuartCR1UE | lpuartCR1TE | lpuartCR1RE)
	u.configured = true
}

// WriteByte blocks until the transmit register is free
func (u *UART) WriteByte(c byte) error {
	if !u.configured {
		return nil
	}
	for reg(lpuartISR).Get()&lpuartISRTXE == 0 {
	}
	reg(lpuartTDR).Set(uint32(c))
	return nil
}

// Write sends p and waits for the last byte to leave the shifter
func (u *UART) Write(p []byte) (int, error) {
	for _, c := range p {
		u.WriteByte(c)
	}
	if u.configured {
		for reg(lpuartISR).Get()&lpuartISRTC == 0 {
		}
	}
	return len(p), nil
}

// Println writes s followed by CRLF; usable as a core.DebugWriter
func (u *UART) Println(s string) {
	u.Write([]byte(s))
	u.Write([]byte("\r\n"))
}
