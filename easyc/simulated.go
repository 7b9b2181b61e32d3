package easyc

import (
	"fmt"
	"io"

	"github.com/jwenz723/7seg-easyc/sevensegment"
)

// Simulated prints frames instead of writing them to a bus.
type Simulated struct {
	out  io.Writer
	addr uint8
}

// NewSimulated prints frames for the board at addr to out.
func NewSimulated(out io.Writer, addr uint8) *Simulated {
	return &Simulated{out: out, addr: addr}
}

// Transmit prints frame as two hex bytes after the address.
func (s *Simulated) Transmit(frame [sevensegment.FrameSize]byte) error {
	_, err := fmt.Fprintf(s.out, "0x%02x: %02x %02x\n", s.addr, frame[0], frame[1])
	return err
}

// Close does nothing.
func (s *Simulated) Close() error {
	return nil
}
