package easyc

import (
	"fmt"

	"github.com/jwenz723/7seg-easyc/sevensegment"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Periph writes frames through a periph.io I²C bus.
type Periph struct {
	dev    *i2c.Dev
	closer func() error
}

// NewPeriph talks to addr on an already opened bus. Closing the returned
// Periph leaves bus open.
func NewPeriph(bus i2c.Bus, addr uint16) *Periph {
	return &Periph{
		dev:    &i2c.Dev{Bus: bus, Addr: addr},
		closer: func() error { return nil },
	}
}

// OpenPeriph initializes the host drivers and opens the named bus. An
// empty name picks the first bus found.
func OpenPeriph(name string, addr uint16) (*Periph, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", name, err)
	}
	p := NewPeriph(bus, addr)
	p.closer = bus.Close
	return p, nil
}

// Transmit writes frame in a single bus transaction.
func (p *Periph) Transmit(frame [sevensegment.FrameSize]byte) error {
	if err := p.dev.Tx(frame[:], nil); err != nil {
		lg.Errorf("Writing %#x to %s: %s", frame[:], p.dev, err)
		return err
	}
	lg.Debugf("Writing %#x to %s", frame[:], p.dev)
	return nil
}

// Close releases the bus if OpenPeriph opened it.
func (p *Periph) Close() error {
	return p.closer()
}
