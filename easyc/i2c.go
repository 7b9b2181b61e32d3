package easyc

import (
	"fmt"

	i2c "github.com/d2r2/go-i2c"
	"github.com/jwenz723/7seg-easyc/sevensegment"
)

// I2C writes frames through the Linux i2c-dev interface.
type I2C struct {
	conn *i2c.I2C
}

// NewI2C opens /dev/i2c-<bus> and selects addr.
func NewI2C(addr uint8, bus int) (*I2C, error) {
	conn, err := i2c.NewI2C(addr, bus)
	if err != nil {
		return nil, fmt.Errorf("open i2c-%d at 0x%02x: %w", bus, addr, err)
	}
	return &I2C{conn: conn}, nil
}

// Transmit writes frame in a single bus transaction.
func (t *I2C) Transmit(frame [sevensegment.FrameSize]byte) error {
	n, err := t.conn.WriteBytes(frame[:])
	if err == nil && n != len(frame) {
		err = fmt.Errorf("short write: %d of %d bytes", n, len(frame))
	}
	if err != nil {
		lg.Errorf("Writing %#x to 0x%02x: %s", frame[:], t.conn.GetAddr(), err)
		return err
	}
	lg.Debugf("Writing %#x to 0x%02x", frame[:], t.conn.GetAddr())
	return nil
}

// Close releases the bus.
func (t *I2C) Close() error {
	return t.conn.Close()
}
