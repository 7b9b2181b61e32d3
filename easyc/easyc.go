// Package easyc carries display frames over the easyC bus, which is
// plain I²C on a Qwiic style connector.
package easyc

import (
	"fmt"
	"io"
	"os"

	logger "github.com/d2r2/go-logger"
	"github.com/jwenz723/7seg-easyc/sevensegment"
)

var lg = logger.NewPackageLogger("easyc", logger.InfoLevel)

// DefaultAddress is the bus address of an easyC board with all address
// switches off.
const DefaultAddress uint8 = 0x30

// Backend names accepted by Open.
const (
	BackendD2R2      = "d2r2"
	BackendPeriph    = "periph"
	BackendSimulated = "simulated"
)

// Transport is a frame sink that holds a bus handle.
type Transport interface {
	sevensegment.Transmitter
	io.Closer
}

// Options selects and configures a Transport.
type Options struct {
	Backend string
	Addr    uint8
	// Bus is the /dev/i2c-N number used by the d2r2 backend.
	Bus int
	// PeriphBus is the periph bus name; empty picks the first one.
	PeriphBus string
	// Out receives frames from the simulated backend. Defaults to stdout.
	Out io.Writer
}

// Open connects to the display with the backend named in opts.
func Open(opts Options) (Transport, error) {
	lg.Debugf("Opening %s transport at 0x%02x", opts.Backend, opts.Addr)
	switch opts.Backend {
	case BackendD2R2:
		return NewI2C(opts.Addr, opts.Bus)
	case BackendPeriph:
		return OpenPeriph(opts.PeriphBus, uint16(opts.Addr))
	case BackendSimulated:
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		return NewSimulated(out, opts.Addr), nil
	default:
		return nil, fmt.Errorf("unknown transport %q", opts.Backend)
	}
}

// ValidBackend reports whether name can be passed to Open.
func ValidBackend(name string) bool {
	switch name {
	case BackendD2R2, BackendPeriph, BackendSimulated:
		return true
	}
	return false
}
