// Package sevensegment drives the Soldered easyC single digit 7-segment
// display. Every state change is sent to the board as a two byte frame
// holding the segment mask followed by the brightness.
package sevensegment

// FrameSize is the length of every frame written to the board.
const FrameSize = 2

const (
	// DefaultBrightness is the power-on brightness. Anything above
	// MaxBrightness drives the display at full brightness.
	DefaultBrightness byte = 128
	// MaxBrightness is the highest level the board distinguishes.
	MaxBrightness byte = 127
)

// Transmitter sends one frame to the display.
type Transmitter interface {
	Transmit(frame [FrameSize]byte) error
}

// State is a snapshot of what the display was last told to show.
type State struct {
	Pins       byte `json:"pins"`
	Brightness byte `json:"brightness"`
}

// Frame returns the bytes sent to the board for s.
func (s State) Frame() [FrameSize]byte {
	return [FrameSize]byte{s.Pins, s.Brightness}
}

// Display keeps the segment and brightness state of one board.
// It is not safe for concurrent use.
type Display struct {
	tx         Transmitter
	pins       byte
	brightness byte
}

// Option presets Display state. Presets are not sent on their own; they
// go out with the first frame.
type Option func(*Display)

// WithBrightness starts the display at level instead of DefaultBrightness.
func WithBrightness(level byte) Option {
	return func(d *Display) { d.brightness = level }
}

// WithPins starts the display with mask instead of AllOff.
func WithPins(mask byte) Option {
	return func(d *Display) { d.pins = mask }
}

// New returns a Display with all segments off at default brightness.
// Nothing is sent until the first call that changes state.
func New(tx Transmitter, opts ...Option) *Display {
	d := &Display{
		tx:         tx,
		pins:       AllOff,
		brightness: DefaultBrightness,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Native reports whether the display can be driven without the easyC
// bus. It never can.
func (d *Display) Native() bool {
	return false
}

// State returns the current segment mask and brightness.
func (d *Display) State() State {
	return State{Pins: d.pins, Brightness: d.brightness}
}

// SetPins sets the raw segment mask. A 0 bit lights a segment; bit 7 is
// the dot and bits 6..0 are segments a..g.
func (d *Display) SetPins(mask byte) {
	d.pins = mask
	d.send()
}

// SetBrightness sets the brightness, 0 to 127. Higher values are sent
// unchanged.
func (d *Display) SetBrightness(level byte) {
	d.brightness = level
	d.send()
}

// DisplayNumber shows a single digit. Values above 9 light every segment
// and the dot.
func (d *Display) DisplayNumber(n byte) {
	d.pins = NumberMask(n)
	d.send()
}

// DisplayChar shows a capital letter. Any other character blanks the
// display.
func (d *Display) DisplayChar(c byte) {
	d.pins = CharMask(c)
	d.send()
}

// send writes the current state. The board gives no useful reply, so a
// failed write is left to the transmitter to report.
func (d *Display) send() {
	_ = d.tx.Transmit(d.State().Frame())
}
