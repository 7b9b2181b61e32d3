package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	logger "github.com/d2r2/go-logger"
	"github.com/jwenz723/7seg-easyc/easyc"
	"github.com/jwenz723/7seg-easyc/sevensegment"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	lg = logger.NewPackageLogger("main", logger.InfoLevel)

	app = kingpin.New("7seg-display", "Drive a Soldered easyC 7-segment display.")
	cf  = app.Flag("config", "Path to yaml config file.").Default("config.yaml").Short('c').String()

	pinsCmd  = app.Command("pins", "Set the raw segment mask. A 0 bit lights a segment, bit 7 is the dot.")
	pinsMask = pinsCmd.Arg("mask", "Mask as 0x.., 0b.. or decimal.").Required().String()

	brightnessCmd    = app.Command("brightness", "Set the brightness, 0-127. The display is blanked unless --pins, --digit or --letter says what to show.")
	brightnessLevel  = brightnessCmd.Arg("level", "Brightness level.").Required().Uint8()
	brightnessPins   = brightnessCmd.Flag("pins", "Segment mask to send with the brightness.").Default("").String()
	brightnessDigit  = brightnessCmd.Flag("digit", "Digit to send with the brightness.").Default("").String()
	brightnessLetter = brightnessCmd.Flag("letter", "Letter to send with the brightness.").Default("").String()

	digitCmd = app.Command("digit", "Show a single digit.")
	digitN   = digitCmd.Arg("n", "Digit 0-9. Anything larger lights every segment.").Required().Uint8()

	letterCmd  = app.Command("letter", "Show a capital letter.")
	letterChar = letterCmd.Arg("c", "Letter A-Z. Anything else blanks the display.").Required().String()

	serveCmd = app.Command("serve", "Serve the display over HTTP.")
)

func main() {
	defer logger.FinalizeLogger()

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	config, err := NewConfig(*cf)
	if err != nil {
		panic(fmt.Errorf("error parsing config file: %s", err))
	}
	setLogLevel(config.Level())

	// Connect to seven segment
	tr, err := easyc.Open(config.TransportOptions())
	if err != nil {
		lg.Fatal(err)
	}
	// Free I2C connection on exit
	defer tr.Close()

	display, err := newDisplay(cmd, tr, config)
	if err == nil {
		err = run(cmd, display, config)
	}
	if err != nil {
		lg.Error(err)
		tr.Close()
		logger.FinalizeLogger()
		os.Exit(1)
	}
}

// newDisplay presets the configured brightness, and for the brightness
// command the segments to keep showing, so a command writes one frame.
func newDisplay(cmd string, tx sevensegment.Transmitter, config *Config) (*sevensegment.Display, error) {
	opts := []sevensegment.Option{sevensegment.WithBrightness(config.Brightness)}
	if cmd != brightnessCmd.FullCommand() {
		return sevensegment.New(tx, opts...), nil
	}

	var (
		mask byte
		set  int
	)
	if *brightnessPins != "" {
		v, err := parseMask(*brightnessPins)
		if err != nil {
			return nil, fmt.Errorf("bad mask %q: %w", *brightnessPins, err)
		}
		mask = v
		set++
	}
	if *brightnessDigit != "" {
		n, err := parseByte(*brightnessDigit)
		if err != nil {
			return nil, fmt.Errorf("bad digit %q: %w", *brightnessDigit, err)
		}
		mask = sevensegment.NumberMask(n)
		set++
	}
	if *brightnessLetter != "" {
		c, err := parseChar(*brightnessLetter)
		if err != nil {
			return nil, err
		}
		mask = sevensegment.CharMask(c)
		set++
	}
	switch set {
	case 0:
	case 1:
		opts = append(opts, sevensegment.WithPins(mask))
	default:
		return nil, errors.New("use only one of --pins, --digit and --letter")
	}
	return sevensegment.New(tx, opts...), nil
}

func run(cmd string, display *sevensegment.Display, config *Config) error {
	switch cmd {
	case pinsCmd.FullCommand():
		mask, err := parseMask(*pinsMask)
		if err != nil {
			return fmt.Errorf("bad mask %q: %w", *pinsMask, err)
		}
		display.SetPins(mask)
	case brightnessCmd.FullCommand():
		display.SetBrightness(*brightnessLevel)
	case digitCmd.FullCommand():
		display.DisplayNumber(*digitN)
	case letterCmd.FullCommand():
		c, err := parseChar(*letterChar)
		if err != nil {
			return err
		}
		display.DisplayChar(c)
	case serveCmd.FullCommand():
		return serve(config.Listen, display)
	}
	lg.Infof("Display set to %#x", display.State().Frame())
	return nil
}

func serve(addr string, display *sevensegment.Display) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv := &http.Server{Addr: addr, Handler: newServer(display).routes()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	lg.Infof("Listening on %s", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func setLogLevel(level logger.LogLevel) {
	for _, pkg := range []string{"main", "easyc"} {
		_ = logger.ChangePackageLogLevel(pkg, level)
	}
	// go-i2c logs every transfer at debug
	i2cLevel := level
	if i2cLevel > logger.InfoLevel {
		i2cLevel = logger.InfoLevel
	}
	_ = logger.ChangePackageLogLevel("i2c", i2cLevel)
}
