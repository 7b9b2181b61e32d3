package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/julienschmidt/httprouter"
	"github.com/jwenz723/7seg-easyc/sevensegment"
)

// server exposes one display over HTTP. Display isn't safe for
// concurrent use, so every request holds mu.
type server struct {
	mu      sync.Mutex
	display *sevensegment.Display
}

func newServer(d *sevensegment.Display) *server {
	return &server{display: d}
}

func (s *server) routes() *httprouter.Router {
	r := httprouter.New()
	r.GET("/state", s.state)
	r.PUT("/pins/:mask", s.apply("mask", parseMask, (*sevensegment.Display).SetPins))
	r.PUT("/brightness/:level", s.apply("level", parseByte, (*sevensegment.Display).SetBrightness))
	r.PUT("/digit/:n", s.apply("n", parseByte, (*sevensegment.Display).DisplayNumber))
	r.PUT("/letter/:c", s.apply("c", parseChar, (*sevensegment.Display).DisplayChar))
	return r
}

func (s *server) state(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	s.mu.Lock()
	st := s.display.State()
	s.mu.Unlock()
	writeState(w, st)
}

func (s *server) apply(param string, parse func(string) (byte, error), op func(*sevensegment.Display, byte)) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		v, err := parse(ps.ByName(param))
		if err != nil {
			lg.Warnf("%s %s: %s", r.Method, r.URL.Path, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		op(s.display, v)
		st := s.display.State()
		s.mu.Unlock()

		lg.Debugf("%s %s -> %#x", r.Method, r.URL.Path, st.Frame())
		writeState(w, st)
	}
}

func writeState(w http.ResponseWriter, st sevensegment.State) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(st); err != nil {
		lg.Errorf("Encoding state: %s", err)
	}
}

// parseMask accepts 0x, 0b, 0o prefixed or decimal values.
func parseMask(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	return byte(v), err
}

func parseByte(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	return byte(v), err
}

func parseChar(s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("want a single character, got %q", s)
	}
	return s[0], nil
}
