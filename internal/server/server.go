// Package server exposes the color engine as a small JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ganemedelabs/csspectrum"
)

// New returns an http.Handler serving the color API on a chi router.
func New(reg *csspectrum.Registry) http.Handler {
	s := &server{reg: reg}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/convert", s.handleConvert)
	r.Get("/type", s.handleType)
	r.Get("/mix", s.handleMix)
	r.Get("/contrast", s.handleContrast)
	r.Get("/random", s.handleRandom)

	return r
}

// ListenAndServe runs the API on addr until the server fails.
func ListenAndServe(addr string, reg *csspectrum.Registry) error {
	return http.ListenAndServe(addr, New(reg))
}

type server struct {
	reg *csspectrum.Registry
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, csspectrum.ErrUnsupported) {
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// GET /convert?color=...&to=...&modern=1
func (s *server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, err := s.reg.From(q.Get("color"))
	if err != nil {
		writeError(w, err)
		return
	}
	to := q.Get("to")
	if to == "" {
		to = "hex"
	}
	out, err := c.To(to, csspectrum.Options{Modern: q.Get("modern") != ""})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"input":  q.Get("color"),
		"to":     to,
		"result": out,
		"name":   c.Name(),
	})
}

// GET /type?color=...
func (s *server) handleType(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("color")
	kind, err := s.reg.Type(input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"input": input, "type": kind})
}

// GET /mix?color1=...&color2=...&amount=0.5&in=hsl&hue=shorter
func (s *server) handleMix(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	amount := 0.5
	if raw := q.Get("amount"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, errors.New("amount must be a number between 0 and 1"))
			return
		}
		amount = parsed
	}
	model := q.Get("in")
	if model == "" {
		model = "oklab"
	}
	c, err := s.reg.From(q.Get("color1"))
	if err != nil {
		writeError(w, err)
		return
	}
	m, err := c.In(model)
	if err != nil {
		writeError(w, err)
		return
	}
	if hue := q.Get("hue"); hue != "" {
		m, err = m.MixWith(q.Get("color2"), amount, hue)
	} else {
		m, err = m.MixWith(q.Get("color2"), amount)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	out, err := m.Color().To(model)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": out})
}

// GET /contrast?color1=...&color2=...
func (s *server) handleContrast(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ratio, err := s.reg.ContrastRatio(q.Get("color1"), q.Get("color2"))
	if err != nil {
		writeError(w, err)
		return
	}
	aa, _ := s.reg.IsAccessiblePair(q.Get("color1"), q.Get("color2"), "AA", false)
	aaa, _ := s.reg.IsAccessiblePair(q.Get("color1"), q.Get("color2"), "AAA", false)
	writeJSON(w, http.StatusOK, map[string]any{
		"ratio": ratio,
		"aa":    aa,
		"aaa":   aaa,
	})
}

// GET /random?format=...
func (s *server) handleRandom(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "hex"
	}
	out, err := s.reg.Random(format)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"format": format, "result": out})
}
