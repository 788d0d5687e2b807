package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
)

// Request parameter structs. The validate tags mirror the constraints the
// engine does not check itself: tags need at least two characters, result
// sizes stay bounded. Year-window validation is the engine's job so the
// CLI and HTTP boundaries agree on it.

type topParams struct {
	Year int `validate:"required"`
	N    int `validate:"gte=0,lte=100"`
}

type tagParams struct {
	Tag string `validate:"required,min=2"`
}

type pairParams struct {
	Char1 string `validate:"required,min=2"`
	Char2 string `validate:"required,min=2"`
}

type driverParams struct {
	Year int    `validate:"required"`
	Tag  string `validate:"required,min=2"`
	N    int    `validate:"gte=0,lte=100"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	params := topParams{
		Year: queryInt(r, "year"),
		N:    queryInt(r, "n"),
	}
	if err := s.validate.Struct(params); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid parameters: %w", err))
		return
	}

	ranking, err := s.engine.TopCharacters(params.Year, params.N)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, ranking)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	params := tagParams{Tag: r.URL.Query().Get("tag")}
	if err := s.validate.Struct(params); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid parameters: %w", err))
		return
	}

	stats, err := s.engine.CharacterStats(params.Tag)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleShip(w http.ResponseWriter, r *http.Request) {
	params := pairParams{
		Char1: r.URL.Query().Get("char1"),
		Char2: r.URL.Query().Get("char2"),
	}
	if err := s.validate.Struct(params); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid parameters: %w", err))
		return
	}

	ship, err := s.engine.ShipDependency(params.Char1, params.Char2)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, ship)
}

func (s *Server) handleDrivers(w http.ResponseWriter, r *http.Request) {
	params := driverParams{
		Year: queryInt(r, "year"),
		Tag:  r.URL.Query().Get("tag"),
		N:    queryInt(r, "n"),
	}
	if err := s.validate.Struct(params); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid parameters: %w", err))
		return
	}

	report, err := s.engine.TagDrivers(params.Year, params.Tag, params.N)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	params := pairParams{
		Char1: r.URL.Query().Get("char1"),
		Char2: r.URL.Query().Get("char2"),
	}
	if err := s.validate.Struct(params); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid parameters: %w", err))
		return
	}

	cmp, err := s.engine.Compare(params.Char1, params.Char2)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed; the validator rejects zero where the parameter is required.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorBody{Error: err.Error()})
}
