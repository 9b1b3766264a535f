package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tokenstudio/tokenstudio/internal/launch"
	"github.com/tokenstudio/tokenstudio/internal/pricing"
)

// maxBodyBytes bounds API request bodies.
const maxBodyBytes = 64 << 10

var errIncompleteDraft = errors.New("draft needs a name, a symbol and a supply above zero")

// PreviewResponse is the body returned by /api/v1/preview.
type PreviewResponse struct {
	Preview    string       `json:"preview"`
	CanAdvance bool         `json:"can_advance"`
	FeeSOL     string       `json:"fee_sol"`
	Draft      launch.Draft `json:"draft"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	d, ok := s.decodeDraft(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, pricing.NewCalculator().Calculate(d).Summary())
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	d, ok := s.decodeDraft(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, PreviewResponse{
		Preview:    launch.PreviewLabel(d),
		CanAdvance: d.Complete(),
		FeeSOL:     launch.EstimatedFee(d).String(),
		Draft:      d,
	})
}

// handleSimulate runs a draft through the whole wizard in one request.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	d, ok := s.decodeDraft(w, r)
	if !ok {
		return
	}
	sess := launch.NewSession(launch.WithDraft(d))
	if !sess.Advance() || !sess.Advance() {
		writeError(w, http.StatusUnprocessableEntity, errIncompleteDraft.Error())
		return
	}
	result, _ := sess.Launch()
	s.metrics.RecordLaunch(result.Draft.FreezeAuthority, result.Draft.MintAuthority)
	writeJSON(w, http.StatusOK, result)
}

// decodeDraft reads a JSON draft over the defaults and applies the input
// transforms. It writes a 400 and reports false on malformed input.
func (s *Server) decodeDraft(w http.ResponseWriter, r *http.Request) (launch.Draft, bool) {
	d := launch.DefaultDraft()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid draft: %v", err))
		return launch.Draft{}, false
	}
	return d.Normalize(), true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

func isAPI(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/")
}
