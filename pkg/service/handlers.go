package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/versiclehq/versicle/pkg/cipher"
	"github.com/versiclehq/versicle/pkg/telemetry"
)

// EncodeRequest is the body of POST /v1/encode.
type EncodeRequest struct {
	Text string `json:"text"`
}

// EncodeResponse carries the encoded sequence and its wire rendering.
type EncodeResponse struct {
	References []string `json:"references"`
	Message    string   `json:"message"`
	Count      int      `json:"count"`
}

// DecodeRequest is the body of POST /v1/decode. Either a wire-format message
// or an explicit reference list may be supplied; the message wins when both
// are present.
type DecodeRequest struct {
	Message    string   `json:"message,omitempty"`
	References []string `json:"references,omitempty"`
}

// DecodeResponse carries the recovered plaintext.
type DecodeResponse struct {
	Text string `json:"text"`
}

// TableEntryDTO is one symbol/reference pair in a table listing.
type TableEntryDTO struct {
	Symbol    string `json:"symbol"`
	Reference string `json:"reference"`
}

// TableResponse lists the active mapping.
type TableResponse struct {
	Symbols int             `json:"symbols"`
	Entries []TableEntryDTO `json:"entries"`
}

// ErrorResponse reports a request failure. For codec failures Kind is
// "unsupported_symbol" or "unknown_reference" and Position locates the
// offending element.
type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	Symbol    string `json:"symbol,omitempty"`
	Reference string `json:"reference,omitempty"`
	Position  *int   `json:"position,omitempty"`
}

// instrument wraps a handler with request ID assignment, rate limiting, and
// HTTP metrics.
func (s *Service) instrument(route string, handler http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		if !s.limiter.Allow(route) {
			w.Header().Set("Retry-After", "1")
			s.writeError(w, http.StatusTooManyRequests, ErrorResponse{Error: "rate limit exceeded"})
			s.metrics.RecordHTTPRequest(route, http.StatusTooManyRequests, time.Since(start))
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		handler(rec, r)

		s.metrics.RecordHTTPRequest(route, rec.status, time.Since(start))
		s.logger.Debug("Request handled",
			"route", route,
			"status", rec.status,
			"request_id", requestID,
			"duration", time.Since(start))
	})
}

// statusRecorder captures the response status for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Service) handleEncode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		return
	}

	var req EncodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	start := time.Now()
	codec := s.Codec()
	refs, err := codec.Encode(req.Text)
	if err != nil {
		s.handleCodecError(w, r, "encode", err)
		return
	}

	s.metrics.RecordCodecOperation("encode", len(refs))
	telemetry.RecordCodecMetrics(r.Context(), telemetry.CodecMetrics{
		Direction: telemetry.DirectionEncode,
		Symbols:   len(refs),
		Outcome:   "success",
		Duration:  time.Since(start),
	})

	spaceRef, _ := codec.Table().Lookup(' ')
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = string(ref)
	}

	s.writeJSON(w, http.StatusOK, EncodeResponse{
		References: out,
		Message:    s.format.Marshal(refs, spaceRef),
		Count:      len(refs),
	})
}

func (s *Service) handleDecode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		return
	}

	var req DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	codec := s.Codec()

	var refs []cipher.Reference
	if req.Message != "" {
		spaceRef, _ := codec.Table().Lookup(' ')
		parsed, err := s.format.Unmarshal(req.Message, spaceRef)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		refs = parsed
	} else {
		refs = make([]cipher.Reference, len(req.References))
		for i, ref := range req.References {
			refs[i] = cipher.Reference(ref)
		}
	}

	start := time.Now()
	text, err := codec.Decode(refs)
	if err != nil {
		s.handleCodecError(w, r, "decode", err)
		return
	}

	s.metrics.RecordCodecOperation("decode", len(refs))
	telemetry.RecordCodecMetrics(r.Context(), telemetry.CodecMetrics{
		Direction: telemetry.DirectionDecode,
		Symbols:   len(refs),
		Outcome:   "success",
		Duration:  time.Since(start),
	})

	s.writeJSON(w, http.StatusOK, DecodeResponse{Text: text})
}

func (s *Service) handleTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		return
	}

	table := s.Codec().Table()
	entries := table.Entries()
	out := make([]TableEntryDTO, len(entries))
	for i, e := range entries {
		sym := string(e.Symbol)
		if e.Symbol == ' ' {
			sym = "space"
		}
		out[i] = TableEntryDTO{Symbol: sym, Reference: string(e.Reference)}
	}

	s.writeJSON(w, http.StatusOK, TableResponse{Symbols: table.Len(), Entries: out})
}

// handleCodecError maps codec failures to 422 responses carrying the
// offending element and its position.
func (s *Service) handleCodecError(w http.ResponseWriter, r *http.Request, direction string, err error) {
	var symErr *cipher.UnsupportedSymbolError
	var refErr *cipher.UnknownReferenceError

	switch {
	case errors.As(err, &symErr):
		s.metrics.RecordCodecError(direction, "unsupported_symbol")
		telemetry.RecordCodecMetrics(r.Context(), telemetry.CodecMetrics{
			Direction: telemetry.Direction(direction),
			Outcome:   "error",
			ErrorKind: "unsupported_symbol",
		})
		pos := symErr.Position
		s.writeError(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:    err.Error(),
			Kind:     "unsupported_symbol",
			Symbol:   string(symErr.Symbol),
			Position: &pos,
		})
	case errors.As(err, &refErr):
		s.metrics.RecordCodecError(direction, "unknown_reference")
		telemetry.RecordCodecMetrics(r.Context(), telemetry.CodecMetrics{
			Direction: telemetry.Direction(direction),
			Outcome:   "error",
			ErrorKind: "unknown_reference",
		})
		pos := refErr.Position
		s.writeError(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:     err.Error(),
			Kind:      "unknown_reference",
			Reference: string(refErr.Reference),
			Position:  &pos,
		})
	default:
		s.metrics.RecordCodecError(direction, "internal")
		s.writeError(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}

func (s *Service) writeError(w http.ResponseWriter, status int, resp ErrorResponse) {
	s.writeJSON(w, status, resp)
}
