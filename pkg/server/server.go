package server

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/jimeh/fussy/pkg/complete"
	"github.com/jimeh/fussy/pkg/config"
	"github.com/jimeh/fussy/pkg/pool"
)

// Server handles the IPC for fuzzy completions
type Server struct {
	adapter *complete.Adapter
	pool    *pool.Pool
	cfg     *config.Config
	dec     *msgpack.Decoder
	enc     *msgpack.Encoder
}

// NewServer creates a new completion server using stdin/stdout for IPC
func NewServer(adapter *complete.Adapter, candidates *pool.Pool, cfg *config.Config) *Server {
	return &Server{
		adapter: adapter,
		pool:    candidates,
		cfg:     cfg,
		dec:     msgpack.NewDecoder(os.Stdin),
		enc:     msgpack.NewEncoder(os.Stdout),
	}
}

// Start begins listening for IPC requests. Requests are processed one at
// a time; there is no background work, a slow request simply delays the
// next one.
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	for {
		var request CompletionRequest
		if err := s.dec.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			continue
		}
		s.handleComplete(request)
	}
}

// handleComplete validates the request, runs the ranking pipeline over
// the whole pool, and writes the ranked response. Validation failures
// are client errors, not pipeline faults.
func (s *Server) handleComplete(request CompletionRequest) {
	query := request.Query

	if len(query) > 0 && len(query) < s.cfg.Server.MinQuery {
		s.sendError(request.ID, "Query below minimum length", 400)
		log.Debug("Query too short in request")
		return
	}
	if s.cfg.Server.MaxQuery > 0 && len(query) > s.cfg.Server.MaxQuery {
		s.sendError(request.ID, "Query exceeds maximum length", 400)
		log.Debug("Query too long in request")
		return
	}

	limit := request.Limit
	if limit < 1 || limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	candidates := s.pool.All()
	ctx := complete.Context{FilterActive: query != ""}
	ranked := s.adapter.AllCompletions(query, candidates, nil, ctx)
	elapsed := time.Since(start)

	// Unscored passthrough candidates sit at the tail; the limit trims
	// them first.
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	entries := make([]CompletionEntry, 0, len(ranked))
	for _, a := range ranked {
		if a.NoMatch {
			// The scorer rejected this candidate: drop it rather than pad
			// the response with zero scores.
			continue
		}
		entries = append(entries, CompletionEntry{
			Text:    a.Text,
			Score:   a.Score,
			Display: a.Display,
		})
	}

	s.sendResponse(CompletionResponse{
		ID:          request.ID,
		Completions: entries,
		Count:       len(entries),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) sendResponse(response any) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(CompletionError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
