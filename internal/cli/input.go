// Package cli handles cmd line input and ranked completions for DBG and testing various features
package cli

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jimeh/fussy/internal/logger"
	"github.com/jimeh/fussy/pkg/complete"
	"github.com/jimeh/fussy/pkg/pool"
)

// InputHandler processes user queries from stdin, running the full
// ranking pipeline over the loaded pool and printing decorated results.
type InputHandler struct {
	adapter      *complete.Adapter
	pool         *pool.Pool
	limit        int
	maxQuery     int
	requestCount int
	log          *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(adapter *complete.Adapter, candidates *pool.Pool, limit, maxQuery int) *InputHandler {
	return &InputHandler{
		adapter:  adapter,
		pool:     candidates,
		limit:    limit,
		maxQuery: maxQuery,
		log:      logger.New("cli"),
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed query to handleQuery() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	h.log.Print("fussy CLI")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("type a query and press Enter to see ranked completions (Ctrl+C to exit):")

	for {
		h.log.Print("> ")
		query, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		h.handleQuery(query)
	}
}

// handleQuery runs one query through the pipeline and prints the result.
func (h *InputHandler) handleQuery(query string) {
	h.requestCount++

	if h.maxQuery > 0 && len(query) > h.maxQuery {
		h.log.Errorf("Query too long: %s", query)
		return
	}

	start := time.Now()
	candidates := h.pool.All()
	ctx := complete.Context{FilterActive: true}
	ranked := h.adapter.AllCompletions(query, candidates, nil, ctx)
	elapsed := time.Since(start)

	h.log.Debugf("Took [ %v ] for query '%s' over %d candidates", elapsed, query, len(candidates))

	shown := 0
	for _, a := range ranked {
		if a.NoMatch {
			continue
		}
		shown++
		h.log.Printf("%2d. %-40s (score: %6d)", shown, a.Display, a.Score)
		if shown >= h.limit {
			break
		}
	}
	if shown == 0 {
		h.log.Warnf("No completions found for query: '%s'", query)
		return
	}
	h.log.Printf("Found %d completions for query '%s'", shown, query)
}
