/*
Package server implements msgpack IPC for fuzzy completion services.

The server provides a minimal interface for querying a candidate pool
using msgpack serialization over stdin/stdout. Messages are processed
synchronously with timing info included in responses.

# IPC

Clients send structured messages via stdin and receive responses through
stdout. Each message contains an ID field plus the query fields.

Completion requests use this structure:

	{"id": "req_001", "q": "ame", "l": 24}

The server responds with candidates ranked best-first, each carrying its
score and a display string with match emphasis applied:

	{"id": "req_001", "c": [{"w": "amenity", "s": 112}, {"w": "america", "s": 96}], "n": 2, "t": 145}

Response structures include error details when an op fails:

	{"id": "req_001", "e": "query exceeds maximum length", "c": 400}

An empty query is valid: every candidate passes as always-relevant and
no scoring happens, mirroring the interactive flow where a host asks for
the full listing before the user types a filter.
*/
package server

// CompletionRequest - minimal completion request
type CompletionRequest struct {
	ID    string `msgpack:"id"`
	Query string `msgpack:"q"`
	Limit int    `msgpack:"l,omitempty"`
}

// CompletionEntry - one ranked candidate in a response
type CompletionEntry struct {
	Text    string `msgpack:"w"`
	Score   int    `msgpack:"s"`
	Display string `msgpack:"d,omitempty"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string            `msgpack:"id"`
	Completions []CompletionEntry `msgpack:"c,omitempty"`
	Count       int               `msgpack:"n"`
	TimeTaken   int64             `msgpack:"t"`
}

// CompletionError holds basic error information for completion requests
type CompletionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
