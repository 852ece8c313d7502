/*
Package server implements msgpack IPC for phrase completion and word search.

The server reads a stream of msgpack maps from stdin and writes one msgpack map per request to stdout.
Requests are handled one at a time on a single goroutine, so the index never sees concurrent access.

# IPC

Every request carries an ID and an action:

	{"id": "req_001", "action": "complete", "p": "chuck", "l": 10}

The server answers with phrases ranked by how often they were inserted:

	{"id": "req_001", "s": [{"w": "Chuck Norris can divide by zero", "f": 2, "r": 1}], "c": 1, "t": 18}

Omitting "l" uses the configured default limit; larger limits are capped at max_limit.
An empty prefix ranks the whole corpus.

Word lookups return every phrase containing the word as a whole token:

	{"id": "req_002", "action": "search", "w": "divide"}

Other actions:

	{"id": "req_003", "action": "insert", "phrase": "Chuck Norris can slam a revolving door"}
	{"id": "req_004", "action": "dump", "path": "TreeDump.json"}
	{"id": "req_005", "action": "dump", "inline": true}
	{"id": "req_006", "action": "stats"}
	{"id": "req_007", "action": "health"}

Failures are answered with an ErrorResponse carrying the request ID and an HTTP-like code.
*/
package server

import "github.com/bastiangx/phraseserve/pkg/suggest"

// Request is the union of every action's fields
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`
	Prefix string `msgpack:"p,omitempty"`
	Limit  *int   `msgpack:"l,omitempty"`
	Word   string `msgpack:"w,omitempty"`
	Phrase string `msgpack:"phrase,omitempty"`
	Path   string `msgpack:"path,omitempty"`
	Inline bool   `msgpack:"inline,omitempty"`
}

// CompletionSuggestion - one ranked phrase
type CompletionSuggestion struct {
	Phrase    string `msgpack:"w"`
	Frequency int    `msgpack:"f"`
	Rank      uint16 `msgpack:"r"`
}

// CompletionResponse - completion response, TimeTaken in microseconds
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// SearchResponse - word search response, TimeTaken in microseconds
type SearchResponse struct {
	ID        string   `msgpack:"id"`
	Phrases   []string `msgpack:"s"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// StatusResponse - answer to insert, dump, stats and health
type StatusResponse struct {
	ID     string            `msgpack:"id"`
	Status string            `msgpack:"status"`
	Path   string            `msgpack:"path,omitempty"`
	Stats  map[string]int    `msgpack:"stats,omitempty"`
	Tree   *suggest.Snapshot `msgpack:"tree,omitempty"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
