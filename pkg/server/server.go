package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/phraseserve/pkg/config"
	"github.com/bastiangx/phraseserve/pkg/export"
	"github.com/bastiangx/phraseserve/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for phrase completions
type Server struct {
	index        suggest.IIndex
	config       *config.Config
	decoder      *msgpack.Decoder
	writer       *bufio.Writer
	encoder      *msgpack.Encoder
	requestCount int
}

// NewServer creates a new server using stdin/stdout for IPC
func NewServer(index suggest.IIndex, cfg *config.Config) *Server {
	return NewServerWithIO(index, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams
func NewServerWithIO(index suggest.IIndex, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bw := bufio.NewWriter(w)
	return &Server{
		index:   index,
		config:  cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		writer:  bw,
		encoder: msgpack.NewEncoder(bw),
	}
}

// Start signals readiness and serves requests until the input stream ends.
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	if err := s.sendResponse(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			log.Errorf("Reading request: %v", err)
			return err
		}
		s.requestCount++

		if err := s.handleRequest(raw); err != nil {
			log.Errorf("Writing response: %v", err)
			return err
		}
	}
}

// handleRequest decodes one message and dispatches on its action
func (s *Server) handleRequest(raw msgpack.RawMessage) error {
	var request Request
	if err := msgpack.Unmarshal(raw, &request); err != nil {
		log.Errorf("Unmarshaling request: %v", err)
		return s.sendError("", "Invalid msgpack request", 400)
	}

	switch request.Action {
	case "complete":
		return s.handleComplete(request)
	case "search":
		return s.handleSearch(request)
	case "insert":
		return s.handleInsert(request)
	case "dump":
		return s.handleDump(request)
	case "stats":
		return s.sendResponse(StatusResponse{ID: request.ID, Status: "ok", Stats: s.index.Stats()})
	case "health":
		return s.sendResponse(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		return s.sendError(request.ID, fmt.Sprintf("Unknown action: %q", request.Action), 400)
	}
}

func (s *Server) handleComplete(request Request) error {
	if utf8.RuneCountInString(request.Prefix) > s.config.Server.MaxPrefix {
		log.Debug("Prefix is too long in request", "id", request.ID)
		return s.sendError(request.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", s.config.Server.MaxPrefix), 400)
	}

	limit := s.config.Server.DefaultLimit
	if request.Limit != nil {
		limit = min(*request.Limit, s.config.Server.MaxLimit)
	}

	start := time.Now()
	suggestions, err := s.index.Complete(request.Prefix, limit)
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, suggest.ErrNegativeLimit) {
			return s.sendError(request.ID, err.Error(), 400)
		}
		log.Errorf("Completing %q: %v", request.Prefix, err)
		return s.sendError(request.ID, "Internal server error", 500)
	}

	ranked := make([]CompletionSuggestion, len(suggestions))
	for i, sg := range suggestions {
		ranked[i] = CompletionSuggestion{
			Phrase:    sg.Phrase,
			Frequency: sg.Frequency,
			Rank:      uint16(i + 1),
		}
	}

	return s.sendResponse(CompletionResponse{
		ID:          request.ID,
		Suggestions: ranked,
		Count:       len(ranked),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleSearch(request Request) error {
	if request.Word == "" {
		return s.sendError(request.ID, "Missing 'w' parameter", 400)
	}

	start := time.Now()
	phrases := s.index.SearchWord(request.Word)
	elapsed := time.Since(start)

	return s.sendResponse(SearchResponse{
		ID:        request.ID,
		Phrases:   phrases,
		Count:     len(phrases),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleInsert(request Request) error {
	if err := s.index.Insert(request.Phrase); err != nil {
		if errors.Is(err, suggest.ErrEmptyPhrase) {
			return s.sendError(request.ID, err.Error(), 400)
		}
		log.Errorf("Inserting phrase: %v", err)
		return s.sendError(request.ID, "Internal server error", 500)
	}
	return s.sendResponse(StatusResponse{ID: request.ID, Status: "ok"})
}

func (s *Server) handleDump(request Request) error {
	snapshot := s.index.Dump()
	if request.Inline {
		return s.sendResponse(StatusResponse{ID: request.ID, Status: "ok", Tree: snapshot})
	}

	path := request.Path
	if path == "" {
		path = s.config.Export.Path
	}
	written, err := export.WriteFile(path, snapshot)
	if err != nil {
		log.Errorf("Exporting tree: %v", err)
		return s.sendError(request.ID, "Failed to export tree", 500)
	}
	return s.sendResponse(StatusResponse{ID: request.ID, Status: "ok", Path: written})
}

// sendResponse encodes response and flushes it so the client sees it immediately.
func (s *Server) sendResponse(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	return s.writer.Flush()
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) error {
	return s.sendResponse(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
