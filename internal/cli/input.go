// Package cli handles cmd line input for querying the phrase index, mostly for DBG and testing
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/phraseserve/internal/logger"
	"github.com/bastiangx/phraseserve/internal/utils"
	"github.com/bastiangx/phraseserve/pkg/export"
	"github.com/bastiangx/phraseserve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	phraseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	freqStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// InputHandler reads one command per line from stdin.
// Plain text is completed as a prefix; lines starting with '/' are commands:
//
//	/find <word>     phrases containing word
//	/words <prefix>  indexed words starting with prefix
//	/dump [path]     export the tree
//	/stats           index counters
type InputHandler struct {
	index        suggest.IIndex
	suggestLimit int
	exportPath   string
	reader       io.Reader
	logger       *log.Logger
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(index suggest.IIndex, limit int, exportPath string) *InputHandler {
	return &InputHandler{
		index:        index,
		suggestLimit: limit,
		exportPath:   exportPath,
		reader:       os.Stdin,
		logger:       logger.NewWithConfig("", min(log.GetLevel(), log.InfoLevel), false, false, log.TextFormatter),
	}
}

// Start begins the interface loop and returns nil when stdin closes.
func (h *InputHandler) Start() error {
	h.logger.Print("phraseserve CLI [BETA]")
	h.logger.Print("type a prefix and press Enter, or /find <word>, /words <prefix>, /dump [path], /stats (Ctrl+C to exit):")

	scanner := bufio.NewScanner(h.reader)
	for {
		h.logger.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput routes a single line to a command or a completion
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	if !strings.HasPrefix(line, "/") {
		h.complete(line)
		return
	}

	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch command {
	case "/find":
		h.find(arg)
	case "/words":
		h.words(arg)
	case "/dump":
		h.dump(arg)
	case "/stats":
		h.stats()
	default:
		h.logger.Errorf("Unknown command: %s", command)
	}
}

func (h *InputHandler) complete(prefix string) {
	start := time.Now()
	suggestions, err := h.index.Complete(prefix, h.suggestLimit)
	elapsed := time.Since(start)
	if err != nil {
		h.logger.Errorf("Completing '%s': %v", prefix, err)
		return
	}
	h.logger.Debugf("Took [ %v ] for prefix '%s'", elapsed, prefix)

	if len(suggestions) == 0 {
		h.logger.Warnf("No phrases found for prefix: '%s'", prefix)
		return
	}

	h.logger.Printf("Found %d phrases for prefix '%s':", len(suggestions), prefix)
	for i, s := range suggestions {
		h.logger.Printf("%2d. %s %s", i+1, phraseStyle.Render(s.Phrase), freqStyle.Render(fmt.Sprintf("(freq: %s)", utils.FormatWithCommas(s.Frequency))))
	}
}

func (h *InputHandler) find(word string) {
	if word == "" {
		h.logger.Error("Usage: /find <word>")
		return
	}

	phrases := h.index.SearchWord(word)
	if len(phrases) == 0 {
		h.logger.Warnf("No phrases contain the word: '%s'", word)
		return
	}

	h.logger.Printf("Found %d phrases containing '%s':", len(phrases), word)
	for _, p := range phrases {
		h.logger.Printf("  %s", phraseStyle.Render(p))
	}
}

func (h *InputHandler) words(prefix string) {
	words := h.index.Words(prefix, h.suggestLimit)
	if len(words) == 0 {
		h.logger.Warnf("No words found for prefix: '%s'", prefix)
		return
	}
	for i, w := range words {
		h.logger.Printf("%2d. %-24s %s", i+1, w.Word, freqStyle.Render(fmt.Sprintf("(%s phrases)", utils.FormatWithCommas(w.Phrases))))
	}
}

func (h *InputHandler) dump(path string) {
	if path == "" {
		path = h.exportPath
	}
	written, err := export.WriteFile(path, h.index.Dump())
	if err != nil {
		h.logger.Errorf("Export failed: %v", err)
		return
	}
	h.logger.Infof("Tree exported to %s", written)
}

func (h *InputHandler) stats() {
	s := h.index.Stats()
	h.logger.Print("Index stats",
		"phrases", utils.FormatWithCommas(s["phrases"]),
		"distinct", utils.FormatWithCommas(s["distinctPhrases"]),
		"words", utils.FormatWithCommas(s["words"]),
		"nodes", utils.FormatWithCommas(s["nodes"]))
}
