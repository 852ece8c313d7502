// Package corpus feeds newline-delimited phrase files into an index.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrCorpusUnavailable wraps every failure to open or read a corpus.
var ErrCorpusUnavailable = errors.New("corpus unavailable")

// maxLineSize bounds a single phrase line.
const maxLineSize = 1 << 20

// Inserter is the part of the index the loader needs.
type Inserter interface {
	Insert(phrase string) error
}

// LoadStats describes one load run
type LoadStats struct {
	Lines    int
	Inserted int
	Skipped  int
	Format   FileFormat
}

// Loader reads phrases line by line, trims them, drops blank lines and
// inserts the rest in file order.
type Loader struct {
	maxPhrases int
}

// NewLoader creates a loader. maxPhrases caps inserted phrases, 0 means no cap.
func NewLoader(maxPhrases int) *Loader {
	return &Loader{maxPhrases: maxPhrases}
}

// LoadFile opens filename (plain or .gz) and loads it into index.
func (l *Loader) LoadFile(filename string, index Inserter) (LoadStats, error) {
	rc, format, err := openFile(filename)
	if err != nil {
		return LoadStats{}, err
	}
	defer rc.Close()

	info, _ := GetFormatInfo(format)
	log.Debugf("Loading corpus %s (%s)", filename, info.Description)

	stats, err := l.Load(rc, index)
	stats.Format = format
	if err != nil {
		return stats, fmt.Errorf("loading %s: %w", filename, err)
	}

	log.Debugf("Corpus loaded: lines=[%d], inserted=[%d], skipped=[%d]", stats.Lines, stats.Inserted, stats.Skipped)
	return stats, nil
}

// Load reads r until EOF or the phrase cap and inserts every non-blank line.
func (l *Loader) Load(r io.Reader, index Inserter) (LoadStats, error) {
	stats := LoadStats{Format: FormatText}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if l.maxPhrases > 0 && stats.Inserted >= l.maxPhrases {
			log.Debugf("Phrase cap of %d reached, stopping", l.maxPhrases)
			break
		}
		stats.Lines++

		phrase := strings.TrimSpace(scanner.Text())
		if phrase == "" {
			stats.Skipped++
			continue
		}
		if err := index.Insert(phrase); err != nil {
			return stats, fmt.Errorf("line %d: %w", stats.Lines, err)
		}
		stats.Inserted++
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrCorpusUnavailable, err)
	}
	return stats, nil
}
