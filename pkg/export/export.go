// Package export writes tree snapshots to disk as pretty-printed JSON.
// The output is a diagnostic artifact and is never read back.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bastiangx/phraseserve/internal/utils"
	"github.com/bastiangx/phraseserve/pkg/suggest"
	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
)

// DefaultPath is where the tree lands when nothing else is configured.
const DefaultPath = "TreeDump.json"

// Encode writes snapshot to w as two-space indented JSON.
// Non-ASCII characters are written literally.
func Encode(w io.Writer, snapshot *suggest.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(snapshot)
}

// WriteFile encodes snapshot into path, creating parent directories as needed.
// It returns the absolute path written.
func WriteFile(path string, snapshot *suggest.Snapshot) (string, error) {
	if path == "" {
		path = DefaultPath
	}
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}

	if err := Encode(file, snapshot); err != nil {
		file.Close()
		return "", fmt.Errorf("encoding tree: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing export file: %w", err)
	}

	abs := utils.GetAbsolutePath(path)
	log.Debugf("Tree exported to %s", abs)
	return abs, nil
}
