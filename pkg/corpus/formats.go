package corpus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// FileFormat represents the supported corpus encodings
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // newline-delimited UTF-8
	FormatGzip               // gzip-compressed FormatText
)

// FormatInfo contains metadata about a corpus file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Corpus",
		Extensions:  []string{".txt", ""},
	},
	FormatGzip: {
		Format:      FormatGzip,
		Description: "Gzip Text Corpus",
		Extensions:  []string{".gz"},
	},
}

// DetectFileFormat picks a format from the file extension.
// Files without a known extension are read as plain text.
func DetectFileFormat(filename string) FileFormat {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, info := range supportedFormats {
		for _, e := range info.Extensions {
			if e == ext && e != "" {
				return info.Format
			}
		}
	}
	return FormatText
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}

// openFile opens filename and wraps it in a decompressor when needed.
// Closing the returned reader closes the file too.
func openFile(filename string) (io.ReadCloser, FileFormat, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("%w: %w", ErrCorpusUnavailable, err)
	}

	format := DetectFileFormat(filename)
	if format != FormatGzip {
		return file, format, nil
	}

	zr, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, FormatUnknown, fmt.Errorf("%w: %s is not valid gzip: %w", ErrCorpusUnavailable, filename, err)
	}
	return &gzipFile{Reader: zr, file: file}, format, nil
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	zerr := g.Reader.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return zerr
}
