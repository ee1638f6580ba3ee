// Package textio reads input documents as UTF-8 text. Byte-order marks are
// honoured, and input that is not valid UTF-8 is decoded as Windows-1252.
package textio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dshills/prosecheck/internal/document"
)

// MaxSize is the largest input accepted, in bytes.
const MaxSize = 8 << 20

// Encoding names the detected source encoding.
type Encoding string

const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingUTF16LE     Encoding = "utf-16le"
	EncodingUTF16BE     Encoding = "utf-16be"
	EncodingWindows1252 Encoding = "windows-1252"
)

// Detect inspects data for a byte-order mark and UTF-8 validity.
func Detect(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return EncodingUTF8
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return EncodingUTF16LE
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return EncodingUTF16BE
	case utf8.Valid(data):
		return EncodingUTF8
	}
	return EncodingWindows1252
}

// Decode converts data to a UTF-8 string, stripping any byte-order mark.
func Decode(data []byte) (string, Encoding, error) {
	enc := Detect(data)
	var dec *encoding.Decoder
	switch enc {
	case EncodingUTF8:
		return string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})), enc, nil
	case EncodingUTF16LE:
		dec = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	case EncodingUTF16BE:
		dec = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
	default:
		dec = charmap.Windows1252.NewDecoder()
	}
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", enc, fmt.Errorf("textio: decode %s: %w", enc, err)
	}
	return string(out), enc, nil
}

// Read reads all of r, up to MaxSize bytes, and decodes it.
func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return "", fmt.Errorf("textio: read: %w", err)
	}
	if len(data) > MaxSize {
		return "", fmt.Errorf("textio: input exceeds %s", humanize.IBytes(MaxSize))
	}
	text, _, err := Decode(data)
	return text, err
}

// ReadFile reads the file at path. Markdown files are reduced to their prose
// with document.Prose.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("textio: open %s: %w", path, err)
	}
	defer f.Close()

	text, err := Read(f)
	if err != nil {
		return "", fmt.Errorf("textio: %s: %w", path, err)
	}
	if document.IsMarkdown(path) {
		return document.Prose(bytes.NewBufferString(text))
	}
	return text, nil
}
