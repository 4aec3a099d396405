// Package extraction converts uploaded resume documents into candidate
// records. Document parsing is best-effort: a resume that cannot be parsed
// yields a record with empty text, which the scoring engine degrades
// gracefully instead of aborting the batch.
package extraction

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// UnsupportedFormatError is returned for document types the portal does not
// accept.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported resume format: %q (want .pdf, .docx, or .txt)", e.Extension)
}

// Text extracts the plain text of a resume document by file extension.
func Text(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume %s: %w", path, err)
	}
	return TextFromBytes(data, filepath.Ext(path))
}

// TextFromBytes extracts plain text from in-memory document data. ext is the
// file extension including the dot, case-insensitive.
func TextFromBytes(data []byte, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case ".txt":
		return string(data), nil
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		b.WriteString(text)
	}
	return b.String(), nil
}

// xmlTag strips markup left over from the docx body content.
var xmlTag = regexp.MustCompile(`<[^>]+>`)

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	return strings.TrimSpace(xmlTag.ReplaceAllString(content, " ")), nil
}
