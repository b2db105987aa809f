package memory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFile is returned for file extensions the document readers do
// not handle.
var ErrUnsupportedFile = errors.New("unsupported file type")

// ReadDocument extracts a single text blob from a file by extension:
// plain-text passthrough, PDF page-text concatenation or CSV row-joining.
func ReadDocument(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(data), nil
	case "pdf":
		return readPDF(path)
	case "csv":
		return readCSV(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFile, ext)
	}
}

// readPDF concatenates the plain text of every page. Pages that fail
// extraction are skipped rather than failing the document.
func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

// readCSV joins each record's fields with commas, one record per line.
func readCSV(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open csv %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var b strings.Builder
	records, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse csv %s: %w", path, err)
	}
	for _, record := range records {
		b.WriteString(strings.Join(record, ","))
		b.WriteString("\n")
	}
	return b.String(), nil
}
