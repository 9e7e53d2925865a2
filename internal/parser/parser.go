// Package parser loads a document corpus from disk. Files are classified by
// extension, reduced to plain text, and returned as RawDocuments for
// chunking. A file that fails to parse is logged and skipped; only a missing
// directory or a fully empty corpus yields ErrNoDocuments.
package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/x-maues/rag-flarista/internal/models"
)

// ErrNoDocuments signals an empty or missing corpus. Callers disable
// retrieval instead of aborting startup.
var ErrNoDocuments = errors.New("no documents found")

// LoadDirectory walks root and parses every recognized file.
func LoadDirectory(root string) ([]models.RawDocument, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("directory %q: %w", root, ErrNoDocuments)
	}

	var docs []models.RawDocument
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping unreadable entry")
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !recognized(ext) {
			return nil
		}
		text, format, err := parseFile(path, ext)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping unparsable file")
			return nil
		}
		if strings.TrimSpace(text) == "" {
			log.Debug().Str("path", path).Msg("skipping empty file")
			return nil
		}
		docs = append(docs, models.RawDocument{SourcePath: path, Text: text, Format: format})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking %q: %w", root, walkErr)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("directory %q: %w", root, ErrNoDocuments)
	}
	return docs, nil
}

func recognized(ext string) bool {
	switch ext {
	case ".txt", ".md", ".mdx", ".markdown", ".pdf", ".docx", ".pptx", ".xlsx", ".ods":
		return true
	}
	return false
}

func parseFile(path, ext string) (string, models.DocumentFormat, error) {
	switch ext {
	case ".txt":
		text, err := parseText(path)
		return text, models.FormatPlain, err
	case ".md", ".mdx", ".markdown":
		text, err := parseMarkdown(path)
		return text, models.FormatMarkdown, err
	case ".pdf":
		text, err := parsePDF(path)
		return text, models.FormatPDF, err
	case ".docx":
		text, err := parseDOCX(path)
		return text, models.FormatDocx, err
	case ".pptx":
		text, err := parsePPTX(path)
		return text, models.FormatSlides, err
	case ".xlsx":
		text, err := parseXLSX(path)
		return text, models.FormatSpreadsheet, err
	case ".ods":
		text, err := parseODS(path)
		return text, models.FormatSpreadsheet, err
	default:
		return "", "", fmt.Errorf("unsupported file format: %s", ext)
	}
}

func parseText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func parseMarkdown(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return extractMarkdownText(data), nil
}
