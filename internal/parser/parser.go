// Package parser turns uploaded file bytes into plain UTF-8 text.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeTXT FileType = "txt"
)

// ErrUnsupportedFileType is returned for any extension other than .pdf or .txt.
var ErrUnsupportedFileType = errors.New("only PDF and TXT files are supported")

// ParseError wraps an extraction failure with its underlying cause.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("file parsing failed: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DetectType maps a filename extension to a supported file type.
func DetectType(filename string) (FileType, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FileTypePDF, nil
	case ".txt":
		return FileTypeTXT, nil
	default:
		return "", ErrUnsupportedFileType
	}
}

// ExtractText extracts the full text content from raw file bytes.
func ExtractText(data []byte, filetype FileType) (string, error) {
	switch filetype {
	case FileTypePDF:
		return extractPDF(data)
	case FileTypeTXT:
		return string(data), nil
	default:
		return "", ErrUnsupportedFileType
	}
}
