package parser

import (
	"path/filepath"
	"strings"
)

// FileType is the kind of vocabulary file accepted for upload.
type FileType int

const (
	TypeUnknown FileType = iota
	TypeText
	TypePDF
)

func (t FileType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypePDF:
		return "pdf"
	default:
		return "unknown"
	}
}

// DetectFileType determines the upload type from the file extension.
func DetectFileType(filename string) FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return TypeText
	case ".pdf":
		return TypePDF
	default:
		return TypeUnknown
	}
}
