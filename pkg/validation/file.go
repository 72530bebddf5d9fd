package validation

import (
	"bytes"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

// Magic byte signatures for the resume formats we accept
var resumeMagicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
	".txt":  {},                                                 // No magic bytes, rely on MIME detection
}

var resumeMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
	// ZIP-based documents (DOCX detection fallback)
	"application/zip": true,
}

// ValidateResumeFile checks that an uploaded resume is one of the
// accepted document formats and that its content matches its
// extension. Spoofed extensions over arbitrary binaries are rejected.
func ValidateResumeFile(filename string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return errors.New("file has no extension")
	}
	signatures, ok := resumeMagicBytes[ext]
	if !ok {
		return errors.New("file type not allowed: " + ext + " (accepted: .pdf, .doc, .docx, .txt)")
	}

	if len(signatures) > 0 {
		if !matchesSignature(data, signatures) {
			return errors.New("file content does not match extension")
		}
	}

	mime := http.DetectContentType(data)
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	if mime == "application/octet-stream" {
		// .doc and .docx often sniff as octet-stream; their magic
		// bytes were already verified above.
		if ext == ".doc" || ext == ".docx" {
			return nil
		}
		return errors.New("file type could not be determined")
	}
	if !resumeMIMETypes[mime] {
		return errors.New("MIME type not allowed: " + mime)
	}
	return nil
}

func matchesSignature(data []byte, signatures [][]byte) bool {
	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}
