// Package upload verifies that an uploaded resume is genuinely one of the
// accepted document types. Filename and declared MIME type are client
// controlled, so the content signature check is never skipped even when the
// browser already ran an equivalent check for UX.
package upload

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"careers-api/internal/domain"
)

// MaxResumeSize is the upload cap: 5 MiB.
const MaxResumeSize = int64(5 * 1024 * 1024)

// Gate errors double as the user-facing rejection messages.
var (
	ErrMissing     = errors.New("A resume file is required")
	ErrTooLarge    = errors.New("Resume file must be 5MB or smaller")
	ErrBadExt      = errors.New("Resume must be a .pdf, .doc or .docx file")
	ErrBadMIME     = errors.New("Resume file type is not allowed")
	ErrBadContents = errors.New("Resume file content does not match an accepted document type")
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var allowedMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// Leading byte signatures of the accepted formats, compared exactly at offset 0.
var magicSignatures = [][]byte{
	{0x25, 0x50, 0x44, 0x46}, // %PDF
	{0x50, 0x4B, 0x03, 0x04}, // ZIP (OOXML .docx)
	{0x50, 0x4B, 0x05, 0x06}, // empty ZIP
	{0xD0, 0xCF, 0x11, 0xE0}, // OLE compound file (legacy .doc)
}

// ContentLoader reads the full file body. It runs only after the metadata
// gates pass, so an oversize upload is rejected before any content is read.
type ContentLoader func() ([]byte, error)

// VerifyResume runs the four gates in order: presence+size, extension,
// declared MIME type, magic bytes. The gates are independent — passing the
// metadata checks never exempts a file from content inspection. The first
// failing gate's error is returned; on success f.Content holds the loaded
// bytes.
func VerifyResume(f *domain.ResumeFile, load ContentLoader) error {
	if f == nil || f.Size == 0 {
		return ErrMissing
	}
	if f.Size > MaxResumeSize {
		return ErrTooLarge
	}

	if !allowedExtensions[extensionOf(f.Filename)] {
		return ErrBadExt
	}

	if !allowedMIMETypes[normalizeMIME(f.ContentType)] {
		return ErrBadMIME
	}

	content, err := load()
	if err != nil {
		return fmt.Errorf("failed to read resume content: %w", err)
	}
	if !matchesKnownSignature(content) {
		return ErrBadContents
	}

	f.Content = content
	return nil
}

// IsGateError reports whether err is one of the rejection gates, as opposed
// to an I/O failure reading the upload.
func IsGateError(err error) bool {
	return errors.Is(err, ErrMissing) ||
		errors.Is(err, ErrTooLarge) ||
		errors.Is(err, ErrBadExt) ||
		errors.Is(err, ErrBadMIME) ||
		errors.Is(err, ErrBadContents)
}

// extensionOf lowercases the filename and returns everything from the last
// dot on; no dot means no extension.
func extensionOf(filename string) string {
	name := strings.ToLower(filename)
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return name[idx:]
}

// normalizeMIME drops any parameters (e.g. "; charset=...") and lowercases.
func normalizeMIME(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

func matchesKnownSignature(content []byte) bool {
	if len(content) < 4 {
		return false
	}
	head := content[:4]
	for _, sig := range magicSignatures {
		if bytes.Equal(head, sig) {
			return true
		}
	}
	return false
}
