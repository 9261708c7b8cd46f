package upload_test

import (
	"errors"
	"testing"

	"careers-api/internal/domain"
	"careers-api/pkg/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pdfBytes(size int) []byte {
	content := make([]byte, size)
	copy(content, []byte{0x25, 0x50, 0x44, 0x46})
	return content
}

func resume(name, mime string, content []byte) *domain.ResumeFile {
	return &domain.ResumeFile{
		Filename:    name,
		ContentType: mime,
		Size:        int64(len(content)),
	}
}

func staticLoader(content []byte) upload.ContentLoader {
	return func() ([]byte, error) { return content, nil }
}

// failingLoader proves a gate rejected the file before content was read.
func failingLoader(t *testing.T) upload.ContentLoader {
	return func() ([]byte, error) {
		t.Fatal("content was read before the metadata gates passed")
		return nil, nil
	}
}

func TestVerifyResumeMissing(t *testing.T) {
	err := upload.VerifyResume(nil, failingLoader(t))
	assert.ErrorIs(t, err, upload.ErrMissing)

	err = upload.VerifyResume(&domain.ResumeFile{}, failingLoader(t))
	assert.ErrorIs(t, err, upload.ErrMissing)
}

func TestVerifyResumeSizeGate(t *testing.T) {
	t.Run("5MiB exactly is allowed through", func(t *testing.T) {
		content := pdfBytes(5 * 1024 * 1024)
		f := resume("cv.pdf", "application/pdf", content)
		assert.NoError(t, upload.VerifyResume(f, staticLoader(content)))
	})

	t.Run("over 5MiB rejected before any content inspection", func(t *testing.T) {
		f := &domain.ResumeFile{
			Filename:    "cv.pdf",
			ContentType: "application/pdf",
			Size:        5*1024*1024 + 1,
		}
		err := upload.VerifyResume(f, failingLoader(t))
		assert.ErrorIs(t, err, upload.ErrTooLarge)
	})
}

func TestVerifyResumeExtensionGate(t *testing.T) {
	tests := []struct {
		filename string
		valid    bool
	}{
		{"cv.pdf", true},
		{"cv.PDF", true},
		{"cv.doc", true},
		{"cv.docx", true},
		{"archive.tar.docx", true}, // only the last segment counts
		{"cv.exe", false},
		{"cv.pdf.exe", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			content := pdfBytes(64)
			f := resume(tt.filename, "application/pdf", content)
			err := upload.VerifyResume(f, staticLoader(content))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, upload.ErrBadExt)
			}
		})
	}
}

func TestVerifyResumeMIMEGate(t *testing.T) {
	content := pdfBytes(64)

	for _, mime := range []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/pdf; charset=binary",
	} {
		f := resume("cv.pdf", mime, content)
		assert.NoError(t, upload.VerifyResume(f, staticLoader(content)), mime)
	}

	for _, mime := range []string{"application/octet-stream", "text/html", ""} {
		f := resume("cv.pdf", mime, content)
		err := upload.VerifyResume(f, staticLoader(content))
		assert.ErrorIs(t, err, upload.ErrBadMIME, mime)
	}
}

func TestVerifyResumeMagicBytes(t *testing.T) {
	signatures := map[string][]byte{
		"pdf":       {0x25, 0x50, 0x44, 0x46},
		"docx zip":  {0x50, 0x4B, 0x03, 0x04},
		"empty zip": {0x50, 0x4B, 0x05, 0x06},
		"ole doc":   {0xD0, 0xCF, 0x11, 0xE0},
	}

	for name, sig := range signatures {
		t.Run(name, func(t *testing.T) {
			content := append(append([]byte{}, sig...), []byte("rest of file")...)
			f := resume("cv.pdf", "application/pdf", content)
			assert.NoError(t, upload.VerifyResume(f, staticLoader(content)))
		})
	}

	t.Run("spoofed metadata with wrong content is rejected", func(t *testing.T) {
		content := []byte("MZ\x90\x00 this is actually an executable")
		f := resume("cv.pdf", "application/pdf", content)
		err := upload.VerifyResume(f, staticLoader(content))
		assert.ErrorIs(t, err, upload.ErrBadContents)
	})

	t.Run("signature must match at offset 0", func(t *testing.T) {
		content := append([]byte{0x00}, pdfBytes(32)...)
		f := resume("cv.pdf", "application/pdf", content)
		err := upload.VerifyResume(f, staticLoader(content))
		assert.ErrorIs(t, err, upload.ErrBadContents)
	})

	t.Run("shorter than four bytes is rejected", func(t *testing.T) {
		content := []byte{0x25, 0x50}
		f := resume("cv.pdf", "application/pdf", content)
		err := upload.VerifyResume(f, staticLoader(content))
		assert.ErrorIs(t, err, upload.ErrBadContents)
	})

	t.Run("rejection is idempotent", func(t *testing.T) {
		content := []byte("plain text pretending to be a pdf")
		f := resume("cv.pdf", "application/pdf", content)
		first := upload.VerifyResume(f, staticLoader(content))
		second := upload.VerifyResume(f, staticLoader(content))
		assert.ErrorIs(t, first, upload.ErrBadContents)
		assert.Equal(t, first, second)
	})
}

func TestVerifyResumeStoresContentOnSuccess(t *testing.T) {
	content := pdfBytes(128)
	f := resume("cv.pdf", "application/pdf", content)
	require.NoError(t, upload.VerifyResume(f, staticLoader(content)))
	assert.Equal(t, content, f.Content)
}

func TestVerifyResumeLoaderFailureIsNotAGateError(t *testing.T) {
	f := resume("cv.pdf", "application/pdf", pdfBytes(16))
	err := upload.VerifyResume(f, func() ([]byte, error) {
		return nil, errors.New("disk exploded")
	})
	require.Error(t, err)
	assert.False(t, upload.IsGateError(err))
}
