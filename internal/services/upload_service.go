package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadService stores base64 data-URL images submitted from the dashboard
// forms, enforcing the env-configured MIME whitelist.
type UploadService struct {
	AllowedTypes []string
	Dir          string
}

var extByMIME = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// SaveDataURL decodes "data:<mime>;base64,<payload>" and writes the file
// under a uuid name. The returned path is relative to the upload dir and is
// what gets stored on the record.
func (u UploadService) SaveDataURL(dataURL string) (string, error) {
	mime, payload, err := splitDataURL(dataURL)
	if err != nil {
		return "", err
	}

	if !u.allowed(mime) {
		return "", ErrInvalidFileType
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrInvalidFileType
	}

	ext := extByMIME[mime]
	if ext == "" {
		ext = ".bin"
	}
	name := uuid.New().String() + ext

	if err := os.MkdirAll(u.Dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(u.Dir, name), raw, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

func (u UploadService) allowed(mime string) bool {
	for _, t := range u.AllowedTypes {
		if strings.EqualFold(t, mime) {
			return true
		}
	}
	return false
}

func splitDataURL(s string) (mime, payload string, err error) {
	s = strings.TrimSpace(s)
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", "", ErrInvalidFileType
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", "", ErrInvalidFileType
	}
	mime, enc, ok := strings.Cut(meta, ";")
	if !ok || enc != "base64" || mime == "" {
		return "", "", fmt.Errorf("%w: unsupported data url encoding", ErrInvalidFileType)
	}
	return mime, payload, nil
}
