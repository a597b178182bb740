package services

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveDataURLStoresFile(t *testing.T) {
	dir := t.TempDir()
	svc := UploadService{AllowedTypes: []string{"image/png"}, Dir: dir}

	payload := base64.StdEncoding.EncodeToString([]byte("fake png bytes"))
	name, err := svc.SaveDataURL("data:image/png;base64," + payload)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"), "stored name %q should keep the extension", name)

	raw, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(raw))
}

func TestSaveDataURLRejectsDisallowedType(t *testing.T) {
	svc := UploadService{AllowedTypes: []string{"image/png"}, Dir: t.TempDir()}

	payload := base64.StdEncoding.EncodeToString([]byte("not allowed"))
	_, err := svc.SaveDataURL("data:application/pdf;base64," + payload)
	assert.True(t, errors.Is(err, ErrInvalidFileType))
}

func TestSaveDataURLRejectsMalformedInput(t *testing.T) {
	svc := UploadService{AllowedTypes: []string{"image/png"}, Dir: t.TempDir()}

	for _, in := range []string{
		"",
		"plain text",
		"data:image/png;base64",
		"data:image/png,missing-encoding",
		"data:image/png;base64,%%%not-base64%%%",
	} {
		_, err := svc.SaveDataURL(in)
		assert.True(t, errors.Is(err, ErrInvalidFileType), "input %q", in)
	}
}
