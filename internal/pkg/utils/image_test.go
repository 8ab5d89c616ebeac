package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImageExtension(t *testing.T) {
	allowed := []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

	t.Run("Allowed extensions pass", func(t *testing.T) {
		assert.NoError(t, ValidateImageExtension("lesion.jpg", allowed))
		assert.NoError(t, ValidateImageExtension("LESION.PNG", allowed))
	})

	t.Run("Disallowed extension rejected", func(t *testing.T) {
		assert.Error(t, ValidateImageExtension("report.pdf", allowed))
	})

	t.Run("Missing extension rejected", func(t *testing.T) {
		assert.Error(t, ValidateImageExtension("noext", allowed))
	})
}

func TestValidateImageSize(t *testing.T) {
	t.Run("Under limit passes", func(t *testing.T) {
		assert.NoError(t, ValidateImageSize(make([]byte, 1024), 1))
	})

	t.Run("Over limit rejected", func(t *testing.T) {
		assert.Error(t, ValidateImageSize(make([]byte, 2*1024*1024), 1))
	})
}

func TestDecodeBase64Image(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03}
	encoded := base64.StdEncoding.EncodeToString(raw)

	t.Run("Plain base64", func(t *testing.T) {
		data, ext, err := DecodeBase64Image(encoded)
		assert.NoError(t, err)
		assert.Equal(t, raw, data)
		assert.Equal(t, ".jpg", ext)
	})

	t.Run("Data URL", func(t *testing.T) {
		data, ext, err := DecodeBase64Image("data:image/png;base64," + encoded)
		assert.NoError(t, err)
		assert.Equal(t, raw, data)
		assert.Equal(t, ".png", ext)
	})

	t.Run("Invalid payload", func(t *testing.T) {
		_, _, err := DecodeBase64Image("!!not-base64!!")
		assert.Error(t, err)
	})

	t.Run("Malformed data URL", func(t *testing.T) {
		_, _, err := DecodeBase64Image("data:image/png;base64")
		assert.Error(t, err)
	})
}
