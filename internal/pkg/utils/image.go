package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"path/filepath"
	"strings"
)

// ValidateImageExtension checks a filename against the upload allow-list.
func ValidateImageExtension(fileName string, allowedExtensions []string) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		return fmt.Errorf("file %q has no extension", fileName)
	}
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("extension %q is not allowed", ext)
}

func ValidateImageSize(data []byte, maxSizeInMB int64) error {
	maxSizeInBytes := maxSizeInMB * 1024 * 1024
	if int64(len(data)) > maxSizeInBytes {
		return fmt.Errorf("image size %d exceeds limit of %d MB", len(data), maxSizeInMB)
	}
	return nil
}

// DecodeImageDimensions returns width and height, or zeros when the format
// cannot be decoded. Dimensions are descriptive only.
func DecodeImageDimensions(data []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

// DecodeBase64Image splits an optional data-URL header from the payload and
// returns the raw bytes plus the file extension implied by the content type.
func DecodeBase64Image(encoded string) ([]byte, string, error) {
	ext := ".jpg"
	payload := encoded
	if strings.HasPrefix(encoded, "data:") {
		parts := strings.SplitN(encoded, ",", 2)
		if len(parts) != 2 {
			return nil, "", fmt.Errorf("malformed data url")
		}
		header := strings.TrimSuffix(strings.TrimPrefix(parts[0], "data:"), ";base64")
		if exts, err := mime.ExtensionsByType(header); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
		payload = parts[1]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 image payload: %w", err)
	}
	return data, ext, nil
}

func ContentTypeForExtension(fileExtension string) string {
	contentType := mime.TypeByExtension(strings.ToLower(fileExtension))
	if contentType == "" {
		return "application/octet-stream"
	}
	return contentType
}
