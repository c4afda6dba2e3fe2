package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Data-URL helpers shared by the renderer, the image store and upload
// handling. Preview images travel as "data:<mime>;base64,<data>".

// EncodeDataURL builds a base64 data URL from raw image bytes.
func EncodeDataURL(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// ParseDataURL splits a base64 data URL into its MIME type and decoded
// bytes.
func ParseDataURL(dataURL string) (string, []byte, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return "", nil, fmt.Errorf("not a data URL")
	}
	header, encoded, ok := strings.Cut(dataURL[len("data:"):], ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URL")
	}
	mimeType, _, _ := strings.Cut(header, ";")
	if mimeType == "" {
		return "", nil, fmt.Errorf("data URL has no MIME type")
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data URL payload: %w", err)
	}
	return mimeType, data, nil
}

// ExtForMIME returns a file extension (with dot) for the image MIME types
// the application handles.
func ExtForMIME(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
