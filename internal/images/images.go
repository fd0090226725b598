// Package images normalizes question image uploads before storage.
package images

import (
	"bytes"
	"fmt"
	"image"
	"net/http"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Normalizer sniffs the real content type from the bytes and verifies the
// payload decodes as an image. Clients routinely send a wrong or missing mime
// type, so the declared one is only a fallback.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

func (n *Normalizer) Process(data []byte, declaredMime string) ([]byte, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty image payload")
	}

	sniffed := http.DetectContentType(data)
	switch sniffed {
	case "image/png", "image/jpeg", "image/gif":
		if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
			return nil, "", fmt.Errorf("decode image: %w", err)
		}
		return data, sniffed, nil
	case "image/webp":
		// No stdlib decoder, the sniff is all the verification we get.
		return data, sniffed, nil
	default:
		return nil, "", fmt.Errorf("unsupported image format %q", sniffed)
	}
}
