package service

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

// Upload limits and magic-byte signatures. Content-type alone is client
// supplied; the decoded bytes must carry the matching signature.
const (
	maxImageBytes = 2 * 1024 * 1024  // 2MB
	maxPDFBytes   = 10 * 1024 * 1024 // 10MB
)

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47}
	webpMagic = []byte("RIFF")
	pdfMagic  = []byte("%PDF")
)

// decodeImage validates and decodes a base64 image payload. The decoded
// bytes must start with the signature of the declared content type.
func decodeImage(base64Data, contentType string) (*domain.Asset, error) {
	if base64Data == "" {
		return nil, domain.NewValidationError("image data is required")
	}

	data, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil {
		return nil, domain.NewValidationError("image data is not valid base64")
	}
	if len(data) > maxImageBytes {
		return nil, domain.NewValidationError(
			fmt.Sprintf("image size (%d bytes) exceeds 2MB limit", len(data)))
	}

	var magic []byte
	switch contentType {
	case "image/jpeg", "image/jpg":
		magic = jpegMagic
	case "image/png":
		magic = pngMagic
	case "image/webp":
		magic = webpMagic
	default:
		return nil, domain.NewValidationError("content type must be image/jpeg, image/png or image/webp")
	}
	if !bytes.HasPrefix(data, magic) {
		return nil, domain.NewValidationError("image content does not match declared content type")
	}

	return &domain.Asset{Data: data, ContentType: contentType, Size: len(data)}, nil
}

// decodePDF validates and decodes a base64 PDF payload.
func decodePDF(base64Data, contentType string) (*domain.Asset, error) {
	if base64Data == "" {
		return nil, domain.NewValidationError("resume data is required")
	}
	if contentType != "application/pdf" {
		return nil, domain.NewValidationError("content type must be application/pdf")
	}

	data, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil {
		return nil, domain.NewValidationError("resume data is not valid base64")
	}
	if len(data) > maxPDFBytes {
		return nil, domain.NewValidationError(
			fmt.Sprintf("resume size (%d bytes) exceeds 10MB limit", len(data)))
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return nil, domain.NewValidationError("resume content is not a PDF")
	}

	return &domain.Asset{Data: data, ContentType: contentType, Size: len(data)}, nil
}
