package service

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

func b64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func TestDecodeImage_ValidPNG(t *testing.T) {
	raw := append([]byte{0x89, 0x50, 0x4E, 0x47}, []byte("fakepngdata")...)

	asset, err := decodeImage(b64(raw), "image/png")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(asset.Data, raw) {
		t.Fatalf("decoded bytes differ")
	}
	if asset.ContentType != "image/png" || asset.Size != len(raw) {
		t.Fatalf("unexpected asset meta: %+v", asset)
	}
}

func TestDecodeImage_MagicByteMismatch(t *testing.T) {
	raw := append([]byte{0xFF, 0xD8, 0xFF}, []byte("jpegdata")...)

	// JPEG bytes declared as PNG must be rejected.
	if _, err := decodeImage(b64(raw), "image/png"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeImage_UnsupportedContentType(t *testing.T) {
	if _, err := decodeImage(b64([]byte("GIF89a")), "image/gif"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeImage_BadBase64(t *testing.T) {
	if _, err := decodeImage("%%%not-base64%%%", "image/png"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeImage_TooLarge(t *testing.T) {
	raw := append([]byte{0xFF, 0xD8, 0xFF}, make([]byte, maxImageBytes)...)

	_, err := decodeImage(b64(raw), "image/jpeg")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "2MB") {
		t.Fatalf("error should name the limit: %v", err)
	}
}

func TestDecodePDF_Valid(t *testing.T) {
	raw := []byte("%PDF-1.7 fake pdf body")

	asset, err := decodePDF(b64(raw), "application/pdf")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if asset.ContentType != "application/pdf" {
		t.Fatalf("unexpected content type %q", asset.ContentType)
	}
}

func TestDecodePDF_NotAPDF(t *testing.T) {
	if _, err := decodePDF(b64([]byte("<html>")), "application/pdf"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodePDF_WrongContentType(t *testing.T) {
	if _, err := decodePDF(b64([]byte("%PDF-1.7")), "text/plain"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
