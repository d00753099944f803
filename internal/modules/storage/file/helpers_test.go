package file

import (
	"strings"
	"testing"
	"time"

	"github.com/awqat-travel/core/internal/pkg/apperrors"
)

func TestBuildFileNamePreservesExtension(t *testing.T) {
	name := buildFileName("my photo.JPG")
	if !strings.HasSuffix(name, ".jpg") {
		t.Errorf("name = %q", name)
	}
	if len(name) != 18+len(".jpg") {
		t.Errorf("name length = %d", len(name))
	}

	other := buildFileName("my photo.JPG")
	if name == other {
		t.Error("two uploads of the same file must not collide")
	}

	if got := buildFileName("noext"); !strings.HasSuffix(got, ".dat") {
		t.Errorf("extension-less name = %q", got)
	}
}

func TestBuildObjectKeyUsesYearMonthPrefix(t *testing.T) {
	now := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	key := buildObjectKey("pic.png", now)
	if !strings.HasPrefix(key, "images/2025/03/") {
		t.Errorf("key = %q", key)
	}
	if !strings.HasSuffix(key, ".png") {
		t.Errorf("key = %q", key)
	}
}

func TestValidateImageFile(t *testing.T) {
	if err := validateImageFile("a.png", 1024); err != nil {
		t.Errorf("valid png rejected: %v", err)
	}
	if err := validateImageFile("a.exe", 1024); !apperrors.Is(err, apperrors.KindValidation) {
		t.Errorf("exe err = %v", err)
	}
	if err := validateImageFile("a.png", 0); !apperrors.Is(err, apperrors.KindValidation) {
		t.Errorf("empty file err = %v", err)
	}
	if err := validateImageFile("a.png", 6*1024*1024); !apperrors.Is(err, apperrors.KindValidation) {
		t.Errorf("oversize err = %v", err)
	}
}

func TestDetectContentType(t *testing.T) {
	if got := detectContentType("a.png", nil, "image/webp"); got != "image/webp" {
		t.Errorf("fallback header ignored: %q", got)
	}
	if got := detectContentType("a.png", nil, ""); got != "image/png" {
		t.Errorf("extension sniff = %q", got)
	}
	if got := detectContentType("", nil, ""); got != "application/octet-stream" {
		t.Errorf("default = %q", got)
	}
}
