package file

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/awqat-travel/core/internal/pkg/apperrors"
	"github.com/google/uuid"
)

const maxImageSizeMB = 5

var allowedImageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".gif":  {},
}

// buildFileName generates a collision-resistant filename that preserves the
// original extension.
func buildFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(original)))
	if ext == "" || len(ext) > 10 {
		ext = ".dat"
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:18] + ext
}

// buildObjectKey places uploads under a year/month prefix.
func buildObjectKey(originalName string, now time.Time) string {
	return "images/" + now.Format("2006") + "/" + now.Format("01") + "/" + buildFileName(originalName)
}

// validateImageFile checks the extension and size against upload limits.
func validateImageFile(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	if _, ok := allowedImageExts[ext]; !ok {
		return apperrors.Validation("صيغة الصورة غير مدعومة")
	}
	if size <= 0 {
		return apperrors.Validation("الملف فارغ")
	}
	if size > maxImageSizeMB*1024*1024 {
		return apperrors.Validation("حجم الصورة يتجاوز الحد المسموح")
	}
	return nil
}

// detectContentType sniffs the MIME type from the fallback header, extension,
// or raw payload bytes, in that priority order.
func detectContentType(filename string, payload []byte, fallback string) string {
	contentType := strings.TrimSpace(fallback)
	if contentType != "" {
		return contentType
	}
	if ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename))); ext != "" {
		if guessed := mime.TypeByExtension(ext); guessed != "" {
			return guessed
		}
	}
	if len(payload) > 0 {
		return http.DetectContentType(payload)
	}
	return "application/octet-stream"
}
