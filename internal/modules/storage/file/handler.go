package file

import (
	"io"

	"github.com/awqat-travel/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	g := rg.Group("/admin/files", adminMW)
	g.POST("/upload", h.upload)
}

// POST /admin/files/upload
// Accepts a multipart "file" field and returns the stored public URL.
func (h *Handler) upload(c *gin.Context) {
	if h.svc == nil {
		response.UnprocessableEntity(c, "خدمة رفع الملفات غير مفعلة")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "الملف مطلوب")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	payload, err := io.ReadAll(f)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	url, err := h.svc.Upload(c.Request.Context(), fileHeader.Filename, payload, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"url": url})
}
