package csvio

import (
	"time"

	"github.com/awqat-travel/core/internal/middleware"
	"github.com/awqat-travel/core/internal/models"
	"github.com/awqat-travel/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	admin := rg.Group("/admin/csv", adminMW)
	admin.GET("/export", h.export)
	admin.POST("/import", h.importCSV)
}

// GET /admin/csv/export
// Streams every article as a CSV attachment.
func (h *Handler) export(c *gin.Context) {
	var blogs []models.BlogModel
	if err := h.db.Preload("Category").Order("created_at DESC").Find(&blogs).Error; err != nil {
		response.InternalError(c, err)
		return
	}

	text, err := Export(blogs)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+Filename("blogs", time.Now())+`"`)
	c.Data(200, ContentType, []byte(text))
}

// POST /admin/csv/import
// Accepts a multipart "file" field, inserts every usable row as the
// calling admin's articles, and reports how many made it in.
func (h *Handler) importCSV(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "ملف CSV مطلوب")
		return
	}

	f, err := file.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	drafts, err := Import(f, time.Now())
	if err != nil {
		response.BadRequest(c, "تعذر قراءة ملف CSV")
		return
	}
	if len(drafts) == 0 {
		response.BadRequest(c, "لا توجد مقالات صالحة في الملف")
		return
	}

	authorID := middleware.CurrentUserID(c)
	for i := range drafts {
		drafts[i].AuthorID = authorID
	}
	if err := h.db.Create(&drafts).Error; err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{"imported": len(drafts)})
}
