package bulk

import (
	"time"

	"github.com/awqat-travel/core/internal/middleware"
	"github.com/awqat-travel/core/internal/modules/csvio"
	"github.com/awqat-travel/core/internal/pkg/pagination"
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
	sel := rg.Group("/admin/selection", adminMW)
	sel.GET("", h.selection)
	sel.POST("/toggle", h.toggle)
	sel.POST("/page", h.selectPage)
	sel.DELETE("", h.clear)

	ops := rg.Group("/admin/bulk", adminMW)
	ops.POST("/delete", h.delete)
	ops.POST("/status", h.setStatus)
	ops.POST("/export", h.export)
}

func (h *Handler) selection(c *gin.Context) {
	ids, err := h.svc.Selection(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"ids": ids, "count": len(ids)})
}

type toggleDTO struct {
	ID       string `json:"id" binding:"required"`
	Selected bool   `json:"selected"`
}

func (h *Handler) toggle(c *gin.Context) {
	var dto toggleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.Toggle(c.Request.Context(), middleware.CurrentUserID(c), dto.ID, dto.Selected); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// POST /admin/selection/page
// Selects every article on the given list page.
func (h *Handler) selectPage(c *gin.Context) {
	q := pagination.FromContext(c)
	if err := h.svc.SelectPage(c.Request.Context(), middleware.CurrentUserID(c), q); err != nil {
		response.InternalError(c, err)
		return
	}
	h.selection(c)
}

func (h *Handler) clear(c *gin.Context) {
	if err := h.svc.Clear(c.Request.Context(), middleware.CurrentUserID(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

type deleteDTO struct {
	Confirm bool `json:"confirm"`
}

// POST /admin/bulk/delete
// Destructive, so the client must send an explicit confirmation flag.
func (h *Handler) delete(c *gin.Context) {
	var dto deleteDTO
	if err := c.ShouldBindJSON(&dto); err != nil || !dto.Confirm {
		response.BadRequest(c, "يجب تأكيد الحذف")
		return
	}
	n, err := h.svc.Delete(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": n})
}

type statusDTO struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) setStatus(c *gin.Context) {
	var dto statusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	n, err := h.svc.SetStatus(c.Request.Context(), middleware.CurrentUserID(c), dto.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"updated": n})
}

func (h *Handler) export(c *gin.Context) {
	text, err := h.svc.ExportCSV(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+csvio.Filename("selected-blogs", time.Now())+`"`)
	c.Data(200, csvio.ContentType, []byte(text))
}
