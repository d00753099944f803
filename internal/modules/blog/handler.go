package blog

import (
	"github.com/awqat-travel/core/internal/middleware"
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
	posts := rg.Group("/posts")
	posts.GET("", h.listPublished)
	posts.GET("/:slug", h.getBySlug)

	admin := rg.Group("/admin/posts", adminMW)
	admin.GET("", h.listAll)
	admin.GET("/:id", h.getByID)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

func (h *Handler) listPublished(c *gin.Context) {
	q := pagination.FromContext(c)
	blogs, page, err := h.svc.ListPublished(q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, blogs, page)
}

// GET /posts/:slug
// A draft behind the slug renders the same not-found view as a missing one.
func (h *Handler) getBySlug(c *gin.Context) {
	b, err := h.svc.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, b)
}

func (h *Handler) listAll(c *gin.Context) {
	q := pagination.FromContext(c)
	blogs, page, err := h.svc.ListAll(q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, blogs, page)
}

func (h *Handler) getByID(c *gin.Context) {
	b, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if b == nil {
		response.NotFound(c)
		return
	}
	// The editor holds tags as one comma-separated string.
	response.OK(c, gin.H{"blog": b, "tags": JoinTags(b.Tags)})
}

func (h *Handler) create(c *gin.Context) {
	var dto SaveBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	b, err := h.svc.Create(&dto, middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, b)
}

func (h *Handler) update(c *gin.Context) {
	var dto SaveBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	b, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, b)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
